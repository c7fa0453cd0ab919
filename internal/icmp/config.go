// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package icmp

import (
	"errors"
	"time"

	"github.com/atc0005/check-icmp/internal/perfdata"
)

// Defaults mirror the DEFAULT_* constants in
// original_source/plugins-root/check_icmp.d/config.h.
const (
	DefaultPacketCount   = 5
	DefaultPacketSize    = 56
	DefaultTTL           = 64
	DefaultTimeout       = 10 * time.Second
	DefaultPacketInterval = 80 * time.Millisecond
	DefaultTargetInterval = 0

	DefaultWarnRTA  = 200 * time.Millisecond
	DefaultCritRTA  = 500 * time.Millisecond
	DefaultWarnLoss = 40.0
	DefaultCritLoss = 80.0

	// DefaultWarnJitter/DefaultCritJitter are this repository's own
	// addition (the C original has no jitter threshold): reference points
	// for the composite score formula in §3, chosen in line with the
	// voice-quality jitter figures commonly used alongside the R-factor/MOS
	// estimate this package also derives.
	DefaultWarnJitter = 30 * time.Millisecond
	DefaultCritJitter = 50 * time.Millisecond

	// PacketBackoffFactor scales the per-packet interval upward after an
	// unanswered packet, so a lossy path is probed less aggressively
	// rather than flooding it further. See backoff() in engine.go.
	//
	// TargetBackoffFactor has no equivalent here: targets are probed
	// concurrently rather than in the original's serial per-target loop,
	// so there is no "previous target's loss" signal to back off from.
	// Kept for parity with config.h; unused by design.
	PacketBackoffFactor = 1.5
	TargetBackoffFactor = 1.5
)

// ErrNoTargets is returned by Run when Config.Hosts is empty.
var ErrNoTargets = errors.New("icmp: no targets configured")

// Config holds everything the reachability engine needs for one run.
type Config struct {
	Hosts []Host

	Count          int
	PacketSize     int
	TTL            int
	Timeout        time.Duration
	PacketInterval time.Duration
	TargetInterval time.Duration

	Mode GroupMode

	RTAThreshold    perfdata.Threshold
	LossThreshold   perfdata.Threshold
	JitterThreshold perfdata.Threshold

	// MinHostsAlive is consulted only in ModeHostCheck/ModeICMP: the
	// minimum number of targets that must respond for the group to be
	// considered OK.
	MinHostsAlive int

	IPv6 bool

	// MaxConcurrentResolutions bounds the DNS lookup fan-out in
	// ResolveAll.
	MaxConcurrentResolutions int
}

// NewConfig returns a Config populated with the defaults above and the
// given hosts; callers override any field before calling Run.
func NewConfig(hosts []Host) Config {
	return Config{
		Hosts:                    hosts,
		Count:                    DefaultPacketCount,
		PacketSize:               DefaultPacketSize,
		TTL:                      DefaultTTL,
		Timeout:                  DefaultTimeout,
		PacketInterval:           DefaultPacketInterval,
		TargetInterval:           DefaultTargetInterval,
		Mode:                     ModeRTA,
		RTAThreshold:             defaultRTAThreshold(),
		LossThreshold:            defaultLossThreshold(),
		JitterThreshold:          defaultJitterThreshold(),
		MinHostsAlive:            1,
		MaxConcurrentResolutions: 8,
	}
}

func defaultRTAThreshold() perfdata.Threshold {
	th, _ := perfdata.NewThreshold(
		msValue(DefaultWarnRTA),
		msValue(DefaultCritRTA),
	)
	return th
}

func defaultLossThreshold() perfdata.Threshold {
	th, _ := perfdata.NewThreshold("40", "80")
	return th
}

func defaultJitterThreshold() perfdata.Threshold {
	th, _ := perfdata.NewThreshold(
		msValue(DefaultWarnJitter),
		msValue(DefaultCritJitter),
	)
	return th
}

func msValue(d time.Duration) string {
	return perfdata.Float64(float64(d.Milliseconds())).String()
}
