// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package icmp

import (
	"time"
)

// Sample is the outcome of sending a single echo request: either a
// round-trip time, or a loss (no reply observed before the per-target
// deadline). Answered is set whenever the target sent back anything at
// all, including an ICMP error (unreachable/time-exceeded) that still
// counts as Lost for RTT/loss-percent purposes but proves the target is
// alive.
type Sample struct {
	Seq      int
	RTT      time.Duration
	Lost     bool
	Answered bool
}

// Stats summarizes a target's Samples: the classic min/avg/max/jitter
// round-trip-time figures check_icmp has always reported, plus an
// R-factor/MOS estimate and a composite health score this repository
// adds as supplemental perfdata (see SPEC_FULL.md).
type Stats struct {
	Sent        int
	Received    int
	LossPercent float64

	// Answered counts samples where the target sent back anything at all
	// (an echo reply or an ICMP error), distinct from Received which only
	// counts echo replies usable for RTT. A target that only ever
	// answers with "destination unreachable" has Received == 0 but
	// Answered > 0, and is still alive for hostcheck purposes.
	Answered int

	Min, Avg, Max time.Duration

	// Jitter is the mean absolute difference between successive received
	// RTTs (jitter_sum / jitter_samples per spec.md §3/§4.5), not the
	// "mdev" population standard deviation classic ping(8) reports.
	Jitter time.Duration

	// RFactor is an ITU-T G.107-style transmission rating (0-100) derived
	// from Effective Latency and loss. Not a measurement, an estimate: it
	// assumes a voice-grade codec, since this plugin has no way to know
	// what traffic (if any) will actually share the path.
	RFactor float64

	// MOS is the Mean Opinion Score (1.0-4.5) derived from RFactor via
	// the standard cubic mapping.
	MOS float64

	// CompositeScore (0-100) is this repository's own at-a-glance
	// combination of loss and jitter; it is not a standard industry
	// metric, only a convenience figure for dashboards that want a
	// single number.
	CompositeScore float64
}

// ComputeStats reduces a target's Samples into Stats. An empty or
// all-lost sample set returns a Stats with Received == 0 and every
// derived metric at its most pessimistic value (100% loss, 0 MOS
// inputs) rather than division by zero. lossThresholdPercent and
// jitterThresholdMS are the configured critical loss/jitter thresholds
// the composite score formula (spec.md §3) divides by; callers with no
// configured threshold should pass the package defaults
// (DefaultCritLoss, DefaultCritJitter).
func ComputeStats(samples []Sample, lossThresholdPercent, jitterThresholdMS float64) Stats {
	s := Stats{Sent: len(samples)}
	if s.Sent == 0 {
		s.LossPercent = 100
		return s
	}

	var rtts []time.Duration
	for _, sample := range samples {
		if sample.Answered {
			s.Answered++
		}
		if !sample.Lost {
			rtts = append(rtts, sample.RTT)
		}
	}

	s.Received = len(rtts)
	s.LossPercent = 100 * float64(s.Sent-s.Received) / float64(s.Sent)

	if s.Received == 0 {
		return s
	}

	s.Min, s.Max = rtts[0], rtts[0]
	var sum time.Duration
	for _, rtt := range rtts {
		if rtt < s.Min {
			s.Min = rtt
		}
		if rtt > s.Max {
			s.Max = rtt
		}
		sum += rtt
	}
	s.Avg = sum / time.Duration(s.Received)

	var jitterSumMS float64
	jitterSamples := 0
	for i := 1; i < len(rtts); i++ {
		diff := rtts[i] - rtts[i-1]
		if diff < 0 {
			diff = -diff
		}
		jitterSumMS += msFloat(diff)
		jitterSamples++
	}
	if jitterSamples > 0 {
		s.Jitter = time.Duration(jitterSumMS / float64(jitterSamples) * float64(time.Millisecond))
	}

	s.RFactor = rFactor(s.Avg, s.Jitter, s.LossPercent)
	s.MOS = meanOpinionScore(s.RFactor)
	s.CompositeScore = compositeScore(s.LossPercent, s.Jitter, lossThresholdPercent, jitterThresholdMS)

	return s
}

// rFactor computes the ITU-T G.107-style transmission rating R from
// Effective Latency and loss, per spec.md §3:
//
//	EL = avg + 2*jitter + 10
//	R  = 93.2 - EL/(EL<160 ? 40 : 120) - PL*2.5
func rFactor(avgRTT, jitter time.Duration, lossPercent float64) float64 {
	effectiveLatencyMS := msFloat(avgRTT) + 2*msFloat(jitter) + 10

	divisor := 120.0
	if effectiveLatencyMS < 160 {
		divisor = 40.0
	}

	r := 93.2 - effectiveLatencyMS/divisor - lossPercent*2.5
	return clamp(r, 0, 100)
}

// meanOpinionScore maps an R-factor to the standard 1.0-4.5 MOS scale,
// per spec.md §3: MOS = 1 + 0.035*R + R*(R-60)*(100-R)*7e-6.
func meanOpinionScore(r float64) float64 {
	switch {
	case r < 0:
		return 1
	case r > 100:
		return 4.5
	default:
		return clamp(1+0.035*r+r*(r-60)*(100-r)*7e-6, 1, 4.5)
	}
}

// compositeScore implements spec.md §3's composite health score:
//
//	score = 100 - 100*PL/loss_thresh - jitter*100/jitter_thresh, clamped >= 0
//
// A zero threshold (misconfiguration) is treated as "any loss/jitter at
// all exhausts that term" rather than dividing by zero.
func compositeScore(lossPercent float64, jitter time.Duration, lossThresholdPercent, jitterThresholdMS float64) float64 {
	score := 100.0

	if lossThresholdPercent > 0 {
		score -= 100 * lossPercent / lossThresholdPercent
	} else if lossPercent > 0 {
		score = 0
	}

	if jitterThresholdMS > 0 {
		score -= msFloat(jitter) * 100 / jitterThresholdMS
	} else if jitter > 0 {
		score = 0
	}

	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
