// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package icmp

import (
	"context"
	"testing"
	"time"
)

func TestBackoffScalesByPacketBackoffFactor(t *testing.T) {
	base := 80 * time.Millisecond
	got := backoff(base, base)
	want := time.Duration(float64(base) * PacketBackoffFactor)
	if got != want {
		t.Errorf("backoff(%v, %v) = %v, want %v", base, base, got, want)
	}
}

func TestBackoffCapsAtTenTimesBase(t *testing.T) {
	base := 80 * time.Millisecond
	current := base * 9
	got := backoff(current, base)
	if got > base*10 {
		t.Errorf("backoff(%v, %v) = %v, exceeds cap of %v", current, base, got, base*10)
	}
}

func TestRunRejectsEmptyHosts(t *testing.T) {
	cfg := NewConfig(nil)
	_, err := Run(context.Background(), cfg)
	if err != ErrNoTargets {
		t.Errorf("Run(no hosts) error = %v, want ErrNoTargets", err)
	}
}
