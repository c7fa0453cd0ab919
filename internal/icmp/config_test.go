// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package icmp

import (
	"testing"

	"github.com/atc0005/check-icmp/internal/perfdata"
	"github.com/atc0005/check-icmp/internal/svcstate"
)

func TestNewConfigDefaults(t *testing.T) {
	hosts := []Host{{Name: "192.0.2.1"}}
	cfg := NewConfig(hosts)

	if cfg.Count != DefaultPacketCount {
		t.Errorf("Count = %d, want %d", cfg.Count, DefaultPacketCount)
	}
	if cfg.PacketSize != DefaultPacketSize {
		t.Errorf("PacketSize = %d, want %d", cfg.PacketSize, DefaultPacketSize)
	}
	if cfg.TTL != DefaultTTL {
		t.Errorf("TTL = %d, want %d", cfg.TTL, DefaultTTL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Mode != ModeRTA {
		t.Errorf("Mode = %v, want %v", cfg.Mode, ModeRTA)
	}
	if cfg.MinHostsAlive != 1 {
		t.Errorf("MinHostsAlive = %d, want 1", cfg.MinHostsAlive)
	}
	if len(cfg.Hosts) != 1 || cfg.Hosts[0].Name != "192.0.2.1" {
		t.Errorf("Hosts = %+v, want one host 192.0.2.1", cfg.Hosts)
	}
}

func TestNewConfigWiresDefaultThresholds(t *testing.T) {
	cfg := NewConfig([]Host{{Name: "192.0.2.1"}})

	if !cfg.RTAThreshold.HasWarning || !cfg.RTAThreshold.HasCritical {
		t.Fatalf("RTAThreshold = %+v, want both warning and critical set", cfg.RTAThreshold)
	}
	if !cfg.LossThreshold.HasWarning || !cfg.LossThreshold.HasCritical {
		t.Fatalf("LossThreshold = %+v, want both warning and critical set", cfg.LossThreshold)
	}

	// 150ms is below the 200ms default RTA warning threshold.
	if got := cfg.RTAThreshold.Classify(perfdata.Float64(150)); got != svcstate.OK {
		t.Errorf("RTAThreshold.Classify(150ms) = %v, want OK", got)
	}
	// 600ms exceeds the 500ms default RTA critical threshold.
	if got := cfg.RTAThreshold.Classify(perfdata.Float64(600)); got != svcstate.Critical {
		t.Errorf("RTAThreshold.Classify(600ms) = %v, want Critical", got)
	}
	// 90% loss exceeds the 80% default critical threshold.
	if got := cfg.LossThreshold.Classify(perfdata.Float64(90)); got != svcstate.Critical {
		t.Errorf("LossThreshold.Classify(90) = %v, want Critical", got)
	}
}

func TestMsValue(t *testing.T) {
	if got := msValue(DefaultWarnRTA); got != "200" {
		t.Errorf("msValue(DefaultWarnRTA) = %q, want %q", got, "200")
	}
}
