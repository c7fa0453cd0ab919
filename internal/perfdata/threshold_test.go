// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package perfdata

import (
	"testing"

	"github.com/atc0005/check-icmp/internal/svcstate"
)

func TestThresholdClassify(t *testing.T) {
	th, err := NewThreshold("80", "95")
	if err != nil {
		t.Fatalf("NewThreshold returned error: %v", err)
	}

	tests := []struct {
		name string
		v    Value
		want svcstate.State
	}{
		{name: "below warning", v: Int64(50), want: svcstate.OK},
		{name: "at warning boundary", v: Int64(80), want: svcstate.OK},
		{name: "above warning", v: Int64(85), want: svcstate.Warning},
		{name: "at critical boundary", v: Int64(95), want: svcstate.Warning},
		{name: "above critical", v: Int64(99), want: svcstate.Critical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.Classify(tt.v); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestThresholdClassifyCriticalWinsOverWarning(t *testing.T) {
	// A value that violates both thresholds must be reported Critical,
	// never Warning.
	th, err := NewThreshold("10", "20")
	if err != nil {
		t.Fatalf("NewThreshold returned error: %v", err)
	}

	if got := th.Classify(Int64(30)); got != svcstate.Critical {
		t.Errorf("Classify() = %v, want Critical", got)
	}
}

func TestThresholdDisplay(t *testing.T) {
	th, err := NewThreshold("80", "")
	if err != nil {
		t.Fatalf("NewThreshold returned error: %v", err)
	}

	if got := th.DisplayWarning(); got != "80" {
		t.Errorf("DisplayWarning() = %q, want %q", got, "80")
	}
	if got := th.DisplayCritical(); got != "" {
		t.Errorf("DisplayCritical() = %q, want empty", got)
	}
}
