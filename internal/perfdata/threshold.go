// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package perfdata

import "github.com/atc0005/check-icmp/internal/svcstate"

// Threshold pairs an optional warning Range and an optional critical Range,
// matching the mp_thresholds struct in the C original
// (original_source/lib/thresholds.h). Either Range may be the zero value,
// meaning that threshold was never configured; HasWarning/HasCritical
// distinguish "not configured" from "a Range that happens to match
// everything."
type Threshold struct {
	Warning     Range
	HasWarning  bool
	Critical    Range
	HasCritical bool
}

// NewThreshold builds a Threshold from optional warning/critical range
// text. Either string may be empty to mean "not configured."
func NewThreshold(warningText, criticalText string) (Threshold, error) {
	var t Threshold

	if warningText != "" {
		r, err := ParseRange(warningText)
		if err != nil {
			return Threshold{}, err
		}
		t.Warning = r
		t.HasWarning = true
	}

	if criticalText != "" {
		r, err := ParseRange(criticalText)
		if err != nil {
			return Threshold{}, err
		}
		t.Critical = r
		t.HasCritical = true
	}

	return t, nil
}

// Classify evaluates v against t and returns the resulting service state.
// Critical is checked before warning, matching check_icmp_helpers.c's
// evaluation order: a value that violates both thresholds is reported as
// Critical, never Warning.
func (t Threshold) Classify(v Value) svcstate.State {
	if t.HasCritical && t.Critical.Violates(v) {
		return svcstate.Critical
	}
	if t.HasWarning && t.Warning.Violates(v) {
		return svcstate.Warning
	}
	return svcstate.OK
}

// DisplayWarning returns the warning range's canonical text, or "" if no
// warning threshold was configured. Mirrors fmt_threshold_warning from the
// C original.
func (t Threshold) DisplayWarning() string {
	if !t.HasWarning {
		return ""
	}
	return t.Warning.String()
}

// DisplayCritical returns the critical range's canonical text, or "" if no
// critical threshold was configured. Mirrors fmt_threshold_critical from
// the C original.
func (t Threshold) DisplayCritical() string {
	if !t.HasCritical {
		return ""
	}
	return t.Critical.String()
}

// CriticalUpperBound returns the critical range's finite upper bound as a
// plain float64, for callers that need a single numeric "critical
// threshold" value rather than a full Range -- e.g. the composite score
// formula in spec.md §3, which divides by a configured loss/jitter
// threshold rather than evaluating a Range directly. Returns false if no
// critical threshold is configured or its upper bound is infinite (an
// unbounded critical range has no single number to divide by).
func (t Threshold) CriticalUpperBound() (float64, bool) {
	if !t.HasCritical || t.Critical.End.Infinite {
		return 0, false
	}
	return t.Critical.End.Value.AsFloat64(), true
}
