// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package nagios

import (
	"strings"
	"testing"

	"github.com/atc0005/check-icmp/internal/perfdata"
	"github.com/atc0005/check-icmp/internal/svcstate"
)

func TestCheckComputeStateEmpty(t *testing.T) {
	c := NewCheck("ICMP")
	if got := c.ComputeState(); got != svcstate.Unknown {
		t.Errorf("ComputeState() on empty Check = %v, want Unknown", got)
	}
}

func TestCheckComputeStateRollup(t *testing.T) {
	c := NewCheck("ICMP")

	ok := NewSubcheck("host-a").SetState(svcstate.OK)
	warn := NewSubcheck("host-b").SetState(svcstate.Warning)

	if err := c.AddSubcheck(ok); err != nil {
		t.Fatalf("AddSubcheck(ok) returned error: %v", err)
	}
	if err := c.AddSubcheck(warn); err != nil {
		t.Fatalf("AddSubcheck(warn) returned error: %v", err)
	}

	if got := c.ComputeState(); got != svcstate.Warning {
		t.Errorf("ComputeState() = %v, want Warning", got)
	}
}

func TestCheckAddSubcheckRejectsMissingLabel(t *testing.T) {
	c := NewCheck("ICMP")
	if err := c.AddSubcheck(Subcheck{}); err != ErrSubcheckMissingLabel {
		t.Errorf("AddSubcheck(unlabeled) error = %v, want %v", err, ErrSubcheckMissingLabel)
	}
}

func TestSubcheckComputeStateFromChildren(t *testing.T) {
	parent := NewSubcheck("group")

	if err := parent.AddSubcheck(NewSubcheck("a").SetState(svcstate.OK)); err != nil {
		t.Fatalf("AddSubcheck returned error: %v", err)
	}
	if err := parent.AddSubcheck(NewSubcheck("b").SetState(svcstate.Critical)); err != nil {
		t.Fatalf("AddSubcheck returned error: %v", err)
	}

	if got := parent.ComputeState(); got != svcstate.Critical {
		t.Errorf("ComputeState() = %v, want Critical", got)
	}
}

func TestSubcheckComputeStateDefault(t *testing.T) {
	s := NewSubcheck("leaf").SetDefaultState(svcstate.Warning)
	if got := s.ComputeState(); got != svcstate.Warning {
		t.Errorf("ComputeState() = %v, want Warning (from default)", got)
	}
}

func TestSubcheckExplicitStateWinsOverChildren(t *testing.T) {
	s := NewSubcheck("leaf").SetState(svcstate.OK)
	if err := s.AddSubcheck(NewSubcheck("child").SetState(svcstate.Critical)); err != nil {
		t.Fatalf("AddSubcheck returned error: %v", err)
	}

	if got := s.ComputeState(); got != svcstate.OK {
		t.Errorf("ComputeState() = %v, want OK (explicit wins)", got)
	}
}

func TestFormatOutputOneLineIncludesPerfdata(t *testing.T) {
	c := NewCheck("ICMP")
	c.Format = OneLine

	s := NewSubcheck("host-a").SetState(svcstate.OK)
	s.Output = "reachable"
	if err := s.AddPerfData(perfdata.PerformanceData{Label: "rta", Value: perfdata.Float64(1.2), UnitOfMeasurement: "ms"}); err != nil {
		t.Fatalf("AddPerfData returned error: %v", err)
	}
	if err := c.AddSubcheck(s); err != nil {
		t.Fatalf("AddSubcheck returned error: %v", err)
	}

	out := c.FormatOutput()
	if !strings.Contains(out, "ICMP OK") {
		t.Errorf("FormatOutput() = %q, want prefix containing %q", out, "ICMP OK")
	}
	if !strings.Contains(out, "rta=1.2ms") {
		t.Errorf("FormatOutput() = %q, want it to contain perfdata token", out)
	}
}

func TestFormatOutputIcingaWeb2IncludesSubcheckTree(t *testing.T) {
	c := NewCheck("ICMP")

	parent := NewSubcheck("targets")
	child := NewSubcheck("host-a").SetState(svcstate.Critical)
	child.Output = "100% packet loss"
	if err := parent.AddSubcheck(child); err != nil {
		t.Fatalf("AddSubcheck returned error: %v", err)
	}
	if err := c.AddSubcheck(parent); err != nil {
		t.Fatalf("AddSubcheck returned error: %v", err)
	}

	out := c.FormatOutput()
	if !strings.Contains(out, "host-a") || !strings.Contains(out, "100% packet loss") {
		t.Errorf("FormatOutput() = %q, want it to contain the nested subcheck detail", out)
	}
	if got := c.ComputeState(); got != svcstate.Critical {
		t.Errorf("ComputeState() = %v, want Critical", got)
	}
}

func TestFormatOutputSummaryOnlyOmitsPerfdata(t *testing.T) {
	c := NewCheck("ICMP")
	c.Format = SummaryOnly

	s := NewSubcheck("host-a").SetState(svcstate.OK)
	if err := s.AddPerfData(perfdata.PerformanceData{Label: "rta", Value: perfdata.Int64(1)}); err != nil {
		t.Fatalf("AddPerfData returned error: %v", err)
	}
	if err := c.AddSubcheck(s); err != nil {
		t.Fatalf("AddSubcheck returned error: %v", err)
	}

	if out := c.FormatOutput(); strings.Contains(out, "rta=") {
		t.Errorf("FormatOutput() = %q, want no perfdata in summary-only form", out)
	}
}

func TestFormatOutputTestJSON(t *testing.T) {
	c := NewCheck("ICMP")
	c.Format = TestJSON
	if err := c.AddSubcheck(NewSubcheck("host-a").SetState(svcstate.OK)); err != nil {
		t.Fatalf("AddSubcheck returned error: %v", err)
	}

	out := c.FormatOutput()
	for _, want := range []string{`"label":"ICMP"`, `"state":"OK"`, `"host-a"`} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatOutput() = %q, want it to contain %q", out, want)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    OutputFormat
		wantErr bool
	}{
		{name: "default empty", text: "", want: IcingaWeb2},
		{name: "icinga web 2", text: "icinga-web-2", want: IcingaWeb2},
		{name: "one line", text: "one-line", want: OneLine},
		{name: "summary only", text: "summary-only", want: SummaryOnly},
		{name: "test json", text: "test-json", want: TestJSON},
		{name: "invalid", text: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOutputFormat(%q) error = nil, want error", tt.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOutputFormat(%q) returned error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
