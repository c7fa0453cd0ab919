// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package nagios

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/atc0005/check-icmp/internal/perfdata"
	"github.com/atc0005/check-icmp/internal/svcstate"
)

// Check is the root of a service check result tree (mp_check in the C
// original). Exists once per plugin invocation.
type Check struct {
	// Label identifies the plugin in rendered output, e.g. "ICMP".
	Label string

	// Format selects how FormatOutput renders the tree.
	Format OutputFormat

	// Summary overrides the auto-generated top summary line when set.
	Summary string

	Subchecks []Subcheck
}

// NewCheck builds a Check for the named plugin with the default output
// format. Mirrors mp_check_init.
func NewCheck(label string) Check {
	return Check{
		Label:  label,
		Format: IcingaWeb2,
	}
}

// AddSubcheck appends s to the top-level subcheck list after validating
// it has a label. Mirrors mp_add_subcheck_to_check.
func (c *Check) AddSubcheck(s Subcheck) error {
	if s.Label == "" {
		return ErrSubcheckMissingLabel
	}
	c.Subchecks = append(c.Subchecks, s)
	return nil
}

// SetSummary overrides the auto-generated summary line. Mirrors
// mp_add_summary.
func (c *Check) SetSummary(summary string) {
	c.Summary = summary
}

// ComputeState returns the rollup of every top-level Subcheck's
// ComputeState, or Unknown if the Check has no subchecks at all (a plugin
// that produced no results has nothing to report OK about). Mirrors
// mp_compute_check_state.
func (c Check) ComputeState() svcstate.State {
	if len(c.Subchecks) == 0 {
		return svcstate.Unknown
	}

	states := make([]svcstate.State, len(c.Subchecks))
	for i, s := range c.Subchecks {
		states[i] = s.ComputeState()
	}
	return svcstate.RollupAll(states)
}

// summaryLine returns c.Summary if set, otherwise the auto-generated
// "ok=N, warning=N, critical=N, unknown=N" counts line, tallying the
// computed state of each top-level Subcheck (not transitively through
// their descendants, matching ComputeState's own root-only rollup scope).
func (c Check) summaryLine() string {
	if c.Summary != "" {
		return c.Summary
	}

	var ok, warning, critical, unknown int
	for _, s := range c.Subchecks {
		switch s.ComputeState() {
		case svcstate.OK:
			ok++
		case svcstate.Warning:
			warning++
		case svcstate.Critical:
			critical++
		default:
			unknown++
		}
	}

	return fmt.Sprintf("ok=%d, warning=%d, critical=%d, unknown=%d", ok, warning, critical, unknown)
}

func (c Check) allPerfdata() []perfdata.PerformanceData {
	var out []perfdata.PerformanceData
	for _, s := range c.Subchecks {
		out = append(out, s.allPerfdata()...)
	}
	return out
}

// FormatOutput renders the tree per c.Format. Mirrors mp_fmt_output.
func (c Check) FormatOutput() string {
	switch c.Format {
	case TestJSON:
		return formatJSON(c)
	case SummaryOnly:
		return formatSummaryOnly(c)
	case OneLine:
		return formatOneLine(c)
	default:
		return formatIcingaWeb2(c)
	}
}

func formatSummaryOnly(c Check) string {
	return fmt.Sprintf("%s %s - %s", c.Label, c.ComputeState(), c.summaryLine())
}

func formatOneLine(c Check) string {
	line := formatSummaryOnly(c)
	if pd := c.allPerfdata(); len(pd) > 0 {
		line += " | " + perfdata.ListString(pd)
	}
	return line
}

// formatIcingaWeb2 renders the default multi-line tree: a counts summary,
// one indented line per subcheck (depth-first, pre-order), and the whole
// tree's perfdata collected once behind a final "|" line, matching
// mp_fmt_output in the C original (original_source/lib/output.c) rather
// than emitting perfdata inline per node.
func formatIcingaWeb2(c Check) string {
	var b strings.Builder

	b.WriteString(formatSummaryOnly(c))
	b.WriteString(CheckOutputEOL)

	for _, s := range c.Subchecks {
		writeSubcheck(&b, s, 1)
	}

	if pd := c.allPerfdata(); len(pd) > 0 {
		b.WriteString("|")
		b.WriteString(perfdata.ListString(pd))
	}

	return b.String()
}

func writeSubcheck(b *strings.Builder, s Subcheck, depth int) {
	indent := strings.Repeat("\t", depth)

	content := s.Label
	if s.Output != "" {
		content = fmt.Sprintf("%s: %s", s.Label, s.Output)
	}
	fmt.Fprintf(b, "%s\\_[%s] - %s", indent, s.ComputeState(), content)
	b.WriteString(CheckOutputEOL)

	for _, child := range s.Subchecks {
		writeSubcheck(b, child, depth+1)
	}
}

// Print writes FormatOutput to stdout, matching mp_print_output.
func (c Check) Print() {
	fmt.Print(c.FormatOutput())
}

// Exit prints the check output and terminates the process with the exit
// code corresponding to ComputeState. It recovers a panic in the calling
// goroutine first, reporting Critical with the panic and stack trace
// instead of letting the process crash with no Nagios-legible output,
// matching the crash-recovery behavior of go-nagios's ReturnCheckResults.
// As with that function, Exit should be the first deferred call in main so
// that (being last-in-first-out) it runs last.
func (c *Check) Exit() {
	if r := recover(); r != nil {
		panicked := NewSubcheck("panic").SetState(svcstate.Critical)
		panicked.Output = fmt.Sprintf("plugin crash: %v\n%s", r, debug.Stack())
		c.Subchecks = []Subcheck{panicked}
		c.Summary = ""
	}

	c.Print()
	os.Exit(c.ComputeState().ExitCode())
}
