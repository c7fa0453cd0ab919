// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package nagios

import (
	"errors"
	"strings"
)

// OutputFormat selects how Check.FormatOutput renders the result tree.
// Mirrors mp_output_format from the C original.
type OutputFormat int

const (
	// IcingaWeb2 renders the full subcheck tree as indented multi-line
	// text, one state-annotated line per node, followed by a single line
	// holding the whole tree's perfdata. This is the default, matching
	// MP_FORMAT_DEFAULT in the C original.
	IcingaWeb2 OutputFormat = iota

	// OneLine renders just the top summary line and the flattened
	// perfdata from the whole tree, suitable for check_icmp's classic
	// single-line Nagios output.
	OneLine

	// SummaryOnly renders the summary line with no perfdata and no
	// subcheck detail, for notification channels that truncate long text.
	SummaryOnly

	// TestJSON renders the entire tree as JSON, intended for plugin
	// integration tests and for Icinga's JSON output consumers.
	TestJSON
)

// ErrInvalidOutputFormat is returned by ParseOutputFormat when given text
// that does not match a known OutputFormat.
var ErrInvalidOutputFormat = errors.New("nagios: invalid output format")

// ParseOutputFormat maps a command-line flag value to an OutputFormat,
// mirroring mp_parse_output_format from the C original.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "icinga-web-2", "icingaweb2", "":
		return IcingaWeb2, nil
	case "one-line", "oneline":
		return OneLine, nil
	case "summary-only", "summaryonly", "summary":
		return SummaryOnly, nil
	case "test-json", "testjson", "json":
		return TestJSON, nil
	default:
		return 0, ErrInvalidOutputFormat
	}
}

// String satisfies fmt.Stringer.
func (f OutputFormat) String() string {
	switch f {
	case IcingaWeb2:
		return "icinga-web-2"
	case OneLine:
		return "one-line"
	case SummaryOnly:
		return "summary-only"
	case TestJSON:
		return "test-json"
	default:
		return "icinga-web-2"
	}
}
