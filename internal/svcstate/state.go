// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package svcstate

// State represents one of the five Nagios/Monitoring Plugins service check
// states. These mirror the values historically found in utils.sh:
//
//	/usr/lib/nagios/plugins/utils.sh
//	/usr/local/nagios/libexec/utils.sh
type State int

// The five service check states, numbered to match their conventional
// Nagios exit codes. Dependent has no dedicated exit code; plugins that
// report it are expected to remap it before exiting (see ExitCode).
const (
	OK State = iota
	Warning
	Critical
	Unknown
	Dependent
)

// Label returns the upper-case textual label Nagios displays for a state.
func (s State) Label() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	case Unknown:
		return "UNKNOWN"
	case Dependent:
		return "DEPENDENT"
	default:
		return "UNKNOWN"
	}
}

// String satisfies fmt.Stringer.
func (s State) String() string {
	return s.Label()
}

// ExitCode returns the integer process exit status Nagios expects for this
// state (0/1/2/3). Dependent has no standalone exit code in the plugin
// contract; it is mapped to Unknown (3), matching how the historical
// STATE_DEPENDENT exit code of 4 is never actually returned by a plugin's
// final exit call.
func (s State) ExitCode() int {
	switch s {
	case OK:
		return 0
	case Warning:
		return 1
	case Critical:
		return 2
	default:
		return 3
	}
}

// rollupRank and alternateRank assign a relative severity used only to
// implement Rollup/Alternate; they have no meaning outside of those two
// functions and must never be compared directly against another State's
// numeric value.
var rollupRank = map[State]int{
	Unknown:   0,
	OK:        1,
	Warning:   2,
	Critical:  3,
	Dependent: 4,
}

var alternateRank = map[State]int{
	OK:        0,
	Dependent: 1,
	Unknown:   2,
	Warning:   3,
	Critical:  4,
}

// Rollup returns the more severe of a and b under the ordering
// Unknown < OK < Warning < Critical < Dependent. This is the ordering used
// to aggregate subcheck state up a result tree: an unresolved child never
// outranks an actual OK/Warning/Critical sibling.
func Rollup(a, b State) State {
	if rollupRank[a] >= rollupRank[b] {
		return a
	}
	return b
}

// RollupAll reduces a slice of states with Rollup, returning Unknown for an
// empty slice.
func RollupAll(states []State) State {
	result := Unknown
	for _, s := range states {
		result = Rollup(result, s)
	}
	return result
}

// Alternate returns the more severe of a and b under the ordering
// OK < Dependent < Unknown < Warning < Critical. Unlike Rollup, Unknown
// here outranks OK, so an unresolved check escalates a result rather than
// being absorbed by it.
func Alternate(a, b State) State {
	if alternateRank[a] >= alternateRank[b] {
		return a
	}
	return b
}
