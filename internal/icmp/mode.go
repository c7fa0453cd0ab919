// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package icmp

import "fmt"

// GroupMode selects how per-target results are rolled into a single
// overall state, mirroring the four check_icmp_execution_mode values in
// the C original (check_icmp_helpers.h: MODE_RTA, MODE_HOSTCHECK,
// MODE_ALL, MODE_ICMP).
type GroupMode int

const (
	// ModeRTA (the default, MODE_RTA in the original) alerts on the
	// average round-trip-time and packet loss of a single target. This is
	// the classic check_icmp invocation: one host, thresholds on rta/loss.
	ModeRTA GroupMode = iota

	// ModeHostCheck (MODE_HOSTCHECK) treats the check as a simple
	// up/down host check: a response of any kind from at least
	// MinHostsAlive targets (1 by default) means the host group is OK;
	// fewer is Critical. Warning
	// and critical thresholds are ignored in this mode.
	ModeHostCheck

	// ModeAll (MODE_ALL) requires every target to individually pass its
	// thresholds; a single target violating either threshold fails the
	// whole check.
	ModeAll

	// ModeICMP (MODE_ICMP) is ModeAll's complement for groups of
	// equivalent targets (e.g. redundant gateways): it reports the
	// least-severe per-target result, alerting only once every target in
	// the group has failed.
	ModeICMP
)

// String satisfies fmt.Stringer.
func (m GroupMode) String() string {
	switch m {
	case ModeRTA:
		return "rta"
	case ModeHostCheck:
		return "host-check"
	case ModeAll:
		return "all"
	case ModeICMP:
		return "icmp"
	default:
		return fmt.Sprintf("GroupMode(%d)", int(m))
	}
}

// ParseGroupMode maps a CLI flag value to a GroupMode.
func ParseGroupMode(s string) (GroupMode, error) {
	switch s {
	case "", "rta":
		return ModeRTA, nil
	case "host-check", "hostcheck":
		return ModeHostCheck, nil
	case "all":
		return ModeAll, nil
	case "icmp":
		return ModeICMP, nil
	default:
		return 0, fmt.Errorf("icmp: unknown group mode %q", s)
	}
}
