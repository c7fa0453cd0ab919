// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package svcstate provides the Nagios/Monitoring Plugins service check
// state enum and the two total orderings defined over it.
//
// The C original (monitoring-plugins lib/states.h) exposes this as
// max_state() (the "rollup" ordering, where Unknown sorts below OK so that
// an unresolved subcheck never masks a real problem during aggregation) and
// max_state_alt() (the "alternate" ordering, where Unknown sorts above OK
// so that it can escalate a result). Both orderings are preserved here
// rather than unified. internal/nagios and internal/icmp both aggregate
// with the rollup ordering; no package in this module calls Alternate.
package svcstate
