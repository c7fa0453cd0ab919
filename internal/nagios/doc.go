// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package nagios implements the hierarchical check result tree used to
// assemble Nagios/Monitoring Plugins service check output: a root Check
// holding zero or more Subcheck nodes, each of which may itself hold
// nested Subcheck children and attached performance data.
//
// This generalizes the flat ExitState/ServiceOutput/LongServiceOutput
// model found in github.com/atc0005/go-nagios (see
// _examples/other_examples and _examples/atc0005-check-vmware, which
// import it directly) into the mp_check/mp_subcheck tree described in the
// C original (original_source/lib/output.{c,h}): rather than a single
// plugin emitting one flat block of text, a Check aggregates the worst
// state across its top-level Subchecks, and each Subcheck aggregates the
// worst state across its own children, recursively, matching
// mp_compute_check_state/mp_compute_subcheck_state.
package nagios

// CheckOutputEOL is the newline sequence used when assembling multi-line
// check output. Nagios Core/XI has historically treated a bare "\n" within
// $LONGSERVICEOUTPUT$ as a literal two-character sequence rather than a
// line break; a single leading space before the newline avoids that, a
// quirk carried forward unchanged from go-nagios.
const CheckOutputEOL string = " \n"
