// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package icmp implements the reachability engine: it sends ICMP echo
// requests to one or more targets, collects round-trip-time samples,
// derives packet loss and jitter, and classifies the result against
// configured thresholds.
//
// It is the Go-native successor of
// original_source/plugins-root/check_icmp.d/check_icmp_helpers.{c,h}: a
// single-threaded cooperative scheduler (here, one goroutine per target
// feeding a shared result collector rather than the original's manual
// event loop over file descriptors) driving either a privileged raw ICMP
// socket or an unprivileged "ping" datagram socket, built on
// golang.org/x/net/icmp + ipv4 + ipv6 for packet marshaling, as seen in
// _examples/other_examples/b116befc_akramer-vaportrail__internal-probe-probe.go.go.
package icmp
