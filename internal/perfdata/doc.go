// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package perfdata implements the typed numeric value, range grammar and
// threshold evaluation shared by every probe built on this core.
//
// It is the Go-native successor of the C original's lib/perfdata.{c,h} and
// lib/thresholds.{c,h} (see _examples/original_source), generalized from a
// single double-precision range type to a tagged union over signed,
// unsigned and floating point values so that counters (packet counts,
// byte counters) do not need to round-trip through a float.
package perfdata
