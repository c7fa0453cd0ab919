// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package statestore implements a durable, per-invocation key/value
// store for plugins that need to remember something between runs (a
// packet sequence counter, a previous counter value for computing a
// rate, a previous timestamp). It is the Go-native equivalent of
// monitoring-plugins' np_state_* functions (lib/utils_base.c in the
// original project; not present under _examples/original_source, so the
// on-disk layout here follows this repository's own spec rather than
// transcribing a kept source file).
//
// Each record is identified by a key derived from the invoking plugin's
// argument vector (so two differently-configured invocations of the same
// plugin never collide) and is written atomically: content lands in a
// temporary file in the same directory, is synced to disk, and is then
// renamed into place, so a crash or concurrent reader never observes a
// half-written record.
package statestore
