// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package runcmd executes a child process the way monitoring-plugins'
// np_runcmd (original_source/plugins/popen.c, runcmd.h) does: directly,
// never through a shell, with stdout and stderr captured separately, a
// hard timeout enforced independently of the child's own behavior, a
// scrubbed environment, and disabled core dumps so a crashing child never
// leaves a dump file a monitoring system then has to clean up.
package runcmd
