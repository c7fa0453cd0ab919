// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Updated via Makefile builds. Setting placeholder value here so that
// something resembling a version string will be provided for non-Makefile
// builds.
var version = "x.y.z"

// ErrVersionRequested indicates that the user requested application version
// information.
var ErrVersionRequested = errors.New("version information requested")

// AppInfo identifies common details about the plugin provided by this
// project.
type AppInfo struct {
	// Name specifies the public name of this plugin.
	Name string

	// Version specifies the public version of this plugin.
	Version string

	// URL specifies the public repo URL for this plugin.
	URL string
}

// Config represents the application configuration as specified via
// command-line flags.
type Config struct {
	// Targets is the list of hostnames or address literals to probe, taken
	// from the command line's positional arguments.
	Targets []string

	// Count is the number of ICMP echo requests sent to each target.
	Count int

	// PacketSize is the size in bytes of the ICMP payload.
	PacketSize int

	// TTL is the IP time-to-live set on outgoing echo requests.
	TTL int

	// timeout is the overall time budget in seconds for the entire probe
	// run, across every target.
	timeout int

	// PacketIntervalMS is the minimum time in milliseconds between echo
	// requests sent to the same target.
	PacketIntervalMS int

	// TargetIntervalMS is the minimum time in milliseconds between
	// beginning probes of each configured target.
	TargetIntervalMS int

	// WarningRTA is the round-trip-average threshold text (a plain number
	// or a full perfdata range expression) before a WARNING state is
	// triggered.
	WarningRTA string

	// CriticalRTA is the round-trip-average threshold text before a
	// CRITICAL state is triggered.
	CriticalRTA string

	// WarningLoss is the packet-loss-percentage threshold text before a
	// WARNING state is triggered.
	WarningLoss string

	// CriticalLoss is the packet-loss-percentage threshold text before a
	// CRITICAL state is triggered.
	CriticalLoss string

	// Mode selects how per-target results are rolled into the overall
	// result: "rta" (default), "host-check", "all", or "icmp".
	Mode string

	// MinHostsAlive is the minimum number of targets that must respond for
	// the group to be considered reachable in host-check/icmp mode.
	MinHostsAlive int

	// IPv6 resolves and probes targets over IPv6 instead of IPv4.
	IPv6 bool

	// OutputFormat selects the check output rendering: "icingaweb2"
	// (default), "oneline", "summary", or "testjson".
	OutputFormat string

	// LoggingLevel is the supported logging level for this application,
	// derived from how many times -v/--verbose was given.
	LoggingLevel string

	// App represents common details about this plugin.
	App AppInfo

	// Log is an embedded zerolog Logger initialized via config.New().
	Log zerolog.Logger

	// ShowVersion is a flag indicating whether the user opted to display
	// only the version string and then immediately exit the application.
	ShowVersion bool
}

// Timeout converts the user-specified overall timeout value in seconds to
// a time.Duration suitable for use with context.WithTimeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.timeout) * time.Second
}

// PacketInterval converts PacketIntervalMS to a time.Duration.
func (c Config) PacketInterval() time.Duration {
	return time.Duration(c.PacketIntervalMS) * time.Millisecond
}

// TargetInterval converts TargetIntervalMS to a time.Duration.
func (c Config) TargetInterval() time.Duration {
	return time.Duration(c.TargetIntervalMS) * time.Millisecond
}

// Version emits application name, version and repo location.
func Version() string {
	return fmt.Sprintf("%s %s (%s)", myAppName, version, myAppURL)
}

// Branding accepts a message and returns a function that concatenates that
// message with version information. This function is intended to be called
// as a final step before application exit after any other output has
// already been emitted.
func Branding(msg string) func() string {
	return func() string {
		return strings.Join([]string{msg, Version()}, "")
	}
}

// New is a factory function that produces a new Config object based on the
// flag and positional argument values cobra has already parsed onto cmd. It
// is responsible for validating user-provided values and initializing the
// logging settings used by this application.
func New(cmd *cobra.Command, args []string) (*Config, error) {
	var c Config

	if err := c.handleFlagsConfig(cmd, args); err != nil {
		return nil, fmt.Errorf("failed to process flags: %w", err)
	}

	c.App = AppInfo{
		Name:    myAppName,
		Version: version,
		URL:     myAppURL,
	}

	if c.ShowVersion {
		return nil, ErrVersionRequested
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// initialize logging just as soon as validation is complete
	if err := c.setupLogging(); err != nil {
		return nil, fmt.Errorf("failed to set logging configuration: %w", err)
	}

	return &c, nil
}
