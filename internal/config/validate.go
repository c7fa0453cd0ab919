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

	"github.com/atc0005/check-icmp/internal/icmp"
	"github.com/atc0005/check-icmp/internal/nagios"
	"github.com/atc0005/check-icmp/internal/perfdata"
)

// ErrNoTargets indicates that the user did not provide any hosts to probe.
var ErrNoTargets = errors.New("config: no targets specified")

// validate confirms that the config object is in a valid state after flags
// have been parsed and before it is used to build an icmp.Config.
func (c Config) validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTargets
	}

	if c.Count < 1 {
		return fmt.Errorf("config: %s must be a positive integer, got %d", CountFlagLong, c.Count)
	}

	if c.PacketSize < 0 {
		return fmt.Errorf("config: %s must not be negative, got %d", PacketSizeFlagLong, c.PacketSize)
	}

	if c.timeout < 1 {
		return fmt.Errorf("config: %s must be a positive integer, got %d", TimeoutFlagLong, c.timeout)
	}

	if c.PacketIntervalMS < 0 {
		return fmt.Errorf("config: %s must not be negative, got %d", PacketIntervalFlagLong, c.PacketIntervalMS)
	}

	if c.TargetIntervalMS < 0 {
		return fmt.Errorf("config: %s must not be negative, got %d", TargetIntervalFlagLong, c.TargetIntervalMS)
	}

	if _, err := perfdata.NewThreshold(c.WarningRTA, c.CriticalRTA); err != nil {
		return fmt.Errorf("config: invalid RTA threshold: %w", err)
	}

	if _, err := perfdata.NewThreshold(c.WarningLoss, c.CriticalLoss); err != nil {
		return fmt.Errorf("config: invalid loss threshold: %w", err)
	}

	if _, err := icmp.ParseGroupMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if c.MinHostsAlive < 1 {
		return fmt.Errorf("config: %s must be a positive integer, got %d", MinHostsAliveFlagLong, c.MinHostsAlive)
	}

	if _, err := nagios.ParseOutputFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}
