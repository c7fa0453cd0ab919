// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddFlags registers every flag this plugin accepts on cmd, with defaults
// matching the original_source/plugins-root/check_icmp.d/config.h values.
// Called once from cmd/check_icmp at root command construction time.
func AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.IntP(CountFlagLong, "n", defaultCount, countFlagHelp)
	flags.Int(PacketSizeFlagLong, defaultPacketSize, packetSizeFlagHelp)
	flags.Int(TTLFlagLong, defaultTTL, ttlFlagHelp)
	flags.IntP(TimeoutFlagLong, "t", defaultTimeoutSeconds, timeoutFlagHelp)
	flags.Int(PacketIntervalFlagLong, defaultPacketInterval, packetIntervalFlagHelp)
	flags.Int(TargetIntervalFlagLong, defaultTargetInterval, targetIntervalFlagHelp)

	flags.StringP(WarningRTAFlagLong, "w", defaultWarningRTA, warningRTAFlagHelp)
	flags.StringP(CriticalRTAFlagLong, "c", defaultCriticalRTA, criticalRTAFlagHelp)
	flags.String(WarningLossFlagLong, defaultWarningLoss, warningLossFlagHelp)
	flags.String(CriticalLossFlagLong, defaultCriticalLoss, criticalLossFlagHelp)

	flags.String(ModeFlagLong, defaultMode, modeFlagHelp)
	flags.Int(MinHostsAliveFlagLong, defaultMinHostsAlive, minHostsAliveFlagHelp)
	flags.Bool(IPv6FlagLong, defaultIPv6, ipv6FlagHelp)
	flags.String(OutputFormatFlagLong, defaultOutputFormat, outputFormatFlagHelp)

	flags.CountP(VerboseFlagLong, "v", verboseFlagHelp)
	flags.BoolP(VersionFlagLong, "V", defaultDisplayVersion, versionFlagHelp)
}

// handleFlagsConfig copies the flag and positional argument values cobra
// parsed onto cmd into c.
func (c *Config) handleFlagsConfig(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	var err error
	intVal := func(name string) int {
		var v int
		if err == nil {
			v, err = flags.GetInt(name)
		}
		return v
	}
	stringVal := func(name string) string {
		var v string
		if err == nil {
			v, err = flags.GetString(name)
		}
		return v
	}
	boolVal := func(name string) bool {
		var v bool
		if err == nil {
			v, err = flags.GetBool(name)
		}
		return v
	}

	c.Count = intVal(CountFlagLong)
	c.PacketSize = intVal(PacketSizeFlagLong)
	c.TTL = intVal(TTLFlagLong)
	c.timeout = intVal(TimeoutFlagLong)
	c.PacketIntervalMS = intVal(PacketIntervalFlagLong)
	c.TargetIntervalMS = intVal(TargetIntervalFlagLong)
	c.WarningRTA = stringVal(WarningRTAFlagLong)
	c.CriticalRTA = stringVal(CriticalRTAFlagLong)
	c.WarningLoss = stringVal(WarningLossFlagLong)
	c.CriticalLoss = stringVal(CriticalLossFlagLong)
	c.Mode = stringVal(ModeFlagLong)
	c.MinHostsAlive = intVal(MinHostsAliveFlagLong)
	c.IPv6 = boolVal(IPv6FlagLong)
	c.OutputFormat = stringVal(OutputFormatFlagLong)
	c.ShowVersion = boolVal(VersionFlagLong)

	if err != nil {
		return fmt.Errorf("reading flag value: %w", err)
	}

	verboseCount, err := flags.GetCount(VerboseFlagLong)
	if err != nil {
		return fmt.Errorf("reading flag value: %w", err)
	}
	c.LoggingLevel = verbosityToLoggingLevel(verboseCount)

	c.Targets = args

	return nil
}

// verbosityToLoggingLevel maps the number of times -v/--verbose was given
// to a zerolog level name: unset is "warn", one "-v" is "info", two or more
// is "debug".
func verbosityToLoggingLevel(count int) string {
	switch {
	case count >= 2:
		return LogLevelDebug
	case count == 1:
		return LogLevelInfo
	default:
		return LogLevelWarn
	}
}
