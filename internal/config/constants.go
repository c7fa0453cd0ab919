// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

const myAppName string = "check-icmp"
const myAppURL string = "https://github.com/atc0005/check-icmp"

// Flag names, long form. Shared between flags.go (registration) and
// logging messages/help text so a rename only happens in one place.
const (
	CountFlagLong          string = "count"
	PacketSizeFlagLong     string = "packet-size"
	TTLFlagLong            string = "ttl"
	TimeoutFlagLong        string = "timeout"
	PacketIntervalFlagLong string = "packet-interval"
	TargetIntervalFlagLong string = "target-interval"
	WarningRTAFlagLong     string = "warning"
	CriticalRTAFlagLong    string = "critical"
	WarningLossFlagLong    string = "warning-loss"
	CriticalLossFlagLong   string = "critical-loss"
	ModeFlagLong           string = "mode"
	MinHostsAliveFlagLong  string = "min-hosts-alive"
	IPv6FlagLong           string = "ipv6"
	OutputFormatFlagLong   string = "output-format"
	VerboseFlagLong        string = "verbose"
	VersionFlagLong        string = "version"
)

const (
	timeoutFlagHelp        string = "Timeout value in seconds allowed before a plugin execution attempt is abandoned and an error returned."
	countFlagHelp          string = "Number of ICMP echo requests to send to each target."
	packetSizeFlagHelp     string = "Size in bytes of the ICMP payload to send, excluding the ICMP and IP headers."
	ttlFlagHelp            string = "IP time-to-live value set on outgoing ICMP echo requests."
	packetIntervalFlagHelp string = "Minimum amount of time in milliseconds between sending each ICMP echo request to a given target."
	targetIntervalFlagHelp string = "Minimum amount of time in milliseconds between beginning probes of each configured target."
	warningRTAFlagHelp     string = "Round-trip average travel time threshold in milliseconds, or a full range expression (e.g. 200 or 100:200), before a WARNING state is triggered."
	criticalRTAFlagHelp    string = "Round-trip average travel time threshold in milliseconds, or a full range expression, before a CRITICAL state is triggered."
	warningLossFlagHelp    string = "Packet loss percentage threshold, or a full range expression, before a WARNING state is triggered."
	criticalLossFlagHelp   string = "Packet loss percentage threshold, or a full range expression, before a CRITICAL state is triggered."
	modeFlagHelp           string = "How per-target results are rolled into the overall result: rta (default), host-check, all, or icmp."
	minHostsAliveFlagHelp  string = "Minimum number of targets that must respond for the group to be considered reachable in host-check/icmp mode."
	ipv6FlagHelp           string = "Resolve and probe targets over IPv6 instead of IPv4."
	outputFormatFlagHelp   string = "Output rendering: icingaweb2 (default), oneline, summary, or testjson."
	verboseFlagHelp        string = "Emit additional troubleshooting detail to stderr. May be repeated (e.g. -vv) for more detail."
	versionFlagHelp        string = "Whether to display application version and then immediately exit application."
)

// Default flag settings if not overridden by user input. Mirrors
// original_source/plugins-root/check_icmp.d/config.h's DEFAULT_* family.
const (
	defaultCount          int     = 5
	defaultPacketSize     int     = 56
	defaultTTL            int     = 64
	defaultTimeoutSeconds int     = 10
	defaultPacketInterval int     = 80
	defaultTargetInterval int     = 0
	defaultWarningRTA     string  = "200"
	defaultCriticalRTA    string  = "500"
	defaultWarningLoss    string  = "40"
	defaultCriticalLoss   string  = "80"
	defaultMode           string  = "rta"
	defaultMinHostsAlive  int     = 1
	defaultIPv6           bool    = false
	defaultOutputFormat   string = "icingaweb2"
	defaultDisplayVersion bool   = false
)

// Supported zerolog logging level labels. Unlike the teacher, this
// plugin has no --log-level flag: level is derived from the repeatable
// -v/--verbose count instead (see verbosityToLoggingLevel in flags.go).
const (
	LogLevelDisabled string = "disabled"
	LogLevelPanic    string = "panic"
	LogLevelFatal    string = "fatal"
	LogLevelError    string = "error"
	LogLevelWarn     string = "warn"
	LogLevelInfo     string = "info"
	LogLevelDebug    string = "debug"
	LogLevelTrace    string = "trace"
)
