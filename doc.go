/*

Go-based tooling to check ICMP reachability of one or more hosts; a
Nagios/Icinga plugin in the spirit of the classic check_icmp, rebuilt
around a raw-socket probe engine, a structured subcheck output tree and a
durable cross-invocation state store.

PROJECT HOME

See our GitHub repo (https://github.com/atc0005/check-icmp) for the latest
code, to file an issue or submit improvements for review and potential
inclusion into the project.

PURPOSE

Send a configurable number of ICMP echo requests to each specified target
and evaluate round-trip time, packet loss and jitter against
warning/critical thresholds.

FEATURES

• Concurrent probing of multiple targets over a single shared raw socket
per address family

• Group evaluation policies: round-trip-average, host-check, all-targets,
ICMP (best-of-group)

• Per-target R-factor/MOS voice-quality estimate and composite health
score, reported as supplemental perfdata

• Nagios plugin API v3-style structured subcheck tree output, with
one-line, multi-line, summary-only and test-JSON rendering

• Durable state store for trend reporting (e.g. RTT delta) across
successive invocations

USAGE

See our main README for supported settings and examples.

*/
package main
