/*

Nagios plugin used to check the reachability, round-trip time and packet
loss of one or more hosts via ICMP echo requests.

PURPOSE

Send a configurable number of ICMP echo requests to each specified target
and evaluate the resulting round-trip-average time and packet loss
percentage against warning/critical thresholds. Multiple targets may be
combined into a single check using one of several group policies
(rta, host-check, all, icmp).

The output for this plugin is designed to provide the one-line summary
needed by Nagios for quick identification of a problem while providing a
longer, subcheck-structured breakdown per target plus attached
performance data for graphing.

PROJECT HOME

See our GitHub repo (https://github.com/atc0005/check-icmp) for the latest
code, to file an issue or submit improvements for review and potential
inclusion into the project.

USAGE

See our main README for supported settings and examples.

*/
package main
