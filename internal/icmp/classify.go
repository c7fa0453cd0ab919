// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package icmp

import (
	"time"

	"github.com/atc0005/check-icmp/internal/perfdata"
	"github.com/atc0005/check-icmp/internal/svcstate"
)

// classifyTarget evaluates one target's Stats against the configured
// thresholds. A target with zero replies is always Critical regardless
// of threshold configuration: 100% loss is never an acceptable result to
// roll up as a mere warning.
func classifyTarget(cfg Config, stats Stats) svcstate.State {
	if stats.Received == 0 {
		return svcstate.Critical
	}

	rtaState := cfg.RTAThreshold.Classify(perfdata.Float64(msFloat(stats.Avg)))
	lossState := cfg.LossThreshold.Classify(perfdata.Float64(stats.LossPercent))

	return svcstate.Rollup(rtaState, lossState)
}

func msFloat(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// rollupGroup combines every target's per-target State into the overall
// result State according to cfg.Mode, matching the four
// check_icmp_execution_mode semantics in the C original.
func rollupGroup(cfg Config, results []TargetResult) svcstate.State {
	switch cfg.Mode {
	case ModeHostCheck:
		return hostCheckState(cfg, results)
	case ModeAll:
		return allState(results)
	case ModeICMP:
		return icmpGroupState(cfg, results)
	default: // ModeRTA
		return rtaState(results)
	}
}

// rtaState is used for the classic single-target invocation: the
// (typically sole) target's own classification is the result. With
// multiple targets configured under ModeRTA, the worst result wins,
// since there is no group semantics defined for this mode beyond
// "report what happened."
func rtaState(results []TargetResult) svcstate.State {
	states := make([]svcstate.State, len(results))
	for i, r := range results {
		states[i] = r.State
	}
	return svcstate.RollupAll(states)
}

// hostCheckState reports OK once at least cfg.MinHostsAlive targets (1 by
// default) replied at all, regardless of RTA/loss thresholds, and Critical
// otherwise -- a simple up/down check across a host's address set.
func hostCheckState(cfg Config, results []TargetResult) svcstate.State {
	if countAlive(results) >= cfg.MinHostsAlive {
		return svcstate.OK
	}
	return svcstate.Critical
}

// allState requires every target to individually pass; the worst
// per-target classification wins.
func allState(results []TargetResult) svcstate.State {
	return rtaState(results)
}

// icmpGroupState is ModeAll's complement for a group of redundant
// targets (e.g. multiple gateways): the group is healthy as long as
// MinHostsAlive of them are reachable, reporting the best per-target
// classification among the reachable set.
func icmpGroupState(cfg Config, results []TargetResult) svcstate.State {
	if countAlive(results) < cfg.MinHostsAlive {
		return svcstate.Critical
	}

	best := svcstate.Critical
	for _, r := range results {
		if r.Stats.Received == 0 {
			continue
		}
		if rank(r.State) < rank(best) {
			best = r.State
		}
	}
	return best
}

// rank gives OK/Warning/Critical/Unknown a total order for picking the
// "best" state in icmpGroupState, separate from svcstate's Rollup/
// Alternate orderings since it places Unknown (and Dependent) between
// Warning and Critical, where neither of those orderings puts it.
func rank(s svcstate.State) int {
	switch s {
	case svcstate.OK:
		return 0
	case svcstate.Warning:
		return 1
	case svcstate.Critical:
		return 3
	default:
		return 2
	}
}
