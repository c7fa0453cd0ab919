// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	zlog "github.com/rs/zerolog/log"

	"github.com/atc0005/check-icmp/internal/config"
	"github.com/atc0005/check-icmp/internal/icmp"
	"github.com/atc0005/check-icmp/internal/nagios"
	"github.com/atc0005/check-icmp/internal/perfdata"
	"github.com/atc0005/check-icmp/internal/statestore"
	"github.com/atc0005/check-icmp/internal/svcstate"
)

// stateStoreDataVersion is bumped whenever the payload format written by
// recordAndCompareTrend changes shape, invalidating any record written by
// an older build.
const stateStoreDataVersion = 1

func main() {
	check := nagios.NewCheck("check_icmp")

	root := &cobra.Command{
		Use:           "check_icmp [flags] HOST [HOST ...]",
		Short:         "Check host reachability, round-trip time and packet loss via ICMP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &check)
		},
	}
	config.AddFlags(root)

	// defer this from the start so it is the last deferred function to
	// run, even if run() panics.
	defer check.Exit()

	if err := root.Execute(); err != nil {
		if errors.Is(err, config.ErrVersionRequested) {
			fmt.Println(config.Version())
			os.Exit(0)
		}

		sc := nagios.NewSubcheck("initialization")
		sc = sc.SetState(svcstate.Critical)
		sc.Output = err.Error()
		_ = check.AddSubcheck(sc)
	}
}

func run(cmd *cobra.Command, args []string, check *nagios.Check) error {
	cfg, cfgErr := config.New(cmd, args)
	if cfgErr != nil {
		return cfgErr
	}

	check.Format = outputFormatOrDefault(cfg.OutputFormat)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	engineCfg := buildEngineConfig(*cfg)

	zlog.Debug().
		Strs("targets", cfg.Targets).
		Str("mode", cfg.Mode).
		Msg("starting probe run")

	result, runErr := icmp.Run(ctx, engineCfg)
	if runErr != nil {
		sc := nagios.NewSubcheck("probe")
		sc = sc.SetState(svcstate.Unknown)
		sc.Output = fmt.Sprintf("unable to complete probe run: %s", runErr)
		return check.AddSubcheck(sc)
	}

	store, storeErr := statestore.Open("check_icmp", stateStoreDataVersion)

	for _, tr := range result.Targets {
		sc, err := targetSubcheck(store, storeErr, tr)
		if err != nil {
			return err
		}
		if err := check.AddSubcheck(sc); err != nil {
			return err
		}
	}

	check.SetSummary(fmt.Sprintf(
		"%d/%d targets reachable (mode=%s)",
		result.AliveCount, len(result.Targets), cfg.Mode,
	))

	return nil
}

func buildEngineConfig(cfg config.Config) icmp.Config {
	hosts := make([]icmp.Host, len(cfg.Targets))
	for i, name := range cfg.Targets {
		hosts[i] = icmp.Host{Name: name}
	}

	ec := icmp.NewConfig(hosts)
	ec.Count = cfg.Count
	ec.PacketSize = cfg.PacketSize
	ec.TTL = cfg.TTL
	ec.Timeout = cfg.Timeout()
	ec.PacketInterval = cfg.PacketInterval()
	ec.TargetInterval = cfg.TargetInterval()
	ec.MinHostsAlive = cfg.MinHostsAlive
	ec.IPv6 = cfg.IPv6

	if mode, err := icmp.ParseGroupMode(cfg.Mode); err == nil {
		ec.Mode = mode
	}
	if th, err := perfdata.NewThreshold(cfg.WarningRTA, cfg.CriticalRTA); err == nil {
		ec.RTAThreshold = th
	}
	if th, err := perfdata.NewThreshold(cfg.WarningLoss, cfg.CriticalLoss); err == nil {
		ec.LossThreshold = th
	}

	return ec
}

func outputFormatOrDefault(s string) nagios.OutputFormat {
	format, err := nagios.ParseOutputFormat(s)
	if err != nil {
		return nagios.IcingaWeb2
	}
	return format
}

// targetSubcheck builds one target's Subcheck, including perfdata for rta,
// loss, jitter, MOS and the composite score, plus a trend note derived from
// the previous run's recorded average RTT when a state store is available.
func targetSubcheck(store *statestore.Store, storeErr error, tr icmp.TargetResult) (nagios.Subcheck, error) {
	sc := nagios.NewSubcheck(tr.Target.String())
	sc = sc.SetState(tr.State)

	sc.Output = fmt.Sprintf(
		"rta=%.3fms loss=%.1f%%",
		msFloatPublic(tr.Stats), tr.Stats.LossPercent,
	)

	perfEntries := []perfdata.PerformanceData{
		{Label: "rta", Value: perfdata.Float64(msFloatPublic(tr.Stats)), UnitOfMeasurement: "ms"},
		{Label: "pl", Value: perfdata.Float64(tr.Stats.LossPercent), UnitOfMeasurement: "%"},
		{Label: "jitter", Value: perfdata.Float64(float64(tr.Stats.Jitter.Microseconds()) / 1000), UnitOfMeasurement: "ms"},
		{Label: "mos", Value: perfdata.Float64(tr.Stats.MOS)},
		{Label: "score", Value: perfdata.Float64(tr.Stats.CompositeScore)},
	}
	for _, pd := range perfEntries {
		if err := sc.AddPerfData(pd); err != nil {
			return nagios.Subcheck{}, fmt.Errorf("add perfdata: %w", err)
		}
	}

	if storeErr == nil {
		if trend := recordAndCompareTrend(store, tr); trend != "" {
			sc.Output = strings.TrimSpace(sc.Output + " " + trend)
		}
	}

	return sc, nil
}

// recordAndCompareTrend reads the previous run's recorded average RTT for
// this exact target (keyed by its argv-equivalent identity), compares it to
// the current run, writes the new value back, and returns a short
// human-readable trend note, or "" if no prior record exists.
func recordAndCompareTrend(store *statestore.Store, tr icmp.TargetResult) string {
	key := statestore.Key([]string{"rta", tr.Target.String()})

	note := ""
	if prev, err := store.Read(key); err == nil {
		var prevMS float64
		if _, scanErr := fmt.Sscanf(prev.Payload, "%f", &prevMS); scanErr == nil {
			delta := msFloatPublic(tr.Stats) - prevMS
			note = fmt.Sprintf("(%+.3fms vs last run)", delta)
		}
	}

	payload := fmt.Sprintf("%f", msFloatPublic(tr.Stats))
	_ = store.Write(key, payload)

	return note
}

func msFloatPublic(s icmp.Stats) float64 {
	return float64(s.Avg.Microseconds()) / 1000
}
