package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"capmeter/core"
	"capmeter/host/monitor"
	"capmeter/sim"
)

type simulateOptions struct {
	hz     uint64
	phase  uint64
	cycles int
	decode bool
	timing bool
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	so := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the measurement engine on a simulated board",
		Long: `simulate feeds a square wave of --hz transitions per second into a ` +
			`simulated 16-bit counter and runs full measurement cycles. By ` +
			`default it prints the firmware's raw text output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd.ErrOrStderr())

			cfg, err := opts.meterConfig()
			if err != nil {
				return err
			}

			core.SetDebugWriter(func(s string) { log.Debug().Msg(s) })
			core.SetDebugEnabled(opts.verbose)
			core.ClearTimingRing()
			core.SetTimingEnabled(so.timing)

			return runSimulation(cmd.OutOrStdout(), cfg, so, func(r monitor.Reading) {
				log.Info().
					Uint32("cycle", r.Seq).
					Uint32("hz", r.Measurement.FrequencyHz).
					Str("c", r.Capacitance.String()).
					Msg("measured")
			}, func(evt core.TimingEvent) {
				log.Debug().
					Uint8("type", evt.EventType).
					Uint32("seq", evt.Seq).
					Uint32("v1", evt.Value1).
					Uint32("v2", evt.Value2).
					Msg("timing")
			})
		},
	}

	cmd.Flags().Uint64Var(&so.hz, "hz", 1000, "signal frequency in transitions per second")
	cmd.Flags().Uint64Var(&so.phase, "phase", 0, "signal phase in millionths of a period")
	cmd.Flags().IntVarP(&so.cycles, "cycles", "n", 1, "measurement cycles to run")
	cmd.Flags().BoolVar(&so.decode, "decode", false, "print decoded readings instead of raw output")
	cmd.Flags().BoolVar(&so.timing, "timing", false, "log the timing ring after the run")
	return cmd
}

// runSimulation runs so.cycles cycles on a fresh board. Raw firmware output
// goes to out unless so.decode is set, in which case each reading is printed
// as a line; onReading sees every cycle either way.
func runSimulation(out io.Writer, cfg core.Config, so *simulateOptions,
	onReading func(monitor.Reading), onTiming func(core.TimingEvent)) error {
	if so.cycles < 1 {
		return fmt.Errorf("cycles must be at least 1, got %d", so.cycles)
	}

	board := sim.NewBoard(cfg, so.hz)
	board.Signal.SetPhase(so.phase)
	engine := board.NewEngine(cfg)

	if !so.decode {
		engine.SetOutput(out)
		engine.Banner("simulated counter", "")
	}

	for i := 1; i <= so.cycles; i++ {
		m, c := engine.RunCycle()
		r := monitor.Reading{Seq: uint32(i), Measurement: m, Capacitance: c}
		if onReading != nil {
			onReading(r)
		}
		if so.decode {
			if _, err := fmt.Fprintf(out, "%d\t%d Hz\t%s\n", r.Seq, m.FrequencyHz, c); err != nil {
				return err
			}
		}
	}
	if !so.decode {
		fmt.Fprintln(out)
	}

	if so.timing && onTiming != nil {
		for _, evt := range core.TimingEvents() {
			onTiming(evt)
		}
	}
	return nil
}
