package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"capmeter/config"
	"capmeter/host/monitor"
	"capmeter/host/serial"
)

func newMonitorCmd(opts *rootOptions) *cobra.Command {
	var device string
	var baud int

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Read measurements from a meter over serial",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd.ErrOrStderr())

			cfg, err := opts.meterConfig()
			if err != nil {
				return err
			}

			// explicit flags win over CAPMETER_DEVICE / CAPMETER_BAUD
			portCfg := serial.DefaultConfig(device)
			if !cmd.Flags().Changed("device") {
				portCfg.Device = config.Device(device)
			}
			portCfg.Baud = baud
			if !cmd.Flags().Changed("baud") {
				portCfg.Baud = config.Baud(baud)
			}

			port, err := serial.Open(portCfg)
			if err != nil {
				return err
			}
			defer port.Close()
			if err := port.Flush(); err != nil {
				log.Warn().Err(err).Msg("flush failed")
			}

			log.Info().
				Str("device", portCfg.Device).
				Int("baud", portCfg.Baud).
				Float64("r1", cfg.R1).
				Float64("r2", cfg.R2).
				Msg("monitoring")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			// unblock the pending read on interrupt
			go func() {
				<-ctx.Done()
				port.Close()
			}()

			mon := monitor.New(port, cfg)
			err = mon.Run(ctx, func(r monitor.Reading) error {
				log.Debug().Uint32("seq", r.Seq).Uint32("hz", r.Measurement.FrequencyHz).Msg("update")
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d Hz\t%s\n",
					r.Seq, r.Measurement.FrequencyHz, r.Capacitance)
				return err
			}, func(err error) {
				log.Warn().Err(err).Msg("skipped update")
			})
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&device, "device", "d", "/dev/ttyACM0", "serial device path")
	cmd.Flags().IntVarP(&baud, "baud", "b", serial.DefaultBaud, "baud rate (ignored for USB CDC)")
	return cmd
}
