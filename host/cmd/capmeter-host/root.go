package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"capmeter/config"
	"capmeter/core"
)

type rootOptions struct {
	configPath string
	envFiles   []string
	r1, r2     float64
	verbose    bool
	jsonLog    bool
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "capmeter-host",
		Short: "Host tools for the frequency counter / capacitance meter",
		Long: `capmeter-host reads the meter's serial output and converts each ` +
			`frequency update to a capacitance, or runs the measurement ` +
			`engine against a simulated board.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "JSON meter configuration")
	flags.StringSliceVar(&opts.envFiles, "env", []string{".env"}, "dotenv files with CAPMETER_* settings")
	flags.Float64Var(&opts.r1, "r1", 0, "override oscillator resistor R1 (ohms)")
	flags.Float64Var(&opts.r2, "r2", 0, "override oscillator resistor R2 (ohms)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&opts.jsonLog, "json", false, "log as JSON instead of console text")

	root.AddCommand(newMonitorCmd(opts))
	root.AddCommand(newSimulateCmd(opts))
	return root
}

// logger returns the zerolog logger for this invocation, writing to w
func (o *rootOptions) logger(w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	if !o.jsonLog {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// meterConfig resolves the configuration: defaults, then the JSON file,
// then the environment, then command-line overrides. Only the result is
// validated.
func (o *rootOptions) meterConfig() (core.Config, error) {
	if err := config.LoadEnv(o.envFiles...); err != nil {
		return core.Config{}, err
	}

	cfg := core.DefaultConfig()
	if o.configPath != "" {
		data, err := os.ReadFile(o.configPath)
		if err != nil {
			return core.Config{}, fmt.Errorf("read config: %w", err)
		}
		loaded, err := config.DecodeConfig(data)
		if err != nil {
			return core.Config{}, err
		}
		cfg = *loaded
	}

	if err := config.ApplyEnv(&cfg); err != nil {
		return core.Config{}, err
	}

	if o.r1 != 0 {
		cfg.R1 = o.r1
	}
	if o.r2 != 0 {
		cfg.R2 = o.r2
	}
	return cfg, cfg.Validate()
}
