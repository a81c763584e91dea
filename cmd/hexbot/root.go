package main

import (
	"fmt"
	"time"

	"hexbot/config"
	"hexbot/control"
	"hexbot/process"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	envFile    string
	pid        int
	name       string
	mode       string
	interval   time.Duration
	worldAngle string
	quiet      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "hexbot",
		Short:         "Plays Super Hexagon by reading and writing its memory.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.envFile, "env", ".env", "dotenv file with HEXBOT_* settings")
	pf.IntVar(&flags.pid, "pid", 0, "process ID to attach to (skips the name lookup)")
	pf.StringVar(&flags.name, "name", config.DefaultProcessName, "process name to look for")

	root.AddCommand(
		newRunCmd(flags),
		newDumpCmd(flags),
		newReplayCmd(flags),
	)

	return root
}

// load builds the config from the env file and environment, then applies
// every flag the user set explicitly.
func (f *rootFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return config.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("pid") {
		cfg.PID = process.ProcessID(f.pid)
	}
	if changed("name") {
		cfg.ProcessName = f.name
	}
	if changed("mode") {
		mode, err := control.ParseMode(f.mode)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Mode = mode
	}
	if changed("interval") {
		cfg.Interval = f.interval
	}
	if changed("world-angle") {
		angle, err := config.ParseUint(f.worldAngle, 32)
		if err != nil {
			return config.Config{}, fmt.Errorf("--world-angle: %w", err)
		}
		a := uint32(angle)
		cfg.WorldAngle = &a
	}
	if changed("quiet") {
		cfg.Quiet = f.quiet
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
