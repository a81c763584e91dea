package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"hexbot/control"

	"github.com/spf13/cobra"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Attach to the game and keep the player in the safest slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			_, mem, field, err := attach(cfg)
			if err != nil {
				return err
			}
			defer mem.Close()

			var status io.Writer = cmd.OutOrStdout()
			if cfg.Quiet {
				status = io.Discard
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			loop := control.NewLoop(field, control.Options{
				Mode:          cfg.Mode,
				Interval:      cfg.Interval,
				PinWorldAngle: cfg.WorldAngle,
				Status:        status,
			})
			return loop.Run(ctx)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.mode, "mode", string(control.Teleport), "movement mode: teleport or steer")
	f.DurationVar(&flags.interval, "interval", control.DefaultInterval, "pause between ticks")
	f.StringVar(&flags.worldAngle, "world-angle", "", "pin the world rotation to this angle every tick")
	f.BoolVar(&flags.quiet, "quiet", false, "do not print a status line per tick")

	return cmd
}
