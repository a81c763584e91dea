package main

import (
	"fmt"

	"hexbot/config"
	"hexbot/control"
	"hexbot/decide"
	"hexbot/hexagon"
	"hexbot/hexdump"
	"hexbot/process"
	"hexbot/process_blob"

	"github.com/spf13/cobra"
)

func newReplayCmd(flags *rootFlags) *cobra.Command {
	var (
		from    string
		showHex bool
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Run the decision on a saved dump and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.envFile)
			if err != nil {
				return err
			}

			dump := process_blob.NewProcessDump()
			if err := dump.Load(from); err != nil {
				return err
			}
			defer dump.Close()

			field, err := hexagon.NewPlayfield(dump, cfg.Layout)
			if err != nil {
				return err
			}

			snap, err := field.Snapshot()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Dump of %q (pid %d): %d slots, %d walls\n", dump.Name, dump.GetPID(), snap.NumSlots, len(snap.Walls))

			if showHex && len(snap.Walls) > 0 {
				layout := field.Layout()
				addr := field.Base().Add(layout.FirstWall)
				raw, err := dump.ReadMemory(addr, process.ProcessMemorySize(len(snap.Walls))*hexagon.WallSize)
				if err != nil {
					return err
				}
				hexdump.DumpToWriter(w, raw, hexdump.RecordOptions(uint64(addr), 4, 4, 1, 3, 4, 4))
				fmt.Fprintln(w)
			}

			d, ok := decide.Decide(snap.NumSlots, snap.Walls)
			if !ok {
				fmt.Fprintln(w, "No walls, nothing to decide")
				return nil
			}

			if err := d.WriteTable(w, nil); err != nil {
				return err
			}
			fmt.Fprintf(w, "Target slot %d, angle %d\n", d.Slot, control.AngleForSlot(d.Slot, snap.NumSlots))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "dump directory written by the dump command")
	cmd.Flags().BoolVar(&showHex, "hexdump", false, "print the raw wall records")
	cmd.MarkFlagRequired("from")

	return cmd
}
