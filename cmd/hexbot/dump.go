package main

import (
	"fmt"
	"path/filepath"
	"time"

	"hexbot/process/memory_map"
	"hexbot/process_blob"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
)

func newDumpCmd(flags *rootFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Save the base pointer and the playfield of the running game to a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			info, mem, field, err := attach(cfg)
			if err != nil {
				return err
			}
			defer mem.Close()

			if out == "" {
				out = filepath.Join("dumps", fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), xid.New().String()))
			}

			layout := field.Layout()
			regions := mergeRegions([]memory_map.MemoryMapItem{
				{Address: uint64(layout.BasePointer), Size: uint(layout.PointerSize), Perms: "rw-p"},
				{Address: uint64(field.Base()), Size: uint(layout.Span()), Perms: "rw-p"},
			})

			if err := process_blob.SaveDump(out, mem, info.Name, regions); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d regions of process %d to %s\n", len(regions), info.PID, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output directory (default dumps/<time>-<id>)")
	return cmd
}

// mergeRegions sorts regions and joins the ones that overlap or touch, so
// every byte is saved once.
func mergeRegions(regions []memory_map.MemoryMapItem) []memory_map.MemoryMapItem {
	sorted := make([]memory_map.MemoryMapItem, len(regions))
	copy(sorted, regions)
	memory_map.Sort(sorted)

	var merged []memory_map.MemoryMapItem
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.Address <= merged[n-1].End() {
			last := &merged[n-1]
			if r.End() > last.End() {
				last.Size = uint(r.End() - last.Address)
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
