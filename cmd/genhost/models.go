package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"genhost/internal/registry"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the model catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			accel, err := resolveAccelerator(cfg)
			if err != nil {
				return err
			}
			models, err := registry.Build(cfg.ModelEntries(accel), cfg.ModelsDir)
			if err != nil {
				return fmt.Errorf("build catalog: %w", err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tKIND\tQUANT\tSIZE")
			for _, m := range models {
				size := "-"
				if m.Path != "" {
					if fi, err := os.Stat(m.Path); err == nil {
						size = humanize.IBytes(uint64(fi.Size()))
					}
				}
				quant := m.Quant
				if quant == "" {
					quant = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.ID, m.Kind, quant, size)
			}
			return tw.Flush()
		},
	}
}
