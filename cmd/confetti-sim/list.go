package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/decker502/confetti/internal/particle"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List effects in the spawner directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := particle.LoadCatalog(spawnerDir)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPOOL\tINTERVAL\tPER BURST\tDURATION")
			for _, name := range catalog.Names() {
				config, _ := catalog.Get(name)
				fmt.Fprintf(tw, "%s\t%d\t%gs\t%d\t%gs\n",
					name, config.PoolCapacity(), config.BurstInterval,
					config.ParticlesPerBurst, config.TotalDuration())
			}
			return tw.Flush()
		},
	}
}
