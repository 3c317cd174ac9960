package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackslice/stackslice/internal/models"
)

func newStatsCmd() *cobra.Command {
	var site string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show current row counts for one site",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := resolveConfig()
			if err != nil {
				return err
			}

			if site != "" {
				cfg.Site = site
			}

			st, closeStore, err := openStore(ctx, cfg, cfg.NewLogger())
			if err != nil {
				return err
			}
			defer closeStore()

			stats, err := st.SiteStats(ctx, cfg.Site)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "%s:\n", cfg.Site)

			for _, spec := range models.Entities {
				fmt.Fprintf(os.Stdout, "  %s: %d\n", spec.Entity, stats[spec.Entity])
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&site, "site", "", "site identifier (default from env/config)")

	return cmd
}
