package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List the sites present in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := resolveConfig()
			if err != nil {
				return err
			}

			st, closeStore, err := openStore(ctx, cfg, cfg.NewLogger())
			if err != nil {
				return err
			}
			defer closeStore()

			sites, err := st.ListSites(ctx)
			if err != nil {
				return err
			}

			for _, site := range sites {
				fmt.Fprintln(os.Stdout, site)
			}

			return nil
		},
	}
}
