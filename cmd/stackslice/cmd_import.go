package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stackslice/stackslice/internal/config"
	"github.com/stackslice/stackslice/internal/importer"
	"github.com/stackslice/stackslice/internal/models"
)

func newImportCmd() *cobra.Command {
	var (
		site         string
		dataDir      string
		batchSize    int
		skipExisting bool
		metricsAddr  string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import one site's dump folder into the store",
		Long: `Import the six dump files (Posts.xml, Users.xml, Comments.xml, Votes.xml,
Tags.xml, Badges.xml) of one site. Missing files are skipped; existing rows
for the site are replaced, so re-running the same import is idempotent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := resolveConfig()
			if err != nil {
				return err
			}

			cfg.Site = site
			if batchSize > 0 {
				cfg.BatchSize = batchSize
			}
			if metricsAddr != "" {
				cfg.MetricsAddr = metricsAddr
			}

			if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
				return fmt.Errorf("data folder does not exist: %s", dataDir)
			}

			log := cfg.NewLogger()

			st, closeStore, err := openStore(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer closeStore()

			if skipExisting {
				sites, err := st.ListSites(ctx)
				if err != nil {
					return err
				}

				for _, s := range sites {
					if s == cfg.Site {
						log.WithField("site", cfg.Site).Info("site already imported, skipping")
						return nil
					}
				}
			}

			im := importer.New(st, log, importer.WithBatchSize(cfg.BatchSize))

			counts, err := runImport(ctx, im, cfg, dataDir)
			printCounts(cfg.Site, counts)

			return err
		},
	}

	cmd.Flags().StringVar(&site, "site", "", "site identifier, e.g. ai.stackexchange.com (required)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "folder containing the dump XML files (required)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "bulk insert threshold (default from env, 1000)")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "skip the import if the site is already present")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the import")
	cmd.MarkFlagRequired("site")     //nolint:errcheck // flag exists.
	cmd.MarkFlagRequired("data-dir") //nolint:errcheck // flag exists.

	return cmd
}

// runImport runs the site import, with the optional metrics listener served
// for the duration of the run.
func runImport(ctx context.Context, im *importer.Importer, cfg *config.Config, dataDir string) (importer.Counts, error) {
	if cfg.MetricsAddr == "" {
		return im.ImportSite(ctx, cfg.Site, dataDir)
	}

	var counts importer.Counts

	err := serveMetricsDuring(ctx, cfg.MetricsAddr, func(ctx context.Context) error {
		var err error
		counts, err = im.ImportSite(ctx, cfg.Site, dataDir)

		return err
	})

	return counts, err
}

func printCounts(site string, counts importer.Counts) {
	if counts == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Import results for %s:\n", site)

	for _, spec := range models.Entities {
		if n, ok := counts[spec.Entity]; ok {
			fmt.Fprintf(os.Stderr, "  %s: %d\n", spec.Entity, n)
		}
	}
}

// serveMetricsDuring runs fn while exposing /metrics on addr, shutting the
// listener down when fn returns.
func serveMetricsDuring(ctx context.Context, addr string, fn func(context.Context) error) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx) //nolint:errcheck // best-effort shutdown.
		}()

		return fn(ctx)
	})

	return g.Wait()
}
