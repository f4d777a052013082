package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/recycler/internal/bench"
	"github.com/vango-dev/recycler/internal/config"
	"github.com/vango-dev/recycler/internal/errors"
	"github.com/vango-dev/recycler/internal/report"
)

func benchCmd(configDir *string) *cobra.Command {
	var (
		workload   string
		iterations int
		pooledOnly bool
		upload     bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure mount/unmount churn with and without the pool",
		Long: `Mount and discard generated trees on an in-memory document and
compare time, allocations and host nodes created with and without
node recycling.

If report.store is set in recycler.json the report is uploaded as JSON.

Examples:
  recycler bench
  recycler bench --workload=table --iterations=5000
  recycler bench --pooled --upload=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(*configDir)
			if err != nil {
				return err
			}

			workloads := bench.Workloads()
			if workload != "" {
				w, ok := bench.Lookup(workload)
				if !ok {
					return errors.New("E003").
						WithDetail(fmt.Sprintf("unknown workload %q", workload)).
						WithSuggestion("Available: " + workloadNames())
				}
				workloads = []bench.Workload{w}
			}

			rep := &report.Report{
				StartedAt: time.Now(),
				GoVersion: runtime.Version(),
			}
			ctx := cmd.Context()
			for _, w := range workloads {
				modes := []bool{false, true}
				if pooledOnly {
					modes = []bool{true}
				}
				for _, pooled := range modes {
					run, pool, err := bench.Run(ctx, w, bench.Options{
						Iterations:  iterations,
						Pooled:      pooled,
						PoolOptions: poolOptions(cfg, logger, nil),
					})
					if err != nil {
						return err
					}
					rep.Runs = append(rep.Runs, run)
					if pool != nil {
						stats := pool.Stats()
						rep.Pool = &stats
					}
				}
			}

			fmt.Println()
			if err := rep.WriteTable(os.Stdout); err != nil {
				return err
			}
			fmt.Println()

			if upload && cfg.Report.Store != "" {
				return uploadReport(ctx, cfg, rep)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workload, "workload", "w", "", "Run a single workload ("+workloadNames()+")")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 1000, "Trees mounted per run")
	cmd.Flags().BoolVar(&pooledOnly, "pooled", false, "Skip the unpooled baseline")
	cmd.Flags().BoolVar(&upload, "upload", true, "Upload the report to report.store")

	return cmd
}

func uploadReport(ctx context.Context, cfg *config.Config, rep *report.Report) error {
	store, err := report.OpenStore(cfg.Report.Store, cfg.Report.Region)
	if err != nil {
		return err
	}
	if err := report.Save(ctx, store, rep); err != nil {
		return err
	}
	success("Uploaded %s", rep.Name())
	info("store: %s", cfg.Report.Store)
	return nil
}

func workloadNames() string {
	var names []string
	for _, w := range bench.Workloads() {
		names = append(names, w.Name)
	}
	return strings.Join(names, ", ")
}
