package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/recycler/internal/bench"
	"github.com/vango-dev/recycler/internal/errors"
	"github.com/vango-dev/recycler/pkg/dom/htmldoc"
	"github.com/vango-dev/recycler/pkg/render"
)

func statsCmd(configDir *string) *cobra.Command {
	var (
		workload string
		duration time.Duration
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Churn a workload briefly and print pool stats as JSON",
		Long: `Run a workload through a pooled renderer for a fixed time and
print the resulting per-bucket pool stats.

Examples:
  recycler stats
  recycler stats --workload=form --duration=2s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(*configDir)
			if err != nil {
				return err
			}
			w, ok := bench.Lookup(workload)
			if !ok {
				return errors.New("E003").
					WithDetail(fmt.Sprintf("unknown workload %q", workload)).
					WithSuggestion("Available: " + workloadNames())
			}

			pool := newPool(htmldoc.New(), cfg, logger, nil)
			renderer := render.NewRenderer(pool, render.RendererConfig{Logger: logger})
			if cycles := churnFor(cmd.Context(), renderer, w, duration, interval); cycles == 0 {
				warn("no cycles completed in %s", duration)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(pool.Stats())
		},
	}

	cmd.Flags().StringVarP(&workload, "workload", "w", "list", "Workload to churn ("+workloadNames()+")")
	cmd.Flags().DurationVarP(&duration, "duration", "d", time.Second, "How long to churn")
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Millisecond, "Delay between mount cycles")

	return cmd
}
