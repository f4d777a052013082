package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/recycler/internal/bench"
	"github.com/vango-dev/recycler/internal/errors"
	"github.com/vango-dev/recycler/internal/statsserver"
	"github.com/vango-dev/recycler/pkg/dom/htmldoc"
	"github.com/vango-dev/recycler/pkg/render"
)

func serveCmd(configDir *string) *cobra.Command {
	var (
		addr     string
		workload string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Churn a workload and serve pool metrics",
		Long: `Continuously mount and remove a workload through a pooled renderer
and expose the pool over HTTP:

  /metrics   Prometheus metrics
  /stats     pool stats as JSON
  /stats/ws  live pool stats over WebSocket
  /healthz   liveness

Examples:
  recycler serve
  recycler serve --addr=:8080 --workload=svg --interval=10ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(*configDir)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Metrics.Addr = addr
			}

			w, ok := bench.Lookup(workload)
			if !ok {
				return errors.New("E003").
					WithDetail(fmt.Sprintf("unknown workload %q", workload)).
					WithSuggestion("Available: " + workloadNames())
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			pool := newPool(htmldoc.New(), cfg, logger, reg)
			renderer := render.NewRenderer(pool, render.RendererConfig{Logger: logger})

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			done := make(chan int, 1)
			go func() {
				done <- bench.Churn(ctx, renderer, w, interval)
			}()

			srv := statsserver.New(pool, statsserver.Config{
				Addr:     cfg.Metrics.Addr,
				Gatherer: reg,
				Logger:   logger,
			})
			success("Serving pool stats on %s", cfg.Metrics.Addr)
			info("workload: %s every %s", w.Name, interval)

			err = srv.ListenAndServe(ctx)
			cancel()
			cycles := <-done
			fmt.Println()
			info("%d cycles, hit rate %.1f%%", cycles, pool.Stats().HitRate()*100)
			return err
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from recycler.json)")
	cmd.Flags().StringVarP(&workload, "workload", "w", "list", "Workload to churn ("+workloadNames()+")")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 50*time.Millisecond, "Delay between mount cycles")

	return cmd
}

// churnFor runs w on renderer for d and returns the completed cycles.
func churnFor(ctx context.Context, renderer *render.Renderer, w bench.Workload, d, interval time.Duration) int {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return bench.Churn(ctx, renderer, w, interval)
}
