// Package report models benchmark results and stores them.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vango-dev/recycler/pkg/recycler"
)

// Run is one workload measured with or without the pool.
type Run struct {
	Name       string        `json:"name"`
	Pooled     bool          `json:"pooled"`
	Iterations int           `json:"iterations"`
	Nodes      int           `json:"nodesPerTree"`
	Elapsed    time.Duration `json:"elapsedNs"`
	Allocs     uint64        `json:"allocs"`
	Bytes      uint64        `json:"bytes"`
	Created    int           `json:"hostNodesCreated"`
}

// NsPerOp returns the average time per iteration.
func (r Run) NsPerOp() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

// AllocsPerOp returns the average heap allocations per iteration.
func (r Run) AllocsPerOp() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Allocs) / float64(r.Iterations)
}

// Report is the result of a bench invocation.
type Report struct {
	StartedAt time.Time       `json:"startedAt"`
	GoVersion string          `json:"goVersion"`
	Runs      []Run           `json:"runs"`
	Pool      *recycler.Stats `json:"pool,omitempty"`
}

// Name returns the object name the report is stored under.
func (r *Report) Name() string {
	return "recycler-bench-" + r.StartedAt.UTC().Format("20060102T150405Z") + ".json"
}

// JSON encodes the report.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// WriteTable writes a human-readable summary.
func (r *Report) WriteTable(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-24s %-7s %12s %12s %10s\n", "workload", "pooled", "ns/op", "allocs/op", "created")
	for _, run := range r.Runs {
		fmt.Fprintf(&b, "%-24s %-7t %12.0f %12.1f %10d\n",
			run.Name, run.Pooled, run.NsPerOp(), run.AllocsPerOp(), run.Created)
	}
	if r.Pool != nil {
		fmt.Fprintf(&b, "\npool: %d idle, hit rate %.1f%%\n", r.Pool.Idle, r.Pool.HitRate()*100)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
