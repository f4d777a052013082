// Package bench drives mount/unmount churn through the renderer, with and
// without node recycling.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/vango-dev/recycler/internal/report"
	"github.com/vango-dev/recycler/pkg/dom"
	"github.com/vango-dev/recycler/pkg/dom/htmldoc"
	"github.com/vango-dev/recycler/pkg/recycler"
	"github.com/vango-dev/recycler/pkg/render"
	. "github.com/vango-dev/recycler/pkg/vdom"
)

// Workload builds the tree mounted on iteration i.
type Workload struct {
	Name  string
	Build func(i int) *VNode
}

func noop(dom.Event) {}

// Workloads returns the built-in workloads.
func Workloads() []Workload {
	return []Workload{
		{Name: "list", Build: list},
		{Name: "table", Build: table},
		{Name: "form", Build: form},
		{Name: "svg", Build: chart},
	}
}

// Lookup returns the named workload.
func Lookup(name string) (Workload, bool) {
	for _, w := range Workloads() {
		if w.Name == name {
			return w, true
		}
	}
	return Workload{}, false
}

func list(i int) *VNode {
	items := make([]int, 50)
	return Ul(Class("list"),
		Range(items, func(_ int, j int) *VNode {
			return Li(Key(j), Data("row", fmt.Sprint(j)),
				Span(Class("label"), Textf("item %d.%d", i, j)),
				Button(OnClick(noop), "x"),
			)
		}),
	)
}

func table(i int) *VNode {
	rows := make([]*VNode, 20)
	for r := range rows {
		cells := make([]*VNode, 5)
		for c := range cells {
			cells[c] = Td(Textf("%d", i*r+c))
		}
		rows[r] = Tr(cells)
	}
	return Table(Class("grid"), rows)
}

func form(i int) *VNode {
	fields := make([]*VNode, 10)
	for f := range fields {
		fields[f] = Label(
			Textf("field %d", f),
			Input(Type("text"), Value(fmt.Sprint(i)), OnInput(noop), OnChange(noop)),
		)
	}
	return Form(OnSubmit(noop), fields, Comment("end of form"))
}

func chart(i int) *VNode {
	points := make([]*VNode, 30)
	for p := range points {
		points[p] = Circle(Cx(float64(p*10)), Cy(float64((i+p)%100)), R(2), Fill("steelblue"))
	}
	return Svg(ViewBox("0 0 300 100"), points)
}

// Options tune Run.
type Options struct {
	Iterations int
	Pooled     bool
	// PoolOptions are passed to recycler.New when Pooled is set.
	PoolOptions []recycler.Option
}

// Run mounts and discards w's tree opts.Iterations times on a fresh
// document. Pooled runs return every tree to a pool; unpooled runs drop it.
// The returned pool is nil for unpooled runs.
func Run(ctx context.Context, w Workload, opts Options) (report.Run, *recycler.Pool, error) {
	doc := htmldoc.New()
	var poolOpts []recycler.Option
	if opts.Pooled {
		poolOpts = opts.PoolOptions
	}
	pool := recycler.New(doc, poolOpts...)
	r := render.NewRenderer(pool, render.RendererConfig{})

	run := report.Run{
		Name:   w.Name,
		Pooled: opts.Pooled,
		Nodes:  Count(w.Build(0)),
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	for i := 0; i < opts.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return run, nil, err
		}
		root := r.Create(w.Build(i))
		if opts.Pooled {
			r.Remove(root)
		} else {
			doc.Forget(root.Host())
		}
		run.Iterations++
	}

	run.Elapsed = time.Since(start)
	runtime.ReadMemStats(&after)
	run.Allocs = after.Mallocs - before.Mallocs
	run.Bytes = after.TotalAlloc - before.TotalAlloc
	run.Created = doc.Created()

	if !opts.Pooled {
		return run, nil, nil
	}
	return run, pool, nil
}

// Churn mounts and removes w's tree on r every interval until ctx is done.
// A non-positive interval cycles back to back. It returns the number of
// completed cycles.
func Churn(ctx context.Context, r *render.Renderer, w Workload, interval time.Duration) int {
	if interval <= 0 {
		cycles := 0
		for ctx.Err() == nil {
			r.Remove(r.Create(w.Build(cycles)))
			cycles++
		}
		return cycles
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	cycles := 0
	for {
		select {
		case <-ctx.Done():
			return cycles
		case <-ticker.C:
			root := r.Create(w.Build(cycles))
			r.Remove(root)
			cycles++
		}
	}
}
