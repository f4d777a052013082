package bench

import (
	"context"
	"testing"
	"time"

	"github.com/vango-dev/recycler/pkg/dom/htmldoc"
	"github.com/vango-dev/recycler/pkg/recycler"
	"github.com/vango-dev/recycler/pkg/render"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"list", "table", "form", "svg"} {
		w, ok := Lookup(name)
		if !ok || w.Name != name {
			t.Errorf("Lookup(%q) = %v, %v", name, w.Name, ok)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
}

func TestRunPooledReusesNodes(t *testing.T) {
	for _, w := range Workloads() {
		t.Run(w.Name, func(t *testing.T) {
			pooled, pool, err := Run(context.Background(), w, Options{Iterations: 5, Pooled: true})
			if err != nil {
				t.Fatal(err)
			}
			if pooled.Created != pooled.Nodes {
				t.Errorf("pooled Created = %d, want %d (one tree)", pooled.Created, pooled.Nodes)
			}
			if pool == nil || pool.Stats().Idle != pooled.Nodes {
				t.Errorf("pool should hold one tree of idle nodes")
			}

			plain, _, err := Run(context.Background(), w, Options{Iterations: 5})
			if err != nil {
				t.Fatal(err)
			}
			if plain.Created != 5*plain.Nodes {
				t.Errorf("unpooled Created = %d, want %d", plain.Created, 5*plain.Nodes)
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w, _ := Lookup("list")
	run, _, err := Run(ctx, w, Options{Iterations: 10, Pooled: true})
	if err == nil {
		t.Error("Run() on cancelled context should fail")
	}
	if run.Iterations != 0 {
		t.Errorf("Iterations = %d, want 0", run.Iterations)
	}
}

func TestChurn(t *testing.T) {
	pool := recycler.New(htmldoc.New())
	r := render.NewRenderer(pool, render.RendererConfig{})
	w, _ := Lookup("table")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	cycles := Churn(ctx, r, w, time.Millisecond)

	if cycles == 0 {
		t.Fatal("Churn() ran no cycles")
	}
	if pool.Stats().Hits == 0 && cycles > 1 {
		t.Error("repeated churn should hit the pool")
	}
}

func TestChurnWithoutInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		t.Run(interval.String(), func(t *testing.T) {
			pool := recycler.New(htmldoc.New())
			r := render.NewRenderer(pool, render.RendererConfig{})
			w, _ := Lookup("list")

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			cycles := Churn(ctx, r, w, interval)

			if cycles < 2 {
				t.Fatalf("Churn() = %d cycles, want back-to-back cycles", cycles)
			}
			if pool.Stats().Hits == 0 {
				t.Error("back-to-back churn should hit the pool")
			}
		})
	}
}
