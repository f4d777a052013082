package render

import (
	"log/slog"
	"sort"

	"github.com/vango-dev/recycler/pkg/recycler"
	"github.com/vango-dev/recycler/pkg/vdom"
)

// RendererConfig configures the DOM renderer.
type RendererConfig struct {
	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger

	// SkipVoidChildren drops children of void elements (input, br, ...)
	// instead of mounting them.
	SkipVoidChildren bool
}

// Renderer mounts VNode trees through a pool.
type Renderer struct {
	pool   *recycler.Pool
	config RendererConfig
	logger *slog.Logger
}

// NewRenderer creates a new Renderer on pool.
func NewRenderer(pool *recycler.Pool, config RendererConfig) *Renderer {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		pool:   pool,
		config: config,
		logger: logger,
	}
}

// Pool returns the pool the renderer draws from.
func (r *Renderer) Pool() *recycler.Pool { return r.pool }

// Create builds the host subtree for v. It returns nil for nil and
// fragment nodes.
func (r *Renderer) Create(v *vdom.VNode) *recycler.Node {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case vdom.KindText:
		return r.pool.CreateText(v.Text)
	case vdom.KindComment:
		return r.pool.CreateComment(v.Text)
	case vdom.KindElement:
		return r.createElement(v)
	case vdom.KindFragment:
		return nil
	default:
		r.logger.Debug("render: unknown node kind", "kind", v.Kind.String())
		return nil
	}
}

// Append mounts v as the last child(ren) of parent. Fragments are
// flattened. It returns the mounted top-level nodes.
func (r *Renderer) Append(parent *recycler.Node, v *vdom.VNode) []*recycler.Node {
	if v == nil {
		return nil
	}
	if v.Kind == vdom.KindFragment {
		var out []*recycler.Node
		for _, c := range v.Children {
			out = append(out, r.Append(parent, c)...)
		}
		return out
	}
	n := r.Create(v)
	if n == nil {
		return nil
	}
	parent.AppendChild(n)
	return []*recycler.Node{n}
}

// Replace mounts v in place of old and recycles old. A nil old only
// creates v.
func (r *Renderer) Replace(old *recycler.Node, v *vdom.VNode) *recycler.Node {
	n := r.Create(v)
	if old == nil {
		return n
	}
	if n != nil {
		if parent := old.Host().ParentNode(); parent != nil {
			parent.InsertBefore(n.Host(), old.Host())
		}
	}
	r.pool.Collect(old)
	return n
}

// Remove detaches n and returns its subtree to the pool.
func (r *Renderer) Remove(n *recycler.Node) {
	r.pool.Collect(n)
}

func (r *Renderer) createElement(v *vdom.VNode) *recycler.Node {
	var n *recycler.Node
	if v.NS != "" {
		n = r.pool.CreateNS(v.Tag, v.NS)
	} else {
		n = r.pool.Create(v.Tag)
	}
	n.SetVNode(v)

	host := n.Host()
	for _, name := range sortedKeys(v.Attrs) {
		host.SetAttribute(name, v.Attrs[name])
	}
	for _, name := range sortedKeys(v.Props) {
		n.SetRaw(name, v.Props[name])
	}
	for _, event := range sortedKeys(v.Events) {
		n.On(event, v.Events[event])
	}

	if r.config.SkipVoidChildren && v.NS == "" && vdom.IsVoidElement(v.Tag) {
		return n
	}
	for _, c := range v.Children {
		r.Append(n, c)
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
