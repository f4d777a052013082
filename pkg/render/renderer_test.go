package render

import (
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/recycler/pkg/dom"
	"github.com/vango-dev/recycler/pkg/dom/htmldoc"
	"github.com/vango-dev/recycler/pkg/recycler"
	. "github.com/vango-dev/recycler/pkg/vdom"
)

func newRenderer(t *testing.T, config RendererConfig) (*Renderer, *htmldoc.Document) {
	t.Helper()
	doc := htmldoc.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	config.Logger = logger
	return NewRenderer(recycler.New(doc, recycler.WithLogger(logger)), config), doc
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{
			name: "text",
			node: Text("hello"),
			want: "hello",
		},
		{
			name: "comment",
			node: Comment("note"),
			want: "<!--note-->",
		},
		{
			name: "element with attributes",
			node: Div(Class("card", "wide"), ID("main")),
			want: `<div class="card wide" id="main"></div>`,
		},
		{
			name: "nested",
			node: Ul(Li("a"), Li("b")),
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "fragment child",
			node: Div(Fragment(Span("x"), "y")),
			want: "<div><span>x</span>y</div>",
		},
		{
			name: "key not rendered",
			node: Li(Key(7), "seven"),
			want: "<li>seven</li>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRenderer(t, RendererConfig{})
			n := r.Create(tt.node)
			if got := htmldoc.HTML(n.Host()); got != tt.want {
				t.Errorf("HTML = %q, want %q", got, tt.want)
			}
			if n.VNode() != nil && n.VNode() != tt.node {
				t.Error("node should be associated with its vnode")
			}
		})
	}
}

func TestCreateNil(t *testing.T) {
	r, _ := newRenderer(t, RendererConfig{})
	if r.Create(nil) != nil {
		t.Error("Create(nil) should return nil")
	}
	if r.Create(Fragment("a")) != nil {
		t.Error("Create(fragment) should return nil")
	}
}

func TestPropsAndEvents(t *testing.T) {
	r, doc := newRenderer(t, RendererConfig{})
	var got string
	n := r.Create(Input(Value("hi"), Checked(true), OnInput(func(e dom.Event) { got = e.Type })))

	host := n.Host()
	if host.Property("value") != "hi" {
		t.Errorf("value = %v, want hi", host.Property("value"))
	}
	if host.Property("checked") != true {
		t.Errorf("checked = %v, want true", host.Property("checked"))
	}
	if len(n.Raws()) != 2 {
		t.Errorf("Raws() = %v, want 2 entries", n.Raws())
	}

	doc.Dispatch(host, "input")
	if got != "input" {
		t.Errorf("event type = %q, want input", got)
	}
}

func TestRemoveRecyclesSubtree(t *testing.T) {
	r, doc := newRenderer(t, RendererConfig{})
	tree := func() *VNode {
		return Div(Class("row"),
			Span("a"),
			Button(OnClick(func(dom.Event) {}), "go"),
		)
	}

	first := r.Create(tree())
	created := doc.Created()
	r.Remove(first)

	second := r.Create(tree())
	if doc.Created() != created {
		t.Errorf("Created() = %d after remount, want %d", doc.Created(), created)
	}
	if second != first {
		t.Error("root should be reused")
	}
	want := `<div class="row"><span>a</span><button>go</button></div>`
	if got := htmldoc.HTML(second.Host()); got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
	if l := second.Host().LastChild().(*htmldoc.Node).Listeners(); l != 1 {
		t.Errorf("button listeners = %d, want 1", l)
	}
}

func TestAppendAndReplace(t *testing.T) {
	r, _ := newRenderer(t, RendererConfig{})
	root := r.Create(Div())

	mounted := r.Append(root, Fragment(P("one"), P("two")))
	if len(mounted) != 2 {
		t.Fatalf("Append returned %d nodes, want 2", len(mounted))
	}

	r.Replace(mounted[0], H2("uno"))
	want := "<div><h2>uno</h2><p>two</p></div>"
	if got := htmldoc.HTML(root.Host()); got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
	if r.Pool().Len("P") != 1 {
		t.Errorf("Len(P) = %d, want 1", r.Pool().Len("P"))
	}
}

func TestReplaceNilOld(t *testing.T) {
	r, _ := newRenderer(t, RendererConfig{})

	n := r.Replace(nil, P("fresh"))
	if n == nil {
		t.Fatal("Replace(nil, v) should still create v")
	}
	if got := htmldoc.HTML(n.Host()); got != "<p>fresh</p>" {
		t.Errorf("HTML = %q, want <p>fresh</p>", got)
	}
	if keys := r.Pool().Keys(); len(keys) != 0 {
		t.Errorf("Keys() = %v, want none collected", keys)
	}
}

func TestSVG(t *testing.T) {
	r, _ := newRenderer(t, RendererConfig{})
	svg := r.Create(Svg(ViewBox("0 0 10 10"), Circle(Cx(5), Cy(5), R(4))))

	if ns, ok := svg.Namespace(); !ok || ns != dom.NamespaceSVG {
		t.Errorf("Namespace() = %q, %v", ns, ok)
	}
	r.Remove(svg)

	if r.Pool().Len("CIRCLE"+dom.NamespaceSVG) != 1 {
		t.Errorf("circle bucket Len = %d, want 1", r.Pool().Len("CIRCLE"+dom.NamespaceSVG))
	}
	again := r.Create(Svg())
	if again != svg {
		t.Error("svg root should be reused")
	}
	if len(again.Host().Attributes()) != 0 {
		t.Error("reused svg should have no attributes")
	}
}

func TestSkipVoidChildren(t *testing.T) {
	r, _ := newRenderer(t, RendererConfig{SkipVoidChildren: true})
	n := r.Create(Input(Span("ignored")))
	if n.Host().LastChild() != nil {
		t.Error("void element should have no children")
	}
}
