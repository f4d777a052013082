package htmldoc

import (
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/recycler/pkg/dom"
)

// shortNamespaces maps x/net/html's foreign-content namespaces to URIs.
var shortNamespaces = map[string]string{
	"svg":  dom.NamespaceSVG,
	"math": dom.NamespaceMathML,
}

// Document is an in-memory host document.
type Document struct {
	mu    sync.Mutex
	nodes map[*html.Node]*Node

	created int
}

// New returns an empty document.
func New() *Document {
	return &Document{nodes: make(map[*html.Node]*Node)}
}

// CreateElement creates an HTML element.
func (d *Document) CreateElement(tagName string) dom.Node {
	lower := strings.ToLower(tagName)
	return d.track(&html.Node{
		Type:     html.ElementNode,
		Data:     lower,
		DataAtom: atom.Lookup([]byte(lower)),
	})
}

// CreateElementNS creates an element in namespaceURI. The XHTML namespace
// produces the same node as CreateElement.
func (d *Document) CreateElementNS(namespaceURI, tagName string) dom.Node {
	if namespaceURI == dom.NamespaceHTML || namespaceURI == "" {
		return d.CreateElement(tagName)
	}
	return d.track(&html.Node{
		Type:      html.ElementNode,
		Data:      tagName,
		Namespace: namespaceURI,
	})
}

// CreateTextNode creates a text node.
func (d *Document) CreateTextNode(text string) dom.Node {
	return d.track(&html.Node{Type: html.TextNode, Data: text})
}

// CreateComment creates a comment node.
func (d *Document) CreateComment(text string) dom.Node {
	return d.track(&html.Node{Type: html.CommentNode, Data: text})
}

// Created returns how many nodes the document has allocated.
func (d *Document) Created() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.created
}

// ParseFragment parses s in a <body> context and returns the top-level
// nodes, detached.
func (d *Document) ParseFragment(s string) ([]dom.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	parsed, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return nil, err
	}
	out := make([]dom.Node, 0, len(parsed))
	for _, n := range parsed {
		out = append(out, d.wrap(n))
	}
	return out, nil
}

// Forget drops the wrappers of n and its descendants. Use it when a subtree
// is discarded without being recycled.
func (d *Document) Forget(n dom.Node) {
	hn, ok := n.(*Node)
	if !ok {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	var walk func(*html.Node)
	walk = func(x *html.Node) {
		for c := x.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		delete(d.nodes, x)
	}
	walk(hn.n)
}

// Dispatch fires an event at target: capture listeners from the root down,
// then bubble listeners from the target up.
func (d *Document) Dispatch(target dom.Node, eventType string) {
	t, ok := target.(*Node)
	if !ok {
		return
	}
	var path []*Node
	for x := t.n; x != nil; x = x.Parent {
		path = append(path, d.wrap(x))
	}
	ev := dom.Event{Type: eventType, Target: target}
	for i := len(path) - 1; i >= 0; i-- {
		path[i].fire(ev, true)
	}
	for _, n := range path {
		n.fire(ev, false)
	}
}

// Render serializes n with html.Render.
func Render(w io.Writer, n dom.Node) error {
	hn, ok := n.(*Node)
	if !ok {
		return nil
	}
	return html.Render(w, hn.n)
}

// HTML is Render into a string.
func HTML(n dom.Node) string {
	var sb strings.Builder
	_ = Render(&sb, n)
	return sb.String()
}

func (d *Document) track(n *html.Node) *Node {
	d.mu.Lock()
	d.created++
	d.mu.Unlock()
	return d.wrap(n)
}

func (d *Document) wrap(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if w, ok := d.nodes[n]; ok {
		return w
	}
	w := &Node{doc: d, n: n}
	d.nodes[n] = w
	return w
}
