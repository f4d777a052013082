package htmldoc

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/recycler/pkg/dom"
)

type registration struct {
	event    string
	listener *dom.Listener
	capture  bool
}

// Node wraps an *html.Node.
type Node struct {
	doc       *Document
	n         *html.Node
	props     map[string]any
	listeners []registration
	expando   any
}

var _ dom.Node = (*Node)(nil)

// HTMLNode returns the underlying x/net/html node.
func (n *Node) HTMLNode() *html.Node { return n.n }

// NodeName implements dom.Node.
func (n *Node) NodeName() string {
	switch n.n.Type {
	case html.TextNode:
		return dom.TextNodeName
	case html.CommentNode:
		return dom.CommentNodeName
	case html.DocumentNode:
		return "#document"
	case html.ElementNode:
		if n.n.Namespace == "" {
			return strings.ToUpper(n.n.Data)
		}
		return n.n.Data
	}
	return ""
}

// NamespaceURI implements dom.Node.
func (n *Node) NamespaceURI() string {
	if n.n.Type != html.ElementNode {
		return ""
	}
	if n.n.Namespace == "" {
		return dom.NamespaceHTML
	}
	if uri, ok := shortNamespaces[n.n.Namespace]; ok {
		return uri
	}
	return n.n.Namespace
}

// NodeValue implements dom.Node.
func (n *Node) NodeValue() (string, bool) {
	switch n.n.Type {
	case html.TextNode, html.CommentNode:
		return n.n.Data, true
	}
	return "", false
}

// SetNodeValue implements dom.Node. It is a no-op on elements.
func (n *Node) SetNodeValue(value string) {
	switch n.n.Type {
	case html.TextNode, html.CommentNode:
		n.n.Data = value
	}
}

// LastChild implements dom.Node.
func (n *Node) LastChild() dom.Node {
	if n.n.LastChild == nil {
		return nil
	}
	return n.doc.wrap(n.n.LastChild)
}

// ParentNode implements dom.Node.
func (n *Node) ParentNode() dom.Node {
	if n.n.Parent == nil {
		return nil
	}
	return n.doc.wrap(n.n.Parent)
}

// AppendChild implements dom.Node. Like the browser, a child that already
// has a parent is moved.
func (n *Node) AppendChild(child dom.Node) {
	c := child.(*Node)
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	n.n.AppendChild(c.n)
}

// InsertBefore implements dom.Node.
func (n *Node) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	c := child.(*Node)
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	n.n.InsertBefore(c.n, ref.(*Node).n)
}

// RemoveChild implements dom.Node. It panics if child is not a child of n.
func (n *Node) RemoveChild(child dom.Node) {
	n.n.RemoveChild(child.(*Node).n)
}

// Attributes implements dom.Node.
func (n *Node) Attributes() []dom.Attr {
	if len(n.n.Attr) == 0 {
		return nil
	}
	out := make([]dom.Attr, len(n.n.Attr))
	for i, a := range n.n.Attr {
		out[i] = dom.Attr{Name: a.Key, Value: a.Val}
	}
	return out
}

// SetAttribute implements dom.Node.
func (n *Node) SetAttribute(name, value string) {
	if n.n.Type != html.ElementNode {
		return
	}
	for i := range n.n.Attr {
		if n.n.Attr[i].Key == name {
			n.n.Attr[i].Val = value
			return
		}
	}
	n.n.Attr = append(n.n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute implements dom.Node.
func (n *Node) RemoveAttribute(name string) {
	for i, a := range n.n.Attr {
		if a.Key == name {
			n.n.Attr = append(n.n.Attr[:i], n.n.Attr[i+1:]...)
			return
		}
	}
}

// Property implements dom.Node.
func (n *Node) Property(name string) any {
	return n.props[name]
}

// SetProperty implements dom.Node.
func (n *Node) SetProperty(name string, value any) {
	if value == nil {
		delete(n.props, name)
		return
	}
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = value
}

// Properties returns the number of properties currently set.
func (n *Node) Properties() int { return len(n.props) }

// AddEventListener implements dom.Node. Registering the same
// (event, listener, capture) twice has no effect.
func (n *Node) AddEventListener(event string, l *dom.Listener, capture bool) {
	for _, r := range n.listeners {
		if r.event == event && r.listener == l && r.capture == capture {
			return
		}
	}
	n.listeners = append(n.listeners, registration{event: event, listener: l, capture: capture})
}

// RemoveEventListener implements dom.Node.
func (n *Node) RemoveEventListener(event string, l *dom.Listener, capture bool) {
	for i, r := range n.listeners {
		if r.event == event && r.listener == l && r.capture == capture {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of bound listeners.
func (n *Node) Listeners() int { return len(n.listeners) }

// Expando implements dom.Node.
func (n *Node) Expando() any { return n.expando }

// SetExpando implements dom.Node.
func (n *Node) SetExpando(v any) { n.expando = v }

func (n *Node) fire(ev dom.Event, capture bool) {
	// Copy so a listener may remove itself.
	regs := append([]registration(nil), n.listeners...)
	for _, r := range regs {
		if r.event == ev.Type && r.capture == capture {
			r.listener.Call(ev)
		}
	}
}
