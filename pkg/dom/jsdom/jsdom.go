//go:build js && wasm

// Package jsdom exposes the browser document as a dom.Document.
package jsdom

import (
	"sync"
	"syscall/js"

	"github.com/vango-dev/recycler/pkg/dom"
)

// expandoKey is the property stamped on JS nodes to find their Go state.
const expandoKey = "__recyclerID"

// Document wraps the global document.
type Document struct {
	v js.Value

	mu     sync.Mutex
	nextID int
	state  map[int]*nodeState
}

type nodeState struct {
	expando any
	funcs   map[registration]js.Func
}

type registration struct {
	event    string
	listener *dom.Listener
	capture  bool
}

// New wraps globalThis.document.
func New() *Document {
	return Wrap(js.Global().Get("document"))
}

// Wrap wraps an arbitrary document object.
func Wrap(doc js.Value) *Document {
	return &Document{v: doc, state: make(map[int]*nodeState)}
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tagName string) dom.Node {
	return d.node(d.v.Call("createElement", tagName))
}

// CreateElementNS implements dom.Document.
func (d *Document) CreateElementNS(namespaceURI, tagName string) dom.Node {
	return d.node(d.v.Call("createElementNS", namespaceURI, tagName))
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	return d.node(d.v.Call("createTextNode", text))
}

// CreateComment implements dom.Document.
func (d *Document) CreateComment(text string) dom.Node {
	return d.node(d.v.Call("createComment", text))
}

// Node returns the dom.Node for an existing JS node.
func (d *Document) Node(v js.Value) dom.Node {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return d.node(v)
}

func (d *Document) node(v js.Value) *Node {
	return &Node{doc: d, v: v}
}

// Forget drops the Go-side state of n and its descendants and releases
// any listener funcs still bound to them.
func (d *Document) Forget(n dom.Node) {
	jn, ok := n.(*Node)
	if !ok {
		return
	}

	type bound struct {
		v   js.Value
		reg registration
		fn  js.Func
	}
	var funcs []bound

	d.mu.Lock()
	var walk func(js.Value)
	walk = func(v js.Value) {
		if kids := v.Get("childNodes"); kids.Type() == js.TypeObject {
			for i := 0; i < kids.Length(); i++ {
				walk(kids.Index(i))
			}
		}
		id := v.Get(expandoKey)
		if id.Type() != js.TypeNumber {
			return
		}
		if st, ok := d.state[id.Int()]; ok {
			for reg, fn := range st.funcs {
				funcs = append(funcs, bound{v: v, reg: reg, fn: fn})
			}
			delete(d.state, id.Int())
		}
		v.Delete(expandoKey)
	}
	walk(jn.v)
	d.mu.Unlock()

	for _, b := range funcs {
		b.v.Call("removeEventListener", b.reg.event, b.fn, b.reg.capture)
		b.fn.Release()
	}
}

// Tracked returns how many JS nodes carry Go-side state.
func (d *Document) Tracked() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.state)
}

// stateOf returns the Go-side state of v, creating it when create is set.
func (d *Document) stateOf(v js.Value, create bool) *nodeState {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := v.Get(expandoKey)
	if id.Type() == js.TypeNumber {
		if st, ok := d.state[id.Int()]; ok {
			return st
		}
	}
	if !create {
		return nil
	}
	d.nextID++
	v.Set(expandoKey, d.nextID)
	st := &nodeState{}
	d.state[d.nextID] = st
	return st
}

// Node is a JS DOM node.
type Node struct {
	doc *Document
	v   js.Value
}

var _ dom.Node = (*Node)(nil)

// Value returns the underlying JS value.
func (n *Node) Value() js.Value { return n.v }

// NodeName implements dom.Node.
func (n *Node) NodeName() string { return n.v.Get("nodeName").String() }

// NamespaceURI implements dom.Node.
func (n *Node) NamespaceURI() string {
	ns := n.v.Get("namespaceURI")
	if ns.IsNull() || ns.IsUndefined() {
		return ""
	}
	return ns.String()
}

// NodeValue implements dom.Node.
func (n *Node) NodeValue() (string, bool) {
	v := n.v.Get("nodeValue")
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

// SetNodeValue implements dom.Node.
func (n *Node) SetNodeValue(value string) { n.v.Set("nodeValue", value) }

// LastChild implements dom.Node.
func (n *Node) LastChild() dom.Node { return n.doc.Node(n.v.Get("lastChild")) }

// ParentNode implements dom.Node.
func (n *Node) ParentNode() dom.Node { return n.doc.Node(n.v.Get("parentNode")) }

// AppendChild implements dom.Node.
func (n *Node) AppendChild(child dom.Node) { n.v.Call("appendChild", child.(*Node).v) }

// InsertBefore implements dom.Node.
func (n *Node) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		n.AppendChild(child)
		return
	}
	n.v.Call("insertBefore", child.(*Node).v, ref.(*Node).v)
}

// RemoveChild implements dom.Node.
func (n *Node) RemoveChild(child dom.Node) { n.v.Call("removeChild", child.(*Node).v) }

// Attributes implements dom.Node.
func (n *Node) Attributes() []dom.Attr {
	attrs := n.v.Get("attributes")
	if attrs.IsUndefined() || attrs.IsNull() {
		return nil
	}
	size := attrs.Length()
	out := make([]dom.Attr, size)
	for i := 0; i < size; i++ {
		a := attrs.Index(i)
		out[i] = dom.Attr{Name: a.Get("name").String(), Value: a.Get("value").String()}
	}
	return out
}

// SetAttribute implements dom.Node.
func (n *Node) SetAttribute(name, value string) { n.v.Call("setAttribute", name, value) }

// RemoveAttribute implements dom.Node.
func (n *Node) RemoveAttribute(name string) { n.v.Call("removeAttribute", name) }

// Property implements dom.Node.
func (n *Node) Property(name string) any {
	v := n.v.Get(name)
	switch v.Type() {
	case js.TypeUndefined, js.TypeNull:
		return nil
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float()
	case js.TypeString:
		return v.String()
	}
	return v
}

// SetProperty implements dom.Node.
func (n *Node) SetProperty(name string, value any) {
	if value == nil {
		n.v.Set(name, js.Undefined())
		return
	}
	n.v.Set(name, value)
}

// AddEventListener implements dom.Node.
func (n *Node) AddEventListener(event string, l *dom.Listener, capture bool) {
	st := n.doc.stateOf(n.v, true)
	n.doc.mu.Lock()
	if st.funcs == nil {
		st.funcs = make(map[registration]js.Func)
	}
	key := registration{event: event, listener: l, capture: capture}
	fn, ok := st.funcs[key]
	if !ok {
		fn = js.FuncOf(func(this js.Value, args []js.Value) any {
			ev := dom.Event{Target: n}
			if len(args) > 0 {
				ev.Type = args[0].Get("type").String()
				ev.Native = args[0]
			}
			l.Call(ev)
			return nil
		})
		st.funcs[key] = fn
	}
	n.doc.mu.Unlock()
	if ok {
		return
	}
	n.v.Call("addEventListener", event, fn, capture)
}

// RemoveEventListener implements dom.Node and releases the js.Func.
func (n *Node) RemoveEventListener(event string, l *dom.Listener, capture bool) {
	st := n.doc.stateOf(n.v, false)
	if st == nil {
		return
	}
	n.doc.mu.Lock()
	key := registration{event: event, listener: l, capture: capture}
	fn, ok := st.funcs[key]
	if ok {
		delete(st.funcs, key)
	}
	n.doc.mu.Unlock()
	if !ok {
		return
	}
	n.v.Call("removeEventListener", event, fn, capture)
	fn.Release()
}

// Expando implements dom.Node.
func (n *Node) Expando() any {
	st := n.doc.stateOf(n.v, false)
	if st == nil {
		return nil
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	return st.expando
}

// SetExpando implements dom.Node.
func (n *Node) SetExpando(v any) {
	st := n.doc.stateOf(n.v, true)
	n.doc.mu.Lock()
	st.expando = v
	n.doc.mu.Unlock()
}
