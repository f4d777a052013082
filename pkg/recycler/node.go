package recycler

import (
	"strings"

	"github.com/vango-dev/recycler/pkg/dom"
	"github.com/vango-dev/recycler/pkg/vdom"
)

// marker is pool bookkeeping. It survives every pool cycle.
type marker struct {
	ns    string
	hasNS bool
	idle  bool
}

type binding struct {
	listener *dom.Listener
	capture  bool
}

// Node is a host node plus the rendering state attached to it.
type Node struct {
	host   dom.Node
	marker marker

	vnode  *vdom.VNode
	raws   []string
	events map[string]binding
	state  map[string]any
}

// NodeOf returns the Node attached to host, attaching a bare one if the
// host node was not created through a Pool.
func NodeOf(host dom.Node) *Node {
	if host == nil {
		return nil
	}
	if n, ok := host.Expando().(*Node); ok {
		return n
	}
	return attach(host, marker{})
}

func attach(host dom.Node, m marker) *Node {
	n := &Node{host: host, marker: m}
	host.SetExpando(n)
	return n
}

// Host returns the underlying host node.
func (n *Node) Host() dom.Node { return n.host }

// Namespace returns the namespace the node was created with through
// CreateNS.
func (n *Node) Namespace() (string, bool) { return n.marker.ns, n.marker.hasNS }

// Key returns the bucket the node is filed under when collected. Namespaced
// nodes use the namespace they were created with, which is the key CreateNS
// looks up; hosts may report a different URI (XHTML for "").
func (n *Node) Key() string {
	if n.marker.hasNS {
		return strings.ToUpper(n.host.NodeName()) + n.marker.ns
	}
	return n.host.NodeName()
}

// VNode returns the associated virtual node.
func (n *Node) VNode() *vdom.VNode { return n.vnode }

// SetVNode associates a virtual node.
func (n *Node) SetVNode(v *vdom.VNode) { n.vnode = v }

// SetRaw sets a raw property on the host and records its name so Collect
// can unset it.
func (n *Node) SetRaw(name string, value any) {
	n.host.SetProperty(name, value)
	for _, r := range n.raws {
		if r == name {
			return
		}
	}
	n.raws = append(n.raws, name)
}

// Raws returns the recorded raw property names.
func (n *Node) Raws() []string { return n.raws }

// On binds fn to event, replacing any listener the node already has for it.
func (n *Node) On(event string, fn func(dom.Event)) *dom.Listener {
	n.Off(event)
	l := dom.NewListener(fn)
	n.host.AddEventListener(event, l, false)
	if n.events == nil {
		n.events = make(map[string]binding)
	}
	n.events[event] = binding{listener: l}
	return l
}

// Off removes the listener bound to event.
func (n *Node) Off(event string) {
	b, ok := n.events[event]
	if !ok {
		return
	}
	n.host.RemoveEventListener(event, b.listener, b.capture)
	delete(n.events, event)
}

// Listener returns the listener bound to event.
func (n *Node) Listener(event string) *dom.Listener {
	return n.events[event].listener
}

// Events returns how many events have a bound listener.
func (n *Node) Events() int { return len(n.events) }

// Set attaches application state to the node. It is dropped on Collect.
func (n *Node) Set(key string, value any) {
	if n.state == nil {
		n.state = make(map[string]any)
	}
	n.state[key] = value
}

// Get returns application state set with Set.
func (n *Node) Get(key string) any { return n.state[key] }

// AppendChild appends child to the host node.
func (n *Node) AppendChild(child *Node) { n.host.AppendChild(child.host) }

// reset strips everything but the marker.
func (n *Node) reset() {
	host := n.host
	attrs := host.Attributes()
	for i := len(attrs) - 1; i >= 0; i-- {
		host.RemoveAttribute(attrs[i].Name)
	}
	n.vnode = nil
	if n.raws != nil {
		for _, raw := range n.raws {
			host.SetProperty(raw, nil)
		}
		n.raws = nil
	}
	if n.events != nil {
		for event, b := range n.events {
			host.RemoveEventListener(event, b.listener, b.capture)
		}
		n.events = nil
	}
	if v, ok := host.NodeValue(); ok && v != "" {
		host.SetNodeValue("")
	}
	n.state = nil
}
