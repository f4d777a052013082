package vdom

import "github.com/vango-dev/recycler/pkg/dom"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindComment               // <!-- comment -->
	KindFragment              // Grouping without wrapper
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind                      // Node type
	Tag      string                     // Element tag name (e.g., "div")
	NS       string                     // Namespace URI, empty for HTML
	Key      string                     // Reconciliation key
	Attrs    map[string]string          // Attributes
	Props    map[string]any             // Raw properties
	Events   map[string]func(dom.Event) // Listeners by event name
	Children []*VNode                   // Child nodes
	Text     string                     // For KindText and KindComment
}

// IsInteractive reports whether the node has event handlers.
func (v *VNode) IsInteractive() bool {
	return v != nil && v.Kind == KindElement && len(v.Events) > 0
}

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value string
}

// Prop is a raw property assignment.
type Prop struct {
	Key   string
	Value any
}

// EventHandler binds a callback to an event name.
type EventHandler struct {
	Event   string // "click", "input", etc.
	Handler func(dom.Event)
}

// Count returns the number of nodes in the tree rooted at v, fragments
// excluded.
func Count(v *VNode) int {
	if v == nil {
		return 0
	}
	n := 0
	if v.Kind != KindFragment {
		n = 1
	}
	for _, c := range v.Children {
		n += Count(c)
	}
	return n
}
