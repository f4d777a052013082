package dom

// Common namespace URIs.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
)

// Node names reported by text and comment nodes.
const (
	TextNodeName    = "#text"
	CommentNodeName = "#comment"
)

// Document creates host nodes.
type Document interface {
	CreateElement(tagName string) Node
	CreateElementNS(namespaceURI, tagName string) Node
	CreateTextNode(text string) Node
	CreateComment(text string) Node
}

// Node is a host-owned node handle.
type Node interface {
	// NodeName is the canonical name: upper-case tag for HTML elements,
	// the qualified name for namespaced elements, "#text" or "#comment".
	NodeName() string
	NamespaceURI() string

	// NodeValue returns the text payload. ok is false when the node has no
	// payload (elements).
	NodeValue() (value string, ok bool)
	SetNodeValue(value string)

	LastChild() Node
	AppendChild(child Node)
	// InsertBefore inserts child before ref; a nil ref appends.
	InsertBefore(child, ref Node)
	RemoveChild(child Node)
	ParentNode() Node

	Attributes() []Attr
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	// Property and SetProperty access non-attribute properties
	// (node.value, node.checked, ...). A nil value unsets the property.
	Property(name string) any
	SetProperty(name string, value any)

	AddEventListener(event string, l *Listener, capture bool)
	RemoveEventListener(event string, l *Listener, capture bool)

	// Expando is a single slot for a Go value attached by the rendering layer.
	Expando() any
	SetExpando(v any)
}

// Attr is a single attribute.
type Attr struct {
	Name  string
	Value string
}

// Event is what a Listener receives.
type Event struct {
	Type   string
	Target Node
	// Native is the host's own event object, if any.
	Native any
}

// Listener is an event callback with pointer identity.
type Listener struct {
	Handle func(Event)
}

// NewListener wraps fn.
func NewListener(fn func(Event)) *Listener {
	return &Listener{Handle: fn}
}

// Call invokes the callback if it is set.
func (l *Listener) Call(e Event) {
	if l != nil && l.Handle != nil {
		l.Handle(e)
	}
}
