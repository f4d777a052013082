package vdom

import "github.com/vango-dev/recycler/pkg/dom"

// NamespaceSVG is the SVG namespace URI.
const NamespaceSVG = dom.NamespaceSVG

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an HTML element.
// Arguments can be: nil, Attr, []Attr, Prop, EventHandler, *VNode, []*VNode, string.
func El(tag string, args ...any) *VNode {
	return createElement(tag, "", args)
}

// ElNS creates an element in the given namespace.
func ElNS(ns, tag string, args ...any) *VNode {
	return createElement(tag, ns, args)
}

func createElement(tag, ns string, args []any) *VNode {
	node := &VNode{
		Kind: KindElement,
		Tag:  tag,
		NS:   ns,
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case Attr:
			node.setAttr(v)

		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}

		case Prop:
			if v.Key == "" {
				continue
			}
			if node.Props == nil {
				node.Props = make(map[string]any)
			}
			node.Props[v.Key] = v.Value

		case EventHandler:
			if v.Event == "" || v.Handler == nil {
				continue
			}
			if node.Events == nil {
				node.Events = make(map[string]func(dom.Event))
			}
			node.Events[v.Event] = v.Handler

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

func (v *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		v.Key = a.Value
		return
	}
	if v.Attrs == nil {
		v.Attrs = make(map[string]string)
	}
	v.Attrs[a.Key] = a.Value
}

// Content sectioning elements

func Header(args ...any) *VNode  { return El("header", args...) }
func Footer(args ...any) *VNode  { return El("footer", args...) }
func Main(args ...any) *VNode    { return El("main", args...) }
func Nav(args ...any) *VNode     { return El("nav", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
func H1(args ...any) *VNode      { return El("h1", args...) }
func H2(args ...any) *VNode      { return El("h2", args...) }

// Text content elements

func Div(args ...any) *VNode  { return El("div", args...) }
func P(args ...any) *VNode    { return El("p", args...) }
func Span(args ...any) *VNode { return El("span", args...) }
func Ul(args ...any) *VNode   { return El("ul", args...) }
func Li(args ...any) *VNode   { return El("li", args...) }
func A(args ...any) *VNode    { return El("a", args...) }

// Forms

func Form(args ...any) *VNode   { return El("form", args...) }
func Button(args ...any) *VNode { return El("button", args...) }
func Input(args ...any) *VNode  { return El("input", args...) }
func Label(args ...any) *VNode  { return El("label", args...) }

// Tables

func Table(args ...any) *VNode { return El("table", args...) }
func Tr(args ...any) *VNode    { return El("tr", args...) }
func Td(args ...any) *VNode    { return El("td", args...) }

// SVG

func Svg(args ...any) *VNode    { return ElNS(NamespaceSVG, "svg", args...) }
func Circle(args ...any) *VNode { return ElNS(NamespaceSVG, "circle", args...) }
func Path(args ...any) *VNode   { return ElNS(NamespaceSVG, "path", args...) }
