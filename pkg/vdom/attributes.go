package vdom

import (
	"fmt"
	"strings"

	"github.com/vango-dev/recycler/pkg/dom"
)

// attr creates an Attr with the given key and value.
func attr(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// AttrOf creates an arbitrary attribute.
func AttrOf(key, value string) Attr { return attr(key, value) }

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Key sets the reconciliation key. It is not rendered.
func Key(k any) Attr { return attr("key", fmt.Sprint(k)) }

// SVG geometry

func Cx(v float64) Attr     { return attr("cx", fmt.Sprint(v)) }
func Cy(v float64) Attr     { return attr("cy", fmt.Sprint(v)) }
func R(v float64) Attr      { return attr("r", fmt.Sprint(v)) }
func D(path string) Attr    { return attr("d", path) }
func Fill(c string) Attr    { return attr("fill", c) }
func ViewBox(v string) Attr { return attr("viewBox", v) }

// Raw properties

// PropOf sets an arbitrary raw property.
func PropOf(key string, value any) Prop { return Prop{Key: key, Value: value} }

// Value sets the value property.
func Value(v string) Prop { return Prop{Key: "value", Value: v} }

// Checked sets the checked property.
func Checked(b bool) Prop { return Prop{Key: "checked", Value: b} }

// Events

// On binds handler to the named event.
func On(event string, handler func(dom.Event)) EventHandler {
	return EventHandler{Event: event, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler func(dom.Event)) EventHandler { return On("click", handler) }

// OnInput handles input events.
func OnInput(handler func(dom.Event)) EventHandler { return On("input", handler) }

// OnChange handles change events.
func OnChange(handler func(dom.Event)) EventHandler { return On("change", handler) }

// OnSubmit handles form submission.
func OnSubmit(handler func(dom.Event)) EventHandler { return On("submit", handler) }
