// Package vdom provides the virtual node model the recycler mounts.
//
// A VNode describes an element, text, comment or fragment. Elements carry
// three kinds of state that end up on host nodes:
//
//   - Attrs: HTML attributes, set with setAttribute.
//   - Props: raw properties (value, checked, ...) set directly on the node.
//   - Events: listeners keyed by event name ("click", "input").
//
// # Element API
//
// Elements are created with variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    Input(Value("hello"), OnInput(handler)),
//	)
//
// Namespaced elements are built with ElNS or the SVG helpers.
package vdom
