// Package render mounts VNode trees onto a host document through a
// recycler.Pool.
//
// Every host node the renderer creates comes from the pool, and every node
// it removes goes back to it. Attributes are set with setAttribute, Props
// with SetRaw and Events with On, so that Collect knows exactly what to
// undo.
//
// # Basic Usage
//
//	pool := recycler.New(htmldoc.New())
//	r := render.NewRenderer(pool, render.RendererConfig{})
//
//	root := r.Create(vdom.Div(vdom.Class("card"), vdom.H1("Title")))
//	// ... later
//	r.Remove(root)
//
// Fragments have no host node of their own; use Append to mount them.
package render
