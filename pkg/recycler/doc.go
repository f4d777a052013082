// Package recycler pools host DOM nodes for reuse.
//
// When the rendering layer discards a subtree, Collect strips every node of
// its attributes, raw properties, listeners, payload and attached state and
// files it into a bucket keyed by node name. The Create family pops from the
// matching bucket before asking the host document for a fresh node.
//
// # Bucket keys
//
//	Create("div")          → "DIV"
//	CreateNS("svg", svgNS) → "SVG" + svgNS
//	CreateText(...)        → "#text"
//	CreateComment(...)     → "#comment"
//
// Reuse is LIFO and does no work beyond the pop: nodes are cleaned when they
// are collected, not when they are handed out. A text or comment node gets
// its payload rewritten on reuse.
//
// # Concurrency
//
// A Pool may be shared by concurrent renderers. The bucket map is guarded by
// a mutex held only for push and pop; the host tree walk in Collect runs
// unlocked, so two goroutines must not collect the same subtree.
package recycler
