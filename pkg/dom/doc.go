// Package dom defines the host document surface the recycler depends on.
//
// The recycler never creates nodes itself. It asks a Document for fresh
// nodes and drives a small set of Node operations when tearing a subtree
// down. Two hosts ship with the module:
//
//   - htmldoc: an in-memory document built on golang.org/x/net/html, used
//     on the server and in tests.
//   - jsdom: the browser document reached through syscall/js (js/wasm only).
//
// # Listener identity
//
// Go func values are not comparable, so event callbacks are registered as
// *Listener. Removal matches the pointer, the same way the browser matches
// the exact function reference passed to addEventListener.
package dom
