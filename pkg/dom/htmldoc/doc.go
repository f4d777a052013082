// Package htmldoc is an in-memory dom.Document built on golang.org/x/net/html.
//
// Element, text and comment nodes are plain *html.Node values, so a tree
// built here can be serialized with html.Render. Properties, listeners and
// the expando slot have no place on html.Node and live on the wrapper.
//
// Canonical names follow the browser: createElement("div") reports nodeName
// "DIV" and namespace XHTML, createElementNS keeps the qualified name as
// given.
package htmldoc
