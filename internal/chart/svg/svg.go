// Package svg provides a small builder for SVG elements. Attributes render
// in insertion order, so the same build sequence always produces the same
// bytes.
package svg

import (
	"fmt"
	"io"
	"strings"
)

// Node is a single SVG element under construction.
type Node struct {
	name     string
	attrs    []attribute
	contents []func(io.Writer)
}

type attribute struct {
	key   string
	value string
}

func newNode(name string) *Node {
	return &Node{name: name}
}

// SVG creates the root svg element.
func SVG() *Node {
	return newNode("svg").Attr("xmlns", "http://www.w3.org/2000/svg")
}

// Rect creates a rect element.
func Rect() *Node { return newNode("rect") }

// Text creates a text element.
func Text() *Node { return newNode("text") }

// Title creates a title element, shown by browsers as a tooltip.
func Title() *Node { return newNode("title") }

// G creates a group element.
func G() *Node { return newNode("g") }

// Attr sets an attribute.
func (n *Node) Attr(key, value string) *Node {
	n.attrs = append(n.attrs, attribute{key: key, value: value})
	return n
}

// Content appends escaped text content.
func (n *Node) Content(s string) *Node {
	escaped := escape(s)
	n.contents = append(n.contents, func(w io.Writer) {
		io.WriteString(w, escaped)
	})
	return n
}

// ContentFunc appends content rendered by f, usually child elements.
func (n *Node) ContentFunc(f func(io.Writer)) *Node {
	n.contents = append(n.contents, f)
	return n
}

// Render writes the element to w.
func (n *Node) Render(w io.Writer) {
	io.WriteString(w, "<"+n.name)
	for _, a := range n.attrs {
		io.WriteString(w, ` `+a.key+`="`+escape(a.value)+`"`)
	}
	if len(n.contents) == 0 {
		io.WriteString(w, "/>")
		return
	}
	io.WriteString(w, ">")
	for _, f := range n.contents {
		f(w)
	}
	io.WriteString(w, "</"+n.name+">")
}

// String renders the element to a string.
func (n *Node) String() string {
	var sb strings.Builder
	n.Render(&sb)
	return sb.String()
}

// Px formats a pixel dimension.
func Px(v int) string {
	return fmt.Sprintf("%dpx", v)
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return escaper.Replace(s)
}
