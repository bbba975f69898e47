// Package markup is a small document tree for generating SVG and HTML.
//
// A [Node] has a name, an ordered attribute list and ordered content. Content
// items are either [Text] or child nodes. A node with an empty name is a
// fragment: it renders only its content, which lets builders splice several
// siblings into a parent without a wrapping element.
//
// Child nodes are held by pointer and may appear in more than one tree. Use
// [Node.Clone] before mutating a node that might be shared.
//
//	svg := markup.Element("svg", markup.Attrs{{"width", "90"}},
//		markup.Element("title", nil, markup.Text("build: passing")),
//	)
//	fmt.Println(svg.Render())
//	// <svg width="90"><title>build: passing</title></svg>
package markup

import (
	"io"
	"strings"
)

// Attr is a single name="value" attribute.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list. Duplicate names are allowed and all are emitted.
type Attrs []Attr

// Item is a content item: [Text] or *[Node].
type Item interface {
	isItem()
}

// Text is character data. It is escaped when rendered.
type Text string

func (Text) isItem() {}

// Node is an element or, when Name is empty, a fragment.
type Node struct {
	Name    string
	Attrs   Attrs
	Content []Item
}

func (*Node) isItem() {}

// New returns an empty node with the given name.
func New(name string) *Node {
	return &Node{Name: name}
}

// Element returns a node with the given attributes and content.
// Nil content items are skipped.
func Element(name string, attrs Attrs, items ...Item) *Node {
	n := &Node{Name: name, Attrs: attrs}
	return n.AddContent(items...)
}

// Fragment returns an unnamed node holding items.
func Fragment(items ...Item) *Node {
	return Element("", nil, items...)
}

// SetName renames n.
func (n *Node) SetName(name string) *Node {
	n.Name = name
	return n
}

// AddAttr appends an attribute.
func (n *Node) AddAttr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{name, value})
	return n
}

// AddContent appends content items. Nil nodes are skipped.
func (n *Node) AddContent(items ...Item) *Node {
	for _, it := range items {
		if it == nil {
			continue
		}
		if c, ok := it.(*Node); ok && c == nil {
			continue
		}
		n.Content = append(n.Content, it)
	}
	return n
}

// IsEmpty reports whether n is a fragment whose content is all empty.
func (n *Node) IsEmpty() bool {
	return n.Name == "" && n.IsSubEmpty()
}

// IsSubEmpty reports whether every content item is empty text or an empty node.
func (n *Node) IsSubEmpty() bool {
	for _, it := range n.Content {
		switch v := it.(type) {
		case Text:
			if v != "" {
				return false
			}
		case *Node:
			if !v.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	c := &Node{Name: n.Name}
	if n.Attrs != nil {
		c.Attrs = append(Attrs(nil), n.Attrs...)
	}
	if n.Content != nil {
		c.Content = make([]Item, len(n.Content))
		for i, it := range n.Content {
			if child, ok := it.(*Node); ok {
				it = child.Clone()
			}
			c.Content[i] = it
		}
	}
	return c
}

// Render serializes n.
func (n *Node) Render() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

// String is an alias for Render.
func (n *Node) String() string {
	return n.Render()
}

// WriteTo serializes n to w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	n.render(&b)
	written, err := io.WriteString(w, b.String())
	return int64(written), err
}

func (n *Node) render(b *strings.Builder) {
	if n.Name == "" {
		n.renderContent(b)
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		escaper.WriteString(b, a.Value)
		b.WriteByte('"')
	}
	if n.IsSubEmpty() {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	n.renderContent(b)
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}

func (n *Node) renderContent(b *strings.Builder) {
	for _, it := range n.Content {
		switch v := it.(type) {
		case Text:
			escaper.WriteString(b, string(v))
		case *Node:
			v.render(b)
		}
	}
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the five markup-significant characters with entities.
func Escape(s string) string {
	return escaper.Replace(s)
}
