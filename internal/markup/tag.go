// Package markup builds escaped HTML fragments as plain strings.
package markup

import (
	"html/template"
	"strings"
)

// Tag is an HTML fragment. Its content is always safe to emit: text is
// escaped on entry and elements only wrap other tags.
type Tag string

func (t Tag) String() string {
	return string(t)
}

// HTML exposes the fragment to html/template without re-escaping.
func (t Tag) HTML() template.HTML {
	return template.HTML(t)
}

// IsEmpty reports whether the fragment renders nothing.
func (t Tag) IsEmpty() bool {
	return t == ""
}

// Text escapes & < > " and ' in s.
func Text(s string) Tag {
	return Tag(template.HTMLEscapeString(s))
}

// Raw trusts s as markup. Reserved for fragments produced by another HTML
// renderer, such as goldmark output.
func Raw(s string) Tag {
	return Tag(s)
}

// Empty returns the empty fragment.
func Empty() Tag {
	return ""
}

// Collect concatenates items in order.
func Collect(items ...Tag) Tag {
	switch len(items) {
	case 0:
		return Empty()
	case 1:
		return items[0]
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString(string(item))
	}
	return Tag(b.String())
}

var voidElements = map[string]struct{}{
	"hr":    {},
	"img":   {},
	"br":    {},
	"input": {},
}

// Element renders <name attrs>children</name>. Void elements self-close and
// ignore children. A non-void element with neither attributes nor content
// renders as Empty.
func Element(name string, attrs []Attribute, children ...Tag) Tag {
	attrText := joinAttributes(attrs)
	content := Collect(children...)

	if _, void := voidElements[name]; void {
		if attrText == "" {
			return Tag("<" + name + "/>")
		}
		return Tag("<" + name + " " + attrText + "/>")
	}
	if attrText == "" && content == "" {
		return Empty()
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	if attrText != "" {
		b.WriteByte(' ')
		b.WriteString(attrText)
	}
	b.WriteByte('>')
	b.WriteString(string(content))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return Tag(b.String())
}

func joinAttributes(attrs []Attribute) string {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		if rendered := attr.render(); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, " ")
}
