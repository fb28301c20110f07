package html

import (
	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/identity"
	"github.com/goliatone/go-pagetree/internal/markup"
	"github.com/goliatone/go-pagetree/internal/render"
)

// titled renders <root class>title</root> followed by the children container.
func (b *Backend) titled(block render.Block, element string, children markup.Tag, title *markup.Tag, extra ...markup.Attribute) markup.Tag {
	attrs := append([]markup.Attribute{b.blockClass(block)}, extra...)
	return markup.Collect(
		markup.Element(element, attrs, include(title)),
		b.childrenContainer(children),
	)
}

func (b *Backend) childrenContainer(children markup.Tag) markup.Tag {
	if children.IsEmpty() {
		return markup.Empty()
	}
	return markup.Element("div", []markup.Attribute{markup.Class(b.class("children"))}, children)
}

func (b *Backend) PageBlock(block render.Block, children markup.Tag, title *markup.Tag) markup.Tag {
	if block.Depth > 0 && b.opts.LinkNestedPages {
		label := include(title)
		if label.IsEmpty() {
			label = markup.Text("Untitled")
		}
		return markup.Element("div", []markup.Attribute{b.blockClass(block)},
			markup.Element("a", []markup.Attribute{markup.Class(b.class("page-link")), markup.Href(b.pageLink(block.ID))}, label),
		)
	}
	return markup.Element("article", []markup.Attribute{markup.Class(b.class("page")), markup.ID(identity.Compact(block.ID))},
		markup.Element("h1", []markup.Attribute{b.blockClass(block)}, include(title)),
		children,
	)
}

func (b *Backend) TextBlock(block render.Block, children markup.Tag, title *markup.Tag) markup.Tag {
	if title == nil {
		return markup.Collect(
			markup.Element("p", []markup.Attribute{markup.ClassList(b.class("text", "block"), b.class("blank"))}),
			b.childrenContainer(children),
		)
	}
	return b.titled(block, "p", children, title)
}

func (b *Backend) BulletedListBlock(block render.Block, children markup.Tag, title *markup.Tag) markup.Tag {
	return b.listItem(block, children, title)
}

func (b *Backend) NumberedListBlock(block render.Block, children markup.Tag, title *markup.Tag) markup.Tag {
	return b.listItem(block, children, title)
}

// listItem keeps nested content inside the <li> so the list stays valid.
func (b *Backend) listItem(block render.Block, children markup.Tag, title *markup.Tag) markup.Tag {
	return markup.Element("li", []markup.Attribute{b.blockClass(block)},
		include(title),
		b.childrenContainer(children),
	)
}

func (b *Backend) ToggleBlock(block render.Block, children markup.Tag, title *markup.Tag) markup.Tag {
	return markup.Element("details", []markup.Attribute{b.blockClass(block)},
		markup.Element("summary", nil, include(title)),
		b.childrenContainer(children),
	)
}

func (b *Backend) HeaderBlock(block render.Block, children markup.Tag, title *markup.Tag) markup.Tag {
	return b.titled(block, "h1", children, title, markup.ID(identity.Anchor(block.Title, block.ID)))
}

func (b *Backend) SubHeaderBlock(block render.Block, children markup.Tag, title *markup.Tag) markup.Tag {
	return b.titled(block, "h2", children, title, markup.ID(identity.Anchor(block.Title, block.ID)))
}

func (b *Backend) SubSubHeaderBlock(block render.Block, children markup.Tag, title *markup.Tag) markup.Tag {
	return b.titled(block, "h3", children, title, markup.ID(identity.Anchor(block.Title, block.ID)))
}

func (b *Backend) QuoteBlock(block render.Block, children markup.Tag, title *markup.Tag) markup.Tag {
	return b.titled(block, "blockquote", children, title)
}

func (b *Backend) ToDoBlock(block render.Block, children markup.Tag, title *markup.Tag, checked bool) markup.Tag {
	box := []markup.Attribute{markup.Attr("type", "checkbox"), markup.Flag("disabled")}
	classes := []string{b.class(string(block.Kind), "block"), b.colorClass(block.Color)}
	if checked {
		box = append(box, markup.Flag("checked"))
		classes = append(classes, b.class("to_do", "checked"))
	}
	return markup.Element("div", []markup.Attribute{markup.ClassList(classes...)},
		markup.Element("input", box),
		markup.Element("span", []markup.Attribute{markup.Class(b.class("to_do", "label"))}, include(title)),
		b.childrenContainer(children),
	)
}

func (b *Backend) DividerBlock(block render.Block, _ markup.Tag) markup.Tag {
	return markup.Element("hr", []markup.Attribute{b.blockClass(block)})
}

func (b *Backend) ColumnListBlock(block render.Block, children markup.Tag) markup.Tag {
	return markup.Element("div", []markup.Attribute{b.blockClass(block)}, children)
}

func (b *Backend) ColumnBlock(block render.Block, children markup.Tag, ratio float64) markup.Tag {
	attrs := []markup.Attribute{b.blockClass(block)}
	if ratio > 0 {
		attrs = append(attrs, markup.Style(markup.StyleProperty{Name: "width", Value: markup.Percent(ratio)}))
	}
	return markup.Element("div", attrs, children)
}

func (b *Backend) ImageBlock(block render.Block, children markup.Tag, img document.Image, caption *markup.Tag) markup.Tag {
	attrs := []markup.Attribute{markup.Src(b.imageSource(img))}
	if spans, ok := img.Caption(); ok {
		attrs = append(attrs, markup.Attr("alt", document.PlainText(spans)))
	}
	if img.Format.BlockWidth > 0 {
		attrs = append(attrs, markup.Attr("width", itoa(img.Format.BlockWidth)))
	}
	if img.Format.BlockHeight > 0 {
		attrs = append(attrs, markup.Attr("height", itoa(img.Format.BlockHeight)))
	}
	var figcaption markup.Tag
	if caption != nil {
		figcaption = markup.Element("figcaption", nil, *caption)
	}
	return markup.Element("figure", []markup.Attribute{b.blockClass(block)},
		markup.Element("img", attrs),
		figcaption,
		b.childrenContainer(children),
	)
}

func (b *Backend) Empty() markup.Tag {
	return markup.Empty()
}
