package html

import (
	"strconv"

	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/markup"
)

func (b *Backend) Text(text string) markup.Tag {
	return markup.Text(text)
}

func (b *Backend) Bold(inner markup.Tag) markup.Tag {
	return markup.Element("b", []markup.Attribute{markup.Class(b.class("bold"))}, inner)
}

func (b *Backend) Italic(inner markup.Tag) markup.Tag {
	return markup.Element("i", []markup.Attribute{markup.Class(b.class("italic"))}, inner)
}

func (b *Backend) Underline(inner markup.Tag) markup.Tag {
	return markup.Element("u", []markup.Attribute{markup.Class(b.class("underline"))}, inner)
}

func (b *Backend) Strike(inner markup.Tag) markup.Tag {
	return markup.Element("s", []markup.Attribute{markup.Class(b.class("strike"))}, inner)
}

func (b *Backend) Code(inner markup.Tag) markup.Tag {
	return markup.Element("code", []markup.Attribute{markup.Class(b.class("code", "inline"))}, inner)
}

// Link wraps inner in an anchor. Hrefs rejected by the sanitizer keep the
// text and drop the anchor.
func (b *Backend) Link(inner markup.Tag, href string) markup.Tag {
	if err := b.sanitizer.ValidateURL(href); err != nil {
		return inner
	}
	return markup.Element("a", []markup.Attribute{markup.Class(b.class("link")), markup.Href(href)}, inner)
}

func (b *Backend) Highlight(inner markup.Tag, color document.Color) markup.Tag {
	if color.IsNone() {
		return inner
	}
	return markup.Element("span", []markup.Attribute{markup.Class(b.colorClass(color))}, inner)
}

func (b *Backend) BulletedListWrapper(items []markup.Tag) markup.Tag {
	return markup.Element("ul", []markup.Attribute{markup.Class(b.class("bulleted_list", "wrapper"))}, items...)
}

func (b *Backend) NumberedListWrapper(items []markup.Tag) markup.Tag {
	return markup.Element("ol", []markup.Attribute{markup.Class(b.class("numbered_list", "wrapper"))}, items...)
}

func (b *Backend) Collect(items []markup.Tag) markup.Tag {
	return markup.Collect(items...)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
