package markdown

import (
	"strings"

	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/render"
)

func heading(level int, title *string, children string) string {
	return strings.Repeat("#", level) + " " + blockText(title) + "\n\n" + children
}

func (b *Backend) PageBlock(block render.Block, children string, title *string) string {
	if block.Depth > 0 && b.opts.LinkNestedPages {
		label := deref(title)
		if label == "" {
			label = "Untitled"
		}
		return "[" + label + "](" + b.pageLink(block.ID) + ")\n\n"
	}
	return heading(1, title, children)
}

func (b *Backend) TextBlock(_ render.Block, children string, title *string) string {
	if title == nil || *title == "" {
		return children
	}
	return blockText(title) + "\n\n" + children
}

func (b *Backend) BulletedListBlock(_ render.Block, children string, title *string) string {
	return "- " + blockText(title) + "\n" + indent(children, "  ")
}

func (b *Backend) NumberedListBlock(_ render.Block, children string, title *string) string {
	return "1. " + blockText(title) + "\n" + indent(children, "   ")
}

func (b *Backend) ToggleBlock(_ render.Block, children string, title *string) string {
	return "<details>\n<summary>" + deref(title) + "</summary>\n\n" + children + "</details>\n\n"
}

func (b *Backend) HeaderBlock(_ render.Block, children string, title *string) string {
	return heading(1, title, children)
}

func (b *Backend) SubHeaderBlock(_ render.Block, children string, title *string) string {
	return heading(2, title, children)
}

func (b *Backend) SubSubHeaderBlock(_ render.Block, children string, title *string) string {
	return heading(3, title, children)
}

func (b *Backend) QuoteBlock(_ render.Block, children string, title *string) string {
	return indent(blockText(title), "> ") + "\n" + children
}

func (b *Backend) ToDoBlock(_ render.Block, children string, title *string, checked bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	return "- " + box + " " + blockText(title) + "\n" + indent(children, "  ") + "\n"
}

func (b *Backend) DividerBlock(_ render.Block, _ string) string {
	return "---\n\n"
}

func (b *Backend) ColumnListBlock(_ render.Block, children string) string {
	return children
}

func (b *Backend) ColumnBlock(_ render.Block, children string, _ float64) string {
	return children
}

func (b *Backend) ImageBlock(_ render.Block, children string, img document.Image, caption *string) string {
	return "![" + deref(caption) + "](" + b.imageSource(img) + ")\n\n" + children
}

func (b *Backend) Empty() string {
	return ""
}
