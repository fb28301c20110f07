package markdown

import (
	"strings"

	"github.com/goliatone/go-pagetree/internal/document"
)

func (b *Backend) Text(text string) string {
	return mdEscaper.Replace(text)
}

func (b *Backend) Bold(inner string) string {
	return wrapEmphasis(inner, "**")
}

func (b *Backend) Italic(inner string) string {
	return wrapEmphasis(inner, "*")
}

func (b *Backend) Strike(inner string) string {
	return wrapEmphasis(inner, "~~")
}

func (b *Backend) Underline(inner string) string {
	if inner == "" {
		return ""
	}
	return "<u>" + inner + "</u>"
}

// Code drops the escaping applied by Text since code spans are literal.
func (b *Backend) Code(inner string) string {
	if inner == "" {
		return ""
	}
	literal := mdUnescaper.Replace(inner)
	fence := "`"
	for strings.Contains(literal, fence) {
		fence += "`"
	}
	if strings.HasPrefix(literal, "`") || strings.HasSuffix(literal, "`") {
		return fence + " " + literal + " " + fence
	}
	return fence + literal + fence
}

// Link keeps the text and drops the target when the sanitizer rejects href.
func (b *Backend) Link(inner string, href string) string {
	if err := b.sanitizer.ValidateURL(href); err != nil {
		return inner
	}
	return "[" + inner + "](" + escapeDestination(href) + ")"
}

func (b *Backend) Highlight(inner string, color document.Color) string {
	if color.IsNone() || inner == "" {
		return inner
	}
	return `<mark data-color="` + string(color) + `">` + inner + "</mark>"
}

func (b *Backend) BulletedListWrapper(items []string) string {
	return b.Collect(items) + "\n"
}

func (b *Backend) NumberedListWrapper(items []string) string {
	return b.Collect(items) + "\n"
}

func (b *Backend) Collect(items []string) string {
	return strings.Join(items, "")
}

// wrapEmphasis keeps surrounding whitespace outside the delimiters so the
// emphasis still parses.
func wrapEmphasis(inner, delim string) string {
	trimmed := strings.TrimSpace(inner)
	if trimmed == "" {
		return inner
	}
	start := strings.Index(inner, trimmed)
	return inner[:start] + delim + trimmed + delim + inner[start+len(trimmed):]
}
