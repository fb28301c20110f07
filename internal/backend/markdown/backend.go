// Package markdown renders documents to CommonMark with GFM task lists and
// strikethrough, and previews Markdown back to HTML through goldmark.
package markdown

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/identity"
	"github.com/goliatone/go-pagetree/internal/markup"
	"github.com/goliatone/go-pagetree/internal/render"
)

// Options configures the Markdown backend.
type Options struct {
	// ImageProxy is prepended to the escaped image source. Empty keeps the
	// source untouched.
	ImageProxy      string
	PageLinkBase    string
	LinkNestedPages bool
	// AllowedSchemes limits link targets. Empty allows http, https and mailto.
	AllowedSchemes []string
}

// DefaultOptions links nested pages relative to the site root.
func DefaultOptions() Options {
	return Options{
		PageLinkBase:    "/",
		LinkNestedPages: true,
	}
}

// Backend implements the render capabilities for string output.
type Backend struct {
	opts      Options
	sanitizer *markup.Sanitizer
}

func New(opts Options) *Backend {
	return &Backend{opts: opts, sanitizer: markup.NewSanitizer(opts.AllowedSchemes...)}
}

func (b *Backend) Blocks() render.BlockRenderer[string] { return b }

func (b *Backend) Inline() render.InlineRenderer[string] { return b }

func (b *Backend) Wrappers() render.WrapperRenderer[string] { return b }

// Engine builds a render engine over table backed by this backend.
func (b *Backend) Engine(table document.Table, opts ...render.Option) *render.Engine[string] {
	return render.New[string](table, b, b, b, opts...)
}

// Render renders rootID from doc. A blank root falls back to the page id.
func (b *Backend) Render(doc *document.Document, rootID string, opts ...render.Option) string {
	if doc == nil {
		return ""
	}
	if rootID == "" {
		rootID = doc.PageID
	}
	return b.Engine(doc.Blocks, opts...).Render(rootID)
}

func (b *Backend) imageSource(img document.Image) string {
	source := img.Properties.Source
	if img.Format.DisplaySource != nil && strings.TrimSpace(*img.Format.DisplaySource) != "" {
		source = *img.Format.DisplaySource
	}
	if b.opts.ImageProxy != "" {
		source = b.opts.ImageProxy + strings.ReplaceAll(url.QueryEscape(source), "+", "%20")
	}
	return escapeDestination(source)
}

func (b *Backend) pageLink(id string) string {
	return escapeDestination(b.opts.PageLinkBase + identity.Compact(id))
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`~`, `\~`,
	`|`, `\|`,
	`#`, `\#`,
)

var mdUnescaper = strings.NewReplacer(
	`\\`, `\`,
	"\\`", "`",
	`\*`, `*`,
	`\_`, `_`,
	`\[`, `[`,
	`\]`, `]`,
	`\<`, `<`,
	`\>`, `>`,
	`\~`, `~`,
	`\|`, `|`,
	`\#`, `#`,
)

var destinationEscaper = strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29", "<", "%3C", ">", "%3E")

func escapeDestination(raw string) string {
	return destinationEscaper.Replace(strings.TrimSpace(raw))
}

// indent prefixes every non-blank line of s and ends it with one newline.
func indent(s, prefix string) string {
	trimmed := strings.TrimRight(s, "\n")
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// blockText escapes markers that would open a new block when they lead a
// line of block text: list bullets, ordered list numbers and setext
// underlines. Headings, quotes and fences are already escaped inline.
func blockText(title *string) string {
	text := deref(title)
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(line)
	}
	return strings.Join(lines, "\n")
}

func escapeLineStart(line string) string {
	body := strings.TrimLeft(line, " \t")
	if body == "" {
		return line
	}
	lead := line[:len(line)-len(body)]
	switch body[0] {
	case '-', '+', '=':
		return lead + `\` + body
	}
	digits := 0
	for digits < len(body) && body[digits] >= '0' && body[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(body) && (body[digits] == '.' || body[digits] == ')') {
		return lead + body[:digits] + `\` + body[digits:]
	}
	return line
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
