// Package html renders documents to HTML fragments through the render
// capability interfaces.
package html

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/identity"
	"github.com/goliatone/go-pagetree/internal/markup"
	"github.com/goliatone/go-pagetree/internal/render"
)

// DefaultClassPrefix namespaces every generated class name.
const DefaultClassPrefix = "notion"

// DefaultImageProxy is prepended to escaped image sources.
const DefaultImageProxy = "https://www.notion.so/image/"

// Options configures the HTML backend.
type Options struct {
	ClassPrefix string
	// ImageProxy is prepended to the escaped image source. Empty disables
	// proxying.
	ImageProxy string
	// PageLinkBase prefixes the compact page id in nested page links.
	PageLinkBase string
	// LinkNestedPages renders pages below the root as links.
	LinkNestedPages bool
	AllowedSchemes  []string
}

// DefaultOptions mirrors the runtime configuration defaults.
func DefaultOptions() Options {
	return Options{
		ClassPrefix:     DefaultClassPrefix,
		ImageProxy:      DefaultImageProxy,
		PageLinkBase:    "/",
		LinkNestedPages: true,
		AllowedSchemes:  []string{"http", "https", "mailto"},
	}
}

// Backend implements the block, inline and wrapper capabilities for
// markup.Tag. It holds no mutable state and may be shared across renders.
type Backend struct {
	opts      Options
	sanitizer *markup.Sanitizer
}

// New constructs a backend. A blank class prefix falls back to the default.
func New(opts Options) *Backend {
	if strings.TrimSpace(opts.ClassPrefix) == "" {
		opts.ClassPrefix = DefaultClassPrefix
	}
	return &Backend{
		opts:      opts,
		sanitizer: markup.NewSanitizer(opts.AllowedSchemes...),
	}
}

func (b *Backend) Blocks() render.BlockRenderer[markup.Tag] { return b }

func (b *Backend) Inline() render.InlineRenderer[markup.Tag] { return b }

func (b *Backend) Wrappers() render.WrapperRenderer[markup.Tag] { return b }

// Engine builds a render engine over table backed by this backend.
func (b *Backend) Engine(table document.Table, opts ...render.Option) *render.Engine[markup.Tag] {
	return render.New[markup.Tag](table, b, b, b, opts...)
}

// Render renders rootID from doc.
func (b *Backend) Render(doc *document.Document, rootID string, opts ...render.Option) markup.Tag {
	if doc == nil {
		return markup.Empty()
	}
	if rootID == "" {
		rootID = doc.PageID
	}
	return b.Engine(doc.Blocks, opts...).Render(rootID)
}

func (b *Backend) class(parts ...string) string {
	return b.opts.ClassPrefix + "-" + strings.Join(parts, "-")
}

func (b *Backend) blockClass(block render.Block) markup.Attribute {
	return markup.ClassList(b.class(string(block.Kind), "block"), b.colorClass(block.Color))
}

func (b *Backend) colorClass(color document.Color) string {
	if color.IsNone() {
		return ""
	}
	return b.class(string(color))
}

// imageSource resolves the displayed source through the proxy.
func (b *Backend) imageSource(img document.Image) string {
	source := img.Properties.Source
	if img.Format.DisplaySource != nil && strings.TrimSpace(*img.Format.DisplaySource) != "" {
		source = *img.Format.DisplaySource
	}
	if b.opts.ImageProxy == "" {
		return source
	}
	return b.opts.ImageProxy + strings.ReplaceAll(url.QueryEscape(source), "+", "%20")
}

func (b *Backend) pageLink(id string) string {
	return b.opts.PageLinkBase + identity.Compact(id)
}

func include(tag *markup.Tag) markup.Tag {
	if tag == nil {
		return markup.Empty()
	}
	return *tag
}
