package pagetree

import (
	"context"

	mdbackend "github.com/goliatone/go-pagetree/internal/backend/markdown"
	"github.com/goliatone/go-pagetree/internal/decoder"
	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/markup"
	"github.com/goliatone/go-pagetree/internal/pipeline"
	"github.com/goliatone/go-pagetree/internal/render"
)

// Document exports the decoded page chunk.
type Document = document.Document

// Table exports the block table keyed by block id.
type Table = document.Table

// Entry exports a block table entry, typed or opaque.
type Entry = document.Entry

// Record exports a typed block record.
type Record = document.Record

// Span exports a run of text sharing the same marks.
type Span = document.Span

// Mark exports an inline formatting mark.
type Mark = document.Mark

// Kind exports the block type tag.
type Kind = document.Kind

// Color exports the named block and highlight colors.
type Color = document.Color

// Image exports the image block variant passed to ImageBlock.
type Image = document.Image

// Block exports the per-dispatch block description.
type Block = render.Block

// BlockRenderer exports the block capability implemented by backends.
type BlockRenderer[R any] = render.BlockRenderer[R]

// InlineRenderer exports the inline capability implemented by backends.
type InlineRenderer[R any] = render.InlineRenderer[R]

// WrapperRenderer exports the grouping capability implemented by backends.
type WrapperRenderer[R any] = render.WrapperRenderer[R]

// Engine exports the generic rendering engine.
type Engine[R any] = render.Engine[R]

// RenderOption configures an Engine.
type RenderOption = render.Option

// DecodeOption configures Decode.
type DecodeOption = decoder.Option

// Tag exports the markup value produced by the HTML backend.
type Tag = markup.Tag

// Format selects the pipeline output.
type Format = pipeline.Format

// Request describes a pipeline render.
type Request = pipeline.Request

// Result carries a pipeline render result.
type Result = pipeline.Result

// PreviewResult carries a Markdown preview.
type PreviewResult = mdbackend.PreviewResult

const (
	FormatHTML     = pipeline.FormatHTML
	FormatMarkdown = pipeline.FormatMarkdown
)

var (
	ErrMalformed       = decoder.ErrMalformed
	ErrPageIDNotFound  = decoder.ErrPageIDNotFound
	ErrNoSource        = pipeline.ErrNoSource
	ErrFetcherRequired = pipeline.ErrFetcherRequired
	ErrUnknownFormat   = pipeline.ErrUnknownFormat
	ErrRootNotFound    = pipeline.ErrRootNotFound
)

var (
	WithMaxDepth           = render.WithMaxDepth
	WithNestedPageChildren = render.WithNestedPageChildren
	WithRenderLogger       = render.WithLogger
	WithPageID             = decoder.WithPageID
	WithDecodeLogger       = decoder.WithLogger
)

// NewEngine builds a rendering engine over table for a custom backend.
func NewEngine[R any](table Table, blocks BlockRenderer[R], inline InlineRenderer[R], wrappers WrapperRenderer[R], opts ...RenderOption) *Engine[R] {
	return render.New(table, blocks, inline, wrappers, opts...)
}

// Decode parses a loadPageChunk payload without a Module.
func Decode(raw []byte, opts ...DecodeOption) (*Document, error) {
	return decoder.Decode(raw, opts...)
}

// DecodeContext is Decode with cancellation.
func DecodeContext(ctx context.Context, raw []byte, opts ...DecodeOption) (*Document, error) {
	return decoder.New().Decode(ctx, raw, opts...)
}

// ParseFormat maps "html", "markdown" and "md" to a Format.
func ParseFormat(value string) (Format, error) {
	return pipeline.ParseFormat(value)
}
