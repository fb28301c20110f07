package render

import "github.com/goliatone/go-pagetree/internal/document"

// Block describes the block being rendered. Backends use it for anchors,
// classes and indentation; the engine fills it for every dispatch.
type Block struct {
	ID    string
	Kind  document.Kind
	Color document.Color
	Depth int
	Title string
}

// BlockRenderer materializes one block variant. Children is the collected
// output of the block content; title is nil when the variant carries no
// properties.
type BlockRenderer[R any] interface {
	PageBlock(b Block, children R, title *R) R
	TextBlock(b Block, children R, title *R) R
	BulletedListBlock(b Block, children R, title *R) R
	NumberedListBlock(b Block, children R, title *R) R
	ToggleBlock(b Block, children R, title *R) R
	HeaderBlock(b Block, children R, title *R) R
	SubHeaderBlock(b Block, children R, title *R) R
	SubSubHeaderBlock(b Block, children R, title *R) R
	QuoteBlock(b Block, children R, title *R) R
	ToDoBlock(b Block, children R, title *R, checked bool) R
	DividerBlock(b Block, children R) R
	ColumnListBlock(b Block, children R) R
	ColumnBlock(b Block, children R, ratio float64) R
	ImageBlock(b Block, children R, img document.Image, caption *R) R
	Empty() R
}

// InlineRenderer materializes text spans and their marks.
type InlineRenderer[R any] interface {
	Text(text string) R
	Bold(inner R) R
	Italic(inner R) R
	Underline(inner R) R
	Strike(inner R) R
	Code(inner R) R
	Link(inner R, href string) R
	Highlight(inner R, color document.Color) R
}

// WrapperRenderer wraps list groups and concatenates fragments. Collect must
// be associative and Collect(nil) must equal BlockRenderer.Empty().
type WrapperRenderer[R any] interface {
	BulletedListWrapper(items []R) R
	NumberedListWrapper(items []R) R
	Collect(items []R) R
}
