package render

import (
	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

// DefaultMaxDepth bounds block nesting when no explicit limit is configured.
const DefaultMaxDepth = 64

// Option configures an Engine.
type Option func(*options)

type options struct {
	maxDepth           int
	nestedPageChildren bool
	logger             interfaces.Logger
}

// WithMaxDepth caps the nesting depth. Values below one keep the default.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithNestedPageChildren controls whether pages below the root render their
// content. When disabled, nested pages receive Empty() children.
func WithNestedPageChildren(enabled bool) Option {
	return func(o *options) {
		o.nestedPageChildren = enabled
	}
}

// WithLogger sets the logger used for traversal warnings.
func WithLogger(logger interfaces.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Engine walks a block table and dispatches to the capability interfaces.
// It keeps no state between calls, so one engine can serve concurrent
// renders as long as the capabilities are stateless.
type Engine[R any] struct {
	table    document.Table
	blocks   BlockRenderer[R]
	inline   InlineRenderer[R]
	wrappers WrapperRenderer[R]
	opts     options
}

// New builds an engine over table.
func New[R any](table document.Table, blocks BlockRenderer[R], inline InlineRenderer[R], wrappers WrapperRenderer[R], opts ...Option) *Engine[R] {
	cfg := options{
		maxDepth:           DefaultMaxDepth,
		nestedPageChildren: true,
		logger:             logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Engine[R]{
		table:    table,
		blocks:   blocks,
		inline:   inline,
		wrappers: wrappers,
		opts:     cfg,
	}
}

// Render renders the block id and its subtree. Absent or opaque ids render
// as Empty().
func (e *Engine[R]) Render(id string) R {
	return e.newPass().render(id, 0)
}

// RenderChildren renders a sibling sequence, grouping adjacent list items.
func (e *Engine[R]) RenderChildren(ids []string) R {
	return e.newPass().children(ids, 0)
}

// RenderText folds spans and their marks into a single value.
func (e *Engine[R]) RenderText(spans []document.Span) R {
	return e.newPass().text(spans)
}

func (e *Engine[R]) newPass() *pass[R] {
	return &pass[R]{engine: e, ancestors: make(map[string]struct{})}
}

// pass carries the per-call traversal state.
type pass[R any] struct {
	engine    *Engine[R]
	ancestors map[string]struct{}
}

func (p *pass[R]) empty() R {
	return p.engine.blocks.Empty()
}

func (p *pass[R]) render(id string, depth int) R {
	e := p.engine
	record, ok := e.table.Lookup(id)
	if !ok {
		return p.empty()
	}
	if _, cycle := p.ancestors[id]; cycle {
		e.opts.logger.Warn("render.cycle.detected", "block_id", id, "depth", depth)
		return p.empty()
	}
	if depth > e.opts.maxDepth {
		e.opts.logger.Warn("render.depth.exceeded", "block_id", id, "depth", depth, "max_depth", e.opts.maxDepth)
		return p.empty()
	}
	p.ancestors[id] = struct{}{}
	defer delete(p.ancestors, id)

	var children R
	if record.Kind() == document.KindPage && depth > 0 && !e.opts.nestedPageChildren {
		children = p.empty()
	} else {
		children = p.children(record.Children(), depth+1)
	}

	block := Block{
		ID:    record.ID,
		Kind:  record.Kind(),
		Color: record.Color(),
		Depth: depth,
	}
	if block.ID == "" {
		block.ID = id
	}
	var title *R
	if spans, ok := document.TitleOf(record); ok {
		rendered := p.text(spans)
		title = &rendered
		block.Title = document.PlainText(spans)
	}

	blocks := e.blocks
	switch v := record.Variant.(type) {
	case document.Page:
		return blocks.PageBlock(block, children, title)
	case document.Text:
		return blocks.TextBlock(block, children, title)
	case document.BulletedList:
		return blocks.BulletedListBlock(block, children, title)
	case document.NumberedList:
		return blocks.NumberedListBlock(block, children, title)
	case document.Toggle:
		return blocks.ToggleBlock(block, children, title)
	case document.Header:
		return blocks.HeaderBlock(block, children, title)
	case document.SubHeader:
		return blocks.SubHeaderBlock(block, children, title)
	case document.SubSubHeader:
		return blocks.SubSubHeaderBlock(block, children, title)
	case document.Quote:
		return blocks.QuoteBlock(block, children, title)
	case document.ToDo:
		return blocks.ToDoBlock(block, children, title, v.Checked())
	case document.Divider:
		return blocks.DividerBlock(block, children)
	case document.ColumnList:
		return blocks.ColumnListBlock(block, children)
	case document.Column:
		return blocks.ColumnBlock(block, children, v.Format.ColumnRatio)
	case document.Image:
		var caption *R
		if spans, ok := v.Caption(); ok {
			rendered := p.text(spans)
			caption = &rendered
		}
		return blocks.ImageBlock(block, children, v, caption)
	}
	return p.empty()
}

type groupMember struct {
	id   string
	kind document.Kind
}

// children implements sibling grouping. Ids missing from the table are
// skipped without affecting an open group; opaque entries close it.
func (p *pass[R]) children(ids []string, depth int) R {
	results := make([]R, 0, len(ids))
	var group []groupMember

	closeGroup := func() {
		if len(group) == 0 {
			return
		}
		results = append(results, p.wrapper(group, depth))
		group = nil
	}

	for _, id := range ids {
		entry, present := p.engine.table[id]
		if !present {
			continue
		}
		if record, typed := entry.Typed(); typed && record.Kind().Grouped() {
			kind := record.Kind()
			if len(group) > 0 && group[0].kind != kind {
				closeGroup()
			}
			group = append(group, groupMember{id: id, kind: kind})
			continue
		}
		closeGroup()
		results = append(results, p.render(id, depth))
	}
	closeGroup()

	return p.engine.wrappers.Collect(results)
}

func (p *pass[R]) wrapper(group []groupMember, depth int) R {
	if len(group) == 0 {
		return p.empty()
	}
	items := make([]R, 0, len(group))
	for _, member := range group {
		items = append(items, p.render(member.id, depth))
	}
	switch group[0].kind {
	case document.KindBulletedList:
		return p.engine.wrappers.BulletedListWrapper(items)
	case document.KindNumberedList:
		return p.engine.wrappers.NumberedListWrapper(items)
	}
	return p.empty()
}

// text renders each span innermost mark first and collects the results.
func (p *pass[R]) text(spans []document.Span) R {
	inline := p.engine.inline
	parts := make([]R, 0, len(spans))
	for _, span := range spans {
		acc := inline.Text(span.Text)
		for _, mark := range span.Marks {
			switch mark.Kind {
			case document.MarkBold:
				acc = inline.Bold(acc)
			case document.MarkItalic:
				acc = inline.Italic(acc)
			case document.MarkUnderline:
				acc = inline.Underline(acc)
			case document.MarkStrike:
				acc = inline.Strike(acc)
			case document.MarkCode:
				acc = inline.Code(acc)
			case document.MarkLink:
				acc = inline.Link(acc, mark.Href)
			case document.MarkHighlight:
				acc = inline.Highlight(acc, mark.Color)
			}
		}
		parts = append(parts, acc)
	}
	return p.engine.wrappers.Collect(parts)
}
