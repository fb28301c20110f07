package rendercmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	mdbackend "github.com/goliatone/go-pagetree/internal/backend/markdown"
	"github.com/goliatone/go-pagetree/internal/pipeline"
)

const (
	renderPageMessageType      = "pagetree.render.page"
	previewMarkdownMessageType = "pagetree.render.preview_markdown"
)

// ResultCallback receives the render result. It is invoked synchronously
// from the handler on success.
type ResultCallback func(*pipeline.Result)

// PreviewCallback receives the preview result on success.
type PreviewCallback func(*mdbackend.PreviewResult)

// RenderPageCommand renders a page chunk. Source wins over PageID; PageID
// alone triggers a fetch.
type RenderPageCommand struct {
	// PageID selects the page to fetch, or the root page inside Source.
	PageID string `json:"page_id,omitempty"`
	// Source is a raw loadPageChunk payload.
	Source []byte `json:"source,omitempty"`
	// RootID renders a block other than the page root.
	RootID string `json:"root_id,omitempty"`
	// Format is html (default) or markdown.
	Format         string         `json:"format,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (RenderPageCommand) Type() string { return renderPageMessageType }

// Validate requires a source or a page id and a known format.
func (cmd RenderPageCommand) Validate() error {
	errs := validation.Errors{}
	if len(cmd.Source) == 0 && strings.TrimSpace(cmd.PageID) == "" {
		errs["page_id"] = validation.NewError("pagetree.render.page.source_required", "page_id or source is required")
	}
	if err := validation.Validate(cmd.Format, validation.By(func(value any) error {
		if _, err := pipeline.ParseFormat(value.(string)); err != nil {
			return validation.NewError("pagetree.render.page.format_invalid", "format must be html or markdown")
		}
		return nil
	})); err != nil {
		errs["format"] = err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PreviewMarkdownCommand renders exported Markdown back to HTML.
type PreviewMarkdownCommand struct {
	Source         []byte          `json:"source"`
	ResultCallback PreviewCallback `json:"-"`
}

// Type implements command.Message.
func (PreviewMarkdownCommand) Type() string { return previewMarkdownMessageType }

// Validate ensures source input is present.
func (cmd PreviewMarkdownCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Source, validation.Required.Error("source is required")),
	)
}
