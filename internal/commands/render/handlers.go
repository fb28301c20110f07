package rendercmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	mdbackend "github.com/goliatone/go-pagetree/internal/backend/markdown"
	"github.com/goliatone/go-pagetree/internal/commands"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/internal/pipeline"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

const (
	renderOperation  = "render.page"
	previewOperation = "render.preview_markdown"
)

var (
	// ErrFetchFeatureDisabled is returned when a command needs a fetch but the feature is off.
	ErrFetchFeatureDisabled = errors.New("render command: fetch feature disabled")
	// ErrMarkdownFeatureDisabled is returned when a Markdown preview is requested while disabled.
	ErrMarkdownFeatureDisabled = errors.New("render command: markdown feature disabled")
)

var (
	_ command.Commander[RenderPageCommand]      = (*RenderPageHandler)(nil)
	_ command.Commander[PreviewMarkdownCommand] = (*PreviewMarkdownHandler)(nil)
)

// PageRenderer is the subset of the pipeline service used by the render handler.
type PageRenderer interface {
	Render(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// RenderPageHandler renders page chunks through the shared command handler foundation.
type RenderPageHandler struct {
	inner *commands.Handler[RenderPageCommand]
}

// NewRenderPageHandler creates a handler bound to service.
func NewRenderPageHandler(service PageRenderer, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[RenderPageCommand]) *RenderPageHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg RenderPageCommand) error {
		if len(msg.Source) == 0 && !gates.fetchEnabled() {
			return ErrFetchFeatureDisabled
		}
		format, err := pipeline.ParseFormat(msg.Format)
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.Render(ctx, pipeline.Request{
			PageID: msg.PageID,
			Source: msg.Source,
			RootID: msg.RootID,
			Format: format,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"root_id":     result.RootID,
				"format":      string(result.Format),
				"bytes":       len(result.Output),
				"fingerprint": result.Fingerprint.String(),
			}).Info("render.command.page.completed")
		}
		if msg.ResultCallback != nil {
			msg.ResultCallback(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderPageCommand]{
		commands.WithLogger[RenderPageCommand](baseLogger),
		commands.WithOperation[RenderPageCommand](renderOperation),
		commands.WithMessageFields(func(msg RenderPageCommand) map[string]any {
			fields := map[string]any{}
			if msg.PageID != "" {
				fields["page_id"] = msg.PageID
			}
			if msg.RootID != "" {
				fields["root_id"] = msg.RootID
			}
			if msg.Format != "" {
				fields["format"] = msg.Format
			}
			if len(msg.Source) > 0 {
				fields["source_bytes"] = len(msg.Source)
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RenderPageCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderPageHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RenderPageCommand].
func (h *RenderPageHandler) Execute(ctx context.Context, msg RenderPageCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PreviewMarkdownHandler renders Markdown documents to HTML for previews.
type PreviewMarkdownHandler struct {
	inner *commands.Handler[PreviewMarkdownCommand]
}

// NewPreviewMarkdownHandler creates a preview handler. A nil parser falls back
// to the goldmark defaults.
func NewPreviewMarkdownHandler(parser interfaces.MarkdownParser, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[PreviewMarkdownCommand]) *PreviewMarkdownHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg PreviewMarkdownCommand) error {
		if !gates.markdownEnabled() {
			return ErrMarkdownFeatureDisabled
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := mdbackend.Preview(msg.Source, parser)
		if err != nil {
			return err
		}
		if msg.ResultCallback != nil {
			msg.ResultCallback(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[PreviewMarkdownCommand]{
		commands.WithLogger[PreviewMarkdownCommand](baseLogger),
		commands.WithOperation[PreviewMarkdownCommand](previewOperation),
		commands.WithMessageFields(func(msg PreviewMarkdownCommand) map[string]any {
			return map[string]any{"source_bytes": len(msg.Source)}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PreviewMarkdownCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PreviewMarkdownHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PreviewMarkdownCommand].
func (h *PreviewMarkdownHandler) Execute(ctx context.Context, msg PreviewMarkdownCommand) error {
	return h.inner.Execute(ctx, msg)
}
