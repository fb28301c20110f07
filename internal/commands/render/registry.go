package rendercmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-pagetree/internal/commands"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the handlers produced by RegisterRenderCommands.
type HandlerSet struct {
	Render  *RenderPageHandler
	Preview *PreviewMarkdownHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	parser             interfaces.MarkdownParser
	renderHandlerOpts  []commands.HandlerOption[RenderPageCommand]
	previewHandlerOpts []commands.HandlerOption[PreviewMarkdownCommand]
}

// WithMarkdownParser sets the parser used by the preview handler.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(cfg *options) {
		cfg.parser = parser
	}
}

// WithRenderHandlerOptions forwards options to the RenderPageHandler constructor.
func WithRenderHandlerOptions(opts ...commands.HandlerOption[RenderPageCommand]) Option {
	return func(cfg *options) {
		cfg.renderHandlerOpts = append(cfg.renderHandlerOpts, opts...)
	}
}

// WithPreviewHandlerOptions forwards options to the PreviewMarkdownHandler constructor.
func WithPreviewHandlerOptions(opts ...commands.HandlerOption[PreviewMarkdownCommand]) Option {
	return func(cfg *options) {
		cfg.previewHandlerOpts = append(cfg.previewHandlerOpts, opts...)
	}
}

// RegisterRenderCommands builds the render command handlers and registers them
// with reg when it is non-nil.
func RegisterRenderCommands(reg CommandRegistry, service PageRenderer, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("render command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "render")

	renderHandler := NewRenderPageHandler(service, logger, gates, cfg.renderHandlerOpts...)
	previewHandler := NewPreviewMarkdownHandler(cfg.parser, logger, gates, cfg.previewHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(renderHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(previewHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Render:  renderHandler,
		Preview: previewHandler,
	}, nil
}

// RegisterRenderCron schedules msg on reg using cfg. The handler runs with a
// background context, so the command timeout bounds each run.
func RegisterRenderCron(reg CronRegistrar, handler *RenderPageHandler, cfg command.HandlerConfig, msg RenderPageCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
