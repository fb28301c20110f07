package pagetree

import (
	"context"
	"errors"
	"strings"

	htmlbackend "github.com/goliatone/go-pagetree/internal/backend/html"
	mdbackend "github.com/goliatone/go-pagetree/internal/backend/markdown"
	"github.com/goliatone/go-pagetree/internal/commands"
	rendercmd "github.com/goliatone/go-pagetree/internal/commands/render"
	"github.com/goliatone/go-pagetree/internal/fetch"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/internal/logging/console"
	"github.com/goliatone/go-pagetree/internal/logging/gologger"
	"github.com/goliatone/go-pagetree/internal/pipeline"
	"github.com/goliatone/go-pagetree/internal/render"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

// ErrMarkdownDisabled is returned by PreviewMarkdown when the markdown feature is off.
var ErrMarkdownDisabled = errors.New("pagetree: markdown feature disabled")

// CommandRegistry receives command handlers when the commands feature is enabled.
type CommandRegistry = rendercmd.CommandRegistry

// CommandHandlers groups the render command handlers.
type CommandHandlers = rendercmd.HandlerSet

// RenderPageCommand exports the render command message.
type RenderPageCommand = rendercmd.RenderPageCommand

// PreviewMarkdownCommand exports the preview command message.
type PreviewMarkdownCommand = rendercmd.PreviewMarkdownCommand

// Option overrides Module wiring.
type Option func(*moduleOptions)

type moduleOptions struct {
	provider interfaces.LoggerProvider
	fetcher  interfaces.PageFetcher
	registry CommandRegistry
	fetchOps []fetch.Option
}

// WithLoggerProvider replaces the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithFetcher replaces the HTTP page chunk client.
func WithFetcher(fetcher interfaces.PageFetcher) Option {
	return func(o *moduleOptions) {
		o.fetcher = fetcher
	}
}

// WithFetchOptions forwards options to the HTTP page chunk client.
func WithFetchOptions(opts ...fetch.Option) Option {
	return func(o *moduleOptions) {
		o.fetchOps = append(o.fetchOps, opts...)
	}
}

// WithCommandRegistry registers command handlers on reg during New.
func WithCommandRegistry(reg CommandRegistry) Option {
	return func(o *moduleOptions) {
		o.registry = reg
	}
}

// Module is the top level runtime façade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
	service  *pipeline.Service
	html     *htmlbackend.Backend
	markdown *mdbackend.Backend
	parser   *mdbackend.GoldmarkParser
	fetcher  interfaces.PageFetcher
	commands *rendercmd.HandlerSet
}

// New validates cfg and wires the pipeline, backends and optional features.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	options := moduleOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	provider := options.provider
	if provider == nil && cfg.Features.Logger {
		built, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	m := &Module{
		cfg:      cfg,
		provider: provider,
		logger:   logging.ModuleLogger(provider, "pagetree"),
		html:     htmlbackend.New(htmlOptions(cfg.HTML)),
		markdown: mdbackend.New(markdownOptions(cfg.HTML)),
		parser: mdbackend.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Markdown.Parser.Extensions,
			HardWraps:  cfg.Markdown.Parser.HardWraps,
			SafeMode:   cfg.Markdown.Parser.SafeMode,
		}),
	}

	m.fetcher = options.fetcher
	if m.fetcher == nil && cfg.Features.Fetch && cfg.Fetch.Enabled {
		fetchOpts := append([]fetch.Option{fetch.WithLogger(logging.FetchLogger(provider))}, options.fetchOps...)
		m.fetcher = fetch.NewClient(fetch.Config{
			Endpoint:  cfg.Fetch.Endpoint,
			Limit:     cfg.Fetch.Limit,
			Timeout:   cfg.Fetch.Timeout,
			UserAgent: cfg.Fetch.UserAgent,
			Token:     cfg.Fetch.Token,
		}, fetchOpts...)
	}

	serviceOpts := []pipeline.Option{pipeline.WithLoggerProvider(provider)}
	if m.fetcher != nil {
		serviceOpts = append(serviceOpts, pipeline.WithFetcher(m.fetcher))
	}
	m.service = pipeline.NewService(pipeline.Config{
		MaxDepth:           cfg.Render.MaxDepth,
		NestedPageChildren: cfg.Render.NestedPageChildren,
		HTML:               htmlOptions(cfg.HTML),
		Markdown:           markdownOptions(cfg.HTML),
		FrontMatter:        cfg.Markdown.FrontMatter,
	}, serviceOpts...)

	if cfg.Features.Commands && cfg.Commands.Enabled {
		set, err := rendercmd.RegisterRenderCommands(options.registry, m.service, provider, rendercmd.FeatureGates{
			FetchEnabled:    func() bool { return m.fetcher != nil },
			MarkdownEnabled: m.markdownEnabled,
		},
			rendercmd.WithMarkdownParser(m.parser),
			rendercmd.WithRenderHandlerOptions(commands.WithTimeout[RenderPageCommand](cfg.Commands.Timeout)),
			rendercmd.WithPreviewHandlerOptions(commands.WithTimeout[PreviewMarkdownCommand](cfg.Commands.Timeout)),
		)
		if err != nil {
			return nil, err
		}
		m.commands = set
	}

	m.logger.Debug("pagetree.module.ready",
		"fetch", m.fetcher != nil,
		"commands", m.commands != nil,
		"markdown", m.markdownEnabled(),
	)
	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Decode parses raw. A non-empty pageID selects the root page; otherwise
// Config.Decoder.PageID is used, then inference.
func (m *Module) Decode(ctx context.Context, raw []byte, pageID string) (*Document, error) {
	if strings.TrimSpace(pageID) == "" {
		pageID = m.cfg.Decoder.PageID
	}
	return m.service.Decode(ctx, raw, pageID)
}

// FetchPage loads and decodes pageID through the configured fetcher.
func (m *Module) FetchPage(ctx context.Context, pageID string) (*Document, error) {
	return m.service.Fetch(ctx, pageID)
}

// LoadPageChunk returns the raw payload for pageID without decoding it.
func (m *Module) LoadPageChunk(ctx context.Context, pageID string) ([]byte, error) {
	if m.fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if strings.TrimSpace(pageID) == "" {
		return nil, ErrNoSource
	}
	return m.fetcher.LoadPageChunk(ctx, pageID)
}

// Render runs the full decode and render pipeline.
func (m *Module) Render(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.PageID) == "" && len(req.Source) > 0 {
		req.PageID = m.cfg.Decoder.PageID
	}
	return m.service.Render(ctx, req)
}

// RenderHTML renders rootID (the page root when blank) to markup.
func (m *Module) RenderHTML(doc *Document, rootID string) Tag {
	return m.html.Render(doc, rootID, m.renderOptions()...)
}

// RenderMarkdown renders rootID to Markdown without front matter.
func (m *Module) RenderMarkdown(doc *Document, rootID string) string {
	return m.markdown.Render(doc, rootID, m.renderOptions()...)
}

// ExportMarkdown renders rootID to a Markdown file, with front matter when
// Config.Markdown.FrontMatter is set.
func (m *Module) ExportMarkdown(doc *Document, rootID string) ([]byte, error) {
	return m.markdown.Export(doc, rootID, mdbackend.ExportOptions{
		FrontMatter: m.cfg.Markdown.FrontMatter,
		Render:      m.renderOptions(),
	})
}

// PreviewMarkdown renders a Markdown document to HTML with the configured parser.
func (m *Module) PreviewMarkdown(source []byte) (*PreviewResult, error) {
	if !m.markdownEnabled() {
		return nil, ErrMarkdownDisabled
	}
	return mdbackend.Preview(source, m.parser)
}

// Commands returns the command handlers, or nil when the commands feature is off.
func (m *Module) Commands() *CommandHandlers {
	return m.commands
}

func (m *Module) markdownEnabled() bool {
	return m.cfg.Features.Markdown && m.cfg.Markdown.Enabled
}

func (m *Module) renderOptions() []render.Option {
	return []render.Option{
		render.WithMaxDepth(m.cfg.Render.MaxDepth),
		render.WithNestedPageChildren(m.cfg.Render.NestedPageChildren),
		render.WithLogger(logging.RenderLogger(m.provider)),
	}
}

func htmlOptions(cfg HTMLConfig) htmlbackend.Options {
	return htmlbackend.Options{
		ClassPrefix:     cfg.ClassPrefix,
		ImageProxy:      cfg.ImageProxy,
		PageLinkBase:    cfg.PageLinkBase,
		LinkNestedPages: cfg.LinkNestedPages,
		AllowedSchemes:  cfg.AllowedSchemes,
	}
}

func markdownOptions(cfg HTMLConfig) mdbackend.Options {
	return mdbackend.Options{
		ImageProxy:      cfg.ImageProxy,
		PageLinkBase:    cfg.PageLinkBase,
		LinkNestedPages: cfg.LinkNestedPages,
		AllowedSchemes:  cfg.AllowedSchemes,
	}
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	}
}
