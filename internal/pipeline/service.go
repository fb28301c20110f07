// Package pipeline wires fetch, decode and render into a single call.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	htmlbackend "github.com/goliatone/go-pagetree/internal/backend/html"
	mdbackend "github.com/goliatone/go-pagetree/internal/backend/markdown"
	"github.com/goliatone/go-pagetree/internal/decoder"
	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/identity"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/internal/render"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

var (
	ErrNoSource        = errors.New("pipeline: either a source payload or a page id is required")
	ErrFetcherRequired = errors.New("pipeline: page fetch requested but no fetcher is configured")
	ErrUnknownFormat   = errors.New("pipeline: unknown output format")
	ErrRootNotFound    = errors.New("pipeline: root block not found")
)

// Format names an output backend.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts html, markdown and md, case-insensitively. Blank
// values select HTML.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, value)
	}
}

// Config controls decoding and rendering.
type Config struct {
	MaxDepth           int
	NestedPageChildren bool
	HTML               htmlbackend.Options
	Markdown           mdbackend.Options
	FrontMatter        bool
}

// DefaultConfig mirrors the runtime configuration defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:           render.DefaultMaxDepth,
		NestedPageChildren: true,
		HTML:               htmlbackend.DefaultOptions(),
		Markdown:           mdbackend.DefaultOptions(),
		FrontMatter:        true,
	}
}

// Request describes one render. Source wins over PageID; PageID alone
// triggers a fetch.
type Request struct {
	PageID string
	Source []byte
	RootID string
	Format Format
}

// Result carries the decoded document and the rendered output.
type Result struct {
	Document    *document.Document
	RootID      string
	Format      Format
	Output      []byte
	Fingerprint uuid.UUID
}

// Option customises the service.
type Option func(*Service)

// WithFetcher enables page id requests.
func WithFetcher(fetcher interfaces.PageFetcher) Option {
	return func(s *Service) {
		s.fetcher = fetcher
	}
}

// WithLoggerProvider sets the provider used for pipeline, decoder and render
// loggers.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *Service) {
		s.provider = provider
	}
}

// Service decodes page chunks and renders them. It is safe for concurrent use.
type Service struct {
	cfg      Config
	fetcher  interfaces.PageFetcher
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
	decoder  *decoder.Decoder
	html     *htmlbackend.Backend
	markdown *mdbackend.Backend
}

func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.logger = logging.PipelineLogger(s.provider)
	s.decoder = decoder.New(decoder.WithLogger(logging.DecoderLogger(s.provider)))
	s.html = htmlbackend.New(cfg.HTML)
	s.markdown = mdbackend.New(cfg.Markdown)
	return s
}

// Decode decodes raw. A non-empty pageID must exist in the block table.
func (s *Service) Decode(ctx context.Context, raw []byte, pageID string) (*document.Document, error) {
	var opts []decoder.Option
	if id := strings.TrimSpace(pageID); id != "" {
		if normalized, err := identity.NormalizePageID(id); err == nil {
			id = normalized
		}
		opts = append(opts, decoder.WithPageID(id))
	}
	return s.decoder.Decode(ctx, raw, opts...)
}

// Fetch loads and decodes pageID.
func (s *Service) Fetch(ctx context.Context, pageID string) (*document.Document, error) {
	raw, err := s.load(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return s.Decode(ctx, raw, pageID)
}

// Render resolves the request source, decodes it and renders it.
func (s *Service) Render(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := req.Source
	if len(raw) == 0 {
		loaded, err := s.load(ctx, req.PageID)
		if err != nil {
			return nil, err
		}
		raw = loaded
	}
	doc, err := s.Decode(ctx, raw, req.PageID)
	if err != nil {
		return nil, err
	}
	return s.RenderDocument(ctx, doc, req.RootID, req.Format)
}

// RenderDocument renders an already decoded document.
func (s *Service) RenderDocument(ctx context.Context, doc *document.Document, rootID string, format Format) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is nil", ErrRootNotFound)
	}
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(rootID)
	if root == "" {
		root = doc.PageID
	}
	if _, ok := doc.Blocks.Lookup(root); !ok {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	logger := logging.WithPageContext(s.logger.WithContext(ctx), doc.PageID, root, string(format))
	renderOpts := []render.Option{
		render.WithMaxDepth(s.cfg.MaxDepth),
		render.WithNestedPageChildren(s.cfg.NestedPageChildren),
		render.WithLogger(logging.RenderLogger(s.provider)),
	}

	var output []byte
	switch format {
	case FormatMarkdown:
		output, err = s.markdown.Export(doc, root, mdbackend.ExportOptions{
			FrontMatter: s.cfg.FrontMatter,
			Render:      renderOpts,
		})
		if err != nil {
			return nil, err
		}
	default:
		output = []byte(s.html.Engine(doc.Blocks, renderOpts...).Render(root))
	}

	digest := sha256.Sum256(output)
	fingerprint := identity.RenderFingerprint(doc.PageID, root, string(format), hex.EncodeToString(digest[:]))
	logger.Info("pipeline.render.completed", "bytes", len(output), "fingerprint", fingerprint.String())

	return &Result{
		Document:    doc,
		RootID:      root,
		Format:      format,
		Output:      output,
		Fingerprint: fingerprint,
	}, nil
}

func (s *Service) load(ctx context.Context, pageID string) ([]byte, error) {
	if strings.TrimSpace(pageID) == "" {
		return nil, ErrNoSource
	}
	if s.fetcher == nil {
		return nil, ErrFetcherRequired
	}
	s.logger.Debug("pipeline.fetch.started", "page_id", pageID)
	return s.fetcher.LoadPageChunk(ctx, pageID)
}
