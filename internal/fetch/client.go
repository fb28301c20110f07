// Package fetch loads page chunk payloads over HTTP.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-pagetree/internal/identity"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

const (
	DefaultEndpoint = "https://www.notion.so/api/v3/loadPageChunk"
	DefaultLimit    = 100
	DefaultTimeout  = 30 * time.Second

	TextCodeInvalidPageID = "PAGE_ID_INVALID"
	TextCodeFetchFailed   = "PAGE_FETCH_FAILED"
	TextCodeFetchStatus   = "PAGE_FETCH_STATUS"
	TextCodeFetchTooLarge = "PAGE_FETCH_TOO_LARGE"

	DefaultMaxResponseBytes int64 = 32 << 20
)

var (
	// ErrUnexpectedStatus reports a non-2xx response.
	ErrUnexpectedStatus = errors.New("fetch: unexpected response status")
	// ErrResponseTooLarge reports a body above Config.MaxResponseBytes.
	ErrResponseTooLarge = errors.New("fetch: response too large")
)

// Config captures the client settings.
type Config struct {
	Endpoint  string
	Limit     int
	Timeout   time.Duration
	UserAgent string
	// Token is sent as the token_v2 cookie for private workspaces.
	Token            string
	MaxResponseBytes int64
}

// Option customises the client.
type Option func(*Client)

// WithHTTPClient overrides the transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client implements interfaces.PageFetcher.
type Client struct {
	cfg    Config
	http   *http.Client
	logger interfaces.Logger
}

// NewClient builds a client. Zero values in cfg take the package defaults.
func NewClient(cfg Config, opts ...Option) *Client {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = DefaultMaxResponseBytes
	}
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

type cursorPointer struct {
	Table string `json:"table"`
	ID    string `json:"id"`
	Index int    `json:"index"`
}

type cursor struct {
	Stack [][]cursorPointer `json:"stack"`
}

type pageChunkRequest struct {
	PageID          string `json:"pageId"`
	Limit           int    `json:"limit"`
	Cursor          cursor `json:"cursor"`
	ChunkNumber     int    `json:"chunkNumber"`
	VerticalColumns bool   `json:"verticalColumns"`
}

func newPageChunkRequest(pageID string, limit int) pageChunkRequest {
	return pageChunkRequest{
		PageID: pageID,
		Limit:  limit,
		Cursor: cursor{Stack: [][]cursorPointer{{{Table: "block", ID: pageID, Index: 0}}}},
	}
}

// LoadPageChunk posts a loadPageChunk request for pageID and returns the raw
// response body. pageID may be dashed, compact, or a page URL.
func (c *Client) LoadPageChunk(ctx context.Context, pageID string) ([]byte, error) {
	normalized, err := identity.NormalizePageID(pageID)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "page id is not valid").
			WithTextCode(TextCodeInvalidPageID).
			WithMetadata(map[string]any{"page_id": pageID})
	}

	logger := c.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	} else {
		ctx = context.Background()
	}

	payload, err := json.Marshal(newPageChunkRequest(normalized, c.cfg.Limit))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "encode page chunk request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "build page chunk request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if c.cfg.Token != "" {
		req.AddCookie(&http.Cookie{Name: "token_v2", Value: c.cfg.Token})
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("fetch.page_chunk.failed", "page_id", normalized, "error", err)
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "page chunk request failed").
			WithTextCode(TextCodeFetchFailed).
			WithMetadata(map[string]any{"page_id": normalized, "endpoint": c.cfg.Endpoint})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxResponseBytes+1))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "read page chunk response").
			WithTextCode(TextCodeFetchFailed).
			WithMetadata(map[string]any{"page_id": normalized})
	}
	if int64(len(body)) > c.cfg.MaxResponseBytes {
		logger.Warn("fetch.page_chunk.too_large", "page_id", normalized, "limit_bytes", c.cfg.MaxResponseBytes)
		return nil, goerrors.Wrap(ErrResponseTooLarge, goerrors.CategoryExternal,
			fmt.Sprintf("page chunk response exceeds %d bytes", c.cfg.MaxResponseBytes)).
			WithTextCode(TextCodeFetchTooLarge).
			WithMetadata(map[string]any{"page_id": normalized, "limit_bytes": c.cfg.MaxResponseBytes})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("fetch.page_chunk.status", "page_id", normalized, "status", resp.StatusCode)
		return nil, goerrors.Wrap(ErrUnexpectedStatus, goerrors.CategoryExternal,
			fmt.Sprintf("page chunk request returned %d", resp.StatusCode)).
			WithTextCode(TextCodeFetchStatus).
			WithMetadata(map[string]any{"page_id": normalized, "status": resp.StatusCode})
	}

	logger.Debug("fetch.page_chunk.completed",
		"page_id", normalized,
		"bytes", len(body),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return body, nil
}

var _ interfaces.PageFetcher = (*Client)(nil)
