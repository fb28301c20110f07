package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrRenderMaxDepthInvalid guards the traversal depth cap.
var ErrRenderMaxDepthInvalid = errors.New("pagetree config: render max depth must be positive")

// ErrHTMLClassPrefixRequired ensures generated class names stay namespaced.
var ErrHTMLClassPrefixRequired = errors.New("pagetree config: html class prefix is required")

// ErrHTMLImageProxyInvalid reports an image proxy that is not an absolute http(s) URL.
var ErrHTMLImageProxyInvalid = errors.New("pagetree config: html image proxy must be an absolute http(s) url")

var ErrHTMLSchemesRequired = errors.New("pagetree config: html link schemes must not be empty")
var ErrMarkdownFeatureRequired = errors.New("pagetree config: markdown feature must be enabled to configure markdown")
var ErrFetchFeatureRequired = errors.New("pagetree config: fetch feature must be enabled to configure fetch")
var ErrFetchEndpointRequired = errors.New("pagetree config: fetch endpoint is required when fetch is enabled")
var ErrFetchEndpointInvalid = errors.New("pagetree config: fetch endpoint must be an absolute http(s) url")
var ErrFetchLimitInvalid = errors.New("pagetree config: fetch limit must be positive")
var ErrFetchTimeoutInvalid = errors.New("pagetree config: fetch timeout must be zero or positive")
var ErrCommandsFeatureRequired = errors.New("pagetree config: commands feature must be enabled to configure commands")
var ErrCommandsTimeoutInvalid = errors.New("pagetree config: command timeout must be zero or positive")
var ErrLoggingProviderRequired = errors.New("pagetree config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("pagetree config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("pagetree config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("pagetree config: logging format is invalid")

// Config aggregates feature flags and per-component options.
type Config struct {
	Decoder  DecoderConfig  `yaml:"decoder"`
	Render   RenderConfig   `yaml:"render"`
	HTML     HTMLConfig     `yaml:"html"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Commands CommandsConfig `yaml:"commands"`
	Features Features       `yaml:"features"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DecoderConfig captures decoder defaults.
type DecoderConfig struct {
	PageID string `yaml:"page_id"`
}

// RenderConfig bounds the traversal.
type RenderConfig struct {
	MaxDepth           int  `yaml:"max_depth"`
	NestedPageChildren bool `yaml:"nested_page_children"`
}

// HTMLConfig configures the reference markup backend.
type HTMLConfig struct {
	ClassPrefix     string   `yaml:"class_prefix"`
	ImageProxy      string   `yaml:"image_proxy"`
	PageLinkBase    string   `yaml:"page_link_base"`
	LinkNestedPages bool     `yaml:"link_nested_pages"`
	AllowedSchemes  []string `yaml:"allowed_schemes"`
}

// MarkdownConfig configures Markdown export and preview.
type MarkdownConfig struct {
	Enabled     bool                 `yaml:"enabled"`
	FrontMatter bool                 `yaml:"front_matter"`
	Parser      MarkdownParserConfig `yaml:"parser"`
}

// MarkdownParserConfig mirrors interfaces.ParseOptions.
type MarkdownParserConfig struct {
	Extensions []string `yaml:"extensions"`
	HardWraps  bool     `yaml:"hard_wraps"`
	SafeMode   bool     `yaml:"safe_mode"`
}

// FetchConfig configures the page chunk client.
type FetchConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Endpoint  string        `yaml:"endpoint"`
	Limit     int           `yaml:"limit"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	Token     string        `yaml:"token"`
}

// CommandsConfig captures command-layer behaviour.
type CommandsConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
}

// Features toggles optional modules.
type Features struct {
	Fetch    bool `yaml:"fetch"`
	Markdown bool `yaml:"markdown"`
	Commands bool `yaml:"commands"`
	Logger   bool `yaml:"logger"`
}

// LoggingConfig captures provider-specific logging options.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns the settings used when no file is supplied.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			MaxDepth:           64,
			NestedPageChildren: true,
		},
		HTML: HTMLConfig{
			ClassPrefix:     "notion",
			ImageProxy:      "https://www.notion.so/image/",
			PageLinkBase:    "/",
			LinkNestedPages: true,
			AllowedSchemes:  []string{"http", "https", "mailto"},
		},
		Markdown: MarkdownConfig{
			FrontMatter: true,
		},
		Fetch: FetchConfig{
			Endpoint:  "https://www.notion.so/api/v3/loadPageChunk",
			Limit:     100,
			Timeout:   30 * time.Second,
			UserAgent: "go-pagetree",
		},
		Commands: CommandsConfig{
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Load reads a YAML file and overlays it on DefaultConfig.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pagetree config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse overlays YAML data on DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pagetree config: decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate performs consistency checks across sections.
func (cfg Config) Validate() error {
	if cfg.Render.MaxDepth <= 0 {
		return ErrRenderMaxDepthInvalid
	}
	if strings.TrimSpace(cfg.HTML.ClassPrefix) == "" {
		return ErrHTMLClassPrefixRequired
	}
	if proxy := strings.TrimSpace(cfg.HTML.ImageProxy); proxy != "" && !isHTTPURL(proxy) {
		return fmt.Errorf("%w: %s", ErrHTMLImageProxyInvalid, proxy)
	}
	if len(cfg.HTML.AllowedSchemes) == 0 {
		return ErrHTMLSchemesRequired
	}
	if cfg.Markdown.Enabled && !cfg.Features.Markdown {
		return ErrMarkdownFeatureRequired
	}
	if cfg.Fetch.Enabled {
		if !cfg.Features.Fetch {
			return ErrFetchFeatureRequired
		}
		endpoint := strings.TrimSpace(cfg.Fetch.Endpoint)
		if endpoint == "" {
			return ErrFetchEndpointRequired
		}
		if !isHTTPURL(endpoint) {
			return fmt.Errorf("%w: %s", ErrFetchEndpointInvalid, endpoint)
		}
		if cfg.Fetch.Limit <= 0 {
			return ErrFetchLimitInvalid
		}
	}
	if cfg.Fetch.Timeout < 0 {
		return ErrFetchTimeoutInvalid
	}
	if cfg.Commands.Enabled && !cfg.Features.Commands {
		return ErrCommandsFeatureRequired
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandsTimeoutInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func isHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
