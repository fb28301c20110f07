package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-pagetree/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RejectsNonPositiveMaxDepth(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Render.MaxDepth = 0

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrRenderMaxDepthInvalid) {
		t.Fatalf("expected ErrRenderMaxDepthInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresClassPrefix(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.HTML.ClassPrefix = "  "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrHTMLClassPrefixRequired) {
		t.Fatalf("expected ErrHTMLClassPrefixRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsRelativeImageProxy(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.HTML.ImageProxy = "/image/"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrHTMLImageProxyInvalid) {
		t.Fatalf("expected ErrHTMLImageProxyInvalid, got %v", err)
	}
}

func TestConfigValidate_FetchRequiresFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Fetch.Enabled = true

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrFetchFeatureRequired) {
		t.Fatalf("expected ErrFetchFeatureRequired, got %v", err)
	}

	cfg.Features.Fetch = true
	cfg.Fetch.Endpoint = "ftp://example.com"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrFetchEndpointInvalid) {
		t.Fatalf("expected ErrFetchEndpointInvalid, got %v", err)
	}

	cfg.Fetch.Endpoint = "https://example.com/api"
	cfg.Fetch.Limit = 0
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrFetchLimitInvalid) {
		t.Fatalf("expected ErrFetchLimitInvalid, got %v", err)
	}
}

func TestConfigValidate_CommandsRequireFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Commands.Enabled = true

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrCommandsFeatureRequired) {
		t.Fatalf("expected ErrCommandsFeatureRequired, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := runtimeconfig.Parse([]byte(`
render:
  max_depth: 8
html:
  class_prefix: docs
fetch:
  timeout: 5s
features:
  markdown: true
markdown:
  enabled: true
  parser:
    extensions: [gfm]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Render.MaxDepth != 8 || !cfg.Render.NestedPageChildren {
		t.Fatalf("expected overlay on render defaults, got %+v", cfg.Render)
	}
	if cfg.HTML.ClassPrefix != "docs" || cfg.HTML.ImageProxy == "" {
		t.Fatalf("expected overlay on html defaults, got %+v", cfg.HTML)
	}
	if cfg.Fetch.Timeout != 5*time.Second || cfg.Fetch.Limit != 100 {
		t.Fatalf("expected fetch overlay, got %+v", cfg.Fetch)
	}
	if len(cfg.Markdown.Parser.Extensions) != 1 || !cfg.Markdown.FrontMatter {
		t.Fatalf("expected markdown overlay, got %+v", cfg.Markdown)
	}
}

func TestParseValidates(t *testing.T) {
	_, err := runtimeconfig.Parse([]byte("render:\n  max_depth: -1\n"))
	if !errors.Is(err, runtimeconfig.ErrRenderMaxDepthInvalid) {
		t.Fatalf("expected ErrRenderMaxDepthInvalid, got %v", err)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagetree.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := runtimeconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Provider != "console" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}

	if _, err := runtimeconfig.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
