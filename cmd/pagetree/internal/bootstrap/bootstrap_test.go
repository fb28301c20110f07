package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-pagetree"
	"github.com/goliatone/go-pagetree/pkg/testsupport"
)

func TestLoadConfigEnablesRequestedFeatures(t *testing.T) {
	cfg, err := LoadConfig(Options{Fetch: true, Markdown: true})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Features.Fetch || !cfg.Fetch.Enabled {
		t.Fatalf("expected fetch enabled, got %+v", cfg.Fetch)
	}
	if !cfg.Features.Markdown || !cfg.Markdown.Enabled {
		t.Fatalf("expected markdown enabled, got %+v", cfg.Markdown)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagetree.yaml")
	if err := os.WriteFile(path, []byte("html:\n  class_prefix: docs\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HTML.ClassPrefix != "docs" {
		t.Fatalf("expected class prefix from file, got %q", cfg.HTML.ClassPrefix)
	}

	if _, err := LoadConfig(Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestBuildModuleVerboseLogsToWriter(t *testing.T) {
	var buf bytes.Buffer
	module, err := BuildModule(Options{Verbose: true, LogWriter: &buf})
	if err != nil {
		t.Fatalf("BuildModule: %v", err)
	}
	raw := testsupport.LoadFixture(t, testsupport.PageChunk)
	if _, err := module.Render(context.Background(), pagetree.Request{Source: raw}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "pipeline.render.completed") {
		t.Fatalf("expected debug log output, got:\n%s", buf.String())
	}
}
