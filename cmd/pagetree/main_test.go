package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-pagetree"
	"github.com/goliatone/go-pagetree/cmd/pagetree/internal/bootstrap"
	"github.com/goliatone/go-pagetree/pkg/testsupport"
)

var fixturePath = testsupport.FixturePath(testsupport.PageChunk)

type stubFetcher struct {
	payload []byte
	calls   []string
}

func (s *stubFetcher) LoadPageChunk(_ context.Context, pageID string) ([]byte, error) {
	s.calls = append(s.calls, pageID)
	return s.payload, nil
}

func runCLI(t *testing.T, build bootstrap.Builder, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(build)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fetchingBuilder(fetcher *stubFetcher, seen *bootstrap.Options) bootstrap.Builder {
	return func(opts bootstrap.Options) (*pagetree.Module, error) {
		if seen != nil {
			*seen = opts
		}
		opts.ModuleOptions = append(opts.ModuleOptions, pagetree.WithFetcher(fetcher))
		return bootstrap.BuildModule(opts)
	}
}

func TestRenderCommandWritesHTML(t *testing.T) {
	out, err := runCLI(t, bootstrap.BuildModule, "", "render", "--input", fixturePath)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `<h1 class="notion-page-block">Field Notes</h1>`) {
		t.Fatalf("unexpected html output:\n%s", out)
	}
}

func TestRenderCommandReadsStdinAndWritesMarkdownFile(t *testing.T) {
	raw, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	target := filepath.Join(t.TempDir(), "page.md")

	out, err := runCLI(t, bootstrap.BuildModule, string(raw), "render", "-i", "-", "-f", "md", "-r", "h1", "-o", target)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout when writing a file, got %q", out)
	}
	written, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(written), "# Getting Started") {
		t.Fatalf("unexpected markdown output:\n%s", written)
	}
}

func TestRenderCommandFetchesWhenNoInput(t *testing.T) {
	raw, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	fetcher := &stubFetcher{payload: raw}
	var seen bootstrap.Options

	out, err := runCLI(t, fetchingBuilder(fetcher, &seen), "", "render", "--page", "p1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !seen.Fetch {
		t.Fatal("expected fetch feature requested")
	}
	if len(fetcher.calls) != 1 || !strings.Contains(out, "Field Notes") {
		t.Fatalf("unexpected fetch render calls=%v out=%s", fetcher.calls, out)
	}
}

func TestRenderCommandRequiresSource(t *testing.T) {
	if _, err := runCLI(t, bootstrap.BuildModule, "", "render"); err == nil {
		t.Fatal("expected error without --input or --page")
	}
	if _, err := runCLI(t, bootstrap.BuildModule, "", "render", "-i", fixturePath, "-f", "pdf"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestFetchCommandSummarisesAndWritesRaw(t *testing.T) {
	raw, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	fetcher := &stubFetcher{payload: raw}

	out, err := runCLI(t, fetchingBuilder(fetcher, nil), "", "fetch", "--page", "p1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !strings.Contains(out, "Page: p1\n") || !strings.Contains(out, "Title: Field Notes\n") {
		t.Fatalf("unexpected summary:\n%s", out)
	}

	out, err = runCLI(t, fetchingBuilder(fetcher, nil), "", "fetch", "--page", "p1", "--raw")
	if err != nil {
		t.Fatalf("fetch raw: %v", err)
	}
	if out != string(raw) {
		t.Fatal("expected raw payload written unchanged")
	}

	if _, err := runCLI(t, fetchingBuilder(fetcher, nil), "", "fetch"); err == nil {
		t.Fatal("expected error when --page is missing")
	}
}

func TestPreviewCommandRendersMarkdown(t *testing.T) {
	out, err := runCLI(t, bootstrap.BuildModule, "---\ntitle: Notes\n---\n# Hello\n", "preview", "--input", "-")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.HasPrefix(out, "<!-- title: Notes -->\n") || !strings.Contains(out, "Hello</h1>") {
		t.Fatalf("unexpected preview output:\n%s", out)
	}
}
