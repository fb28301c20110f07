package rendercmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	mdbackend "github.com/goliatone/go-pagetree/internal/backend/markdown"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/internal/pipeline"
	"github.com/goliatone/go-pagetree/pkg/testsupport"
)

type stubRenderer struct {
	requests []pipeline.Request
	result   *pipeline.Result
	err      error
}

func (s *stubRenderer) Render(_ context.Context, req pipeline.Request) (*pipeline.Result, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &pipeline.Result{RootID: "p1", Format: req.Format, Output: []byte("<p>ok</p>")}, nil
}

func enabledGates() FeatureGates {
	return FeatureGates{
		FetchEnabled:    func() bool { return true },
		MarkdownEnabled: func() bool { return true },
	}
}

func TestRenderPageHandlerForwardsRequest(t *testing.T) {
	service := &stubRenderer{}
	handler := NewRenderPageHandler(service, logging.NoOp(), enabledGates())

	var got *pipeline.Result
	err := handler.Execute(context.Background(), RenderPageCommand{
		PageID:         "p1",
		RootID:         "h1",
		Format:         "md",
		ResultCallback: func(result *pipeline.Result) { got = result },
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(service.requests) != 1 {
		t.Fatalf("expected one render call, got %d", len(service.requests))
	}
	req := service.requests[0]
	if req.PageID != "p1" || req.RootID != "h1" || req.Format != pipeline.FormatMarkdown {
		t.Fatalf("unexpected request %+v", req)
	}
	if got == nil || got.RootID != "p1" {
		t.Fatalf("expected callback with result, got %+v", got)
	}
}

func TestRenderPageHandlerValidation(t *testing.T) {
	service := &stubRenderer{}
	handler := NewRenderPageHandler(service, nil, enabledGates())

	cases := map[string]RenderPageCommand{
		"missing source": {},
		"blank page id":  {PageID: "   "},
		"bad format":     {PageID: "p1", Format: "pdf"},
	}
	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			err := handler.Execute(context.Background(), msg)
			if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
	if len(service.requests) != 0 {
		t.Fatalf("expected no render calls, got %d", len(service.requests))
	}
}

func TestRenderPageHandlerFeatureGates(t *testing.T) {
	service := &stubRenderer{}
	handler := NewRenderPageHandler(service, nil, FeatureGates{
		FetchEnabled:    func() bool { return false },
		MarkdownEnabled: func() bool { return false },
	})

	err := handler.Execute(context.Background(), RenderPageCommand{PageID: "p1"})
	if !errors.Is(err, ErrFetchFeatureDisabled) {
		t.Fatalf("expected ErrFetchFeatureDisabled, got %v", err)
	}

	if err := handler.Execute(context.Background(), RenderPageCommand{Source: []byte(`{}`), Format: "markdown"}); err != nil {
		t.Fatalf("expected render from source to pass gates, got %v", err)
	}

	preview := NewPreviewMarkdownHandler(nil, nil, FeatureGates{MarkdownEnabled: func() bool { return false }})
	err = preview.Execute(context.Background(), PreviewMarkdownCommand{Source: []byte("# Hi")})
	if !errors.Is(err, ErrMarkdownFeatureDisabled) {
		t.Fatalf("expected ErrMarkdownFeatureDisabled, got %v", err)
	}
	if len(service.requests) != 1 {
		t.Fatalf("expected one render call, got %d", len(service.requests))
	}
}

func TestRenderPageHandlerPropagatesServiceErrors(t *testing.T) {
	service := &stubRenderer{err: pipeline.ErrRootNotFound}
	handler := NewRenderPageHandler(service, nil, enabledGates())

	err := handler.Execute(context.Background(), RenderPageCommand{PageID: "p1"})
	if !errors.Is(err, pipeline.ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestRenderPageHandlerWithPipeline(t *testing.T) {
	raw := testsupport.LoadFixture(t, testsupport.PageChunk)
	service := pipeline.NewService(pipeline.DefaultConfig())
	handler := NewRenderPageHandler(service, nil, enabledGates())

	var output string
	err := handler.Execute(context.Background(), RenderPageCommand{
		Source:         raw,
		ResultCallback: func(result *pipeline.Result) { output = string(result.Output) },
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(output, `<h1 class="notion-page-block">Field Notes</h1>`) {
		t.Fatalf("unexpected output:\n%s", output)
	}
}

func TestPreviewMarkdownHandler(t *testing.T) {
	handler := NewPreviewMarkdownHandler(nil, nil, enabledGates())

	var got *mdbackend.PreviewResult
	err := handler.Execute(context.Background(), PreviewMarkdownCommand{
		Source:         []byte("---\ntitle: Notes\n---\n# Hello\n"),
		ResultCallback: func(result *mdbackend.PreviewResult) { got = result },
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got == nil || got.FrontMatter.Title != "Notes" {
		t.Fatalf("expected front matter in preview, got %+v", got)
	}
	if !strings.Contains(string(got.HTML), "Hello</h1>") {
		t.Fatalf("expected heading html, got %s", got.HTML)
	}

	if err := handler.Execute(context.Background(), PreviewMarkdownCommand{}); !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation error for empty source, got %v", err)
	}
}
