package rendercmd

import (
	"context"
	"errors"
	"testing"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	"github.com/goliatone/go-pagetree/internal/commands"
	"github.com/goliatone/go-pagetree/internal/commands/fixtures"
	"github.com/goliatone/go-pagetree/internal/pipeline"
)

func TestRegisterRenderCommandsRegistersHandlers(t *testing.T) {
	reg := fixtures.NewRecordingRegistry()

	set, err := RegisterRenderCommands(reg, &stubRenderer{}, nil, enabledGates())
	if err != nil {
		t.Fatalf("register render commands: %v", err)
	}
	if set == nil || set.Render == nil || set.Preview == nil {
		t.Fatalf("expected render and preview handlers, got %#v", set)
	}
	if len(reg.Handlers) != 2 {
		t.Fatalf("expected two handlers registered, got %d", len(reg.Handlers))
	}
	if reg.Handlers[0] != set.Render || reg.Handlers[1] != set.Preview {
		t.Fatalf("unexpected registration order %#v", reg.Handlers)
	}
}

func TestRegisterRenderCommandsHandlerOptionsApplied(t *testing.T) {
	renderApplied := false
	previewApplied := false

	_, err := RegisterRenderCommands(nil, &stubRenderer{}, nil, enabledGates(),
		WithRenderHandlerOptions(func(h *commands.Handler[RenderPageCommand]) {
			renderApplied = true
		}),
		WithPreviewHandlerOptions(func(h *commands.Handler[PreviewMarkdownCommand]) {
			previewApplied = true
		}),
	)
	if err != nil {
		t.Fatalf("register render commands: %v", err)
	}
	if !renderApplied || !previewApplied {
		t.Fatalf("expected handler options applied, render=%v preview=%v", renderApplied, previewApplied)
	}
}

func TestRegisterRenderCommandsErrors(t *testing.T) {
	if _, err := RegisterRenderCommands(nil, nil, nil, FeatureGates{}); err == nil {
		t.Fatal("expected error when service nil")
	}

	reg := fixtures.NewRecordingRegistry()
	reg.Err = errors.New("registry closed")
	if _, err := RegisterRenderCommands(reg, &stubRenderer{}, nil, FeatureGates{}); !errors.Is(err, reg.Err) {
		t.Fatalf("expected registry error, got %v", err)
	}
}

func TestRegisterRenderCronRegistersHandler(t *testing.T) {
	service := &stubRenderer{}
	handler := NewRenderPageHandler(service, nil, enabledGates())
	recorder := fixtures.NewCronRecorder()

	cfg := command.HandlerConfig{Expression: "@hourly"}
	msg := RenderPageCommand{PageID: "p1"}

	if err := RegisterRenderCron(recorder.Registrar(), handler, cfg, msg); err != nil {
		t.Fatalf("register render cron: %v", err)
	}
	if len(recorder.Registrations) != 1 {
		t.Fatalf("expected one cron registration, got %d", len(recorder.Registrations))
	}
	registration := recorder.Registrations[0]
	if registration.Config.Expression != cfg.Expression {
		t.Fatalf("expected cron expression %q, got %q", cfg.Expression, registration.Config.Expression)
	}
	if registration.Handler == nil {
		t.Fatal("expected cron handler function recorded")
	}
	if err := registration.Handler(); err != nil {
		t.Fatalf("executing cron handler: %v", err)
	}
	if len(service.requests) != 1 {
		t.Fatalf("expected render executed by cron, got %d", len(service.requests))
	}

	if err := RegisterRenderCron(nil, handler, cfg, msg); err != nil {
		t.Fatalf("expected nil error when registrar nil, got %v", err)
	}
}

func TestRenderPageCommandThroughDispatcher(t *testing.T) {
	service := &stubRenderer{}
	handler := NewRenderPageHandler(service, nil, enabledGates())

	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(0))
	t.Cleanup(sub.Unsubscribe)

	var got *pipeline.Result
	msg := RenderPageCommand{
		PageID:         "p1",
		ResultCallback: func(result *pipeline.Result) { got = result },
	}
	if err := dispatcher.Dispatch(context.Background(), msg); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got == nil || len(service.requests) != 1 {
		t.Fatalf("expected dispatched render, got %+v (%d calls)", got, len(service.requests))
	}
}
