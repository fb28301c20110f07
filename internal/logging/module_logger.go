package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

const (
	rootModule     = "pagetree"
	decoderModule  = "pagetree.decoder"
	renderModule   = "pagetree.render"
	fetchModule    = "pagetree.fetch"
	pipelineModule = "pagetree.pipeline"
	markdownModule = "pagetree.markdown"
)

const (
	fieldPageID = "page_id"
	fieldRootID = "root_id"
	fieldFormat = "format"
)

// ModuleLogger returns the logger for module, tagged with a "module" field.
// A nil provider yields a no-op logger.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}
	return WithFields(logger, map[string]any{"module": module})
}

// DecoderLogger returns the logger namespace used by the decoder.
func DecoderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, decoderModule)
}

// RenderLogger returns the logger namespace used by render engines.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// FetchLogger returns the logger namespace used by the page chunk client.
func FetchLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, fetchModule)
}

// PipelineLogger returns the logger namespace used by the pipeline service.
func PipelineLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pipelineModule)
}

// MarkdownLogger returns the logger namespace used by markdown export and preview.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// WithPageContext attaches page, root and format fields. Blank values are skipped.
func WithPageContext(logger interfaces.Logger, pageID, rootID, format string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(pageID); trimmed != "" {
		fields[fieldPageID] = trimmed
	}
	if trimmed := strings.TrimSpace(rootID); trimmed != "" {
		fields[fieldRootID] = trimmed
	}
	if trimmed := strings.TrimSpace(format); trimmed != "" {
		fields[fieldFormat] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that discards every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
