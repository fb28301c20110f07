package bootstrap

import (
	"io"
	"strings"

	"github.com/goliatone/go-pagetree"
	"github.com/goliatone/go-pagetree/internal/logging/console"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

// Options captures configuration for CLI bootstraps.
type Options struct {
	ConfigPath     string
	Fetch          bool
	Markdown       bool
	Verbose        bool
	LogWriter      io.Writer
	LoggerProvider interfaces.LoggerProvider
	ModuleOptions  []pagetree.Option
}

// Builder constructs a module for a CLI invocation.
type Builder func(Options) (*pagetree.Module, error)

// BuildModule loads the optional config file and enables the features the
// invoked command needs.
func BuildModule(opts Options) (*pagetree.Module, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	moduleOpts := append([]pagetree.Option{}, opts.ModuleOptions...)
	provider := opts.LoggerProvider
	if provider == nil && opts.Verbose {
		level := console.LevelDebug
		provider = console.NewProvider(console.Options{Writer: opts.LogWriter, MinLevel: &level})
	}
	if provider != nil {
		moduleOpts = append(moduleOpts, pagetree.WithLoggerProvider(provider))
	}
	return pagetree.New(cfg, moduleOpts...)
}

// LoadConfig resolves the module configuration for opts.
func LoadConfig(opts Options) (pagetree.Config, error) {
	cfg := pagetree.DefaultConfig()
	if path := strings.TrimSpace(opts.ConfigPath); path != "" {
		loaded, err := pagetree.LoadConfig(path)
		if err != nil {
			return pagetree.Config{}, err
		}
		cfg = loaded
	}
	if opts.Fetch {
		cfg.Features.Fetch = true
		cfg.Fetch.Enabled = true
	}
	if opts.Markdown {
		cfg.Features.Markdown = true
		cfg.Markdown.Enabled = true
	}
	return cfg, cfg.Validate()
}
