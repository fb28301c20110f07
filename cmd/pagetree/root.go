package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagetree"
	"github.com/goliatone/go-pagetree/cmd/pagetree/internal/bootstrap"
)

type globalFlags struct {
	configPath string
	verbose    bool
}

func newRootCommand(build bootstrap.Builder) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "pagetree",
		Short:         "Decode and render Notion page chunks",
		Long:          "pagetree decodes loadPageChunk payloads and renders them to HTML or Markdown.",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log pipeline events to stderr")

	root.AddCommand(newRenderCommand(build, flags))
	root.AddCommand(newFetchCommand(build, flags))
	root.AddCommand(newPreviewCommand(build, flags))
	return root
}

func (f *globalFlags) options(cmd *cobra.Command) bootstrap.Options {
	return bootstrap.Options{
		ConfigPath: f.configPath,
		Verbose:    f.verbose,
		LogWriter:  cmd.ErrOrStderr(),
	}
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if strings.TrimSpace(path) == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// writeOutput writes data to path, or stdout when path is blank.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func buildModule(build bootstrap.Builder, opts bootstrap.Options) (*pagetree.Module, error) {
	module, err := build(opts)
	if err != nil {
		return nil, fmt.Errorf("bootstrap module: %w", err)
	}
	return module, nil
}
