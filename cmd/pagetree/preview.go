package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagetree/cmd/pagetree/internal/bootstrap"
)

type previewFlags struct {
	input  string
	output string
}

func newPreviewCommand(build bootstrap.Builder, global *globalFlags) *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render exported Markdown back to HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, build, global, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Markdown file, or - for stdin (required)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (defaults to stdout)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runPreview(cmd *cobra.Command, build bootstrap.Builder, global *globalFlags, flags *previewFlags) error {
	source, err := readInput(cmd, flags.input)
	if err != nil {
		return err
	}

	opts := global.options(cmd)
	opts.Markdown = true
	module, err := buildModule(build, opts)
	if err != nil {
		return err
	}

	preview, err := module.PreviewMarkdown(source)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	var b strings.Builder
	if title := strings.TrimSpace(preview.FrontMatter.Title); title != "" {
		fmt.Fprintf(&b, "<!-- title: %s -->\n", title)
	}
	b.Write(preview.HTML)
	return writeOutput(cmd, flags.output, []byte(b.String()))
}
