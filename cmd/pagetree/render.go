package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagetree"
	"github.com/goliatone/go-pagetree/cmd/pagetree/internal/bootstrap"
)

type renderFlags struct {
	input  string
	pageID string
	rootID string
	format string
	output string
}

func newRenderCommand(build bootstrap.Builder, global *globalFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a page chunk to HTML or Markdown",
		Long: "Render a loadPageChunk payload read from --input, or fetched by --page when no input is given.\n" +
			"--root selects a block other than the page root.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, build, global, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "page chunk JSON file, or - for stdin")
	cmd.Flags().StringVarP(&flags.pageID, "page", "p", "", "page id or URL")
	cmd.Flags().StringVarP(&flags.rootID, "root", "r", "", "block id to render (defaults to the page)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "html", "output format: html or markdown")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (defaults to stdout)")
	return cmd
}

func runRender(cmd *cobra.Command, build bootstrap.Builder, global *globalFlags, flags *renderFlags) error {
	format, err := pagetree.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	req := pagetree.Request{
		PageID: strings.TrimSpace(flags.pageID),
		RootID: strings.TrimSpace(flags.rootID),
		Format: format,
	}
	if flags.input != "" {
		req.Source, err = readInput(cmd, flags.input)
		if err != nil {
			return err
		}
	} else if req.PageID == "" {
		return fmt.Errorf("either --input or --page is required")
	}

	opts := global.options(cmd)
	opts.Fetch = len(req.Source) == 0
	module, err := buildModule(build, opts)
	if err != nil {
		return err
	}

	result, err := module.Render(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return writeOutput(cmd, flags.output, result.Output)
}
