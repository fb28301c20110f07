package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagetree"
	"github.com/goliatone/go-pagetree/cmd/pagetree/internal/bootstrap"
)

type fetchFlags struct {
	pageID string
	raw    bool
	output string
}

func newFetchCommand(build bootstrap.Builder, global *globalFlags) *cobra.Command {
	flags := &fetchFlags{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a page chunk and summarise it",
		Long:  "Fetch a page chunk by id. With --raw the payload is written unchanged, which is useful for fixtures.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd, build, global, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.pageID, "page", "p", "", "page id or URL (required)")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "write the undecoded payload")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (defaults to stdout)")
	_ = cmd.MarkFlagRequired("page")
	return cmd
}

func runFetch(cmd *cobra.Command, build bootstrap.Builder, global *globalFlags, flags *fetchFlags) error {
	opts := global.options(cmd)
	opts.Fetch = true
	module, err := buildModule(build, opts)
	if err != nil {
		return err
	}

	pageID := strings.TrimSpace(flags.pageID)
	payload, err := module.LoadPageChunk(cmd.Context(), pageID)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if flags.raw {
		return writeOutput(cmd, flags.output, payload)
	}

	doc, err := module.Decode(cmd.Context(), payload, pageID)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return writeOutput(cmd, flags.output, []byte(summarize(doc)))
}

func summarize(doc *pagetree.Document) string {
	typed, opaque := 0, 0
	for _, entry := range doc.Blocks {
		if _, ok := entry.Typed(); ok {
			typed++
		} else {
			opaque++
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Page: %s\n", doc.PageID)
	fmt.Fprintf(&b, "Title: %s\n", doc.Blocks.Title(doc.PageID))
	fmt.Fprintf(&b, "Blocks: %d typed, %d opaque\n", typed, opaque)
	fmt.Fprintf(&b, "Actors: %d\n", len(doc.Actors))
	return b.String()
}
