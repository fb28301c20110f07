package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/render"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

var (
	ErrNilDocument  = errors.New("markdown: document is nil")
	ErrRootNotFound = errors.New("markdown: root block not found")
)

const frontMatterDelimiter = "---\n"

// ExportOptions controls Export.
type ExportOptions struct {
	FrontMatter bool
	Render      []render.Option
}

// Export renders rootID and, when requested, prefixes YAML front matter
// describing the root block.
func (b *Backend) Export(doc *document.Document, rootID string, opts ExportOptions) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if rootID == "" {
		rootID = doc.PageID
	}
	if _, ok := doc.Blocks.Lookup(rootID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, rootID)
	}

	body := b.Engine(doc.Blocks, opts.Render...).Render(rootID)

	var buf bytes.Buffer
	if opts.FrontMatter {
		encoded, err := yaml.Marshal(BuildFrontMatter(doc, rootID))
		if err != nil {
			return nil, fmt.Errorf("markdown: encode front matter: %w", err)
		}
		buf.WriteString(frontMatterDelimiter)
		buf.Write(encoded)
		buf.WriteString(frontMatterDelimiter)
		buf.WriteString("\n")
	}
	buf.WriteString(strings.TrimRight(body, "\n"))
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// BuildFrontMatter summarises the root block for export.
func BuildFrontMatter(doc *document.Document, rootID string) interfaces.FrontMatter {
	meta := interfaces.FrontMatter{ID: rootID}
	if doc == nil {
		return meta
	}
	record, ok := doc.Blocks.Lookup(rootID)
	if !ok {
		return meta
	}
	meta.Title = doc.Blocks.Title(rootID)
	if meta.Title == "" {
		if spans, ok := document.TitleOf(record); ok {
			meta.Title = document.PlainText(spans)
		}
	}
	meta.Summary = doc.Blocks.Description(rootID)
	meta.CreatedTime = record.CreatedTime
	meta.LastEditedTime = record.LastEditedTime
	if actor, ok := doc.Actor(record.CreatedByID); ok {
		meta.Author = strings.TrimSpace(actor.GivenName + " " + actor.FamilyName)
	}
	return meta
}
