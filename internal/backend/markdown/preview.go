package markdown

import "github.com/goliatone/go-pagetree/pkg/interfaces"

// PreviewResult is a parsed Markdown export.
type PreviewResult struct {
	FrontMatter interfaces.FrontMatter
	Body        []byte
	HTML        []byte
}

// Preview splits front matter from source and renders the body to HTML.
// A nil parser uses goldmark with default extensions.
func Preview(source []byte, parser interfaces.MarkdownParser) (*PreviewResult, error) {
	if parser == nil {
		parser = NewGoldmarkParser(interfaces.ParseOptions{})
	}
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}
	rendered, err := parser.Parse(body)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{
		FrontMatter: meta,
		Body:        body,
		HTML:        rendered,
	}, nil
}
