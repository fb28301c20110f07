package decoder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-pagetree/internal/document"
)

var (
	errSpanShape     = errors.New("span must be a string or a [text, marks] array")
	errMarksList     = errors.New("span marks must be an array")
	errEmptyProperty = errors.New("property has no value")
)

// spanShape is the either-shape intermediate for a span: a bare string, or
// an array whose head is the text and whose optional second element lists
// the marks.
type spanShape struct {
	bare  *string
	tuple []json.RawMessage
}

func (s *spanShape) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.bare = &text
		return nil
	}
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil || len(tuple) == 0 {
		return errSpanShape
	}
	s.tuple = tuple
	return nil
}

func (s spanShape) normalize() (document.Span, error) {
	if s.bare != nil {
		return document.Plain(*s.bare), nil
	}
	var text string
	if err := json.Unmarshal(s.tuple[0], &text); err != nil {
		return document.Span{}, errSpanShape
	}
	span := document.Plain(text)
	if len(s.tuple) < 2 || isNull(s.tuple[1]) {
		return span, nil
	}

	var rawMarks []markShape
	if err := json.Unmarshal(s.tuple[1], &rawMarks); err != nil {
		return document.Span{}, errMarksList
	}
	if len(rawMarks) == 0 {
		return span, nil
	}
	span.Marks = make([]document.Mark, 0, len(rawMarks))
	for _, m := range rawMarks {
		span.Marks = append(span.Marks, m.normalize())
	}
	return span, nil
}

// markShape is the either-shape intermediate for a mark: [code] or
// [code, value]. Anything it cannot interpret normalizes to a no-op mark.
type markShape struct {
	code     string
	value    string
	hasValue bool
	invalid  bool
}

func (m *markShape) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil || len(parts) == 0 {
		m.invalid = true
		return nil
	}
	if err := json.Unmarshal(parts[0], &m.code); err != nil {
		m.invalid = true
		return nil
	}
	if len(parts) < 2 {
		return nil
	}
	m.hasValue = true
	if err := json.Unmarshal(parts[1], &m.value); err != nil {
		m.invalid = true
	}
	return nil
}

func (m markShape) normalize() document.Mark {
	switch {
	case m.invalid:
		return document.Mark{}
	case m.hasValue:
		return document.MarkFromPair(m.code, m.value)
	default:
		return document.MarkFromCode(m.code)
	}
}

// decodeSpans decodes a title-like array of spans.
func decodeSpans(path string, raw json.RawMessage) ([]document.Span, error) {
	if isNull(raw) {
		return nil, missingField(path)
	}
	var shapes []spanShape
	if err := json.Unmarshal(raw, &shapes); err != nil {
		return nil, invalidField(path, err)
	}
	spans := make([]document.Span, 0, len(shapes))
	for i, shape := range shapes {
		span, err := shape.normalize()
		if err != nil {
			return nil, invalidField(fmt.Sprintf("%s[%d]", path, i), err)
		}
		spans = append(spans, span)
	}
	return spans, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
