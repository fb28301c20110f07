package document

import "strings"

// Table maps block ids to their decode result.
type Table map[string]Entry

// Lookup returns the typed record for id. Absent and opaque entries report
// false.
func (t Table) Lookup(id string) (*Record, bool) {
	entry, ok := t[id]
	if !ok {
		return nil, false
	}
	return entry.Typed()
}

// Has reports whether id is present, typed or opaque.
func (t Table) Has(id string) bool {
	_, ok := t[id]
	return ok
}

// Title returns the plain text title of a page record, or "" for anything
// else.
func (t Table) Title(id string) string {
	record, ok := t.Lookup(id)
	if !ok {
		return ""
	}
	page, ok := record.Variant.(Page)
	if !ok {
		return ""
	}
	return PlainText(page.Properties.Title)
}

// Description returns the first textual content found under id. Nested pages
// below the root are not entered.
func (t Table) Description(id string) string {
	seen := make(map[string]struct{})
	return t.description(id, 0, seen)
}

func (t Table) description(id string, level int, seen map[string]struct{}) string {
	if _, ok := seen[id]; ok {
		return ""
	}
	seen[id] = struct{}{}

	record, ok := t.Lookup(id)
	if !ok {
		return ""
	}
	switch record.Kind() {
	case KindText, KindBulletedList, KindNumberedList, KindQuote:
		if titled, ok := record.Variant.(Titled); ok {
			if spans, ok := titled.Title(); ok {
				if text := PlainText(spans); text != "" {
					return text
				}
			}
		}
	case KindPage:
		if level > 0 {
			return ""
		}
	}
	for _, child := range record.Children() {
		if text := t.description(child, level+1, seen); text != "" {
			return text
		}
	}
	return ""
}

// WalkFunc is called for every typed record reached by Walk. Returning false
// skips the record's children.
type WalkFunc func(record *Record, depth int) bool

// Walk visits typed records depth first starting at root. Each id is visited
// at most once.
func (t Table) Walk(root string, fn WalkFunc) {
	seen := make(map[string]struct{})
	t.walk(root, 0, fn, seen)
}

func (t Table) walk(id string, depth int, fn WalkFunc, seen map[string]struct{}) {
	if _, ok := seen[id]; ok {
		return
	}
	seen[id] = struct{}{}
	record, ok := t.Lookup(id)
	if !ok {
		return
	}
	if !fn(record, depth) {
		return
	}
	for _, child := range record.Children() {
		t.walk(child, depth+1, fn, seen)
	}
}

// PlainText concatenates span text without formatting.
func PlainText(spans []Span) string {
	switch len(spans) {
	case 0:
		return ""
	case 1:
		return spans[0].Text
	}
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	return b.String()
}

// TitleOf returns the title spans of a record when its variant carries text.
func TitleOf(record *Record) ([]Span, bool) {
	if record == nil || record.Variant == nil {
		return nil, false
	}
	titled, ok := record.Variant.(Titled)
	if !ok {
		return nil, false
	}
	return titled.Title()
}
