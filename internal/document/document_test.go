package document

import (
	"encoding/json"
	"testing"
)

func textRecord(id string, kind Kind, title string, children ...string) *Record {
	props := &TextProperties{Title: []Span{Plain(title)}}
	var variant Variant
	switch kind {
	case KindBulletedList:
		variant = BulletedList{TextLike{props}}
	case KindNumberedList:
		variant = NumberedList{TextLike{props}}
	case KindQuote:
		variant = Quote{TextLike{props}}
	default:
		variant = Text{TextLike{props}}
	}
	return &Record{ID: id, Alive: true, Content: children, Variant: variant}
}

func pageRecord(id, title string, children ...string) *Record {
	return &Record{
		ID:      id,
		Alive:   true,
		Content: children,
		Variant: Page{Properties: PageProperties{Title: []Span{Plain(title)}}},
	}
}

func TestParseColorFallsBackToNone(t *testing.T) {
	if got := ParseColor("teal_background"); got != ColorTealBackground {
		t.Fatalf("expected teal_background, got %q", got)
	}
	if got := ParseColor("ultraviolet"); got != ColorNone {
		t.Fatalf("expected ColorNone for unknown color, got %q", got)
	}
	if ColorNone.String() != "none" {
		t.Fatalf("unexpected ColorNone string %q", ColorNone.String())
	}
}

func TestColorUnmarshalNeverFails(t *testing.T) {
	var format BlockFormat
	if err := json.Unmarshal([]byte(`{"block_color": 42}`), &format); err != nil {
		t.Fatalf("unmarshal numeric color: %v", err)
	}
	if format.BlockColor != ColorNone {
		t.Fatalf("expected ColorNone, got %q", format.BlockColor)
	}
	if err := json.Unmarshal([]byte(`{"block_color": "red"}`), &format); err != nil {
		t.Fatalf("unmarshal red: %v", err)
	}
	if format.BlockColor != ColorRed {
		t.Fatalf("expected red, got %q", format.BlockColor)
	}
}

func TestMarkCodes(t *testing.T) {
	if m := MarkFromCode("b"); m.Kind != MarkBold || !m.IsContextFree() {
		t.Fatalf("expected bold context-free mark, got %+v", m)
	}
	if m := MarkFromCode("z"); m.Kind != MarkNone {
		t.Fatalf("expected no-op mark for unknown code, got %+v", m)
	}
	link := MarkFromPair("a", "https://x")
	if link.Kind != MarkLink || link.Href != "https://x" || !link.IsContextBearing() {
		t.Fatalf("unexpected link mark %+v", link)
	}
	hl := MarkFromPair("h", "nope")
	if hl.Kind != MarkHighlight || hl.Color != ColorNone {
		t.Fatalf("unexpected highlight mark %+v", hl)
	}
}

func TestEntryAccessors(t *testing.T) {
	typed := NewTypedEntry("editor", textRecord("a", KindText, "hi"))
	if _, ok := typed.Typed(); !ok {
		t.Fatalf("expected typed entry")
	}
	if _, ok := typed.Opaque(); ok {
		t.Fatalf("typed entry must not be opaque")
	}

	opaque := NewOpaqueEntry("reader", json.RawMessage(`{"type":"widget"}`), nil)
	if _, ok := opaque.Typed(); ok {
		t.Fatalf("opaque entry must not be typed")
	}
	raw, ok := opaque.Opaque()
	if !ok || string(raw) != `{"type":"widget"}` {
		t.Fatalf("expected raw value preserved, got %q", raw)
	}
}

func TestTableQueries(t *testing.T) {
	table := Table{
		"root":        NewTypedEntry("editor", pageRecord("root", "Home", "empty", "child", "intro")),
		"empty":       NewOpaqueEntry("editor", json.RawMessage(`{}`), nil),
		"child":       NewTypedEntry("editor", pageRecord("child", "Nested", "nested-text")),
		"intro":       NewTypedEntry("editor", textRecord("intro", KindText, "Welcome")),
		"nested-text": NewTypedEntry("editor", textRecord("nested-text", KindText, "Hidden")),
	}

	if got := table.Title("root"); got != "Home" {
		t.Fatalf("expected Home title, got %q", got)
	}
	if got := table.Title("intro"); got != "" {
		t.Fatalf("expected empty title for text block, got %q", got)
	}
	if got := table.Description("root"); got != "Welcome" {
		t.Fatalf("expected description from first text outside nested pages, got %q", got)
	}
	if !table.Has("empty") {
		t.Fatalf("opaque ids stay resolvable")
	}
	if _, ok := table.Lookup("empty"); ok {
		t.Fatalf("opaque entry must not look up as typed")
	}
}

func TestWalkStopsOnCycles(t *testing.T) {
	table := Table{
		"a": NewTypedEntry("editor", textRecord("a", KindText, "a", "b")),
		"b": NewTypedEntry("editor", textRecord("b", KindText, "b", "a")),
	}
	var visited []string
	table.Walk("a", func(r *Record, depth int) bool {
		visited = append(visited, r.ID)
		return true
	})
	if len(visited) != 2 || visited[0] != "a" || visited[1] != "b" {
		t.Fatalf("unexpected walk order %v", visited)
	}
}

func TestRecordDefaults(t *testing.T) {
	var r *Record
	if len(r.Children()) != 0 || r.Kind() != "" || r.Color() != ColorNone {
		t.Fatalf("nil record should report defaults")
	}
	if !KindBulletedList.Grouped() || KindText.Grouped() {
		t.Fatalf("unexpected grouped classification")
	}
}

func TestPlainText(t *testing.T) {
	spans := []Span{Plain("Hello "), {Text: "world", Marks: []Mark{Bold()}}}
	if got := PlainText(spans); got != "Hello world" {
		t.Fatalf("unexpected plain text %q", got)
	}
}
