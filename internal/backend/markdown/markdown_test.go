package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/render"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

func spans(text string, marks ...document.Mark) []document.Span {
	return []document.Span{{Text: text, Marks: marks}}
}

func textLike(text string, marks ...document.Mark) document.TextLike {
	return document.TextLike{Properties: &document.TextProperties{Title: spans(text, marks...)}}
}

func record(id string, variant document.Variant, content ...string) *document.Record {
	return &document.Record{ID: id, Alive: true, Content: content, Variant: variant}
}

func fixture() *document.Document {
	root := record("p1", document.Page{Properties: document.PageProperties{Title: spans("Field Notes")}},
		"h1", "b1", "b2", "t1", "n1", "todo", "hr", "img")
	root.CreatedTime = 1700000000000
	root.LastEditedTime = 1700000500000
	root.CreatedByID = "u1"

	records := []*document.Record{
		root,
		record("h1", document.Header{TextLike: textLike("Intro")}),
		record("b1", document.BulletedList{TextLike: textLike("One")}, "b1c"),
		record("b1c", document.BulletedList{TextLike: textLike("Nested")}),
		record("b2", document.BulletedList{TextLike: textLike("Two", document.Bold())}),
		record("t1", document.Text{TextLike: textLike("a*b")}),
		record("n1", document.NumberedList{TextLike: textLike("First")}),
		record("todo", document.ToDo{Properties: &document.ToDoProperties{Title: spans("done"), Checked: true}}),
		record("hr", document.Divider{}),
		record("img", document.Image{Properties: document.ImageProperties{Source: "a.png", Caption: spans("cap")}}),
	}
	table := document.Table{}
	for _, rec := range records {
		table[rec.ID] = document.NewTypedEntry("reader", rec)
	}
	return &document.Document{
		PageID: "p1",
		Blocks: table,
		Actors: map[string]document.ActorEntry{
			"u1": {Role: "reader", Value: document.Actor{ID: "u1", GivenName: "Ada", FamilyName: "Lovelace"}},
		},
	}
}

const fixtureBody = "# Field Notes\n\n" +
	"# Intro\n\n" +
	"- One\n  - Nested\n- **Two**\n\n" +
	"a\\*b\n\n" +
	"1. First\n\n" +
	"- [x] done\n\n" +
	"---\n\n" +
	"![cap](a.png)\n\n"

func TestRenderDocument(t *testing.T) {
	got := New(DefaultOptions()).Render(fixture(), "")
	if got != fixtureBody {
		t.Fatalf("unexpected markdown\n got: %q\nwant: %q", got, fixtureBody)
	}
}

func TestInline(t *testing.T) {
	b := New(DefaultOptions())
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"escape", b.Text("[x] #1 <tag>"), `\[x\] \#1 \<tag\>`},
		{"code is literal", b.Code(b.Text("a_b")), "`a_b`"},
		{"code with backtick", b.Code(b.Text("x`y")), "``x`y``"},
		{"bold keeps outer space", b.Bold(" x "), " **x** "},
		{"italic", b.Italic("x"), "*x*"},
		{"strike", b.Strike("x"), "~~x~~"},
		{"underline", b.Underline("x"), "<u>x</u>"},
		{"link", b.Link("site", "https://e.com/a b"), "[site](https://e.com/a%20b)"},
		{"blank link", b.Link("site", " "), "site"},
		{"script link dropped", b.Link("site", "javascript:alert(1)"), "site"},
		{"relative link", b.Link("site", "/docs"), "[site](/docs)"},
		{"highlight none", b.Highlight("x", document.ColorNone), "x"},
		{"highlight", b.Highlight("x", document.ColorYellowBackground), `<mark data-color="yellow_background">x</mark>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestNestedPageLink(t *testing.T) {
	const childID = "4f0c9e58-5b1e-4d2a-9a3e-7c1d2b3a4f5e"
	table := document.Table{
		"p1":    document.NewTypedEntry("reader", record("p1", document.Page{Properties: document.PageProperties{Title: spans("Root")}}, childID)),
		childID: document.NewTypedEntry("reader", record(childID, document.Page{Properties: document.PageProperties{Title: spans("Sub")}})),
	}
	got := New(DefaultOptions()).Engine(table).Render("p1")
	want := "# Root\n\n[Sub](/4f0c9e585b1e4d2a9a3e7c1d2b3a4f5e)\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExportWithFrontMatter(t *testing.T) {
	out, err := New(DefaultOptions()).Export(fixture(), "p1", ExportOptions{FrontMatter: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	text := string(out)
	if !strings.HasPrefix(text, "---\ntitle: Field Notes\nid: p1\nsummary: One\n") {
		t.Fatalf("unexpected front matter:\n%s", text)
	}
	if !strings.Contains(text, "author: Ada Lovelace\n---\n\n# Field Notes\n") {
		t.Fatalf("expected author and body after front matter:\n%s", text)
	}
	if !strings.HasSuffix(text, "![cap](a.png)\n") {
		t.Fatalf("expected single trailing newline:\n%q", text)
	}

	meta, body, err := ParseFrontMatter(out)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Title != "Field Notes" || meta.ID != "p1" || meta.CreatedTime != 1700000000000 || meta.Author != "Ada Lovelace" {
		t.Fatalf("unexpected parsed front matter %+v", meta)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(body)), "# Field Notes") {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestExportErrors(t *testing.T) {
	b := New(DefaultOptions())
	if _, err := b.Export(nil, "p1", ExportOptions{}); !errors.Is(err, ErrNilDocument) {
		t.Fatalf("expected ErrNilDocument, got %v", err)
	}
	if _, err := b.Export(fixture(), "missing", ExportOptions{}); !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}
	out, err := b.Export(fixture(), "", ExportOptions{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if strings.HasPrefix(string(out), "---") {
		t.Fatalf("expected no front matter, got %q", out)
	}
}

func TestPreviewRoundTrip(t *testing.T) {
	out, err := New(DefaultOptions()).Export(fixture(), "p1", ExportOptions{FrontMatter: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	result, err := Preview(out, nil)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if result.FrontMatter.Title != "Field Notes" {
		t.Fatalf("expected title in preview front matter, got %+v", result.FrontMatter)
	}
	html := string(result.HTML)
	for _, fragment := range []string{
		`<h1 id="field-notes">Field Notes</h1>`,
		`<strong>Two</strong>`,
		`type="checkbox"`,
		`<img src="a.png" alt="cap">`,
		`a*b`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in preview html:\n%s", fragment, html)
		}
	}
}

func TestGoldmarkParserOptions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{SafeMode: true})
	out, err := parser.Parse([]byte("<u>x</u>"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Contains(string(out), "<u>") {
		t.Fatalf("expected raw html to be omitted in safe mode, got %s", out)
	}

	out, err = parser.ParseWithOptions([]byte("~~gone~~"), interfaces.ParseOptions{Extensions: []string{"Strikethrough", "unknown"}})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if !strings.Contains(string(out), "<del>gone</del>") {
		t.Fatalf("expected strikethrough extension, got %s", out)
	}
}

func TestLinkRespectsAllowedSchemes(t *testing.T) {
	strict := New(Options{AllowedSchemes: []string{"https"}})
	if got := strict.Link("x", "http://example.com"); got != "x" {
		t.Fatalf("expected http to be rejected, got %q", got)
	}
	if got := strict.Link("x", "https://example.com"); got != "[x](https://example.com)" {
		t.Fatalf("expected https to pass, got %q", got)
	}
}

func TestItalicInsideWord(t *testing.T) {
	table := document.Table{
		"t1": document.NewTypedEntry("reader", record("t1", document.Text{TextLike: document.TextLike{
			Properties: &document.TextProperties{Title: []document.Span{
				{Text: "foo"},
				{Text: "bar", Marks: []document.Mark{document.Italic()}},
				{Text: "baz"},
			}},
		}})),
	}
	got := New(DefaultOptions()).Engine(table).Render("t1")
	if got != "foo*bar*baz\n\n" {
		t.Fatalf("unexpected markdown %q", got)
	}
	result, err := Preview([]byte(got), nil)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if !strings.Contains(string(result.HTML), "foo<em>bar</em>baz") {
		t.Fatalf("expected emphasis inside word, got %s", result.HTML)
	}
}

func TestBlockTextEscapesLineStarts(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"- not a list", `\- not a list`},
		{"+ plus", `\+ plus`},
		{"1. not a list", `1\. not a list`},
		{"12) paren", `12\) paren`},
		{"  - indented", `  \- indented`},
		{"Title\n===", "Title\n\\==="},
		{"first\n2. second", "first\n2\\. second"},
		{"100 days", "100 days"},
		{"a - b", "a - b"},
		{"", ""},
	}
	for _, tc := range cases {
		title := tc.title
		if got := blockText(&title); got != tc.want {
			t.Fatalf("blockText(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestBlockTitlesStayLiteral(t *testing.T) {
	b := New(DefaultOptions())
	title := func(s string) *string { return &s }
	cases := []struct {
		name     string
		markdown string
		want     string
	}{
		{"text dash", b.TextBlock(render.Block{}, "", title("- not a list")), "<p>- not a list</p>"},
		{"text plus", b.TextBlock(render.Block{}, "", title("+ plus")), "<p>+ plus</p>"},
		{"text number", b.TextBlock(render.Block{}, "", title("1. not a list")), "<p>1. not a list</p>"},
		{"text paren", b.TextBlock(render.Block{}, "", title("3) paren")), "<p>3) paren</p>"},
		{"bullet item", b.BulletedListBlock(render.Block{}, "", title("- nested")), "<li>- nested</li>"},
		{"numbered item", b.NumberedListBlock(render.Block{}, "", title("2. nested")), "<li>2. nested</li>"},
		{"quote", b.QuoteBlock(render.Block{}, "", title("+ quoted")), "<p>+ quoted</p>"},
		{"heading", b.HeaderBlock(render.Block{}, "", title("1. Intro")), ">1. Intro</h1>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Preview([]byte(tc.markdown), nil)
			if err != nil {
				t.Fatalf("Preview: %v", err)
			}
			html := string(result.HTML)
			if !strings.Contains(html, tc.want) {
				t.Fatalf("expected %q in %s (markdown %q)", tc.want, html, tc.markdown)
			}
			if tc.name != "bullet item" && strings.Contains(html, "<ul>") {
				t.Fatalf("unexpected bullet list in %s", html)
			}
			if tc.name != "numbered item" && strings.Contains(html, "<ol>") {
				t.Fatalf("unexpected ordered list in %s", html)
			}
		})
	}
}
