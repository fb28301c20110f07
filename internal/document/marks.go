package document

// MarkKind identifies a formatting directive.
type MarkKind uint8

const (
	// MarkNone is produced for unrecognized codes and renders as a pass-through.
	MarkNone MarkKind = iota
	MarkBold
	MarkItalic
	MarkStrike
	MarkUnderline
	MarkCode
	MarkLink
	MarkHighlight
)

// Wire codes used by the record map.
const (
	CodeBold      = "b"
	CodeItalic    = "i"
	CodeStrike    = "s"
	CodeUnderline = "_"
	CodeCode      = "c"
	CodeLink      = "a"
	CodeHighlight = "h"
)

func (k MarkKind) String() string {
	switch k {
	case MarkBold:
		return "bold"
	case MarkItalic:
		return "italic"
	case MarkStrike:
		return "strike"
	case MarkUnderline:
		return "underline"
	case MarkCode:
		return "code"
	case MarkLink:
		return "link"
	case MarkHighlight:
		return "highlight"
	default:
		return "none"
	}
}

// Mark is one formatting directive. Href is set for links and Color for
// highlights; the remaining kinds carry no data.
type Mark struct {
	Kind  MarkKind
	Href  string
	Color Color
}

// IsContextFree reports whether rendering needs no associated value.
func (m Mark) IsContextFree() bool {
	switch m.Kind {
	case MarkBold, MarkItalic, MarkStrike, MarkUnderline, MarkCode:
		return true
	}
	return false
}

// IsContextBearing reports whether the mark carries a value.
func (m Mark) IsContextBearing() bool {
	return m.Kind == MarkLink || m.Kind == MarkHighlight
}

// Bold and friends build context-free marks.
func Bold() Mark      { return Mark{Kind: MarkBold} }
func Italic() Mark    { return Mark{Kind: MarkItalic} }
func Strike() Mark    { return Mark{Kind: MarkStrike} }
func Underline() Mark { return Mark{Kind: MarkUnderline} }
func Code() Mark      { return Mark{Kind: MarkCode} }

// Link builds a link mark.
func Link(href string) Mark { return Mark{Kind: MarkLink, Href: href} }

// Highlight builds a highlight mark.
func Highlight(c Color) Mark { return Mark{Kind: MarkHighlight, Color: c} }

// MarkFromCode resolves a one element mark. Unknown codes yield MarkNone.
func MarkFromCode(code string) Mark {
	switch code {
	case CodeBold:
		return Bold()
	case CodeItalic:
		return Italic()
	case CodeStrike:
		return Strike()
	case CodeUnderline:
		return Underline()
	case CodeCode:
		return Code()
	}
	return Mark{}
}

// MarkFromPair resolves a [code, value] mark. Unknown codes yield MarkNone.
func MarkFromPair(code, value string) Mark {
	switch code {
	case CodeLink:
		return Link(value)
	case CodeHighlight:
		return Highlight(ParseColor(value))
	}
	return Mark{}
}

// Span is a run of text sharing the same marks. Nil and empty marks are
// equivalent.
type Span struct {
	Text  string
	Marks []Mark
}

// Plain builds a span without marks.
func Plain(text string) Span { return Span{Text: text} }
