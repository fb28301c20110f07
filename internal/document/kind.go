package document

// Kind is the wire discriminant stored in the record "type" field.
type Kind string

const (
	KindPage         Kind = "page"
	KindText         Kind = "text"
	KindBulletedList Kind = "bulleted_list"
	KindNumberedList Kind = "numbered_list"
	KindToggle       Kind = "toggle"
	KindHeader       Kind = "header"
	KindSubHeader    Kind = "sub_header"
	KindSubSubHeader Kind = "sub_sub_header"
	KindQuote        Kind = "quote"
	KindToDo         Kind = "to_do"
	KindDivider      Kind = "divider"
	KindColumnList   Kind = "column_list"
	KindColumn       Kind = "column"
	KindImage        Kind = "image"
	KindFigma        Kind = "figma"
)

var knownKinds = map[Kind]struct{}{
	KindPage: {}, KindText: {}, KindBulletedList: {}, KindNumberedList: {},
	KindToggle: {}, KindHeader: {}, KindSubHeader: {}, KindSubSubHeader: {},
	KindQuote: {}, KindToDo: {}, KindDivider: {}, KindColumnList: {},
	KindColumn: {}, KindImage: {}, KindFigma: {},
}

// Known reports whether k is part of the closed block union.
func (k Kind) Known() bool {
	_, ok := knownKinds[k]
	return ok
}

// Grouped reports whether consecutive siblings of this kind are wrapped
// together before rendering.
func (k Kind) Grouped() bool {
	return k == KindBulletedList || k == KindNumberedList
}

func (k Kind) String() string { return string(k) }

// Variant is the closed union of block kinds. Implementations live in this
// package only.
type Variant interface {
	Kind() Kind
	isVariant()
}

// Titled is implemented by variants that carry visible text.
type Titled interface {
	Title() ([]Span, bool)
}

// TextProperties is the property bag shared by the text-like variants.
type TextProperties struct {
	Title []Span `json:"title"`
}

// TextLike holds the optional properties of the plain text variants.
type TextLike struct {
	Properties *TextProperties
}

// Title returns the spans when properties are present.
func (t TextLike) Title() ([]Span, bool) {
	if t.Properties == nil {
		return nil, false
	}
	return t.Properties.Title, true
}

type (
	Text         struct{ TextLike }
	BulletedList struct{ TextLike }
	NumberedList struct{ TextLike }
	Toggle       struct{ TextLike }
	Header       struct{ TextLike }
	SubHeader    struct{ TextLike }
	SubSubHeader struct{ TextLike }
	Quote        struct{ TextLike }
)

func (Text) Kind() Kind         { return KindText }
func (BulletedList) Kind() Kind { return KindBulletedList }
func (NumberedList) Kind() Kind { return KindNumberedList }
func (Toggle) Kind() Kind       { return KindToggle }
func (Header) Kind() Kind       { return KindHeader }
func (SubHeader) Kind() Kind    { return KindSubHeader }
func (SubSubHeader) Kind() Kind { return KindSubSubHeader }
func (Quote) Kind() Kind        { return KindQuote }

func (Text) isVariant()         {}
func (BulletedList) isVariant() {}
func (NumberedList) isVariant() {}
func (Toggle) isVariant()       {}
func (Header) isVariant()       {}
func (SubHeader) isVariant()    {}
func (SubSubHeader) isVariant() {}
func (Quote) isVariant()        {}

// PageProperties holds the page title, which is required.
type PageProperties struct {
	Title []Span `json:"title"`
}

// PageFormat captures the page presentation options.
type PageFormat struct {
	PageFullWidth     *bool    `json:"page_full_width,omitempty"`
	PageSmallText     *bool    `json:"page_small_text,omitempty"`
	PageCoverPosition *float64 `json:"page_cover_position,omitempty"`
	BlockLocked       *bool    `json:"block_locked,omitempty"`
	PageCover         *string  `json:"page_cover,omitempty"`
	PageIcon          *string  `json:"page_icon,omitempty"`
}

// Page is a page block, either the document root or a nested sub-page.
type Page struct {
	Properties PageProperties
	Format     *PageFormat
	FileIDs    []string
}

func (Page) Kind() Kind { return KindPage }
func (Page) isVariant() {}

// Title always reports true because pages require a title.
func (p Page) Title() ([]Span, bool) { return p.Properties.Title, true }

// ToDoProperties carries the checkbox title and state.
type ToDoProperties struct {
	Title   []Span
	Checked bool
}

// ToDo is a checkbox item.
type ToDo struct {
	Properties *ToDoProperties
}

func (ToDo) Kind() Kind { return KindToDo }
func (ToDo) isVariant() {}

// Title returns the checkbox label when present.
func (t ToDo) Title() ([]Span, bool) {
	if t.Properties == nil {
		return nil, false
	}
	return t.Properties.Title, true
}

// Checked reports the checkbox state.
func (t ToDo) Checked() bool {
	return t.Properties != nil && t.Properties.Checked
}

type (
	Divider    struct{}
	ColumnList struct{}
)

func (Divider) Kind() Kind    { return KindDivider }
func (ColumnList) Kind() Kind { return KindColumnList }
func (Divider) isVariant()    {}
func (ColumnList) isVariant() {}

// ColumnFormat holds the width share of a column inside its list.
type ColumnFormat struct {
	ColumnRatio float64 `json:"column_ratio"`
}

// Column is one column of a column list.
type Column struct {
	Format ColumnFormat
}

func (Column) Kind() Kind { return KindColumn }
func (Column) isVariant() {}

// ImageProperties holds the image source and optional caption.
type ImageProperties struct {
	Source  string
	Caption []Span
}

// ImageFormat holds the rendered size hints.
type ImageFormat struct {
	BlockWidth         int64   `json:"block_width"`
	BlockHeight        int64   `json:"block_height"`
	DisplaySource      *string `json:"display_source,omitempty"`
	BlockFullWidth     *bool   `json:"block_full_width,omitempty"`
	BlockPageWidth     *bool   `json:"block_page_width,omitempty"`
	BlockAspectRatio   float64 `json:"block_aspect_ratio"`
	BlockPreserveScale bool    `json:"block_preserve_scale"`
}

// Image is an embedded image block.
type Image struct {
	Properties ImageProperties
	Format     ImageFormat
	FileIDs    []string
}

func (Image) Kind() Kind { return KindImage }
func (Image) isVariant() {}

// Caption returns the caption spans when present.
func (i Image) Caption() ([]Span, bool) {
	if len(i.Properties.Caption) == 0 {
		return nil, false
	}
	return i.Properties.Caption, true
}

// FigmaProperties keeps the embed source untouched.
type FigmaProperties struct {
	Source []byte
}

// FigmaFormat holds the embed height.
type FigmaFormat struct {
	BlockHeight *int64 `json:"block_height,omitempty"`
}

// Figma is an embedded Figma frame. It has no visual capability.
type Figma struct {
	Properties *FigmaProperties
	Format     *FigmaFormat
}

func (Figma) Kind() Kind { return KindFigma }
func (Figma) isVariant() {}
