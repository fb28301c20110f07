package decoder

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-pagetree/internal/document"
)

// wireRecord is the loosely typed stage two view of a block value. Pointer
// fields distinguish missing required fields from zero values.
type wireRecord struct {
	Type              string          `json:"type"`
	ID                *string         `json:"id"`
	Version           *int64          `json:"version"`
	CreatedTime       *int64          `json:"created_time"`
	LastEditedTime    *int64          `json:"last_edited_time"`
	ParentID          *string         `json:"parent_id"`
	ParentTable       *string         `json:"parent_table"`
	Alive             *bool           `json:"alive"`
	CreatedByTable    string          `json:"created_by_table"`
	CreatedByID       string          `json:"created_by_id"`
	LastEditedByTable string          `json:"last_edited_by_table"`
	LastEditedByID    string          `json:"last_edited_by_id"`
	ShardID           *int64          `json:"shard_id"`
	SpaceID           *string         `json:"space_id"`
	Content           []string        `json:"content"`
	Format            json.RawMessage `json:"format"`
	Properties        json.RawMessage `json:"properties"`
	FileIDs           json.RawMessage `json:"file_ids"`
}

func decodeRecord(raw json.RawMessage) (*document.Record, error) {
	var wire wireRecord
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, invalidField("value", err)
	}
	if err := wire.requireBase(); err != nil {
		return nil, err
	}

	kind := document.Kind(wire.Type)
	if !kind.Known() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, wire.Type)
	}

	record := &document.Record{
		ID:                *wire.ID,
		Version:           *wire.Version,
		CreatedTime:       *wire.CreatedTime,
		LastEditedTime:    *wire.LastEditedTime,
		ParentID:          *wire.ParentID,
		ParentTable:       *wire.ParentTable,
		Alive:             *wire.Alive,
		CreatedByTable:    wire.CreatedByTable,
		CreatedByID:       wire.CreatedByID,
		LastEditedByTable: wire.LastEditedByTable,
		LastEditedByID:    wire.LastEditedByID,
		ShardID:           wire.ShardID,
		SpaceID:           wire.SpaceID,
		Content:           wire.Content,
	}
	if !isNull(wire.Format) {
		var format document.BlockFormat
		if err := json.Unmarshal(wire.Format, &format); err != nil {
			return nil, invalidField("format", err)
		}
		record.Format = &format
	}

	variant, err := decodeVariant(kind, &wire)
	if err != nil {
		return nil, err
	}
	record.Variant = variant
	return record, nil
}

func (w *wireRecord) requireBase() error {
	switch {
	case w.ID == nil:
		return missingField("id")
	case w.Version == nil:
		return missingField("version")
	case w.CreatedTime == nil:
		return missingField("created_time")
	case w.LastEditedTime == nil:
		return missingField("last_edited_time")
	case w.ParentID == nil:
		return missingField("parent_id")
	case w.ParentTable == nil:
		return missingField("parent_table")
	case w.Alive == nil:
		return missingField("alive")
	}
	return nil
}

func decodeVariant(kind document.Kind, w *wireRecord) (document.Variant, error) {
	switch kind {
	case document.KindText, document.KindBulletedList, document.KindNumberedList,
		document.KindToggle, document.KindHeader, document.KindSubHeader,
		document.KindSubSubHeader, document.KindQuote:
		props, err := textProperties(w.Properties)
		if err != nil {
			return nil, err
		}
		return textVariant(kind, document.TextLike{Properties: props}), nil
	case document.KindToDo:
		return decodeToDo(w)
	case document.KindDivider:
		return document.Divider{}, nil
	case document.KindColumnList:
		return document.ColumnList{}, nil
	case document.KindColumn:
		return decodeColumn(w)
	case document.KindImage:
		return decodeImage(w)
	case document.KindPage:
		return decodePage(w)
	case document.KindFigma:
		return decodeFigma(w)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, kind)
}

func textVariant(kind document.Kind, base document.TextLike) document.Variant {
	switch kind {
	case document.KindBulletedList:
		return document.BulletedList{TextLike: base}
	case document.KindNumberedList:
		return document.NumberedList{TextLike: base}
	case document.KindToggle:
		return document.Toggle{TextLike: base}
	case document.KindHeader:
		return document.Header{TextLike: base}
	case document.KindSubHeader:
		return document.SubHeader{TextLike: base}
	case document.KindSubSubHeader:
		return document.SubSubHeader{TextLike: base}
	case document.KindQuote:
		return document.Quote{TextLike: base}
	default:
		return document.Text{TextLike: base}
	}
}

type wireTitled struct {
	Title json.RawMessage `json:"title"`
}

// textProperties decodes the optional properties bag. When present it must
// carry a title.
func textProperties(raw json.RawMessage) (*document.TextProperties, error) {
	if isNull(raw) {
		return nil, nil
	}
	var wire wireTitled
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, invalidField("properties", err)
	}
	title, err := decodeSpans("properties.title", wire.Title)
	if err != nil {
		return nil, err
	}
	return &document.TextProperties{Title: title}, nil
}

type wireToDoProperties struct {
	Title   json.RawMessage `json:"title"`
	Checked json.RawMessage `json:"checked"`
}

func decodeToDo(w *wireRecord) (document.Variant, error) {
	if isNull(w.Properties) {
		return document.ToDo{}, nil
	}
	var wire wireToDoProperties
	if err := json.Unmarshal(w.Properties, &wire); err != nil {
		return nil, invalidField("properties", err)
	}
	props := &document.ToDoProperties{}
	if !isNull(wire.Title) {
		title, err := decodeSpans("properties.title", wire.Title)
		if err != nil {
			return nil, err
		}
		props.Title = title
	}
	if !isNull(wire.Checked) {
		checked, err := firstString(wire.Checked)
		if err != nil {
			return nil, invalidField("properties.checked", err)
		}
		props.Checked = strings.EqualFold(checked, "yes")
	}
	return document.ToDo{Properties: props}, nil
}

type wireColumnFormat struct {
	ColumnRatio *float64 `json:"column_ratio"`
}

func decodeColumn(w *wireRecord) (document.Variant, error) {
	if isNull(w.Format) {
		return nil, missingField("format")
	}
	var wire wireColumnFormat
	if err := json.Unmarshal(w.Format, &wire); err != nil {
		return nil, invalidField("format", err)
	}
	if wire.ColumnRatio == nil {
		return nil, missingField("format.column_ratio")
	}
	return document.Column{Format: document.ColumnFormat{ColumnRatio: *wire.ColumnRatio}}, nil
}

type wireImageProperties struct {
	Source  json.RawMessage `json:"source"`
	Caption json.RawMessage `json:"caption"`
}

type wireImageFormat struct {
	BlockWidth         float64         `json:"block_width"`
	BlockHeight        float64         `json:"block_height"`
	DisplaySource      json.RawMessage `json:"display_source"`
	BlockFullWidth     *bool           `json:"block_full_width"`
	BlockPageWidth     *bool           `json:"block_page_width"`
	BlockAspectRatio   float64         `json:"block_aspect_ratio"`
	BlockPreserveScale bool            `json:"block_preserve_scale"`
}

func decodeImage(w *wireRecord) (document.Variant, error) {
	if isNull(w.Properties) {
		return nil, missingField("properties")
	}
	var props wireImageProperties
	if err := json.Unmarshal(w.Properties, &props); err != nil {
		return nil, invalidField("properties", err)
	}
	if isNull(props.Source) {
		return nil, missingField("properties.source")
	}
	source, err := firstString(props.Source)
	if err != nil {
		return nil, invalidField("properties.source", err)
	}
	image := document.Image{Properties: document.ImageProperties{Source: source}}
	if !isNull(props.Caption) {
		caption, err := decodeSpans("properties.caption", props.Caption)
		if err != nil {
			return nil, err
		}
		image.Properties.Caption = caption
	}

	if isNull(w.Format) {
		return nil, missingField("format")
	}
	var format wireImageFormat
	if err := json.Unmarshal(w.Format, &format); err != nil {
		return nil, invalidField("format", err)
	}
	image.Format = document.ImageFormat{
		BlockWidth:         int64(format.BlockWidth),
		BlockHeight:        int64(format.BlockHeight),
		BlockFullWidth:     format.BlockFullWidth,
		BlockPageWidth:     format.BlockPageWidth,
		BlockAspectRatio:   format.BlockAspectRatio,
		BlockPreserveScale: format.BlockPreserveScale,
	}
	var display string
	if err := json.Unmarshal(format.DisplaySource, &display); err == nil && display != "" {
		image.Format.DisplaySource = &display
	}

	if isNull(w.FileIDs) {
		return nil, missingField("file_ids")
	}
	if err := json.Unmarshal(w.FileIDs, &image.FileIDs); err != nil {
		return nil, invalidField("file_ids", err)
	}
	return image, nil
}

func decodePage(w *wireRecord) (document.Variant, error) {
	if isNull(w.Properties) {
		return nil, missingField("properties")
	}
	var wire wireTitled
	if err := json.Unmarshal(w.Properties, &wire); err != nil {
		return nil, invalidField("properties", err)
	}
	title, err := decodeSpans("properties.title", wire.Title)
	if err != nil {
		return nil, err
	}
	page := document.Page{Properties: document.PageProperties{Title: title}}
	if !isNull(w.Format) {
		var format document.PageFormat
		if err := json.Unmarshal(w.Format, &format); err != nil {
			return nil, invalidField("format", err)
		}
		page.Format = &format
	}
	if !isNull(w.FileIDs) {
		if err := json.Unmarshal(w.FileIDs, &page.FileIDs); err != nil {
			return nil, invalidField("file_ids", err)
		}
	}
	return page, nil
}

type wireFigmaProperties struct {
	Source json.RawMessage `json:"source"`
}

func decodeFigma(w *wireRecord) (document.Variant, error) {
	figma := document.Figma{}
	if !isNull(w.Properties) {
		var props wireFigmaProperties
		if err := json.Unmarshal(w.Properties, &props); err != nil {
			return nil, invalidField("properties", err)
		}
		figma.Properties = &document.FigmaProperties{Source: append([]byte(nil), props.Source...)}
	}
	if !isNull(w.Format) {
		var format document.FigmaFormat
		if err := json.Unmarshal(w.Format, &format); err != nil {
			return nil, invalidField("format", err)
		}
		figma.Format = &format
	}
	return figma, nil
}

// firstString reads the head of a [["value", ...]] property.
func firstString(raw json.RawMessage) (string, error) {
	var rows [][]json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return "", err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", errEmptyProperty
	}
	var value string
	if err := json.Unmarshal(rows[0][0], &value); err != nil {
		return "", err
	}
	return value, nil
}
