package markup

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

// Attribute is a single name="value" pair. Zero-valued attributes are skipped.
type Attribute struct {
	Name  string
	Value string
	// Bare renders the name without a value (disabled, checked).
	Bare bool
}

func (a Attribute) render() string {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return ""
	}
	if a.Bare {
		return name
	}
	return name + `="` + template.HTMLEscapeString(a.Value) + `"`
}

// Attr builds an arbitrary attribute.
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// Flag builds a valueless boolean attribute.
func Flag(name string) Attribute {
	return Attribute{Name: name, Bare: true}
}

func Class(name string) Attribute {
	if strings.TrimSpace(name) == "" {
		return Attribute{}
	}
	return Attr("class", name)
}

// ClassList joins non-blank names with spaces.
func ClassList(names ...string) Attribute {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return Class(strings.Join(kept, " "))
}

func ID(value string) Attribute {
	if value == "" {
		return Attribute{}
	}
	return Attr("id", value)
}

func Href(value string) Attribute {
	return Attr("href", value)
}

func Src(value string) Attribute {
	return Attr("src", value)
}

// StyleProperty is one CSS declaration.
type StyleProperty struct {
	Name  string
	Value string
}

// Style joins declarations as name:value pairs separated by semicolons.
func Style(props ...StyleProperty) Attribute {
	parts := make([]string, 0, len(props))
	for _, prop := range props {
		if prop.Name == "" || prop.Value == "" {
			continue
		}
		parts = append(parts, prop.Name+":"+prop.Value)
	}
	if len(parts) == 0 {
		return Attribute{}
	}
	return Attr("style", strings.Join(parts, ";"))
}

// Percent formats a ratio in [0,1] as a CSS percentage.
func Percent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', -1, 64) + "%"
}

// Pixels formats a length in CSS pixels.
func Pixels(value int64) string {
	return fmt.Sprintf("%dpx", value)
}
