package interfaces

// MarkdownParser converts Markdown source into HTML.
type MarkdownParser interface {
	Parse(markdown []byte) ([]byte, error)
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions toggles parser extensions and HTML safety. Extension names
// are matched case-insensitively; unknown names are ignored.
type ParseOptions struct {
	Extensions []string `yaml:"extensions" json:"extensions"`
	HardWraps  bool     `yaml:"hard_wraps" json:"hard_wraps"`
	SafeMode   bool     `yaml:"safe_mode" json:"safe_mode"`
}

// FrontMatter is the metadata block written ahead of exported Markdown.
type FrontMatter struct {
	Title          string         `yaml:"title" json:"title"`
	ID             string         `yaml:"id" json:"id"`
	Summary        string         `yaml:"summary,omitempty" json:"summary,omitempty"`
	CreatedTime    int64          `yaml:"created_time,omitempty" json:"created_time,omitempty"`
	LastEditedTime int64          `yaml:"last_edited_time,omitempty" json:"last_edited_time,omitempty"`
	Author         string         `yaml:"author,omitempty" json:"author,omitempty"`
	Custom         map[string]any `yaml:",inline" json:"custom,omitempty"`
}
