package markup

import (
	"fmt"
	"net/url"
	"strings"
)

// Sanitizer enforces a URL scheme allow-list for link targets. Relative
// references are always allowed.
type Sanitizer struct {
	allowedSchemes map[string]struct{}
}

// NewSanitizer returns a sanitizer allowing the given schemes, or http,
// https and mailto when none are supplied.
func NewSanitizer(schemes ...string) *Sanitizer {
	if len(schemes) == 0 {
		schemes = []string{"http", "https", "mailto"}
	}
	allowed := map[string]struct{}{"": {}}
	for _, scheme := range schemes {
		if trimmed := strings.ToLower(strings.TrimSpace(scheme)); trimmed != "" {
			allowed[trimmed] = struct{}{}
		}
	}
	return &Sanitizer{allowedSchemes: allowed}
}

// ValidateURL ensures the URL parses and has an allowed scheme.
func (s *Sanitizer) ValidateURL(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fmt.Errorf("markup: empty url")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return err
	}

	if _, ok := s.allowedSchemes[strings.ToLower(parsed.Scheme)]; !ok {
		return fmt.Errorf("markup: url scheme %q not permitted", parsed.Scheme)
	}
	return nil
}
