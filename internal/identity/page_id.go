package identity

import (
	"errors"
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// ErrInvalidPageID reports a value that carries no recognizable page id.
var ErrInvalidPageID = errors.New("identity: invalid page id")

const compactLength = 32

// NormalizePageID accepts a dashed id, a compact 32 character id, or a page
// URL whose last path segment ends with the compact id, and returns the
// lowercase dashed form.
func NormalizePageID(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", ErrInvalidPageID
	}
	if parsed, err := uuid.Parse(value); err == nil {
		return parsed.String(), nil
	}

	value = strings.SplitN(value, "?", 2)[0]
	value = strings.SplitN(value, "#", 2)[0]
	value = strings.TrimRight(value, "/")
	if idx := strings.LastIndex(value, "/"); idx >= 0 {
		value = value[idx+1:]
	}
	if len(value) < compactLength {
		return "", ErrInvalidPageID
	}
	parsed, err := uuid.Parse(value[len(value)-compactLength:])
	if err != nil {
		return "", ErrInvalidPageID
	}
	return parsed.String(), nil
}

// Compact strips dashes from id.
func Compact(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

// Anchor derives an HTML anchor from a title, falling back to the compact
// block id when the title has no sluggable content.
func Anchor(title, fallbackID string) string {
	if strings.TrimSpace(title) != "" {
		if normalized, err := slug.Normalize(title); err == nil && normalized != "" {
			return normalized
		}
	}
	return Compact(fallbackID)
}
