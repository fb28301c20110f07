package decoder

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// TextCodeMalformed tags top-level decode failures.
const TextCodeMalformed = "DOCUMENT_MALFORMED"

var (
	// ErrMalformed reports a page chunk whose top-level shape is unusable.
	ErrMalformed = errors.New("decoder: malformed page chunk")

	// Reasons recorded on opaque entries.
	ErrEntryShape     = errors.New("decoder: entry is not a {role, value} object")
	ErrMissingValue   = errors.New("decoder: entry has no value")
	ErrUnknownType    = errors.New("decoder: unknown block type")
	ErrMissingField   = errors.New("decoder: required field missing")
	ErrInvalidField   = errors.New("decoder: field has an unexpected shape")
	ErrPageIDNotFound = errors.New("decoder: page id not present in block table")
)

func malformed(message string, cause error, found []Issue) error {
	err := goerrors.Wrap(ErrMalformed, goerrors.CategoryBadInput, message).
		WithTextCode(TextCodeMalformed)
	meta := map[string]any{}
	if cause != nil {
		meta["cause"] = cause.Error()
	}
	if len(found) > 0 {
		meta["issues"] = found
	}
	if len(meta) > 0 {
		err = err.WithMetadata(meta)
	}
	return err
}

// pageNotFound matches both ErrMalformed and ErrPageIDNotFound.
func pageNotFound(message string, found []Issue) error {
	err := goerrors.Wrap(fmt.Errorf("%w: %w", ErrMalformed, ErrPageIDNotFound), goerrors.CategoryBadInput, message).
		WithTextCode(TextCodeMalformed)
	if len(found) > 0 {
		err = err.WithMetadata(map[string]any{"issues": found})
	}
	return err
}

func missingField(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, path)
}

func invalidField(path string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrInvalidField, path)
	}
	return fmt.Errorf("%w: %s: %v", ErrInvalidField, path, cause)
}
