package decoder

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed page_chunk.schema.json
var envelopeSchemaSource []byte

const envelopeSchemaURL = "page_chunk.schema.json"

var (
	envelopeOnce   sync.Once
	envelopeSchema *jsonschema.Schema
	envelopeErr    error
)

// Issue captures a single envelope validation failure.
type Issue struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

func compiledEnvelope() (*jsonschema.Schema, error) {
	envelopeOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(envelopeSchemaURL, bytes.NewReader(envelopeSchemaSource)); err != nil {
			envelopeErr = err
			return
		}
		envelopeSchema, envelopeErr = compiler.Compile(envelopeSchemaURL)
	})
	return envelopeSchema, envelopeErr
}

// checkEnvelope validates the top-level shape before any typed decoding.
func checkEnvelope(raw []byte) error {
	var instance any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&instance); err != nil {
		return malformed("page chunk is not valid JSON", err, nil)
	}
	if dec.More() {
		return malformed("page chunk has trailing data", nil, nil)
	}

	schema, err := compiledEnvelope()
	if err != nil {
		return malformed("envelope schema unavailable", err, nil)
	}
	if err := schema.Validate(instance); err != nil {
		return malformed("page chunk envelope invalid", err, issues(err))
	}
	return nil
}

func issues(err error) []Issue {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) || validationErr == nil {
		return []Issue{{Location: "#", Message: err.Error()}}
	}
	out := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			} else if !strings.HasPrefix(location, "#") {
				location = "#" + location
			}
			out = append(out, Issue{Location: location, Message: strings.TrimSpace(node.Message)})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return out
}
