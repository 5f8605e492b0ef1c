package guide

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// maxFragmentLen bounds how much offending JSON a validation message quotes.
const maxFragmentLen = 200

// Load reads and parses a guide document from a JSON file.
func Load(path string) (*Guide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read guide file: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse validates and decodes a guide document. It is the single
// populate step of a Guide's lifecycle: a document either fully parses or
// an error describing the failing field and the offending fragment is
// returned, never a partial result. The game module is selected by the
// _schema discriminator from the default registry.
func Parse(data []byte) (*Guide, error) {
	return ParseWithRegistry(data, DefaultRegistry)
}

// ParseWithRegistry is Parse with an explicit module registry.
func ParseWithRegistry(data []byte, registry *Registry) (*Guide, error) {
	var raw struct {
		Schema       string             `json:"_schema"`
		GameTitle    string             `json:"gameTitle"`
		Categories   []string           `json:"categories"`
		Description  []string           `json:"description"`
		Resources    []string           `json:"resources"`
		Rules        *Rules             `json:"rules"`
		Instructions *[]json.RawMessage `json:"instructions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse guide: %w", err)
	}

	if raw.Schema == "" {
		return nil, fmt.Errorf("_schema: missing module discriminator (registered: %s)",
			strings.Join(registry.Names(), ", "))
	}
	module, ok := registry.Get(raw.Schema)
	if !ok {
		return nil, fmt.Errorf("_schema: unknown module %q (registered: %s)",
			raw.Schema, strings.Join(registry.Names(), ", "))
	}

	if raw.GameTitle == "" {
		return nil, fmt.Errorf("gameTitle: must be a non-empty string")
	}
	if len(raw.Description) == 0 {
		return nil, fmt.Errorf("description: must be a non-empty array of paragraphs")
	}
	if raw.Rules == nil {
		return nil, fmt.Errorf("rules: missing required rule table")
	}
	if raw.Instructions == nil {
		return nil, fmt.Errorf("instructions: missing required instruction list")
	}

	instructions := make([]Instruction, 0, len(*raw.Instructions))
	for i, rawIns := range *raw.Instructions {
		ins, err := decodeInstruction(module, rawIns)
		if err != nil {
			return nil, fmt.Errorf("instructions[%d]: %w: %s", i, err, fragment(rawIns))
		}
		instructions = append(instructions, ins)
	}

	resources := raw.Resources
	if resources == nil {
		resources = []string{}
	}

	return &Guide{
		ID:           uuid.NewString(),
		Schema:       raw.Schema,
		GameTitle:    raw.GameTitle,
		Categories:   raw.Categories,
		Description:  raw.Description,
		Resources:    resources,
		Rules:        *raw.Rules,
		Instructions: instructions,
		module:       module,
	}, nil
}

// decodeInstruction extracts the kind tag and hands the payload to the
// game module.
func decodeInstruction(module Module, data json.RawMessage) (Instruction, error) {
	var tag struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}
	if tag.Kind == "" {
		return nil, fmt.Errorf("missing kind tag")
	}
	return module.Decode(tag.Kind, data)
}

// fragment serializes offending JSON compactly for a validation message.
func fragment(data json.RawMessage) string {
	var buf bytes.Buffer
	text := string(data)
	if err := json.Compact(&buf, data); err == nil {
		text = buf.String()
	}
	if len(text) > maxFragmentLen {
		text = text[:maxFragmentLen] + "..."
	}
	return text
}
