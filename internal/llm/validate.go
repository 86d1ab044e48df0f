package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled holds *jsonschema.Schema values keyed by Schema.Name.
var compiled sync.Map

// checkOutput rejects truncated output and, when schema is set, output
// that does not validate against it.
func checkOutput(provider string, schema *Schema, raw json.RawMessage, stop StopReason) error {
	if stop == StopMaxTokens {
		return &Error{Kind: KindTruncated, Provider: provider, Content: raw}
	}
	if err := Validate(schema, raw); err != nil {
		return invalidResponse(provider, raw, err)
	}
	return nil
}

// Validate checks raw against schema. A nil schema accepts anything.
func Validate(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("not JSON: %w", err)
	}
	sch, err := compile(schema)
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema %s: %w", schema.Name, err)
	}
	return nil
}

func compile(schema *Schema) (*jsonschema.Schema, error) {
	if v, ok := compiled.Load(schema.Name); ok {
		return v.(*jsonschema.Schema), nil
	}

	// Round-trip through JSON so Go-typed literals (ints, []string) become
	// the generic values the compiler expects.
	raw, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", schema.Name, err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", schema.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := "mem://" + schema.Name + ".json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", schema.Name, err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", schema.Name, err)
	}
	compiled.Store(schema.Name, sch)
	return sch, nil
}
