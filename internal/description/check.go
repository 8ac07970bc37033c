package description

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed index.schema.json
var indexSchema []byte

const schemaURL = "index.schema.json"

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(indexSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
})

// Check validates the shape of a parsed description file.
func Check(doc *yaml.Node) error {
	schema, err := compiled()
	if err != nil {
		return err
	}

	var raw any
	if err := doc.Decode(&raw); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	// Round trip through JSON so numbers and maps have the types the
	// validator expects.
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	return schema.Validate(payload)
}
