package tablefile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed table.schema.json
var tableSchema []byte

const tableSchemaURL = "lexiz://schemas/table.json"

// format selects which key names a table file uses for relations.
type format string

const (
	formatYAML format = "yamlTable"
	formatJSON format = "jsonTable"
)

// schemaCache caches compiled schemas by format.
var schemaCache sync.Map // map[format]*jsonschema.Schema

// checkShape validates the raw document against the table file schema
// before it is decoded into a vocab.Table, so a wrong type or a missing
// key is reported with its location in the file.
func checkShape(f format, data []byte) error {
	doc, err := toJSONValue(f, data)
	if err != nil {
		return err
	}
	sch, err := compiledSchema(f)
	if err != nil {
		return fmt.Errorf("compile table schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("table file does not match schema: %w", err)
	}
	return nil
}

// toJSONValue decodes data into the value model the validator expects.
// YAML is round-tripped through JSON so numbers and maps use JSON types.
func toJSONValue(f format, data []byte) (any, error) {
	if f == formatYAML {
		var parsed any
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(parsed)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		data = raw
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

func compiledSchema(f format) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(f); ok {
		return cached.(*jsonschema.Schema), nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(tableSchema))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(tableSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	rootURL := fmt.Sprintf("lexiz://schemas/%s.json", f)
	root := map[string]any{"$ref": tableSchemaURL + "#/$defs/" + string(f)}
	if err := c.AddResource(rootURL, root); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(rootURL)
	if err != nil {
		return nil, err
	}

	schemaCache.Store(f, compiled)
	return compiled, nil
}
