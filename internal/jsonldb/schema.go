// Handles schema headers and reflection-based schema generation.

package jsonldb

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// currentVersion is the current version of the JSONL table format.
const currentVersion = "1.0"

var errSchemaVersionRequired = errors.New("schema version is required")

// columnType represents the type of a table column.
type columnType string

const (
	columnTypeText   columnType = "text"
	columnTypeNumber columnType = "number"
	columnTypeBool   columnType = "bool"
	columnTypeDate   columnType = "date"
	columnTypeJSONB  columnType = "jsonb"
)

// column represents a table column in storage.
type column struct {
	Name        string     `json:"name"`
	Type        columnType `json:"type"`
	Required    bool       `json:"required,omitempty"`
	Description string     `json:"description,omitempty"`
}

// schemaHeader is the first row of a JSONL data file containing schema and
// metadata.
type schemaHeader struct {
	Version string   `json:"version"`
	Columns []column `json:"columns"`
}

// Validate checks that the schema header is well-formed.
func (h *schemaHeader) Validate() error {
	if h.Version == "" {
		return errSchemaVersionRequired
	}
	for i, col := range h.Columns {
		if col.Name == "" {
			return fmt.Errorf("column %d: name is required", i)
		}
		if col.Type == "" {
			return fmt.Errorf("column %d: type is required", i)
		}
	}
	return nil
}

// headerForType builds the schema header for a row type.
func headerForType[T any]() (*schemaHeader, error) {
	cols, err := schemaFromType[T]()
	if err != nil {
		return nil, err
	}
	return &schemaHeader{Version: currentVersion, Columns: cols}, nil
}

// schemaFromType extracts column definitions using JSON Schema reflection.
//
// It uses github.com/invopop/jsonschema to pick up field descriptions from
// `jsonschema:"description=..."` tags and required fields from the schema.
func schemaFromType[T any]() ([]column, error) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Pointer:
		if t.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("type must be a struct or pointer to struct, got %s", t.Kind())
		}
		t = t.Elem()
	case reflect.Struct:
	default:
		return nil, fmt.Errorf("type must be a struct or pointer to struct, got %s", t.Kind())
	}

	r := jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	schema := r.ReflectFromType(t)

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var cols []column
	if schema.Properties == nil {
		return cols, nil
	}
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key
		prop := pair.Value
		cols = append(cols, column{
			Name:        name,
			Type:        columnTypeFromSchema(prop),
			Required:    required[name],
			Description: prop.Description,
		})
	}
	return cols, nil
}

// columnTypeFromSchema maps a JSON Schema property to a storage column type.
func columnTypeFromSchema(prop *jsonschema.Schema) columnType {
	switch prop.Type {
	case "string":
		if prop.Format == "date-time" || strings.Contains(strings.ToLower(prop.Description), "timestamp") {
			return columnTypeDate
		}
		return columnTypeText
	case "number", "integer":
		return columnTypeNumber
	case "boolean":
		return columnTypeBool
	default:
		return columnTypeJSONB
	}
}
