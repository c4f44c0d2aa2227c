package jsonldb

import (
	"testing"
	"time"
)

type schemaRow struct {
	ID      string    `json:"id" jsonschema:"description=Unique identifier"`
	Name    string    `json:"name"`
	Count   int       `json:"count"`
	Price   float64   `json:"price"`
	Active  bool      `json:"active"`
	Created time.Time `json:"created"`
	Tags    []string  `json:"tags,omitempty"`
}

func (r *schemaRow) Clone() *schemaRow {
	c := *r
	return &c
}
func (r *schemaRow) GetID() string   { return r.ID }
func (r *schemaRow) Validate() error { return nil }

func TestSchemaFromType(t *testing.T) {
	cols, err := schemaFromType[*schemaRow]()
	if err != nil {
		t.Fatalf("schemaFromType failed: %v", err)
	}

	byName := make(map[string]column, len(cols))
	for _, c := range cols {
		byName[c.Name] = c
	}

	tests := []struct {
		name string
		want columnType
	}{
		{"id", columnTypeText},
		{"name", columnTypeText},
		{"count", columnTypeNumber},
		{"price", columnTypeNumber},
		{"active", columnTypeBool},
		{"created", columnTypeDate},
		{"tags", columnTypeJSONB},
	}
	for _, tt := range tests {
		col, ok := byName[tt.name]
		if !ok {
			t.Errorf("column %q missing", tt.name)
			continue
		}
		if col.Type != tt.want {
			t.Errorf("column %q type = %s, want %s", tt.name, col.Type, tt.want)
		}
	}

	if byName["id"].Description != "Unique identifier" {
		t.Errorf("id description = %q", byName["id"].Description)
	}
	// Field order follows struct declaration order.
	if cols[0].Name != "id" {
		t.Errorf("first column = %s, want id", cols[0].Name)
	}
}

func TestSchemaHeaderValidate(t *testing.T) {
	tests := []struct {
		name    string
		header  schemaHeader
		wantErr bool
	}{
		{"valid", schemaHeader{Version: "1.0", Columns: []column{{Name: "id", Type: columnTypeText}}}, false},
		{"empty columns ok", schemaHeader{Version: "1.0"}, false},
		{"missing version", schemaHeader{Columns: []column{{Name: "id", Type: columnTypeText}}}, true},
		{"column without name", schemaHeader{Version: "1.0", Columns: []column{{Type: columnTypeText}}}, true},
		{"column without type", schemaHeader{Version: "1.0", Columns: []column{{Name: "id"}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.header.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSchemaRejectsNonStruct(t *testing.T) {
	if _, err := schemaFromType[string](); err == nil {
		t.Error("schemaFromType[string]() expected error, got nil")
	}
}
