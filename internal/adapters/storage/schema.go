package storage

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	currentSchemaURL = "doer://schemas/year_current.json"
	legacySchemaURL  = "doer://schemas/year_legacy.json"
)

type yearSchemas struct {
	current *jsonschema.Schema
	legacy  *jsonschema.Schema
}

var loadSchemas = sync.OnceValues(compileSchemas)

func compileSchemas() (*yearSchemas, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	resources := map[string]string{
		currentSchemaURL: "schemas/year_current.json",
		legacySchemaURL:  "schemas/year_legacy.json",
	}
	for url, file := range resources {
		data, err := schemaFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", file, err)
		}
		if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", file, err)
		}
	}

	current, err := compiler.Compile(currentSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	legacy, err := compiler.Compile(legacySchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &yearSchemas{current: current, legacy: legacy}, nil
}

// validateDocument checks a decoded JSON document against the schema of its
// priority format and returns the most specific violation.
func validateDocument(doc any, legacy bool) error {
	schemas, err := loadSchemas()
	if err != nil {
		return err
	}

	schema := schemas.current
	if legacy {
		schema = schemas.legacy
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	leaf := firstLeafCause(ve)
	return &schemaViolation{Path: jsonPointerToPath(leaf.InstanceLocation), Message: leaf.Message}
}

// firstLeafCause walks down the first branch of nested causes
func firstLeafCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

type schemaViolation struct {
	Path    string
	Message string
}

func (e *schemaViolation) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// jsonPointerToPath turns "/days/2024-03-01/priorities/0" into
// "days.2024-03-01.priorities[0]".
func jsonPointerToPath(pointer string) string {
	if pointer == "" || pointer == "/" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		part = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
