package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the structural contract for the ingested document.
// Answer-index bounds depend on the options length and are checked in Go.
const bankSchema = `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"meta": {
			"type": "object",
			"properties": {
				"title": {"type": "string"},
				"license": {"type": "string"},
				"sources": {"type": "array", "items": {"type": "string"}}
			}
		},
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question", "options", "answer", "topic"],
				"properties": {
					"question": {"type": "string", "minLength": 1},
					"options": {"type": "array", "items": {"type": "string"}, "minItems": 2},
					"answer": {"type": "integer", "minimum": 0},
					"topic": {"type": "string", "minLength": 1},
					"source": {"type": "string"},
					"explanation": {"type": "string"}
				}
			}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileSchema compiles the bank schema once per process.
func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://bank.json", def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://bank.json")
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a decoded document value against the bank schema.
func validateDocument(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return &MalformedBankError{Reason: "schema validation failed", Err: err}
	}
	return nil
}
