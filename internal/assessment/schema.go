package assessment

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSchemas describes the question_data the client can render, per
// question type.
var questionSchemas = map[string]map[string]any{
	TypeMultipleChoice: {
		"type": "object",
		"properties": map[string]any{
			"pregunta": map[string]any{"type": "string", "minLength": 1},
			"opciones": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"anyOf": []any{
						map[string]any{"type": "string"},
						map[string]any{"type": "object"},
					},
				},
			},
		},
		"required": []any{"pregunta", "opciones"},
	},
	TypeTrueFalse: {
		"type": "object",
		"properties": map[string]any{
			"statement": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"statement"},
	},
	TypeFillBlanks: {
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"text"},
	},
}

// schemaCache caches compiled schemas by question type.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ErrUnsupportedType is returned for question types the client cannot
// render.
type ErrUnsupportedType struct {
	Type string
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported question type %q", e.Type)
}

// ErrInvalidQuestion indicates question_data does not match its type.
type ErrInvalidQuestion struct {
	Type string
	Data json.RawMessage
	Err  error
}

func (e *ErrInvalidQuestion) Error() string {
	return fmt.Sprintf("invalid %s question: %v", e.Type, e.Err)
}

func (e *ErrInvalidQuestion) Unwrap() error { return e.Err }

// validateQuestionData checks raw against the schema of tipo.
func validateQuestionData(tipo string, raw json.RawMessage) error {
	compiled, err := compiledSchema(tipo)
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidQuestion{Type: tipo, Data: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidQuestion{Type: tipo, Data: raw, Err: err}
	}
	return nil
}

func compiledSchema(tipo string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(tipo); ok {
		return cached.(*jsonschema.Schema), nil
	}
	def, ok := questionSchemas[tipo]
	if !ok {
		return nil, &ErrUnsupportedType{Type: tipo}
	}

	// The compiler wants plain decoded JSON values.
	b, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", tipo, err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", tipo, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://question/%s.json", tipo)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add %s schema: %w", tipo, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", tipo, err)
	}
	schemaCache.Store(tipo, compiled)
	return compiled, nil
}
