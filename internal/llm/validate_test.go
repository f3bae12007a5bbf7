package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"field":  map[string]any{"type": "string"},
				"match":  map[string]any{"type": "integer", "minimum": 0},
				"growth": map[string]any{"type": "string", "enum": []any{"High", "Medium", "Low"}},
			},
			"required": []any{"field", "match"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"field":"Software Engineering","match":85,"growth":"High"}`)
	content, err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(content) != string(raw) {
		t.Fatalf("content changed: %s", content)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"field":"Education","match":70}`)
	if _, err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"field":"Education"}`)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"field":"Education","match":"eighty"}`)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"field":"Education","match":70,"growth":"Stratospheric"}`)
	_, err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_RepairsAlmostJSON(t *testing.T) {
	// Trailing comma plus markdown fence, the classic LLM output.
	raw := json.RawMessage("```json\n{\"field\":\"Education\",\"match\":70,}\n```")
	content, err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected repair to recover, got: %v", err)
	}

	var parsed struct {
		Field string `json:"field"`
		Match int    `json:"match"`
	}
	if err := json.Unmarshal(content, &parsed); err != nil {
		t.Fatalf("repaired content not parseable: %v", err)
	}
	if parsed.Field != "Education" || parsed.Match != 70 {
		t.Fatalf("repaired content = %s", content)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if _, err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	content, err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
	if string(content) != string(raw) {
		t.Fatalf("content changed: %s", content)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"insights": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"summary": map[string]any{"type": "string"},
					},
					"required": []any{"summary"},
				},
				"scores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"insights", "scores"},
		},
	}

	valid := json.RawMessage(`{"insights":{"summary":"Organized."},"scores":[90,85,92]}`)
	if _, err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"insights":{"summary":"Organized."},"scores":["not","ints"]}`)
	if _, err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
