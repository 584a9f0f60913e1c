package llm

import (
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name: "validate-test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"age":  map[string]any{"type": "integer", "minimum": 0},
		},
		"required": []any{"name"},
	},
}

func TestValidateAccepts(t *testing.T) {
	if err := Validate(testSchema, []byte(`{"name":"x","age":3}`)); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	// Repeat hits the compiled-schema cache.
	if err := Validate(testSchema, []byte(`{"name":"y"}`)); err != nil {
		t.Fatalf("Validate (cached): %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string][]byte{
		"not json":       []byte("nope"),
		"missing field":  []byte(`{"age":3}`),
		"wrong type":     []byte(`{"name":123}`),
		"constraint":     []byte(`{"name":"x","age":-1}`),
		"empty required": []byte(`{"name":""}`),
	}
	for name, raw := range cases {
		err := Validate(testSchema, raw)
		var invalid *ErrInvalidResponse
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: err = %v, want ErrInvalidResponse", name, err)
		}
		if string(invalid.Content) != string(raw) {
			t.Fatalf("%s: content not preserved", name)
		}
	}
}

func TestValidateNilSchema(t *testing.T) {
	if err := Validate(nil, []byte("anything")); err != nil {
		t.Fatalf("Validate(nil): %v", err)
	}
}
