package llm

import "testing"

var testSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"response": map[string]any{"type": "string"},
		"done":     map[string]any{"type": "boolean"},
	},
	"required": []string{"response"},
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid", `{"response": "A,Excellent", "done": true}`, false},
		{"extra fields ok", `{"response": "x", "model": "m"}`, false},
		{"missing required", `{"done": true}`, true},
		{"wrong type", `{"response": 42}`, true},
		{"empty response string still valid", `{"response": ""}`, false},
		{"malformed json", `{"response": `, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(testSchema, []byte(c.data))
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, c.wantErr)
			}
		})
	}
}

func TestValidateJSONAgainstSchemaBadSchema(t *testing.T) {
	bad := map[string]any{"type": 12345}
	if err := ValidateJSONAgainstSchema(bad, []byte(`{}`)); err == nil {
		t.Fatal("expected compile error for malformed schema")
	}
}
