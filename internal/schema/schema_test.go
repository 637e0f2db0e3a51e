package schema

import (
	"testing"
	"time"
)

func TestFieldValidate(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		input   string
		wantErr bool
	}{
		{"required rejects empty", Field{Name: "username", Required: true}, "", true},
		{"required rejects whitespace", Field{Name: "username", Required: true}, "   ", true},
		{"optional accepts empty", Field{Name: "notes"}, "", false},
		{"min length enforced", Field{Name: "password", Required: true, MinLen: 6}, "abc", true},
		{"min length met", Field{Name: "password", Required: true, MinLen: 6}, "abcdef", false},
		{"number rejects text", Field{Name: "value", Kind: Number, Required: true}, "heavy", true},
		{"number accepts decimal", Field{Name: "value", Kind: Number, Required: true}, "82.5", false},
		{"positive rejects zero", Field{Name: "amount", Kind: Number, Required: true, Positive: true}, "0", true},
		{"positive rejects negative", Field{Name: "amount", Kind: Number, Required: true, Positive: true}, "-3", true},
		{"int rejects decimal", Field{Name: "calories", Kind: Int}, "12.5", true},
		{"optional int skips empty", Field{Name: "calories", Kind: Int, Positive: true}, "", false},
		{"date accepts iso day", Field{Name: "date", Kind: Date, Required: true}, "2026-03-14", false},
		{"date rejects other layouts", Field{Name: "date", Kind: Date, Required: true}, "14/03/2026", true},
		{"one-of accepts member", Field{Name: "severity", OneOf: []string{"Mild", "Moderate", "Severe"}}, "Moderate", false},
		{"one-of rejects stranger", Field{Name: "severity", OneOf: []string{"Mild", "Moderate", "Severe"}}, "Terrible", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Validate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestFieldMessageOverride(t *testing.T) {
	f := Field{Name: "amount", Kind: Number, Required: true, Positive: true, Message: "amount must be a positive number"}
	err := f.Validate("-1")
	if err == nil || err.Error() != "amount must be a positive number" {
		t.Errorf("Validate(-1) = %v, want custom message", err)
	}
}

func TestValidateBoolTerms(t *testing.T) {
	reg := Register()
	terms, ok := reg.Field("agreeTerms")
	if !ok {
		t.Fatal("register schema is missing agreeTerms")
	}
	if err := terms.ValidateBool(false); err == nil {
		t.Error("ValidateBool(false) should reject an unchecked terms box")
	}
	if err := terms.ValidateBool(true); err != nil {
		t.Errorf("ValidateBool(true) = %v, want nil", err)
	}
}

func TestSchemaValidateMap(t *testing.T) {
	fin := Finance()
	errs := fin.Validate(map[string]string{
		"category":    "Equipment",
		"amount":      "-20",
		"description": "",
		"date":        "2026-01-05",
	})
	if errs == nil {
		t.Fatal("Validate should flag the bad finance values")
	}
	if _, ok := errs["amount"]; !ok {
		t.Error("negative amount not flagged")
	}
	if _, ok := errs["description"]; !ok {
		t.Error("empty description not flagged")
	}
	if _, ok := errs["category"]; ok {
		t.Error("valid category wrongly flagged")
	}

	errs = fin.Validate(map[string]string{
		"category":    "Travel",
		"amount":      "129.99",
		"description": "flight to regionals",
		"date":        "2026-01-05",
	})
	if errs != nil {
		t.Errorf("valid finance values flagged: %v", errs)
	}
}

func TestCoercion(t *testing.T) {
	if n, err := CoerceNumber("82.5"); err != nil || n != 82.5 {
		t.Errorf("CoerceNumber(82.5) = %v, %v", n, err)
	}
	if n, err := CoerceNumber(""); err != nil || n != 0 {
		t.Errorf("CoerceNumber(empty) = %v, %v, want 0", n, err)
	}

	if v, err := CoerceNullableInt(""); err != nil || v != nil {
		t.Errorf("CoerceNullableInt(empty) = %v, %v, want nil", v, err)
	}
	if v, err := CoerceNullableInt("640"); err != nil || v == nil || *v != 640 {
		t.Errorf("CoerceNullableInt(640) = %v, %v", v, err)
	}

	if got := CoerceInt("banana", 70); got != 70 {
		t.Errorf("CoerceInt fallback = %d, want 70", got)
	}

	d, err := CoerceDate("2026-03-14")
	if err != nil {
		t.Fatalf("CoerceDate: %v", err)
	}
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("CoerceDate = %v, want %v", d, want)
	}
}
