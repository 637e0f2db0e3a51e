// Package schema declares the client-side validation rules for every form.
// The server owns the canonical record shapes; these field declarations
// mirror its constraints so bad input never leaves the client.
package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/athletetrack/athletetrack/internal/constants"
)

// Kind is the coerced type of a field's value.
type Kind int

const (
	String Kind = iota
	Number      // float, e.g. metric value, amount
	Int         // whole number, e.g. calories
	Date        // YYYY-MM-DD
	Bool
)

// Field is one declared form field with its constraints.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	MinLen   int
	Positive bool
	OneOf    []string
	// MustBeTrue rejects anything but a literal true (terms agreement).
	MustBeTrue bool
	// Message overrides the generated validation message.
	Message string
}

// Schema is an ordered set of field declarations.
type Schema []Field

// Field looks a declaration up by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks a raw string input against the field's constraints.
// Shaped for use as a huh input validator.
func (f Field) Validate(raw string) error {
	value := strings.TrimSpace(raw)

	if value == "" {
		if f.Required {
			return f.fail("%s is required", f.label())
		}
		return nil
	}

	if f.MinLen > 0 && len(value) < f.MinLen {
		return f.fail("%s must be at least %d characters", f.label(), f.MinLen)
	}

	switch f.Kind {
	case Number:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return f.fail("%s must be a number", f.label())
		}
		if f.Positive && n <= 0 {
			return f.fail("%s must be positive", f.label())
		}
	case Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return f.fail("%s must be a whole number", f.label())
		}
		if f.Positive && n <= 0 {
			return f.fail("%s must be positive", f.label())
		}
	case Date:
		if _, err := time.Parse(constants.DateFormat, value); err != nil {
			return f.fail("%s must be a date (YYYY-MM-DD)", f.label())
		}
	}

	if len(f.OneOf) > 0 {
		found := false
		for _, opt := range f.OneOf {
			if value == opt {
				found = true
				break
			}
		}
		if !found {
			return f.fail("%s must be one of: %s", f.label(), strings.Join(f.OneOf, ", "))
		}
	}

	return nil
}

// ValidateBool checks a boolean field (only MustBeTrue is meaningful).
func (f Field) ValidateBool(value bool) error {
	if f.MustBeTrue && !value {
		return f.fail("you must agree to the terms")
	}
	return nil
}

// Validate checks a full value map and returns per-field errors. The input is
// never mutated.
func (s Schema) Validate(values map[string]string) map[string]error {
	errs := make(map[string]error)
	for _, f := range s {
		if f.Kind == Bool {
			continue
		}
		if err := f.Validate(values[f.Name]); err != nil {
			errs[f.Name] = err
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (f Field) label() string {
	return f.Name
}

func (f Field) fail(format string, args ...interface{}) error {
	if f.Message != "" {
		return fmt.Errorf("%s", f.Message)
	}
	return fmt.Errorf(format, args...)
}

// CoerceNumber converts a raw input to a float. Empty input coerces to 0.
func CoerceNumber(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}

// CoerceNullableInt converts a raw input to an optional whole number. Empty
// input stays absent rather than becoming zero.
func CoerceNullableInt(raw string) (*int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// CoerceInt converts a raw input to a whole number, with a fallback for empty
// or unparseable input (register form profile fields).
func CoerceInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

// CoerceDate converts a YYYY-MM-DD input to a timestamp.
func CoerceDate(raw string) (time.Time, error) {
	return time.Parse(constants.DateFormat, strings.TrimSpace(raw))
}
