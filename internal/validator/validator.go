package validator

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validator provides request schemas for every API resource.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// FieldErrors flattens ozzo validation errors into field -> message pairs.
// Nested errors (e.g. from validation.Each) use dotted keys such as "pdfIds.0".
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	flatten("", err, fields)
	return fields
}

func flatten(prefix string, err error, out map[string]string) {
	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, fieldErr := range ve {
			if fieldErr == nil {
				continue
			}
			key := field
			if prefix != "" {
				key = prefix + "." + field
			}
			flatten(key, fieldErr, out)
		}
		return
	}
	if err == nil {
		return
	}
	if prefix == "" {
		prefix = "unknown"
	}
	out[prefix] = err.Error()
}

// FirstMessage returns the message of the alphabetically first failing field,
// suitable as a one-line summary.
func FirstMessage(fields map[string]string) string {
	if len(fields) == 0 {
		return "Validation failed"
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.TrimSpace(fields[keys[0]])
}
