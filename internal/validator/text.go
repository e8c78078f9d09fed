package validator

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var lineBreakRun = regexp.MustCompile(`[\r\n\t]+`)

// NormalizeText strips NUL, C0 control and DEL characters and trims the result.
// Unless allowNewlines is set, runs of newlines and tabs collapse into one space.
func NormalizeText(s string, allowNewlines bool) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if !allowNewlines {
		s = lineBreakRun.ReplaceAllString(s, " ")
	}
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// NormalizeValue applies NormalizeText to strings and string pointers.
// Any other value is returned unchanged.
func NormalizeValue(value interface{}, allowNewlines bool) interface{} {
	switch v := value.(type) {
	case string:
		return NormalizeText(v, allowNewlines)
	case *string:
		if v == nil {
			return v
		}
		n := NormalizeText(*v, allowNewlines)
		return &n
	}
	return value
}

// TextOptions tunes a text schema.
type TextOptions struct {
	AllowNewlines bool
	Optional      bool
}

// TextSchema validates a free-text field: normalized, bounded and free of angle brackets.
type TextSchema struct {
	label     string
	maxLength int
	opts      TextOptions
}

// Text builds a TextSchema. label is used verbatim in error messages.
func Text(label string, maxLength int, opts TextOptions) TextSchema {
	return TextSchema{label: label, maxLength: maxLength, opts: opts}
}

// Label returns the human readable field name.
func (s TextSchema) Label() string {
	return s.label
}

// Normalize normalizes the value in place. Empty values of optional
// schemas become nil.
func (s TextSchema) Normalize(value **string) {
	if *value == nil {
		return
	}
	n := NormalizeText(**value, s.opts.AllowNewlines)
	if n == "" && s.opts.Optional {
		*value = nil
		return
	}
	*value = &n
}

// Parse normalizes and validates a single value.
func (s TextSchema) Parse(value *string) (*string, error) {
	s.Normalize(&value)
	if err := validation.Validate(value, s.Rules()...); err != nil {
		return nil, err
	}
	return value, nil
}

// Rules returns the constraints in evaluation order for use with validation.Field.
// The value is expected to be normalized already.
func (s TextSchema) Rules() []validation.Rule {
	rules := make([]validation.Rule, 0, 3)
	if !s.opts.Optional {
		rules = append(rules, validation.Required.Error(fmt.Sprintf("%s is required", s.label)))
	}
	return append(rules,
		validation.RuneLength(0, s.maxLength).Error(fmt.Sprintf("%s must be less than %d characters", s.label, s.maxLength)),
		validation.By(noAngleBrackets(s.label)),
	)
}

func noAngleBrackets(label string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := stringOf(value)
		if !ok {
			return nil
		}
		if strings.ContainsAny(s, "<>") {
			return validation.NewError("validation_angle_brackets", fmt.Sprintf("%s must not contain '<' or '>'", label))
		}
		return nil
	}
}

// stringOf unwraps string and *string values.
func stringOf(value interface{}) (string, bool) {
	v, isNil := validation.Indirect(value)
	if isNil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
