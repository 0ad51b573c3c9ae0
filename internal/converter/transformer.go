// =============================================================================
// Apology Splitter - Transformation Engine
// =============================================================================
//
// This module provides the field normalizers applied while decoding a row.
// Each input column is run through an ordered list of actions:
//
//   text columns : trim
//   country      : pad_zeros_to_length(4) -> translate
//   phone        : redact_if_contains("+") -> trim
//
// Actions are small and independent. The only ordering that matters is
// that a country code is padded before it is looked up.
//
// =============================================================================

package converter

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// =============================================================================
// ACTIONS
// =============================================================================

// ActionType names a single transformation step.
type ActionType string

const (
	// ActionTrim removes leading and trailing whitespace.
	ActionTrim ActionType = "trim"

	// ActionPadZeros left-pads the value with '0' up to Length characters.
	// Longer values are left alone.
	ActionPadZeros ActionType = "pad_zeros_to_length"

	// ActionTranslate replaces the value using the country code table,
	// keeping it unchanged when the table has no entry.
	ActionTranslate ActionType = "translate"

	// ActionRedactIfContains empties the value when it contains Value.
	ActionRedactIfContains ActionType = "redact_if_contains"
)

// Action is one step of a field's transformation.
type Action struct {
	Type   ActionType
	Value  string
	Length int
}

// Lookup resolves a padded source country code. *translator.Translator
// satisfies it.
type Lookup interface {
	Translate(code string) string
}

// =============================================================================
// TRANSFORMER
// =============================================================================

// Transformer applies action lists to field values.
type Transformer struct {
	lookup Lookup
}

// NewTransformer creates a Transformer that resolves ActionTranslate
// through lookup.
func NewTransformer(lookup Lookup) *Transformer {
	return &Transformer{lookup: lookup}
}

// Transform applies actions to value in order.
func (t *Transformer) Transform(value string, actions ...Action) (string, error) {
	result := value
	for _, action := range actions {
		var err error
		result, err = t.apply(result, action)
		if err != nil {
			return "", fmt.Errorf("transformation '%s' failed: %w", action.Type, err)
		}
	}
	return result, nil
}

func (t *Transformer) apply(value string, action Action) (string, error) {
	switch action.Type {
	case ActionTrim:
		return TrimField(value), nil

	case ActionPadZeros:
		if action.Length <= 0 {
			return "", fmt.Errorf("invalid pad length %d", action.Length)
		}
		return PadLeft(value, action.Length, '0'), nil

	case ActionTranslate:
		if t.lookup == nil {
			return "", fmt.Errorf("no country code table configured")
		}
		return t.lookup.Translate(value), nil

	case ActionRedactIfContains:
		return RedactIfContains(value, action.Value), nil

	default:
		return "", fmt.Errorf("unknown transformation type: %s", action.Type)
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// TrimField removes leading and trailing whitespace.
func TrimField(s string) string {
	return strings.TrimSpace(s)
}

// PadLeft pads s on the left with padChar until it is length characters
// long. Length is counted in runes.
func PadLeft(s string, length int, padChar rune) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return strings.Repeat(string(padChar), length-n) + s
}

// RedactIfContains returns "" when s contains marker, otherwise s.
// An empty marker redacts nothing.
func RedactIfContains(s, marker string) string {
	if marker != "" && strings.Contains(s, marker) {
		return ""
	}
	return s
}
