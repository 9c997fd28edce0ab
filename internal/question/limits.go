package question

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Length limits, in characters, for titles and choice texts.
const (
	MaxTitleLen      = 200
	MaxChoiceTextLen = 100
)

// Points must fall within [MinPoints, MaxPoints].
const (
	MinPoints = 1
	MaxPoints = 100
)

// Defaults applied by New when no Option overrides them.
const (
	DefaultPoints        = 1
	DefaultMaxSelections = 1
)

// normalizeText returns the NFC form of s, or a ValidationError if that
// form is empty or longer than limit characters. Callers store the
// returned string, so "é" is one character whether or not it arrived
// decomposed.
func normalizeText(field, s string, limit int) (string, *ValidationError) {
	s = norm.NFC.String(s)
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return "", &ValidationError{Field: field, Message: "must not be empty"}
	}
	if n > limit {
		return "", &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("exceeds %d characters (got %d)", limit, n),
		}
	}
	return s, nil
}
