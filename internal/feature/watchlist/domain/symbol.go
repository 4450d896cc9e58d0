// Package domain defines domain-level rules and errors for the watchlist feature.
package domain

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidSymbol indicates that a raw ticker string cannot be normalized
// into a valid symbol. This is a client input error, not a system failure.
var ErrInvalidSymbol = errors.New("stock name must be 1-5 uppercase letters")

// symbolPattern is the canonical symbol format: 1 to 5 uppercase Latin
// letters, no digits or punctuation.
var symbolPattern = regexp.MustCompile(`^[A-Z]{1,5}$`)

// NormalizeSymbol trims and uppercases a raw ticker string and validates it
// against the canonical symbol format. It returns ErrInvalidSymbol for empty,
// too-long, or malformed input. Pure function, no I/O.
func NormalizeSymbol(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if !symbolPattern.MatchString(s) {
		return "", ErrInvalidSymbol
	}
	return s, nil
}

// NormalizeDeletionKey trims and uppercases a raw string without applying the
// format check. Removal accepts any uppercased string as a deletion key, so a
// record whose symbol predates stricter validation can still be removed.
func NormalizeDeletionKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
