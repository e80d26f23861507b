package text

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// DefaultMaxInputBytes is the largest input handed to an engine, anything past it is ignored
const DefaultMaxInputBytes = 1 << 20

// ValidatedInput is the per-call view of the caller's text
type ValidatedInput struct {
	Text      string
	Length    int
	Truncated bool
	ValidUTF8 bool
}

// IsEmpty reports whether there is nothing to classify
func (v ValidatedInput) IsEmpty() bool {
	return v.Length == 0
}

// InvalidInputError is returned when the extent of the input cannot be determined
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// Validate takes the input at its explicit length.
// An empty or nil slice is valid and yields an empty input.
// maxBytes <= 0 disables truncation.
func Validate(b []byte, maxBytes int) ValidatedInput {
	truncated := false
	if maxBytes > 0 && len(b) > maxBytes {
		b = b[:runeBoundary(b, maxBytes)]
		truncated = true
	}
	return ValidatedInput{
		Text:      string(b),
		Length:    len(b),
		Truncated: truncated,
		ValidUTF8: utf8.Valid(b),
	}
}

// ValidateTerminated determines the length by scanning for a NUL terminator.
// The scan never leaves buf, an unterminated buffer is reported instead of read past.
func ValidateTerminated(buf []byte, maxBytes int) (ValidatedInput, error) {
	if buf == nil {
		return ValidatedInput{}, &InvalidInputError{Reason: "nil buffer"}
	}
	n := bytes.IndexByte(buf, 0)
	if n < 0 {
		return ValidatedInput{}, &InvalidInputError{Reason: fmt.Sprintf("no terminator within %d bytes", len(buf))}
	}
	return Validate(buf[:n], maxBytes), nil
}

// runeBoundary backs off from limit so the cut does not split a UTF-8 sequence
func runeBoundary(b []byte, limit int) int {
	cut := limit
	for cut > 0 && cut > limit-utf8.UTFMax && !utf8.RuneStart(b[cut]) {
		cut--
	}
	if !utf8.RuneStart(b[cut]) {
		// not UTF-8 text, keep the hard limit
		return limit
	}
	return cut
}
