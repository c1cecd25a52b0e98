package protparam

import (
	"errors"
	"fmt"
)

// ErrInvalidSequence is matched (via errors.Is) by every validation failure.
var ErrInvalidSequence = errors.New("invalid amino acid sequence")

// ErrInsufficientLength is available to callers that treat single residue
// input as degenerate. InstabilityIndex itself returns 0 for such input.
var ErrInsufficientLength = errors.New("sequence too short for dipeptide analysis")

// InvalidSequenceError describes why a raw sequence was rejected.
type InvalidSequenceError struct {
	Symbol   rune   // offending character, 0 when the input was empty
	Position int    // 1-based position in the trimmed input, 0 when empty
	Reason   string
}

func (e *InvalidSequenceError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidSequence, e.Reason)
	}
	return fmt.Sprintf("%s: %s %q at position %d", ErrInvalidSequence, e.Reason, e.Symbol, e.Position)
}

func (e *InvalidSequenceError) Unwrap() error {
	return ErrInvalidSequence
}
