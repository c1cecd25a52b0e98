// Package protparam computes physicochemical properties of a protein from its
// amino acid sequence: molecular weight, aromaticity, instability index,
// isoelectric point and secondary structure propensity fractions.
//
// Every calculator is a pure function of a validated Sequence and one of the
// static reference tables, so calls on independent sequences may run in
// parallel without coordination.
package protparam

import (
	"strings"
	"unicode"
)

// AminoAcid is an upper-case one-letter residue code.
type AminoAcid byte

// StandardAminoAcids lists the 20 standard one-letter codes in alphabetical order.
const StandardAminoAcids = "ACDEFGHIKLMNPQRSTVWY"

// IsStandard reports whether aa is one of the 20 standard codes.
func IsStandard(aa AminoAcid) bool {
	return aa >= 'A' && aa <= 'Z' && strings.IndexByte(StandardAminoAcids, byte(aa)) >= 0
}

// Sequence is a validated, non-empty run of standard residue codes.
// The zero value is not valid; build one with Validate.
type Sequence struct {
	residues string
}

// Validate trims surrounding whitespace, upper-cases and checks raw.
// Embedded whitespace, non-letters and ambiguity codes (X, B, Z, U, J, O)
// are rejected with an *InvalidSequenceError.
func Validate(raw string) (Sequence, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Sequence{}, &InvalidSequenceError{Reason: "empty sequence"}
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	pos := 0
	for _, r := range trimmed {
		pos++
		switch {
		case unicode.IsSpace(r):
			return Sequence{}, &InvalidSequenceError{Symbol: r, Position: pos, Reason: "embedded whitespace"}
		case !unicode.IsLetter(r):
			return Sequence{}, &InvalidSequenceError{Symbol: r, Position: pos, Reason: "non-alphabetic character"}
		}
		if r > unicode.MaxASCII {
			return Sequence{}, &InvalidSequenceError{Symbol: r, Position: pos, Reason: "non-standard amino acid"}
		}
		upper := unicode.ToUpper(r)
		if !IsStandard(AminoAcid(upper)) {
			return Sequence{}, &InvalidSequenceError{Symbol: r, Position: pos, Reason: "non-standard amino acid"}
		}
		b.WriteByte(byte(upper))
	}
	return Sequence{residues: b.String()}, nil
}

// MustValidate is like Validate but panics on error. Intended for literals.
func MustValidate(raw string) Sequence {
	seq, err := Validate(raw)
	if err != nil {
		panic(err)
	}
	return seq
}

// Len returns the number of residues.
func (s Sequence) Len() int { return len(s.residues) }

// At returns the residue at index i (0-based).
func (s Sequence) At(i int) AminoAcid { return AminoAcid(s.residues[i]) }

// String returns the normalized sequence.
func (s Sequence) String() string { return s.residues }

// count returns how many residues satisfy keep.
func (s Sequence) count(keep func(AminoAcid) bool) int {
	n := 0
	for i := 0; i < len(s.residues); i++ {
		if keep(AminoAcid(s.residues[i])) {
			n++
		}
	}
	return n
}

// fraction returns count(keep) / Len.
func (s Sequence) fraction(keep func(AminoAcid) bool) float64 {
	if len(s.residues) == 0 {
		return 0
	}
	return float64(s.count(keep)) / float64(len(s.residues))
}
