package protparam

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNormalizes(t *testing.T) {
	seq, err := Validate("  mkWv\t\n")
	require.NoError(t, err)
	assert.Equal(t, "MKWV", seq.String())
	assert.Equal(t, 4, seq.Len())
	assert.Equal(t, AminoAcid('K'), seq.At(1))
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		pos    int
		reason string
	}{
		{"empty", "", 0, "empty sequence"},
		{"blank", " \t\n ", 0, "empty sequence"},
		{"embedded space", "MK WV", 3, "embedded whitespace"},
		{"digit", "MK1", 3, "non-alphabetic character"},
		{"stop codon", "MKV*", 4, "non-alphabetic character"},
		{"ambiguity X", "MKXV", 3, "non-standard amino acid"},
		{"ambiguity B", "b", 1, "non-standard amino acid"},
		{"ambiguity Z", "AZ", 2, "non-standard amino acid"},
		{"selenocysteine", "AU", 2, "non-standard amino acid"},
		{"non ascii letter", "AÉ", 2, "non-standard amino acid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSequence))

			var invalid *InvalidSequenceError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.pos, invalid.Position)
			assert.Equal(t, tc.reason, invalid.Reason)
		})
	}
}

func TestValidateAcceptsEveryStandardCode(t *testing.T) {
	seq, err := Validate(StandardAminoAcids)
	require.NoError(t, err)
	assert.Equal(t, 20, seq.Len())

	for _, r := range "BJOUXZ" {
		assert.False(t, IsStandard(AminoAcid(r)), string(r))
	}
}

func TestMustValidatePanics(t *testing.T) {
	assert.Panics(t, func() { MustValidate("AX") })
	assert.NotPanics(t, func() { MustValidate("AG") })
}

func TestInvalidSequenceErrorMessage(t *testing.T) {
	_, err := Validate("GGX")
	require.Error(t, err)
	assert.Equal(t, `invalid amino acid sequence: non-standard amino acid 'X' at position 3`, err.Error())

	_, err = Validate("")
	assert.Equal(t, "invalid amino acid sequence: empty sequence", err.Error())
}
