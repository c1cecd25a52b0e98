package protparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardTableIsTotal(t *testing.T) {
	for i := 0; i < len(StandardAminoAcids); i++ {
		aa := AminoAcid(StandardAminoAcids[i])
		props := StandardTable.Lookup(aa)
		assert.Equal(t, aa, props.Code)
		assert.Greater(t, props.Weight, 0.0, string(rune(aa)))
	}
}

func TestStandardTableFlags(t *testing.T) {
	aromatic := ""
	acidic := ""
	basic := ""
	for i := 0; i < len(StandardAminoAcids); i++ {
		props := StandardTable.Lookup(AminoAcid(StandardAminoAcids[i]))
		if props.Aromatic {
			aromatic += string(rune(props.Code))
		}
		switch props.Charge {
		case Acidic:
			acidic += string(rune(props.Code))
		case Basic:
			basic += string(rune(props.Code))
		}
	}
	assert.Equal(t, "FWY", aromatic)
	assert.Equal(t, "CDEY", acidic)
	assert.Equal(t, "HKR", basic)
}

func TestNewCompositionTablePanicsOnGaps(t *testing.T) {
	assert.Panics(t, func() {
		NewCompositionTable([]ResidueProperties{{Code: 'A', Weight: 1}})
	})
	assert.Panics(t, func() {
		NewCompositionTable([]ResidueProperties{{Code: 'X', Weight: 1}})
	})
}

func TestStandardDipeptidesSpotValues(t *testing.T) {
	cases := []struct {
		pair string
		want float64
	}{
		{"AC", 44.94},
		{"AG", 1.0},
		{"GA", -7.49},
		{"FY", 33.601},
		{"MH", 58.28},
		{"YR", -15.91},
		{"KQ", 24.64},
		{"PE", 18.38},
	}
	for _, tc := range cases {
		got := StandardDipeptides.Weight(AminoAcid(tc.pair[0]), AminoAcid(tc.pair[1]))
		assert.Equal(t, tc.want, got, tc.pair)
	}
}

func TestNewDipeptideTablePanicsOnMissingRow(t *testing.T) {
	assert.Panics(t, func() {
		NewDipeptideTable(map[AminoAcid][20]float64{'A': {}})
	})
}
