package protparam

import (
	"gonum.org/v1/gonum/stat"
)

// Molar absorptivities at 280 nm (Pace et al., 1995), in M^-1 cm^-1.
const (
	tryptophanExtinction = 5500
	tyrosineExtinction   = 1490
	cystineExtinction    = 125
)

// Extinction is the molar extinction coefficient at 280 nm assuming all
// cysteines reduced, and assuming every cysteine pair forms a cystine.
type Extinction struct {
	Reduced  int `json:"reduced"`
	Cystines int `json:"cystines"`
}

// Composition counts every standard residue in seq. Both maps always hold
// all 20 codes; percent values are fractions of the sequence length.
func Composition(seq Sequence) (counts map[AminoAcid]int, percent map[AminoAcid]float64) {
	counts = make(map[AminoAcid]int, len(StandardAminoAcids))
	percent = make(map[AminoAcid]float64, len(StandardAminoAcids))
	for i := 0; i < len(StandardAminoAcids); i++ {
		counts[AminoAcid(StandardAminoAcids[i])] = 0
	}
	for i := 0; i < seq.Len(); i++ {
		counts[seq.At(i)]++
	}
	n := float64(seq.Len())
	for aa, c := range counts {
		percent[aa] = float64(c) / n
	}
	return counts, percent
}

// Gravy returns the grand average of hydropathy (Kyte and Doolittle, 1982).
func Gravy(seq Sequence, table *CompositionTable) float64 {
	values := make([]float64, seq.Len())
	for i := range values {
		values[i] = table.Lookup(seq.At(i)).Hydropathy
	}
	return stat.Mean(values, nil)
}

// ExtinctionCoefficient estimates the 280 nm molar extinction coefficient
// from the W, Y and C content of seq.
func ExtinctionCoefficient(seq Sequence) Extinction {
	var w, y, c int
	for i := 0; i < seq.Len(); i++ {
		switch seq.At(i) {
		case 'W':
			w++
		case 'Y':
			y++
		case 'C':
			c++
		}
	}
	reduced := w*tryptophanExtinction + y*tyrosineExtinction
	return Extinction{
		Reduced:  reduced,
		Cystines: reduced + (c/2)*cystineExtinction,
	}
}
