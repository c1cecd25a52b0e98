package protparam

// Aromaticity returns the fraction of F, W and Y residues in seq.
func Aromaticity(seq Sequence, table *CompositionTable) float64 {
	return seq.fraction(func(aa AminoAcid) bool {
		return table.Lookup(aa).Aromatic
	})
}
