package protparam

// MolecularWeight returns the average molecular weight of seq in daltons:
// the sum of free amino acid weights less one water per peptide bond.
func MolecularWeight(seq Sequence, table *CompositionTable) float64 {
	var total float64
	for i := 0; i < seq.Len(); i++ {
		total += table.Lookup(seq.At(i)).Weight
	}
	if n := seq.Len(); n > 1 {
		total -= float64(n-1) * WaterMass
	}
	return total
}
