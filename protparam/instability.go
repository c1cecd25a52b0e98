package protparam

// UnstableThreshold is the instability index above which a protein is
// predicted to be unstable in vitro.
const UnstableThreshold = 40.0

// InstabilityIndex sums the weights of every overlapping dipeptide in seq
// and scales the sum by 10/length (Guruprasad et al., 1990).
// A single residue has no dipeptides and scores 0.
func InstabilityIndex(seq Sequence, dipeptides *DipeptideTable) float64 {
	n := seq.Len()
	if n < 2 {
		return 0
	}
	var score float64
	for i := 0; i < n-1; i++ {
		score += dipeptides.Weight(seq.At(i), seq.At(i+1))
	}
	return 10.0 / float64(n) * score
}

// Unstable reports whether index is above UnstableThreshold.
func Unstable(index float64) bool {
	return index > UnstableThreshold
}
