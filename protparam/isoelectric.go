package protparam

import "math"

// Bisection bounds for IsoelectricPoint.
const (
	minPH          = 0.0
	maxPH          = 14.0
	pITolerance    = 1e-4
	pIMaxIteration = 100
)

// ChargeAtPH returns the net charge of seq at pH, counting both termini and
// every ionizable side chain with Henderson-Hasselbalch partial charges.
func ChargeAtPH(seq Sequence, table *CompositionTable, pH float64) float64 {
	positive := partialPositive(pH, NTerminalPKa)
	negative := partialNegative(pH, CTerminalPKa)
	for i := 0; i < seq.Len(); i++ {
		props := table.Lookup(seq.At(i))
		switch props.Charge {
		case Basic:
			positive += partialPositive(pH, props.PKa)
		case Acidic:
			negative += partialNegative(pH, props.PKa)
		}
	}
	return positive - negative
}

func partialPositive(pH, pKa float64) float64 {
	return 1 / (1 + math.Pow(10, pH-pKa))
}

func partialNegative(pH, pKa float64) float64 {
	return 1 / (1 + math.Pow(10, pKa-pH))
}

// IsoelectricPoint finds the pH at which seq carries no net charge by
// bisection over [0, 14]. The charge falls monotonically with pH and the
// fixed termini always bracket a zero crossing, so it cannot fail.
func IsoelectricPoint(seq Sequence, table *CompositionTable) float64 {
	low, high := minPH, maxPH
	for i := 0; i < pIMaxIteration && high-low >= pITolerance; i++ {
		mid := (low + high) / 2
		if ChargeAtPH(seq, table, mid) > 0 {
			low = mid
		} else {
			high = mid
		}
	}
	return (low + high) / 2
}
