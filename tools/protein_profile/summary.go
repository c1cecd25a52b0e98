package protein_profile

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Spread summarizes one property across a batch.
type Spread struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary aggregates the valid outcomes of a batch.
type Summary struct {
	Total            int    `json:"total"`
	Valid            int    `json:"valid"`
	Invalid          int    `json:"invalid"`
	Unstable         int    `json:"unstable"`
	TotalResidues    int    `json:"total_residues"`
	Weight           Spread `json:"molecular_weight"`
	IsoelectricPoint Spread `json:"isoelectric_point"`
	InstabilityIndex Spread `json:"instability_index"`
	Gravy            Spread `json:"gravy"`
}

// Summarize computes batch statistics over every outcome without an error.
// Spreads stay zero when no outcome is valid; StdDev is zero for a single one.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}

	var weights, pIs, indices, gravies []float64
	for _, o := range outcomes {
		if o.Err != nil {
			s.Invalid++
			continue
		}
		p := o.Profile
		s.Valid++
		s.TotalResidues += p.Length
		if !p.Stable {
			s.Unstable++
		}
		weights = append(weights, p.Weight)
		pIs = append(pIs, p.IsoelectricPoint)
		indices = append(indices, p.InstabilityIndex)
		gravies = append(gravies, p.Gravy)
	}

	s.Weight = spread(weights)
	s.IsoelectricPoint = spread(pIs)
	s.InstabilityIndex = spread(indices)
	s.Gravy = spread(gravies)
	return s
}

func spread(values []float64) Spread {
	if len(values) == 0 {
		return Spread{}
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}
	return Spread{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
}
