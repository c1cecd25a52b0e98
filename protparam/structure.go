package protparam

// Fractions holds the share of residues favoring each secondary structure.
// A residue counts toward every class it belongs to, so the three values
// need not sum to 1.
type Fractions struct {
	Helix float64 `json:"helix"`
	Turn  float64 `json:"turn"`
	Sheet float64 `json:"sheet"`
}

// SecondaryStructure returns the helix {V,I,Y,F,W,L}, turn {N,P,G,S} and
// sheet {E,M,A,L} fractions of seq.
func SecondaryStructure(seq Sequence, table *CompositionTable) Fractions {
	var helix, turn, sheet int
	for i := 0; i < seq.Len(); i++ {
		props := table.Lookup(seq.At(i))
		if props.Helix {
			helix++
		}
		if props.Turn {
			turn++
		}
		if props.Sheet {
			sheet++
		}
	}
	n := float64(seq.Len())
	return Fractions{
		Helix: float64(helix) / n,
		Turn:  float64(turn) / n,
		Sheet: float64(sheet) / n,
	}
}
