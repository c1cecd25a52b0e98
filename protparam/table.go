package protparam

// Charge is the sign an ionizable side chain carries once ionized.
type Charge int8

const (
	Neutral Charge = iota
	Acidic         // negative when deprotonated (D, E, C, Y)
	Basic          // positive when protonated (H, K, R)
)

// Terminal pKa references shared by every chain.
const (
	NTerminalPKa = 9.0
	CTerminalPKa = 2.0
)

// WaterMass is the average mass released per peptide bond.
const WaterMass = 18.015

// ResidueProperties is the static reference data for one residue.
type ResidueProperties struct {
	Code       AminoAcid
	Weight     float64 // average mass of the free amino acid
	Aromatic   bool
	Charge     Charge
	PKa        float64 // side chain pKa, meaningful only when Charge != Neutral
	Hydropathy float64 // Kyte-Doolittle
	Helix      bool
	Turn       bool
	Sheet      bool
}

// CompositionTable maps every standard residue code to its properties.
// Tables are read-only after construction.
type CompositionTable struct {
	byLetter [26]ResidueProperties
}

// NewCompositionTable builds a table from rows, one per standard code.
// It panics if a code is missing, duplicated or not standard, since tables
// are built once from literals at start-up.
func NewCompositionTable(rows []ResidueProperties) *CompositionTable {
	t := &CompositionTable{}
	seen := make(map[AminoAcid]bool, len(rows))
	for _, row := range rows {
		if !IsStandard(row.Code) || seen[row.Code] {
			panic("protparam: bad composition row for " + string(rune(row.Code)))
		}
		seen[row.Code] = true
		t.byLetter[row.Code-'A'] = row
	}
	if len(seen) != len(StandardAminoAcids) {
		panic("protparam: composition table must cover all standard residues")
	}
	return t
}

// Lookup returns the properties of aa. aa must be a standard code, which
// Validate guarantees for every residue of a Sequence.
func (t *CompositionTable) Lookup(aa AminoAcid) ResidueProperties {
	return t.byLetter[aa-'A']
}

// StandardTable holds IUPAC average amino acid weights, side chain pKa
// values as used by ExPASy/Biopython, Kyte-Doolittle hydropathy and the
// Chou-Fasman style helix/turn/sheet groupings.
var StandardTable = NewCompositionTable([]ResidueProperties{
	{Code: 'A', Weight: 89.0932, Hydropathy: 1.8, Sheet: true},
	{Code: 'C', Weight: 121.1582, Charge: Acidic, PKa: 9.0, Hydropathy: 2.5},
	{Code: 'D', Weight: 133.1027, Charge: Acidic, PKa: 4.05, Hydropathy: -3.5},
	{Code: 'E', Weight: 147.1293, Charge: Acidic, PKa: 4.45, Hydropathy: -3.5, Sheet: true},
	{Code: 'F', Weight: 165.1891, Aromatic: true, Hydropathy: 2.8, Helix: true},
	{Code: 'G', Weight: 75.0666, Hydropathy: -0.4, Turn: true},
	{Code: 'H', Weight: 155.1546, Charge: Basic, PKa: 5.98, Hydropathy: -3.2},
	{Code: 'I', Weight: 131.1729, Hydropathy: 4.5, Helix: true},
	{Code: 'K', Weight: 146.1876, Charge: Basic, PKa: 10.0, Hydropathy: -3.9},
	{Code: 'L', Weight: 131.1729, Hydropathy: 3.8, Helix: true, Sheet: true},
	{Code: 'M', Weight: 149.2113, Hydropathy: 1.9, Sheet: true},
	{Code: 'N', Weight: 132.1179, Hydropathy: -3.5, Turn: true},
	{Code: 'P', Weight: 115.1305, Hydropathy: -1.6, Turn: true},
	{Code: 'Q', Weight: 146.1445, Hydropathy: -3.5},
	{Code: 'R', Weight: 174.201, Charge: Basic, PKa: 12.0, Hydropathy: -4.5},
	{Code: 'S', Weight: 105.0926, Hydropathy: -0.8, Turn: true},
	{Code: 'T', Weight: 119.1192, Hydropathy: -0.7},
	{Code: 'V', Weight: 117.1463, Hydropathy: 4.2, Helix: true},
	{Code: 'W', Weight: 204.2252, Aromatic: true, Hydropathy: -0.9, Helix: true},
	{Code: 'Y', Weight: 181.1885, Aromatic: true, Charge: Acidic, PKa: 10.0, Hydropathy: -1.3, Helix: true},
})
