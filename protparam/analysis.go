package protparam

// AnalysisResult holds the five core properties of one sequence.
// It is a value; copies never share state.
type AnalysisResult struct {
	Weight             float64   `json:"molecular_weight"`
	Aromaticity        float64   `json:"aromaticity"`
	InstabilityIndex   float64   `json:"instability_index"`
	IsoelectricPoint   float64   `json:"isoelectric_point"`
	SecondaryStructure Fractions `json:"secondary_structure"`
}

// Profile extends AnalysisResult with the remaining ProtParam descriptors.
type Profile struct {
	AnalysisResult
	Sequence        string                `json:"sequence"`
	Length          int                   `json:"length"`
	Counts          map[AminoAcid]int     `json:"-"`
	Percent         map[AminoAcid]float64 `json:"-"`
	Gravy           float64               `json:"gravy"`
	Extinction      Extinction            `json:"extinction_coefficient"`
	ChargeAtNeutral float64               `json:"charge_ph7"`
	Stable          bool                  `json:"stable"`
}

// Analyzer runs every calculator against one pair of reference tables.
// It holds no per-call state and is safe for concurrent use.
type Analyzer struct {
	table      *CompositionTable
	dipeptides *DipeptideTable
}

// NewAnalyzer returns an Analyzer bound to the given tables.
func NewAnalyzer(table *CompositionTable, dipeptides *DipeptideTable) *Analyzer {
	return &Analyzer{table: table, dipeptides: dipeptides}
}

var standardAnalyzer = NewAnalyzer(StandardTable, StandardDipeptides)

// Analyze validates raw and computes its AnalysisResult with the standard tables.
func Analyze(raw string) (AnalysisResult, error) {
	return standardAnalyzer.Analyze(raw)
}

// Analyze validates raw and computes every core property. Validation errors
// are returned unchanged and no partial result is produced.
func (a *Analyzer) Analyze(raw string) (AnalysisResult, error) {
	seq, err := Validate(raw)
	if err != nil {
		return AnalysisResult{}, err
	}
	return a.AnalyzeSequence(seq), nil
}

// AnalyzeSequence computes every core property of an already validated seq.
func (a *Analyzer) AnalyzeSequence(seq Sequence) AnalysisResult {
	return AnalysisResult{
		Weight:             MolecularWeight(seq, a.table),
		Aromaticity:        Aromaticity(seq, a.table),
		InstabilityIndex:   InstabilityIndex(seq, a.dipeptides),
		IsoelectricPoint:   IsoelectricPoint(seq, a.table),
		SecondaryStructure: SecondaryStructure(seq, a.table),
	}
}

// Profile validates raw and computes the full descriptor set.
func (a *Analyzer) Profile(raw string) (Profile, error) {
	seq, err := Validate(raw)
	if err != nil {
		return Profile{}, err
	}
	result := a.AnalyzeSequence(seq)
	counts, percent := Composition(seq)
	return Profile{
		AnalysisResult:  result,
		Sequence:        seq.String(),
		Length:          seq.Len(),
		Counts:          counts,
		Percent:         percent,
		Gravy:           Gravy(seq, a.table),
		Extinction:      ExtinctionCoefficient(seq),
		ChargeAtNeutral: ChargeAtPH(seq, a.table, 7.0),
		Stable:          !Unstable(result.InstabilityIndex),
	}, nil
}

// StandardProfile is Profile with the standard tables.
func StandardProfile(raw string) (Profile, error) {
	return standardAnalyzer.Profile(raw)
}
