package protein_profile

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"prot_buddy_go/protparam"
)

// Report is everything one protparam run writes out.
type Report struct {
	RunID    string
	Outcomes []Outcome
	Summary  *Summary // nil unless a summary was requested
}

// NewReport stamps outcomes with a fresh run ID.
func NewReport(outcomes []Outcome, withSummary bool) Report {
	r := Report{RunID: uuid.New().String(), Outcomes: outcomes}
	if withSummary {
		s := Summarize(outcomes)
		r.Summary = &s
	}
	return r
}

// WriteText prints a human readable report, one block per record.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Protein Parameter Report (run %s)\n", r.RunID)
	b.WriteString(strings.Repeat("-", 40) + "\n")

	for _, o := range r.Outcomes {
		fmt.Fprintf(&b, "\n>%s\n", o.Record.ID)
		if o.Err != nil {
			fmt.Fprintf(&b, "  Error: %v\n", o.Err)
			continue
		}
		p := o.Profile
		stability := "stable"
		if !p.Stable {
			stability = "unstable"
		}
		fmt.Fprintf(&b, "  Length:             %d aa\n", p.Length)
		fmt.Fprintf(&b, "  Molecular weight:   %.2f Da\n", p.Weight)
		fmt.Fprintf(&b, "  Aromaticity:        %.4f\n", p.Aromaticity)
		fmt.Fprintf(&b, "  Instability index:  %.2f (%s)\n", p.InstabilityIndex, stability)
		fmt.Fprintf(&b, "  Isoelectric point:  %.2f\n", p.IsoelectricPoint)
		fmt.Fprintf(&b, "  Secondary structure (helix, turn, sheet): %.4f, %.4f, %.4f\n",
			p.SecondaryStructure.Helix, p.SecondaryStructure.Turn, p.SecondaryStructure.Sheet)
		fmt.Fprintf(&b, "  GRAVY:              %.4f\n", p.Gravy)
		fmt.Fprintf(&b, "  Charge at pH 7.0:   %.2f\n", p.ChargeAtNeutral)
		fmt.Fprintf(&b, "  Extinction (280nm): %d reduced, %d cystines\n", p.Extinction.Reduced, p.Extinction.Cystines)
	}

	if s := r.Summary; s != nil {
		b.WriteString("\nBatch summary:\n")
		fmt.Fprintf(&b, "  Sequences: %d (%d valid, %d invalid)\n", s.Total, s.Valid, s.Invalid)
		fmt.Fprintf(&b, "  Residues analyzed: %d\n", s.TotalResidues)
		fmt.Fprintf(&b, "  Predicted unstable: %d\n", s.Unstable)
		writeSpread(&b, "Molecular weight", s.Weight)
		writeSpread(&b, "Isoelectric point", s.IsoelectricPoint)
		writeSpread(&b, "Instability index", s.InstabilityIndex)
		writeSpread(&b, "GRAVY", s.Gravy)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSpread(b *strings.Builder, label string, s Spread) {
	fmt.Fprintf(b, "  %-18s mean %.2f  sd %.2f  min %.2f  max %.2f\n", label+":", s.Mean, s.StdDev, s.Min, s.Max)
}

var csvHeader = []string{
	"RunID", "ID", "Length", "MolecularWeight", "Aromaticity", "InstabilityIndex",
	"Stable", "IsoelectricPoint", "Helix", "Turn", "Sheet", "Gravy",
	"ChargePH7", "ExtinctionReduced", "ExtinctionCystines", "Error",
}

// WriteCSV writes one header row and one row per record. Failed records keep
// their ID and error with the numeric columns left empty.
func WriteCSV(w io.Writer, r Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range r.Outcomes {
		row := make([]string, len(csvHeader))
		row[0] = r.RunID
		row[1] = o.Record.ID
		if o.Err != nil {
			row[len(row)-1] = o.Err.Error()
		} else {
			p := o.Profile
			copy(row[2:], []string{
				strconv.Itoa(p.Length),
				fmt.Sprintf("%.4f", p.Weight),
				fmt.Sprintf("%.4f", p.Aromaticity),
				fmt.Sprintf("%.4f", p.InstabilityIndex),
				strconv.FormatBool(p.Stable),
				fmt.Sprintf("%.4f", p.IsoelectricPoint),
				fmt.Sprintf("%.4f", p.SecondaryStructure.Helix),
				fmt.Sprintf("%.4f", p.SecondaryStructure.Turn),
				fmt.Sprintf("%.4f", p.SecondaryStructure.Sheet),
				fmt.Sprintf("%.4f", p.Gravy),
				fmt.Sprintf("%.4f", p.ChargeAtNeutral),
				strconv.Itoa(p.Extinction.Reduced),
				strconv.Itoa(p.Extinction.Cystines),
			})
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

type jsonRecord struct {
	ID      string             `json:"id"`
	Profile *protparam.Profile `json:"profile,omitempty"`
	Error   string             `json:"error,omitempty"`
}

type jsonReport struct {
	RunID   string       `json:"run_id"`
	Records []jsonRecord `json:"records"`
	Summary *Summary     `json:"summary,omitempty"`
}

// WriteJSON writes the report as one indented JSON document.
func WriteJSON(w io.Writer, r Report) error {
	out := jsonReport{RunID: r.RunID, Summary: r.Summary, Records: make([]jsonRecord, 0, len(r.Outcomes))}
	for _, o := range r.Outcomes {
		rec := jsonRecord{ID: o.Record.ID}
		if o.Err != nil {
			rec.Error = o.Err.Error()
		} else {
			p := o.Profile
			rec.Profile = &p
		}
		out.Records = append(out.Records, rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Write dispatches on format: text, csv or json.
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case "text":
		return WriteText(w, r)
	case "csv":
		return WriteCSV(w, r)
	case "json":
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
