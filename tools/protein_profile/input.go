package protein_profile

import (
	"fmt"
	"strings"

	common "prot_buddy_go/utils"
)

// MultiSeqFlag collects repeated -seq arguments of the form name=SEQUENCE
// or a bare SEQUENCE (named seq_<n>).
type MultiSeqFlag []Record

func (m *MultiSeqFlag) String() string { return fmt.Sprint(*m) }
func (m *MultiSeqFlag) Set(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("expected format: [name=]SEQUENCE")
	}
	id, raw := "", value
	if i := strings.IndexByte(value, '='); i >= 0 {
		id, raw = strings.TrimSpace(value[:i]), value[i+1:]
	}
	if id == "" {
		id = fmt.Sprintf("seq_%d", len(*m)+1)
	}
	*m = append(*m, Record{ID: id, Raw: raw})
	return nil
}

// ReadFastaRecords loads every record of a plain or gzipped FASTA file whose
// header contains idMotif (case-insensitive; empty matches all). It also
// returns how many records the motif filter skipped.
func ReadFastaRecords(path, idMotif string) ([]Record, int, error) {
	var records []Record
	skipped := 0
	motif := strings.ToLower(idMotif)

	handler := func(id string, seq string, opts map[string]interface{}) error {
		if motif != "" && !strings.Contains(strings.ToLower(id), motif) {
			skipped++
			return nil
		}
		name := id
		if fields := strings.Fields(id); len(fields) > 0 {
			name = fields[0]
		}
		records = append(records, Record{ID: name, Raw: seq})
		return nil
	}

	if err := common.StreamFastaWithOpts(path, handler, nil); err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, skipped, nil
}
