package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// headerAliases maps common registry export headers onto the field names the
// encoder understands. Unrecognized headers pass through normalized.
var headerAliases = map[string]string{
	"name":             FieldEntityName,
	"corporation_name": FieldEntityName,
	"entity":           FieldEntityName,
	"doc_number":       FieldDocumentNumber,
	"document":         FieldDocumentNumber,
	"address":          FieldAddress1,
	"agent":            FieldRegisteredAgent,
	"agent_name":       FieldRegisteredAgent,
}

// FromTable converts header-keyed tabular text into records. The first row is
// treated as the header; each subsequent row becomes one record with empty
// cells dropped. Rows with a deviating cell count are skipped rather than
// failing the whole payload.
func FromTable(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("tabular payload is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	fields := make([]string, len(header))
	for i, name := range header {
		fields[i] = normalizeHeader(name)
	}

	var out []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(row) != len(fields) {
			continue
		}
		rec := Record{}
		for i, cell := range row {
			rec.Set(fields[i], strings.TrimSpace(cell))
		}
		if len(rec) > 0 {
			out = append(out, rec)
		}
	}
	return out, nil
}

func normalizeHeader(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	if alias, ok := headerAliases[normalized]; ok {
		return alias
	}
	return normalized
}
