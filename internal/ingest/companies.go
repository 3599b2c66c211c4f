package ingest

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sponsorlane/outreach-cli/internal/model"
)

// ParseCompaniesCSV reads target companies from a CSV with a header row.
// Recognized columns: name (required), website, industry, notes; unknown
// columns are ignored. Rows without a name are skipped.
func ParseCompaniesCSV(r io.Reader) ([]model.Company, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("companies csv: empty file")
	}
	if err != nil {
		return nil, eris.Wrap(err, "companies csv: read header")
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := idx["name"]; !ok {
		return nil, eris.New("companies csv: missing required column 'name'")
	}

	field := func(record []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var out []model.Company
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "companies csv: read row")
		}
		name := field(record, "name")
		if name == "" {
			continue
		}
		out = append(out, model.Company{
			Name:     name,
			Website:  field(record, "website"),
			Industry: field(record, "industry"),
			Notes:    field(record, "notes"),
		})
	}
	return out, nil
}
