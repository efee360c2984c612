package dwc

import (
	"fmt"
	"strings"

	"dwcetl/internal/config"
	"dwcetl/internal/schema"
)

// buildTaxon projects the enriched set into the taxon core: one row per
// source record. Scientific names must be unique across the table; a
// duplicate means two records collapsed onto one identifier, which corrupts
// every extension join, so it aborts the run with the colliding names.
func buildTaxon(ds config.Dataset, m *Mapper, recs []Enriched) (*Table, error) {
	seen := make(map[string]int, len(recs))
	rows := make([][]string, 0, len(recs))

	for _, rec := range recs {
		name := strings.TrimSpace(rec.Species)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("duplicate scientific name %q (lines %d and %d)",
				name, prev, rec.Line)
		}
		seen[name] = rec.Line

		rows = append(rows, []string{
			rec.TaxonID,
			ds.Language,
			ds.License,
			ds.RightsHolder,
			ds.DatasetID,
			ds.DatasetName,
			name,
			ds.Kingdom,
			m.CorrectTaxon(rec.Phylum),
			m.CorrectTaxon(rec.Order),
			strings.TrimSpace(rec.Family),
			m.Rank(rec.Species),
			ds.NomenclaturalCode,
		})
	}

	return &Table{
		Name:    schema.TableTaxon,
		Columns: schema.TaxonColumns,
		Rows:    rows,
	}, nil
}
