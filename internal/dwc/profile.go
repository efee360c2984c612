package dwc

import "dwcetl/internal/schema"

// buildSpeciesProfile projects the enriched set into the species profile
// extension: one row per source record, habitat flags derived from the
// salinity zone code. Flags are rendered as literal "TRUE"/"FALSE" strings
// to match the target cell format.
func buildSpeciesProfile(m *Mapper, recs []Enriched) (*Table, error) {
	rows := make([][]string, 0, len(recs))

	for _, rec := range recs {
		h := m.Habitat(rec.SalinityZone)
		rows = append(rows, []string{
			rec.TaxonID,
			boolCell(h.Marine),
			boolCell(h.Freshwater),
			boolCell(h.Terrestrial),
		})
	}

	return &Table{
		Name:    schema.TableSpeciesProfile,
		Columns: schema.SpeciesProfileColumns,
		Rows:    rows,
	}, nil
}

func boolCell(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
