package dwc

import (
	"fmt"

	"dwcetl/internal/config"
	"dwcetl/internal/schema"
)

// buildDistribution projects the enriched set into the distribution
// extension: one row per source record, with the occurrence window derived
// from the raw first-occurrence expression. A malformed expression is a
// structural error and aborts the run.
func buildDistribution(ds config.Dataset, recs []Enriched, runYear int) (*Table, error) {
	rows := make([][]string, 0, len(recs))

	for _, rec := range recs {
		eventDate, err := EventDate(rec.FirstOccurrence, ds.DefaultEndYear, runYear)
		if err != nil {
			return nil, fmt.Errorf("line %d (%s): %w", rec.Line, rec.TaxonID, err)
		}
		rows = append(rows, []string{
			rec.TaxonID,
			ds.LocationID,
			ds.Locality,
			ds.CountryCode,
			ds.OccurrenceStatus,
			ds.EstablishmentMeans,
			eventDate,
			rec.SourceRef,
		})
	}

	return &Table{
		Name:    schema.TableDistribution,
		Columns: schema.DistributionColumns,
		Rows:    rows,
	}, nil
}
