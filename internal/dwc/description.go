package dwc

import (
	"fmt"
	"strings"

	"dwcetl/internal/config"
	"dwcetl/internal/schema"
)

// buildDescription projects the enriched set into the description extension.
// This is the one one-to-many table: three sub-streams are generated
// independently and concatenated in a fixed group order (native ranges,
// pathways, invasion stage), each group ordered by identifier. Every row
// carries the record's resolved reference and the dataset language.
//
// onGap receives one message per pathway value that passes through without
// the vocabulary prefix: a data-quality gap, never an error.
func buildDescription(
	ds config.Dataset,
	v config.Vocabulary,
	m *Mapper,
	recs []Enriched,
	onGap func(msg string),
) (*Table, error) {
	var native, pathway, invasion [][]string

	row := func(rec Enriched, description, typ string) []string {
		return []string{rec.TaxonID, description, typ, rec.SourceRef, ds.Language}
	}

	// The enriched set arrives sorted by identifier, so appending in record
	// order keeps each group sorted.
	for _, rec := range recs {
		for _, raw := range SplitMulti(rec.Origin, v.NativeRangeSeparator) {
			native = append(native, row(rec, m.NativeRange(raw), schema.DescriptorNativeRange))
		}

		for _, raw := range SplitMulti(pathwaySource(rec), v.PathwaySeparator) {
			val, mapped := m.Pathway(raw)
			if !mapped && onGap != nil {
				onGap(fmt.Sprintf("line %d: pathway %q has no %s mapping", rec.Line, raw, strings.TrimSuffix(v.PathwayPrefix, ":")))
			}
			pathway = append(pathway, row(rec, val, schema.DescriptorPathway))
		}

		invasion = append(invasion, row(rec, ds.InvasionStage, schema.DescriptorInvasionStage))
	}

	rows := make([][]string, 0, len(native)+len(pathway)+len(invasion))
	rows = append(rows, native...)
	rows = append(rows, pathway...)
	rows = append(rows, invasion...)

	return &Table{
		Name:    schema.TableDescription,
		Columns: schema.DescriptionColumns,
		Rows:    rows,
	}, nil
}

// pathwaySource picks the cell the pathway descriptors are split from: the
// curated pathway_mapping column when present, otherwise the free-text
// pathway column.
func pathwaySource(rec Enriched) string {
	if strings.TrimSpace(rec.PathwayMapping) != "" {
		return rec.PathwayMapping
	}
	return rec.Pathway
}
