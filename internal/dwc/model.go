// Package dwc implements the field-mapping and record-reshaping engine that
// turns one checklist spreadsheet into the four Darwin Core tables: a taxon
// core plus distribution, species profile and description extensions.
//
// The engine is a strictly one-directional pipeline over an in-memory record
// set: source records are enriched with a deterministic taxon identifier and
// a resolved bibliographic reference, then projected by four independent
// table builders. Builders never see each other's output and never mutate
// the enriched set, so they run in parallel.
package dwc

import (
	csvparser "dwcetl/internal/parser/csv"
	"dwcetl/internal/schema"
	"dwcetl/pkg/records"
)

// Source is one row of the checklist spreadsheet, decoded from a parsed
// record. String fields hold the raw cell text; empty means the cell was
// blank. Immutable once decoded.
type Source struct {
	Species         string
	Phylum          string
	Order           string
	Family          string
	Reference       string
	FirstOccurrence string
	Origin          string
	Pathway         string
	PathwayMapping  string
	SalinityZone    string

	// Line is the 1-based spreadsheet line, for diagnostics.
	Line int
}

// Enriched is a Source augmented with the derived fields every table builder
// keys on. Never mutated after the builders start.
type Enriched struct {
	Source

	// TaxonID is the content-addressed identifier derived from the verbatim
	// species cell.
	TaxonID string

	// SourceRef is the resolved full bibliographic reference, or "" when the
	// citation intentionally has no formal reference.
	SourceRef string
}

// decodeSource lifts a parsed record into a Source. Missing columns have
// already been rejected at parse time, so absent keys simply read as "".
func decodeSource(r records.Record) Source {
	line, _ := r[csvparser.LineKey].(int)
	return Source{
		Species:         r.String(schema.ColSpecies),
		Phylum:          r.String(schema.ColPhylum),
		Order:           r.String(schema.ColOrder),
		Family:          r.String(schema.ColFamily),
		Reference:       r.String(schema.ColReference),
		FirstOccurrence: r.String(schema.ColFirstOccurrence),
		Origin:          r.String(schema.ColOrigin),
		Pathway:         r.String(schema.ColPathway),
		PathwayMapping:  r.String(schema.ColPathwayMapping),
		SalinityZone:    r.String(schema.ColSalinityZone),
		Line:            line,
	}
}

// Table is one serialized output table: a fixed column schema and string
// rows aligned to it. Nulls are empty strings, per the Darwin Core text
// format.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}
