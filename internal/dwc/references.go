package dwc

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"dwcetl/internal/config"
	"dwcetl/internal/schema"
)

// Resolver joins raw citation strings to full bibliographic references.
//
// Resolution is a two-step pure function: first a fixed set of string
// corrections (typo fixes, synonym unification, the "this study" marker),
// then an exact-match lookup against the reference table. Compound keys
// joined with a literal separator ("A | B") are looked up verbatim; the
// table itself carries the compound entries.
type Resolver struct {
	corrections map[string]string
	thisStudy   string
	citation    string
	table       map[string]string
}

// NewResolver builds a Resolver from the vocabulary corrections and the
// loaded reference table.
func NewResolver(v config.Vocabulary, datasetCitation string, table map[string]string) *Resolver {
	return &Resolver{
		corrections: v.ReferenceCorrections,
		thisStudy:   v.ThisStudyMarker,
		citation:    datasetCitation,
		table:       table,
	}
}

// Resolve returns the full reference for a raw citation string and whether
// the lookup matched. A miss is a data-quality gap, not an error: some
// sources (unpublished collection data) legitimately have no formal
// citation. Blank input resolves to ("", true) — nothing to look up.
func (r *Resolver) Resolve(raw string) (string, bool) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", true
	}
	if c, ok := r.corrections[key]; ok {
		key = c
	}
	if r.thisStudy != "" && strings.EqualFold(key, r.thisStudy) {
		return r.citation, true
	}
	if full, ok := r.table[key]; ok {
		return full, true
	}
	return "", false
}

// LoadReferences reads the tab-delimited citation lookup table. The header
// must carry the citation and full_reference columns; a missing column is an
// input-shape violation.
func LoadReferences(rd io.Reader) (map[string]string, error) {
	cr := csv.NewReader(rd)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read reference header: %w", err)
	}
	citIdx, fullIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")) {
		case schema.RefColCitation:
			citIdx = i
		case schema.RefColFullReference:
			fullIdx = i
		}
	}
	if citIdx < 0 || fullIdx < 0 {
		return nil, fmt.Errorf("reference table: missing %q or %q column (header %v)",
			schema.RefColCitation, schema.RefColFullReference, header)
	}

	table := make(map[string]string)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reference table line %d: %w", line, err)
		}
		if citIdx >= len(row) {
			continue
		}
		key := strings.TrimSpace(row[citIdx])
		if key == "" {
			continue
		}
		full := ""
		if fullIdx < len(row) {
			full = strings.TrimSpace(row[fullIdx])
		}
		table[key] = full
	}
	return table, nil
}
