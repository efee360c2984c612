// Package csv reads the checklist spreadsheet into records keyed by canonical
// column names. Raw headers are normalized (BOM/accent stripping, case
// folding) and mapped through a configurable header map, so the rest of the
// pipeline never sees spreadsheet-specific header spellings.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"dwcetl/pkg/records"
)

// Options configures the parser. All fields are optional; sensible defaults
// are applied when a field is zero.
type Options struct {
	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune

	// HeaderMap maps normalized source header names to canonical keys. Keys
	// are looked up after NormalizeHeader has been applied to the raw header.
	HeaderMap map[string]string

	// TrimSpace trims leading/trailing whitespace from every cell. The
	// checklist pipeline leaves this off: identifier generation hashes the
	// verbatim species cell and trimming happens per-field downstream.
	TrimSpace bool
}

// Parser parses CSV input according to Options. It is safe to reuse across
// inputs, but Parser itself is not concurrency-safe.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// Parse consumes CSV records from r and returns the parsed rows, the
// canonical header names, and the number of rows skipped because of parse
// errors or field-count mismatches. The header row is required; an
// unreadable header is a fatal error.
func (p *Parser) Parse(r io.Reader) ([]records.Record, []string, int, error) {
	cr := csv.NewReader(r)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	h, err := cr.Read()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("read csv header: %w", err)
	}
	headers := p.canonicalHeaders(h)

	var out []records.Record
	var skipped int
	const logLimit = 25

	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if skipped < logLimit {
				log.Printf("skipping row %d: %v", line, err)
			}
			skipped++
			continue
		}
		if len(row) != len(headers) {
			if skipped < logLimit {
				log.Printf("skipping row %d: incorrect number of fields (expected %d, got %d)",
					line, len(headers), len(row))
			}
			skipped++
			continue
		}

		rec := make(records.Record, len(row)+1)
		for i, val := range row {
			if p.opt.TrimSpace {
				val = strings.TrimSpace(val)
			}
			rec[headers[i]] = emptyToNil(val)
		}
		rec[LineKey] = line
		out = append(out, rec)
	}

	return out, headers, skipped, nil
}

// LineKey is the record key carrying the 1-based source line number, used in
// diagnostics only. It cannot collide with a header name because canonical
// names never start with an underscore.
const LineKey = "_line"

// canonicalHeaders maps raw header cells onto canonical column keys.
func (p *Parser) canonicalHeaders(h []string) []string {
	res := make([]string, len(h))
	for i, col := range h {
		c := strings.TrimSpace(col)
		if i == 0 {
			c = strings.TrimPrefix(c, utf8BOM)
		}
		c = NormalizeHeader(c)
		if m, ok := p.opt.HeaderMap[c]; ok && m != "" {
			res[i] = m
			continue
		}
		res[i] = c
	}
	return res
}

// emptyToNil converts an empty string to nil; all other values are returned as-is.
func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NormalizeHeader converts arbitrary header text into a lowercase ASCII
// identifier:
//  1. lowercase
//  2. strip accents (NFD → remove Mn → NFC)
//  3. keep [a-z0-9_]; convert space/dash/dot to underscore; drop others
//  4. fallback to "col" if nothing survives
func NormalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Decompose → remove nonspacing marks (accents) → recompose.
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	ascii, _, _ := transform.String(t, s)

	var b strings.Builder
	prevUnderscore := false
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		case r == '_' || r == ' ' || r == '-' || r == '.':
			if !prevUnderscore {
				b.WriteRune('_')
				prevUnderscore = true
			}
		default:
			// drop anything else
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return "col"
	}
	return out
}
