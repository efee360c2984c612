// Package builtin contains simple, reusable record transformers.
package builtin

import (
	"strings"

	"dwcetl/pkg/records"
)

// Normalize scrubs character-level artifacts that spreadsheets leave in text
// cells: non-breaking spaces (and their UTF-8-as-Latin-1 mojibake form) are
// rewritten to plain spaces. It deliberately does not trim: identifier
// generation hashes the verbatim species cell, so edge whitespace must
// survive until the field-level mappers.
type Normalize struct{}

var cellScrubber = strings.NewReplacer(
	"\u00a0", " ",
	"Â ", " ",
)

func (Normalize) Apply(in []records.Record) []records.Record {
	for _, r := range in {
		for k, v := range r {
			if s, ok := v.(string); ok {
				r[k] = cellScrubber.Replace(s)
			}
		}
	}
	return in
}
