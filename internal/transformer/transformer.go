// Package transformer defines the record-level transformation contract used
// ahead of the mapping engine. Transformers are pure over well-formed input:
// they may rewrite cell values in place but never reorder or invent records.
package transformer

import "dwcetl/pkg/records"

type Transformer interface {
	Apply([]records.Record) []records.Record
}

// Chain is an ordered list of transformers.
type Chain []Transformer

func (c Chain) Apply(in []records.Record) []records.Record {
	out := in
	for _, t := range c {
		out = t.Apply(out)
	}
	return out
}
