// Package records defines the generic row representation shared between the
// parser and the transformation engine. A Record is one parsed spreadsheet
// row keyed by canonical column name; values are nil (empty cell) or string.
package records

import "strings"

type Record map[string]any

// String returns the value for key as a string. Nil and missing values come
// back as "".
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// TrimmedString returns the value for key with leading/trailing whitespace
// removed.
func (r Record) TrimmedString(key string) string {
	return strings.TrimSpace(r.String(key))
}

// Has reports whether key is present, regardless of value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}
