package dwc

import "strings"

// SplitMulti splits a delimited multi-valued cell into its non-empty values,
// trimmed, preserving input order. Empty slots produce no value, so a cell
// holding one of three possible entries yields exactly one result. The
// separator is a parameter: the checklist uses ", " for native ranges and
// " | " for pathways.
func SplitMulti(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
