package builtin

import (
	"testing"

	"dwcetl/pkg/records"
)

/*
TestNormalize verifies that non-breaking spaces and their mojibake rendering
become plain spaces, while edge whitespace is preserved for the
content-addressed identifier downstream.
*/
func TestNormalize(t *testing.T) {
	in := []records.Record{{
		"species": "Eriocheir\u00a0sinensis",
		"origin":  " East-Asia ",
		"family":  nil,
		"_line":   2,
	}}

	out := Normalize{}.Apply(in)
	if got := out[0].String("species"); got != "Eriocheir sinensis" {
		t.Errorf("species = %q", got)
	}
	if got := out[0].String("origin"); got != " East-Asia " {
		t.Errorf("edge whitespace must survive, got %q", got)
	}
	if out[0]["family"] != nil {
		t.Errorf("nil cell rewritten: %#v", out[0]["family"])
	}
	if line, _ := out[0]["_line"].(int); line != 2 {
		t.Errorf("non-string value rewritten: %#v", out[0]["_line"])
	}
}
