package dwc

import (
	"strings"
	"testing"

	"dwcetl/internal/config"
)

func testResolver() *Resolver {
	cfg := config.Defaults()
	table := map[string]string{
		"Boets et al. (2011a)": "Boets P, Lock K, Goethals PLM (2011a) Full reference text.",
		"Lock et al. (2007) | Messiaen et al. (2010)": "Lock et al. 2007 full. | Messiaen et al. 2010 full.",
		"Personal observation":                        "",
	}
	return NewResolver(cfg.Vocabulary, cfg.Dataset.Citation, table)
}

/*
TestResolve covers the three resolution steps in order: corrections, the
"this study" marker, and the exact-match table lookup. Compound citations
joined with " | " are looked up verbatim as one key.
*/
func TestResolve(t *testing.T) {
	r := testResolver()
	citation := config.Defaults().Dataset.Citation

	cases := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"exact match", "Boets et al. (2011a)", "Boets P, Lock K, Goethals PLM (2011a) Full reference text.", true},
		{"corrected then matched", "Boets et al. (2011)", "Boets P, Lock K, Goethals PLM (2011a) Full reference text.", true},
		{"this study", "this study", citation, true},
		{"this study case-insensitive", "This Study", citation, true},
		{"compound key verbatim", "Lock et al. (2007) | Messiaen et al. (2010)", "Lock et al. 2007 full. | Messiaen et al. 2010 full.", true},
		{"blank resolves empty", "", "", true},
		{"whitespace resolves empty", "   ", "", true},
		{"matched but empty reference", "Personal observation", "", true},
		{"miss", "Nonexistent et al. (1999)", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := r.Resolve(tc.raw)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)",
					tc.raw, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestLoadReferences(t *testing.T) {
	in := "citation\tfull_reference\textra\n" +
		"Boets et al. (2011a)\tBoets P (2011a) Full.\tignored\n" +
		"\tno key, skipped\n" +
		"Short row\n"

	table, err := LoadReferences(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadReferences: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("got %d entries, want 2: %#v", len(table), table)
	}
	if got := table["Boets et al. (2011a)"]; got != "Boets P (2011a) Full." {
		t.Errorf("entry = %q", got)
	}
	// A row with a key but no full_reference column still registers the key.
	if got, ok := table["Short row"]; !ok || got != "" {
		t.Errorf("short row entry = (%q, %v), want (\"\", true)", got, ok)
	}
}

func TestLoadReferencesBOM(t *testing.T) {
	in := "\uFEFFcitation\tfull_reference\nA\tFull A\n"
	table, err := LoadReferences(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadReferences: %v", err)
	}
	if table["A"] != "Full A" {
		t.Errorf("BOM header not stripped: %#v", table)
	}
}

func TestLoadReferencesMissingColumn(t *testing.T) {
	in := "citation\treference\nA\tFull A\n"
	if _, err := LoadReferences(strings.NewReader(in)); err == nil {
		t.Fatal("expected error for missing full_reference column")
	}
}
