package dwc

import (
	"reflect"
	"testing"
)

func TestSplitMulti(t *testing.T) {
	cases := []struct {
		name string
		in   string
		sep  string
		want []string
	}{
		{"two ranges", "South-America, West-Africa", ", ", []string{"South-America", "West-Africa"}},
		{"single value", "Ponto-Caspian", ", ", []string{"Ponto-Caspian"}},
		{"pipe separated", "shipping | aquaculture", " | ", []string{"shipping", "aquaculture"}},
		{"empty", "", ", ", nil},
		{"whitespace only", "   ", ", ", nil},
		{"empty slots dropped", "a, , b", ", ", []string{"a", "b"}},
		{"values trimmed", " a ,  b ", ", ", []string{"a", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitMulti(tc.in, tc.sep)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitMulti(%q, %q) = %#v, want %#v", tc.in, tc.sep, got, tc.want)
			}
		})
	}
}
