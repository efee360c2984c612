package dwc

import (
	"context"
	"fmt"
	"testing"

	"dwcetl/internal/config"
	csvparser "dwcetl/internal/parser/csv"
	"dwcetl/internal/schema"
	"dwcetl/pkg/records"
)

// benchRows synthesizes n well-formed checklist records with distinct
// species names.
func benchRows(n int) []records.Record {
	rows := make([]records.Record, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, records.Record{
			csvparser.LineKey:         i + 2,
			schema.ColSpecies:         fmt.Sprintf("Species benchmarkus %06d", i),
			schema.ColPhylum:          "Arthropoda",
			schema.ColOrder:           "Amphipoda",
			schema.ColFamily:          "Gammaridae",
			schema.ColReference:       "this study",
			schema.ColFirstOccurrence: "1990",
			schema.ColOrigin:          "East-Asia, Ponto-Caspian",
			schema.ColPathway:         "shipping",
			schema.ColPathwayMapping:  nil,
			schema.ColSalinityZone:    "F",
		})
	}
	return rows
}

func BenchmarkPipelineRun(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("records=%d", n), func(b *testing.B) {
			rows := benchRows(n)
			p := New(config.Defaults(), map[string]string{}, fixedNow)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := p.Run(context.Background(), rows, schema.SourceColumns); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
