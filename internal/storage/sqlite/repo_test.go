package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"dwcetl/internal/config"
	"dwcetl/internal/dwc"
)

func sampleTables() []*dwc.Table {
	return []*dwc.Table{
		{
			Name:    "taxon",
			Columns: []string{"taxonID", "scientificName"},
			Rows: [][]string{
				{"ns:taxon:aa", "Eriocheir sinensis"},
				{"ns:taxon:bb", "Dikerogammarus villosus"},
			},
		},
		{
			Name:    "distribution",
			Columns: []string{"taxonID", "eventDate"},
			Rows:    [][]string{{"ns:taxon:aa", "1990/2016"}},
		},
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "out.db")
	ctx := context.Background()

	w, err := NewWriter(ctx, config.Storage{Kind: "sqlite", DSN: dsn, TablePrefix: "dwc_"})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	defer w.Close()

	if err := w.Write(ctx, sampleTables()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM "dwc_taxon"`).Scan(&n); err != nil {
		t.Fatalf("count dwc_taxon: %v", err)
	}
	if n != 2 {
		t.Errorf("dwc_taxon rows = %d, want 2", n)
	}

	var name string
	err = db.QueryRow(`SELECT "scientificName" FROM "dwc_taxon" WHERE "taxonID" = ?`, "ns:taxon:aa").Scan(&name)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if name != "Eriocheir sinensis" {
		t.Errorf("scientificName = %q", name)
	}

	// A second run replaces, not appends.
	if err := w.Write(ctx, sampleTables()); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM "dwc_taxon"`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("after rerun dwc_taxon rows = %d, want 2", n)
	}
}

/*
TestWriteRollback verifies the single-transaction contract: a row narrower
than its schema aborts the whole write, and a table created earlier in the
same run does not survive the rollback.
*/
func TestWriteRollback(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "out.db")
	ctx := context.Background()

	w, err := NewWriter(ctx, config.Storage{Kind: "sqlite", DSN: dsn})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	defer w.Close()

	tables := sampleTables()
	tables[1].Rows = [][]string{{"ns:taxon:aa"}}

	if err := w.Write(ctx, tables); err == nil {
		t.Fatal("expected write error")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var n int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'taxon'`).Scan(&n)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Error("taxon table survived the rollback")
	}
}

func TestNewWriterEmptyDSN(t *testing.T) {
	if _, err := NewWriter(context.Background(), config.Storage{Kind: "sqlite"}); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}
