// Package sqlite implements a SQLite sink for the four output tables using
// database/sql. All four tables are recreated and filled inside a single
// transaction, so a failed run rolls back to the previous state instead of
// leaving a partial table set.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // alternative: github.com/mattn/go-sqlite3

	"dwcetl/internal/config"
	"dwcetl/internal/ddl"
	"dwcetl/internal/dwc"
	"dwcetl/internal/storage"
)

func init() {
	storage.Register("sqlite", func(ctx context.Context, cfg config.Storage) (storage.Writer, error) {
		return NewWriter(ctx, cfg)
	})
}

// Writer is a SQLite-backed storage.Writer.
type Writer struct {
	db  *sql.DB
	cfg config.Storage
}

// NewWriter opens a SQLite connection using the configured DSN, e.g.
//
//	"file:checklist.db?cache=shared&_fk=1"
//	"checklist.db"
func NewWriter(ctx context.Context, cfg config.Storage) (*Writer, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, fmt.Errorf("sqlite: DSN must not be empty")
	}

	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	return &Writer{db: db, cfg: cfg}, nil
}

// Write recreates and fills every table in one transaction.
func (w *Writer) Write(ctx context.Context, tables []*dwc.Table) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin tx: %w", err)
	}

	for _, t := range tables {
		if err := w.writeTable(ctx, tx, t); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

func (w *Writer) writeTable(ctx context.Context, tx *sql.Tx, t *dwc.Table) error {
	name := w.cfg.TablePrefix + t.Name

	if _, err := tx.ExecContext(ctx, ddl.DropTable(name, ddl.QuoteDouble)); err != nil {
		return fmt.Errorf("sqlite: drop %s: %w", name, err)
	}

	create, err := ddl.CreateTable(name, t.Columns, ddl.QuoteDouble)
	if err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("sqlite: create %s: %w", name, err)
	}

	placeholders := make([]string, len(t.Columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s VALUES (%s)", ddl.QuoteDouble(name), strings.Join(placeholders, ", "),
	))
	if err != nil {
		return fmt.Errorf("sqlite: prepare insert %s: %w", name, err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("sqlite: %s row %d: %d values for %d columns",
				name, i, len(row), len(t.Columns))
		}
		args := make([]any, len(row))
		for j, v := range row {
			args[j] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("sqlite: insert into %s: %w", name, err)
		}
	}
	return nil
}

// Close releases the database handle.
func (w *Writer) Close() error { return w.db.Close() }
