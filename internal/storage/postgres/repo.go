// Package postgres implements a Postgres sink for the four output tables
// using pgx v5. Tables are recreated and bulk-loaded with COPY inside a
// single transaction: either all four tables commit or the database is left
// untouched.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dwcetl/internal/config"
	"dwcetl/internal/ddl"
	"dwcetl/internal/dwc"
	"dwcetl/internal/storage"
)

func init() {
	storage.Register("postgres", func(ctx context.Context, cfg config.Storage) (storage.Writer, error) {
		return NewWriter(ctx, cfg)
	})
}

// Writer is a Postgres-backed storage.Writer.
type Writer struct {
	pool *pgxpool.Pool
	cfg  config.Storage
}

// NewWriter connects a pgx pool using the configured DSN.
func NewWriter(ctx context.Context, cfg config.Storage) (*Writer, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, fmt.Errorf("postgres: DSN must not be empty")
	}
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: pgxpool: %w", err)
	}
	return &Writer{pool: pool, cfg: cfg}, nil
}

// Write recreates and COPY-loads every table inside one transaction.
func (w *Writer) Write(ctx context.Context, tables []*dwc.Table) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("postgres: acquire: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, t := range tables {
		if err := w.writeTable(ctx, tx, t); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func (w *Writer) writeTable(ctx context.Context, tx pgx.Tx, t *dwc.Table) error {
	name := w.cfg.TablePrefix + t.Name

	if _, err := tx.Exec(ctx, ddl.DropTable(name, ddl.QuoteDouble)); err != nil {
		return fmt.Errorf("postgres: drop %s: %w", name, err)
	}

	create, err := ddl.CreateTable(name, t.Columns, ddl.QuoteDouble)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if _, err := tx.Exec(ctx, create); err != nil {
		return fmt.Errorf("postgres: create %s: %w", name, err)
	}

	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("postgres: %s row %d: %d values for %d columns",
				name, i, len(row), len(t.Columns))
		}
		vals := make([]any, len(row))
		for j, v := range row {
			vals[j] = v
		}
		rows[i] = vals
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{name}, t.Columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("postgres: copy into %s: %w", name, err)
	}
	if n != int64(len(rows)) {
		return fmt.Errorf("postgres: %s: copied %d of %d rows", name, n, len(rows))
	}
	return nil
}

// Close releases the connection pool.
func (w *Writer) Close() error {
	w.pool.Close()
	return nil
}
