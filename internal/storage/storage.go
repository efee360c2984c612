// Package storage contains the storage-agnostic writer contract and the
// factory that selects a concrete sink. The transformation engine hands its
// four finished tables to a Writer exactly once per run; sinks guarantee
// all-or-nothing persistence, so a failed run never leaves partial output.
package storage

import (
	"context"
	"fmt"

	"dwcetl/internal/config"
	"dwcetl/internal/dwc"
)

// Writer persists the four output tables of one run. Write must be atomic at
// the run level: either every table lands or none does.
type Writer interface {
	Write(ctx context.Context, tables []*dwc.Table) error
	Close() error
}

// factories is populated by the concrete sink packages via Register, keeping
// this package free of driver imports.
var factories = map[string]func(ctx context.Context, cfg config.Storage) (Writer, error){}

// Register installs a sink constructor under kind. Called from init in the
// sink packages.
func Register(kind string, fn func(ctx context.Context, cfg config.Storage) (Writer, error)) {
	factories[kind] = fn
}

// New constructs the Writer selected by cfg.Kind.
func New(ctx context.Context, cfg config.Storage) (Writer, error) {
	fn, ok := factories[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("unsupported storage.kind=%s", cfg.Kind)
	}
	return fn(ctx, cfg)
}
