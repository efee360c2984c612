package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"dwcetl/internal/config"
	"dwcetl/internal/datasource"
	"dwcetl/internal/dwc"
	"dwcetl/internal/metrics"
	csvparser "dwcetl/internal/parser/csv"
	"dwcetl/internal/storage"
)

// run executes one batch conversion: parse checklist → load references →
// transform → persist. Steps are timed individually for the metrics backend.
// On any fatal error no output is written at all; the sinks guarantee
// all-or-nothing persistence of the four tables.
func run(ctx context.Context, cfg config.Pipeline) error {
	start := time.Now()

	// 1) Parse the checklist spreadsheet.
	stepStart := time.Now()
	comma := ','
	if cfg.Parser.Comma != "" {
		comma = []rune(cfg.Parser.Comma)[0]
	}
	f, err := datasource.New(cfg.Source.Checklist).Open(ctx)
	if err != nil {
		return fmt.Errorf("open checklist: %w", err)
	}
	p := csvparser.NewParser(csvparser.Options{
		Comma:     comma,
		HeaderMap: cfg.Parser.HeaderMap,
	})
	rows, headers, skipped, err := p.Parse(f)
	f.Close()
	metrics.RecordStep(cfg.Job, "parse", err, time.Since(stepStart))
	if err != nil {
		return fmt.Errorf("parse checklist: %w", err)
	}
	metrics.RecordRows(cfg.Job, "records", int64(len(rows)))
	metrics.RecordRows(cfg.Job, "skipped", int64(skipped))
	log.Printf("parsed checklist=%s records=%d skipped=%d", cfg.Source.Checklist, len(rows), skipped)

	// 2) Load the citation lookup table.
	stepStart = time.Now()
	rf, err := datasource.New(cfg.Source.References).Open(ctx)
	if err != nil {
		return fmt.Errorf("open references: %w", err)
	}
	refs, err := dwc.LoadReferences(rf)
	rf.Close()
	metrics.RecordStep(cfg.Job, "references", err, time.Since(stepStart))
	if err != nil {
		return err
	}
	log.Printf("loaded references=%s entries=%d", cfg.Source.References, len(refs))

	// 3) Transform.
	stepStart = time.Now()
	res, err := dwc.New(cfg, refs, time.Now).Run(ctx, rows, headers)
	metrics.RecordStep(cfg.Job, "transform", err, time.Since(stepStart))
	if err != nil {
		return err
	}
	metrics.RecordRows(cfg.Job, "unresolved_references", int64(res.Stats.UnresolvedReferences))
	metrics.RecordRows(cfg.Job, "unmapped_pathways", int64(res.Stats.UnmappedPathways))

	// 4) Persist all four tables.
	stepStart = time.Now()
	w, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	err = w.Write(ctx, res.Tables())
	if cerr := w.Close(); cerr != nil && err == nil {
		err = cerr
	}
	metrics.RecordStep(cfg.Job, "write", err, time.Since(stepStart))
	if err != nil {
		return err
	}

	written := res.Stats.TaxonRows + res.Stats.DistributionRows +
		res.Stats.SpeciesProfileRows + res.Stats.DescriptionRows
	metrics.RecordRows(cfg.Job, "rows_written", int64(written))

	log.Printf(
		"summary: records=%d taxon=%d distribution=%d speciesprofile=%d description=%d unresolved_refs=%d unmapped_pathways=%d elapsed=%s",
		res.Stats.Records,
		res.Stats.TaxonRows,
		res.Stats.DistributionRows,
		res.Stats.SpeciesProfileRows,
		res.Stats.DescriptionRows,
		res.Stats.UnresolvedReferences,
		res.Stats.UnmappedPathways,
		time.Since(start).Truncate(time.Millisecond),
	)
	return nil
}
