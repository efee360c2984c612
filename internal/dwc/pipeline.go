package dwc

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"dwcetl/internal/config"
	"dwcetl/internal/schema"
	"dwcetl/internal/transformer"
	"dwcetl/internal/transformer/builtin"
	"dwcetl/pkg/records"
)

// maxGapExamples caps how many example messages each data-quality aggregator
// retains for the run summary.
const maxGapExamples = 5

// Pipeline sequences the full transformation: normalize → identify → resolve
// references → build the four tables. A Pipeline is built once per run and
// is not reused.
type Pipeline struct {
	cfg      config.Pipeline
	mapper   *Mapper
	resolver *Resolver
	now      func() time.Time
}

// New assembles a Pipeline from configuration, the loaded reference table,
// and a clock. The clock feeds the open-ended event-date default; tests
// inject a fixed time.
func New(cfg config.Pipeline, refs map[string]string, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		cfg:      cfg,
		mapper:   NewMapper(cfg.Vocabulary),
		resolver: NewResolver(cfg.Vocabulary, cfg.Dataset.Citation, refs),
		now:      now,
	}
}

// Stats aggregates per-run counters for the summary log and metrics.
type Stats struct {
	Records              int
	UnresolvedReferences int
	UnmappedPathways     int

	TaxonRows          int
	DistributionRows   int
	SpeciesProfileRows int
	DescriptionRows    int
}

// Result carries the four output tables of one run. Tables are fully built
// and internally consistent before Result is returned; on any fatal error no
// tables are returned at all.
type Result struct {
	Taxon          *Table
	Distribution   *Table
	SpeciesProfile *Table
	Description    *Table

	Stats Stats
}

// Tables returns the four tables in their canonical write order.
func (r *Result) Tables() []*Table {
	return []*Table{r.Taxon, r.Distribution, r.SpeciesProfile, r.Description}
}

// Run executes the pipeline over parsed records. headers is the canonical
// header set from the parser, checked against the expected source columns
// before any transformation starts.
//
// Error taxonomy: unresolved citations and unmapped pathways are recorded
// and logged, never fatal; duplicate scientific names, blank species cells,
// malformed date expressions and missing columns abort with no output.
func (p *Pipeline) Run(ctx context.Context, rows []records.Record, headers []string) (*Result, error) {
	if missing := schema.MissingColumns(headers); len(missing) > 0 {
		return nil, fmt.Errorf("checklist: missing expected columns %v", missing)
	}

	chain := transformer.Chain{builtin.Normalize{}}
	rows = chain.Apply(rows)

	refGaps := newGapAgg(maxGapExamples)
	pathwayGaps := newGapAgg(maxGapExamples)

	recs, err := p.enrich(rows, refGaps)
	if err != nil {
		return nil, err
	}

	// Builders only read the shared enriched set; they are siblings, not a
	// chain, so they run concurrently.
	runYear := p.now().Year()
	res := &Result{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		res.Taxon, err = buildTaxon(p.cfg.Dataset, p.mapper, recs)
		return err
	})
	g.Go(func() error {
		var err error
		res.Distribution, err = buildDistribution(p.cfg.Dataset, recs, runYear)
		return err
	})
	g.Go(func() error {
		var err error
		res.SpeciesProfile, err = buildSpeciesProfile(p.mapper, recs)
		return err
	})
	g.Go(func() error {
		var err error
		res.Description, err = buildDescription(p.cfg.Dataset, p.cfg.Vocabulary, p.mapper, recs, pathwayGaps.add)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := checkReferentialIntegrity(res); err != nil {
		return nil, err
	}

	res.Stats = Stats{
		Records:              len(recs),
		UnresolvedReferences: refGaps.count,
		UnmappedPathways:     pathwayGaps.count,
		TaxonRows:            len(res.Taxon.Rows),
		DistributionRows:     len(res.Distribution.Rows),
		SpeciesProfileRows:   len(res.SpeciesProfile.Rows),
		DescriptionRows:      len(res.Description.Rows),
	}

	refGaps.report("unresolved references")
	pathwayGaps.report("unmapped pathways")

	return res, nil
}

// enrich derives the taxon identifier and resolved reference for every
// source record, then sorts the set by identifier so each builder emits rows
// in final output order. Blank species cells and identifier collisions
// between distinct names are structural violations.
func (p *Pipeline) enrich(rows []records.Record, refGaps *gapAgg) ([]Enriched, error) {
	recs := make([]Enriched, 0, len(rows))
	byID := make(map[string]string, len(rows))

	for _, r := range rows {
		src := decodeSource(r)
		if strings.TrimSpace(src.Species) == "" {
			return nil, fmt.Errorf("line %d: blank species name", src.Line)
		}

		id := TaxonID(p.cfg.Dataset.Namespace, src.Species)
		if prev, ok := byID[id]; ok && prev != src.Species {
			// Distinct names hashing to one identifier would silently merge
			// two taxa across every table.
			return nil, fmt.Errorf("identifier collision: %q and %q both map to %s",
				prev, src.Species, id)
		}
		byID[id] = src.Species

		full, ok := p.resolver.Resolve(src.Reference)
		if !ok {
			refGaps.add(fmt.Sprintf("line %d: no full reference for %q", src.Line, strings.TrimSpace(src.Reference)))
		}

		recs = append(recs, Enriched{Source: src, TaxonID: id, SourceRef: full})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].TaxonID != recs[j].TaxonID {
			return recs[i].TaxonID < recs[j].TaxonID
		}
		return recs[i].Line < recs[j].Line
	})
	return recs, nil
}

// checkReferentialIntegrity verifies that every identifier in the three
// extension tables has a row in the taxon core. The builders share one
// enriched set so this should hold by construction; the check guards against
// regressions in the builders themselves.
func checkReferentialIntegrity(res *Result) error {
	core := make(map[string]struct{}, len(res.Taxon.Rows))
	for _, row := range res.Taxon.Rows {
		core[row[0]] = struct{}{}
	}
	for _, t := range []*Table{res.Distribution, res.SpeciesProfile, res.Description} {
		for _, row := range t.Rows {
			if _, ok := core[row[0]]; !ok {
				return fmt.Errorf("%s: identifier %s has no taxon row", t.Name, row[0])
			}
		}
	}
	return nil
}

// gapAgg aggregates data-quality gap messages: count everything, keep the
// first few examples for the summary.
type gapAgg struct {
	mu    sync.Mutex
	limit int
	count int
	first []string
}

func newGapAgg(limit int) *gapAgg {
	return &gapAgg{limit: limit}
}

func (a *gapAgg) add(msg string) {
	a.mu.Lock()
	if a.count < a.limit {
		a.first = append(a.first, msg)
	}
	a.count++
	a.mu.Unlock()
}

func (a *gapAgg) report(label string) {
	if a.count == 0 {
		return
	}
	log.Printf("%s: %d (showing first %d)", label, a.count, len(a.first))
	for i, s := range a.first {
		log.Printf("  #%02d: %s", i+1, s)
	}
}
