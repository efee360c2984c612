// Package config defines the canonical, JSON-serializable configuration model
// for the checklist publication pipeline. A Pipeline value carries everything
// that is dataset-specific: file locations, the header mapping of the source
// spreadsheet, the dataset constants stamped onto every output row, and the
// controlled-vocabulary tables used by the mapping engine.
//
// Design goals:
//
//  1. Nothing dataset-specific is hardcoded in the mapping logic; the engine
//     reads all of it from here, so another checklist can be published by
//     swapping the config file.
//  2. Defaults() returns a complete, runnable configuration for the alien
//     macroinvertebrates checklist; a config file only overrides what it
//     names.
//  3. Decoding is performed by the standard library; no third-party config
//     machinery.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline is the top-level object decoded from a pipeline file.
type Pipeline struct {
	// Job names the run for logs and metrics labels.
	Job string `json:"job"`

	Source     Source     `json:"source"`
	Parser     Parser     `json:"parser"`
	Dataset    Dataset    `json:"dataset"`
	Vocabulary Vocabulary `json:"vocabulary"`
	Storage    Storage    `json:"storage"`
}

// Source locates the two input files.
type Source struct {
	// Checklist is the path to the checklist spreadsheet (CSV).
	Checklist string `json:"checklist"`

	// References is the path to the tab-delimited citation lookup table.
	References string `json:"references"`
}

// Parser configures how the checklist spreadsheet is read.
type Parser struct {
	// Comma is the field delimiter as a one-character string. Default ",".
	Comma string `json:"comma"`

	// HeaderMap maps raw spreadsheet headers onto the canonical column names
	// in the schema package. Raw headers are accent-stripped and lowercased
	// before lookup, so the map keys should be in that normalized form.
	HeaderMap map[string]string `json:"header_map"`
}

// Dataset holds the constants stamped onto output rows. All values are
// emitted verbatim.
type Dataset struct {
	// Namespace prefixes every generated taxon identifier.
	Namespace string `json:"namespace"`

	Language          string `json:"language"`
	License           string `json:"license"`
	RightsHolder      string `json:"rights_holder"`
	DatasetID         string `json:"dataset_id"`
	DatasetName       string `json:"dataset_name"`
	Kingdom           string `json:"kingdom"`
	NomenclaturalCode string `json:"nomenclatural_code"`

	LocationID         string `json:"location_id"`
	Locality           string `json:"locality"`
	CountryCode        string `json:"country_code"`
	OccurrenceStatus   string `json:"occurrence_status"`
	EstablishmentMeans string `json:"establishment_means"`

	// Citation is the dataset's own citation; raw references equal to
	// Vocabulary.ThisStudyMarker resolve to it.
	Citation string `json:"citation"`

	// InvasionStage is the constant descriptor value emitted once per taxon.
	InvasionStage string `json:"invasion_stage"`

	// DefaultEndYear closes open first-occurrence ranges whose start year is
	// not later than it. Later starts are closed with the run year instead.
	DefaultEndYear int `json:"default_end_year"`
}

// Habitat is one row of the salinity-zone lookup: the three boolean habitat
// flags of the species profile extension.
type Habitat struct {
	Marine      bool `json:"marine"`
	Freshwater  bool `json:"freshwater"`
	Terrestrial bool `json:"terrestrial"`
}

// Vocabulary holds every controlled-vocabulary lookup table. All lookups are
// total: unmapped input passes through (or falls to a zero Habitat), it never
// fails.
type Vocabulary struct {
	// ReferenceCorrections normalizes known typos and synonym renderings of
	// citation keys before the lookup against the reference table.
	ReferenceCorrections map[string]string `json:"reference_corrections"`

	// ThisStudyMarker is the raw reference value meaning "this checklist".
	ThisStudyMarker string `json:"this_study_marker"`

	// RankCorrections fixes known misspelled order/phylum names.
	RankCorrections map[string]string `json:"rank_corrections"`

	// Subspecies lists the scientific names classified as subspecies rank;
	// every other name is species rank.
	Subspecies []string `json:"subspecies"`

	// NativeRanges standardizes hyphenated/abbreviated region names.
	NativeRanges map[string]string `json:"native_ranges"`

	// Pathways maps free-text introduction pathways onto prefixed CBD codes.
	Pathways map[string]string `json:"pathways"`

	// PathwayPrefix is the prefix every mapped pathway value must carry;
	// values that pass through without it are counted as data-quality gaps.
	PathwayPrefix string `json:"pathway_prefix"`

	// Habitats maps a salinity zone code onto habitat flags. Unmapped zones
	// yield the zero Habitat (no flags set).
	Habitats map[string]Habitat `json:"habitats"`

	// NativeRangeSeparator and PathwaySeparator split the two multi-valued
	// source fields.
	NativeRangeSeparator string `json:"native_range_separator"`
	PathwaySeparator     string `json:"pathway_separator"`
}

// Storage selects the sink used to persist the four output tables.
type Storage struct {
	// Kind selects the writer implementation: "csv", "sqlite" or "postgres".
	Kind string `json:"kind"`

	// OutDir is the output directory for the "csv" kind.
	OutDir string `json:"out_dir"`

	// DSN is the connection string for the database kinds.
	DSN string `json:"dsn"`

	// TablePrefix is prepended to the four table names in database sinks.
	TablePrefix string `json:"table_prefix"`
}

// Load reads a pipeline file over Defaults(). Fields absent from the file
// keep their default values. An empty path returns Defaults() unchanged.
func Load(path string) (Pipeline, error) {
	p := Defaults()
	if path == "" {
		return p, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Pipeline{}, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return Pipeline{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return p, nil
}
