// Package config provides the configuration model and helpers for the
// checklist pipeline.
//
// This file adds a lightweight linter/validator for Pipeline values. It
// performs static checks over a decoded Pipeline and returns a list of issues
// (errors and warnings) that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be surfaced
	// to users but does not block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation/lint finding for a Pipeline.
//
// Path is a dotted path into the config (e.g. "storage.kind",
// "vocabulary.pathway_separator"). Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error in contexts that expect error.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// HasErrors reports whether any issue in the list has SeverityError.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ValidatePipeline performs static validation / linting of a Pipeline.
//
// It does not mutate the pipeline. Callers decide whether to treat warnings
// as fatal.
func ValidatePipeline(p Pipeline) []Issue {
	var issues []Issue

	if strings.TrimSpace(p.Job) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "job",
			Message:  "job must not be empty; it is used for metrics labeling and identifying runs",
		})
	}

	issues = append(issues, validateSource(p.Source)...)
	issues = append(issues, validateParser(p.Parser)...)
	issues = append(issues, validateDataset(p.Dataset)...)
	issues = append(issues, validateVocabulary(p.Vocabulary)...)
	issues = append(issues, validateStorage(p.Storage)...)

	return issues
}

func validateSource(s Source) []Issue {
	var issues []Issue
	if strings.TrimSpace(s.Checklist) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.checklist",
			Message:  "checklist path must not be empty",
		})
	}
	if strings.TrimSpace(s.References) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.references",
			Message:  "references path must not be empty",
		})
	}
	return issues
}

func validateParser(p Parser) []Issue {
	var issues []Issue
	if len(p.Comma) > 1 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "parser.comma",
			Message:  fmt.Sprintf("delimiter must be a single character, got %q", p.Comma),
		})
	}
	if len(p.HeaderMap) == 0 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "parser.header_map",
			Message:  "no header map configured; raw headers must already match canonical column names",
		})
	}
	return issues
}

func validateDataset(d Dataset) []Issue {
	var issues []Issue

	// Namespace feeds identifier generation; everything downstream keys on it.
	if strings.TrimSpace(d.Namespace) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "dataset.namespace",
			Message:  "namespace must not be empty; it prefixes every taxon identifier",
		})
	}
	if d.DefaultEndYear <= 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "dataset.default_end_year",
			Message:  "default end year must be a positive year",
		})
	}
	if strings.TrimSpace(d.Citation) == "" {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "dataset.citation",
			Message:  "dataset citation is empty; \"this study\" references will resolve to nothing",
		})
	}

	required := map[string]string{
		"dataset.language":            d.Language,
		"dataset.license":             d.License,
		"dataset.dataset_id":          d.DatasetID,
		"dataset.dataset_name":        d.DatasetName,
		"dataset.kingdom":             d.Kingdom,
		"dataset.establishment_means": d.EstablishmentMeans,
	}
	for path, v := range required {
		if strings.TrimSpace(v) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     path,
				Message:  "must not be empty",
			})
		}
	}
	return issues
}

func validateVocabulary(v Vocabulary) []Issue {
	var issues []Issue
	if v.NativeRangeSeparator == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "vocabulary.native_range_separator",
			Message:  "separator must not be empty",
		})
	}
	if v.PathwaySeparator == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "vocabulary.pathway_separator",
			Message:  "separator must not be empty",
		})
	}
	if v.PathwayPrefix == "" {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "vocabulary.pathway_prefix",
			Message:  "no pathway prefix configured; unmapped pathway detection is disabled",
		})
	}
	for raw, mapped := range v.Pathways {
		if v.PathwayPrefix != "" && !strings.HasPrefix(mapped, v.PathwayPrefix) {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Path:     "vocabulary.pathways",
				Message:  fmt.Sprintf("mapping for %q lacks prefix %q", raw, v.PathwayPrefix),
			})
		}
	}
	return issues
}

func validateStorage(s Storage) []Issue {
	var issues []Issue

	kind := strings.TrimSpace(s.Kind)
	if kind == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.kind",
			Message:  "storage.kind must not be empty",
		})
		return issues
	}

	switch kind {
	case "csv":
		if strings.TrimSpace(s.OutDir) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.out_dir",
				Message:  "csv storage requires a non-empty output directory",
			})
		}
	case "sqlite", "postgres":
		if strings.TrimSpace(s.DSN) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.dsn",
				Message:  fmt.Sprintf("%s storage requires a DSN", kind),
			})
		}
	default:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "storage.kind",
			Message:  fmt.Sprintf("unknown storage kind %q; ensure a matching implementation exists", kind),
		})
	}
	return issues
}
