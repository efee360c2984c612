package dwc

import (
	"strings"

	"dwcetl/internal/config"
)

// Taxon rank values emitted in the taxon core.
const (
	RankSpecies    = "species"
	RankSubspecies = "subspecies"
)

// Mapper is the family of controlled-vocabulary lookups. Every method is
// pure and total: no input string fails, unmapped values fall to the
// documented default.
type Mapper struct {
	rankCorrections map[string]string
	subspecies      map[string]struct{}
	nativeRanges    map[string]string
	pathways        map[string]string
	pathwayPrefix   string
	habitats        map[string]config.Habitat
}

// NewMapper compiles the vocabulary tables into lookup form.
func NewMapper(v config.Vocabulary) *Mapper {
	sub := make(map[string]struct{}, len(v.Subspecies))
	for _, s := range v.Subspecies {
		sub[strings.TrimSpace(s)] = struct{}{}
	}
	return &Mapper{
		rankCorrections: v.RankCorrections,
		subspecies:      sub,
		nativeRanges:    v.NativeRanges,
		pathways:        v.Pathways,
		pathwayPrefix:   v.PathwayPrefix,
		habitats:        v.Habitats,
	}
}

// CorrectTaxon fixes known misspelled order/phylum names. All values are
// trimmed regardless of whether a correction applies; unmapped values pass
// through unchanged.
func (m *Mapper) CorrectTaxon(name string) string {
	s := strings.TrimSpace(name)
	if c, ok := m.rankCorrections[s]; ok {
		return c
	}
	return s
}

// Rank classifies a scientific name as species or subspecies. The subspecies
// set is configuration, not a hardcoded name check.
func (m *Mapper) Rank(species string) string {
	if _, ok := m.subspecies[strings.TrimSpace(species)]; ok {
		return RankSubspecies
	}
	return RankSpecies
}

// NativeRange standardizes a hyphenated/abbreviated region name; unmapped
// values pass through trimmed.
func (m *Mapper) NativeRange(raw string) string {
	s := strings.TrimSpace(raw)
	if c, ok := m.nativeRanges[s]; ok {
		return c
	}
	return s
}

// Pathway maps a free-text introduction pathway onto its prefixed CBD code.
// Unmapped values pass through trimmed; mapped reports whether the result
// carries the required vocabulary prefix, so callers can record the
// data-quality gap.
func (m *Mapper) Pathway(raw string) (value string, mapped bool) {
	s := strings.TrimSpace(raw)
	if c, ok := m.pathways[strings.ToLower(s)]; ok {
		return c, true
	}
	if m.pathwayPrefix != "" && strings.HasPrefix(s, m.pathwayPrefix) {
		// Already standardized upstream (the pathway_mapping column).
		return s, true
	}
	return s, false
}

// Habitat returns the three habitat flags for a salinity zone code. Unknown
// zones yield no flags. isTerrestrial is false for every zone: the source
// data contains no terrestrial taxa by design.
func (m *Mapper) Habitat(zone string) config.Habitat {
	return m.habitats[strings.TrimSpace(zone)]
}
