// Package schema fixes the column vocabulary of the pipeline: the canonical
// names of the checklist source columns, the two-column layout of the
// reference lookup table, and the exact column order of the four Darwin Core
// output tables. Builders and writers index rows by these names only; raw
// spreadsheet headers are mapped onto them by the parser.
package schema

// Canonical source column keys, post header mapping.
const (
	ColSpecies         = "species"
	ColPhylum          = "phylum"
	ColOrder           = "order"
	ColFamily          = "family"
	ColReference       = "reference"
	ColFirstOccurrence = "first_occurrence"
	ColOrigin          = "origin"
	ColPathway         = "pathway"
	ColPathwayMapping  = "pathway_mapping"
	ColSalinityZone    = "salinity_zone"
)

// SourceColumns is every column the checklist spreadsheet is expected to
// carry. A missing column is an input-shape violation and aborts the run.
var SourceColumns = []string{
	ColSpecies,
	ColPhylum,
	ColOrder,
	ColFamily,
	ColReference,
	ColFirstOccurrence,
	ColOrigin,
	ColPathway,
	ColPathwayMapping,
	ColSalinityZone,
}

// Reference lookup table columns (tab-delimited).
const (
	RefColCitation      = "citation"
	RefColFullReference = "full_reference"
)

// Output table names. These double as the base file names for the CSV writer
// and the table names for the database sinks.
const (
	TableTaxon          = "taxon"
	TableDistribution   = "distribution"
	TableSpeciesProfile = "speciesprofile"
	TableDescription    = "description"
)

// TaxonColumns is the Darwin Core taxon core schema.
var TaxonColumns = []string{
	"taxonID",
	"language",
	"license",
	"rightsHolder",
	"datasetID",
	"datasetName",
	"scientificName",
	"kingdom",
	"phylum",
	"order",
	"family",
	"taxonRank",
	"nomenclaturalCode",
}

// DistributionColumns is the distribution extension schema.
var DistributionColumns = []string{
	"taxonID",
	"locationID",
	"locality",
	"countryCode",
	"occurrenceStatus",
	"establishmentMeans",
	"eventDate",
	"source",
}

// SpeciesProfileColumns is the species profile extension schema.
var SpeciesProfileColumns = []string{
	"taxonID",
	"isMarine",
	"isFreshwater",
	"isTerrestrial",
}

// DescriptionColumns is the taxon description extension schema.
var DescriptionColumns = []string{
	"taxonID",
	"description",
	"type",
	"source",
	"language",
}

// Descriptor type tags used in the description table.
const (
	DescriptorNativeRange   = "native range"
	DescriptorPathway       = "pathway"
	DescriptorInvasionStage = "invasion stage"
)

// MissingColumns returns the source columns absent from headers, in
// SourceColumns order.
func MissingColumns(headers []string) []string {
	have := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		have[h] = struct{}{}
	}
	var missing []string
	for _, c := range SourceColumns {
		if _, ok := have[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}
