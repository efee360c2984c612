package config

// Defaults returns the complete configuration for the checklist of alien
// macroinvertebrates in Flanders, Belgium. A pipeline file only needs to
// override what differs.
func Defaults() Pipeline {
	return Pipeline{
		Job: "alien-macroinvertebrates",
		Source: Source{
			Checklist:  "data/raw/checklist.csv",
			References: "data/raw/references.tsv",
		},
		Parser: Parser{
			Comma: ",",
			HeaderMap: map[string]string{
				"species":                       "species",
				"phylum":                        "phylum",
				"order":                         "order",
				"family":                        "family",
				"reference":                     "reference",
				"first_occurrence_in_flanders":  "first_occurrence",
				"origin":                        "origin",
				"pathway_of_introduction":       "pathway",
				"pathway_mapping":               "pathway_mapping",
				"salinity_zone":                 "salinity_zone",
			},
		},
		Dataset: Dataset{
			Namespace:         "alien-macroinvertebrates",
			Language:          "en",
			License:           "http://creativecommons.org/publicdomain/zero/1.0/",
			RightsHolder:      "Ghent University Aquatic Ecology",
			DatasetID:         "https://doi.org/10.15468/yxcq07",
			DatasetName:       "Checklist of alien macroinvertebrates in Flanders, Belgium",
			Kingdom:           "Animalia",
			NomenclaturalCode: "ICZN",

			LocationID:         "ISO_3166-2:BE-VLG",
			Locality:           "Flemish Region",
			CountryCode:        "BE",
			OccurrenceStatus:   "present",
			EstablishmentMeans: "introduced",

			Citation: "Boets P, Brosens D, Lock K, Adriaens T, Aelterman B, " +
				"Mertens J, Goethals PLM (2016) Alien macroinvertebrates in " +
				"Flanders (Belgium). Aquatic Invasions 11(2): 131-144. " +
				"https://doi.org/10.3391/ai.2016.11.2.03",
			InvasionStage:  "established",
			DefaultEndYear: 2016,
		},
		Vocabulary: Vocabulary{
			ReferenceCorrections: map[string]string{
				"Boets et al. (2011)": "Boets et al. (2011a)",
				"boets et al. (2011)": "Boets et al. (2011a)",
				"Messiaen et al (2010)": "Messiaen et al. (2010)",
			},
			ThisStudyMarker: "this study",
			RankCorrections: map[string]string{
				"Veneroidea":        "Venerida",
				"Architaenioglossa": "Littorinimorpha",
			},
			Subspecies: []string{
				"Cordylophora caspia caspia",
			},
			NativeRanges: map[string]string{
				"East-Asia":       "East Asia",
				"South-East Asia": "Southeast Asia",
				"North-America":   "North America",
				"South-America":   "South America",
				"Central-America": "Central America",
				"West-Africa":     "West Africa",
				"North-Africa":    "North Africa",
				"Australasia":     "Australasia",
				"Ponto-Caspian":   "Ponto-Caspian",
			},
			Pathways: map[string]string{
				"aquaculture":              "cbd_2014_pathway:escape_aquaculture",
				"aquarium trade":           "cbd_2014_pathway:escape_aquarium",
				"ornamental":               "cbd_2014_pathway:escape_ornamental",
				"shipping":                 "cbd_2014_pathway:stowaway_ship",
				"shipping: ballast water":  "cbd_2014_pathway:stowaway_ballast_water",
				"shipping: hull fouling":   "cbd_2014_pathway:stowaway_hull_fouling",
				"canals":                   "cbd_2014_pathway:corridor_water",
				"waterways":                "cbd_2014_pathway:corridor_water",
				"unintentional with fish":  "cbd_2014_pathway:contaminant_animal",
				"unknown":                  "cbd_2014_pathway:unknown",
			},
			PathwayPrefix: "cbd_2014_pathway:",
			Habitats: map[string]Habitat{
				"F":   {Marine: false, Freshwater: true, Terrestrial: false},
				"M":   {Marine: true, Freshwater: false, Terrestrial: false},
				"B":   {Marine: true, Freshwater: true, Terrestrial: false},
				"B/M": {Marine: true, Freshwater: false, Terrestrial: false},
				"F/B": {Marine: false, Freshwater: true, Terrestrial: false},
			},
			NativeRangeSeparator: ", ",
			PathwaySeparator:     " | ",
		},
		Storage: Storage{
			Kind:   "csv",
			OutDir: "data/processed",
		},
	}
}
