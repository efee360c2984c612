package dwc

import (
	"crypto/md5"
	"encoding/hex"
)

// TaxonID derives the stable, content-addressed identifier for a species
// name: "{namespace}:taxon:" + hex(md5(name)). The name is hashed verbatim,
// before any trimming, so the identifier survives cosmetic cleanups of the
// display name. Pure; identical input always yields the identical
// identifier.
func TaxonID(namespace, species string) string {
	sum := md5.Sum([]byte(species))
	return namespace + ":taxon:" + hex.EncodeToString(sum[:])
}
