// Package datasource abstracts where the two input files come from. The
// checklist and reference table are usually local files, but both are also
// published online, so a pipeline config may point at an HTTP(S) URL
// instead.
package datasource

import (
	"context"
	"io"
	"strings"

	"dwcetl/internal/datasource/file"
	"dwcetl/internal/datasource/httpds"
)

// Source yields the raw bytes of one input.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// New selects the source for a path: http and https URLs are fetched
// remotely with retries, everything else is read from the local filesystem.
func New(path string) Source {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return httpds.NewRemote(path, httpds.Config{})
	}
	return file.NewLocal(path)
}
