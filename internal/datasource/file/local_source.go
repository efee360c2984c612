// Package file reads pipeline inputs from the local filesystem.
package file

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Local opens one file path per call to Open.
type Local struct{ path string }

func NewLocal(path string) *Local { return &Local{path: path} }

// Open returns the file for reading. A context already canceled at call time
// short-circuits without touching the filesystem; os.ErrNotExist stays
// visible through errors.Is on the wrapped error.
func (l *Local) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	return f, nil
}
