// Package assets serves the pre-stored sample images of the mock tier.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/fhuszti/captions-ms-go/internal/port"
)

var ErrSampleNotFound = errors.New("assets: sample not found")

//go:embed samples/*.jpeg
var bundledFS embed.FS

type Samples struct {
	fsys fs.FS
}

// compile-time check: *Samples must satisfy port.SampleAssets
var _ port.SampleAssets = (*Samples)(nil)

// NewSamples serves samples from fsys.
func NewSamples(fsys fs.FS) *Samples {
	return &Samples{fsys: fsys}
}

// NewDefaultSamples serves the samples bundled with the binary.
func NewDefaultSamples() *Samples {
	sub, err := fs.Sub(bundledFS, "samples")
	if err != nil {
		panic(fmt.Sprintf("assets: bundled samples: %v", err))
	}
	return NewSamples(sub)
}

// NewDirSamples serves samples from a directory on disk.
func NewDirSamples(dir string) *Samples {
	return NewSamples(os.DirFS(dir))
}

func (s *Samples) Open(name string) ([]byte, error) {
	clean := path.Clean(name)
	if !fs.ValidPath(clean) || clean == "." {
		return nil, fmt.Errorf("%w: invalid name %q", ErrSampleNotFound, name)
	}
	data, err := fs.ReadFile(s.fsys, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrSampleNotFound, name)
		}
		return nil, fmt.Errorf("reading sample %q: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %q is empty", ErrSampleNotFound, name)
	}
	return data, nil
}

// Missing returns the names that cannot be opened.
func (s *Samples) Missing(names ...string) []string {
	var out []string
	for _, name := range names {
		if _, err := s.Open(name); err != nil {
			out = append(out, name)
		}
	}
	return out
}
