package memoryfs

import (
	"github.com/spf13/afero"

	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/filesystem/aferofs"
)

// New creates an in-memory filesystem, for use in tests.
func New() filesystem.Fs {
	return aferofs.New(afero.NewMemMapFs(), "memory", "__memory__")
}
