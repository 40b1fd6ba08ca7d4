package localfs

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/filesystem/aferofs"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// New creates a local filesystem rooted in the basePath.
// All paths are relative to the basePath.
func New(basePath string) filesystem.Fs {
	if !filepath.IsAbs(basePath) {
		panic(errors.Errorf(`base path "%s" must be absolute`, basePath))
	}
	return aferofs.New(afero.NewBasePathFs(afero.NewOsFs(), basePath), "local", basePath)
}
