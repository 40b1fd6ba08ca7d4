// nolint: forbidigo
package aferofs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// AferoFs implements the filesystem.Fs interface on top of an afero.Fs.
type AferoFs struct {
	fs       afero.Fs
	utils    *afero.Afero
	name     string
	basePath string
}

func New(fs afero.Fs, name, basePath string) *AferoFs {
	return &AferoFs{fs: fs, utils: &afero.Afero{Fs: fs}, name: name, basePath: basePath}
}

func (f *AferoFs) Name() string {
	return f.name
}

func (f *AferoFs) BasePath() string {
	return f.basePath
}

func (f *AferoFs) Walk(root string, walkFn filepath.WalkFunc) error {
	return f.utils.Walk(root, walkFn)
}

func (f *AferoFs) Glob(pattern string) (matches []string, err error) {
	return afero.Glob(f.fs, pattern)
}

func (f *AferoFs) Stat(path string) (os.FileInfo, error) {
	return f.fs.Stat(path)
}

func (f *AferoFs) ReadDir(path string) ([]os.FileInfo, error) {
	return f.utils.ReadDir(path)
}

func (f *AferoFs) Mkdir(path string) error {
	if err := f.fs.MkdirAll(path, 0o755); err != nil {
		return errors.Errorf(`cannot create directory "%s": %w`, path, err)
	}
	return nil
}

func (f *AferoFs) Exists(path string) bool {
	if _, err := f.fs.Stat(path); err == nil {
		return true
	}
	return false
}

func (f *AferoFs) IsFile(path string) bool {
	if s, err := f.fs.Stat(path); err == nil {
		return !s.IsDir()
	}
	return false
}

func (f *AferoFs) IsDir(path string) bool {
	if s, err := f.fs.Stat(path); err == nil {
		return s.IsDir()
	}
	return false
}

func (f *AferoFs) Open(name string) (afero.File, error) {
	return f.fs.Open(name)
}

func (f *AferoFs) Remove(path string) error {
	return f.fs.Remove(path)
}

func (f *AferoFs) ReadFile(def *filesystem.FileDef) (*filesystem.RawFile, error) {
	content, err := f.utils.ReadFile(def.Path())
	if err != nil {
		return nil, errors.Errorf(`cannot read %s: %w`, fileDesc(def), err)
	}
	file := filesystem.NewRawFile(def.Path(), string(content))
	file.SetDescription(def.Description())
	return file, nil
}

func (f *AferoFs) WriteFile(file *filesystem.RawFile) error {
	if dir := filesystem.Dir(file.Path()); dir != "." {
		if err := f.Mkdir(dir); err != nil {
			return err
		}
	}
	if err := f.utils.WriteFile(file.Path(), []byte(file.Content), 0o644); err != nil {
		return errors.Errorf(`cannot write %s: %w`, fileDesc(file.FileDef), err)
	}
	return nil
}

func fileDesc(def *filesystem.FileDef) string {
	if def.Description() == "" {
		return `file "` + def.Path() + `"`
	}
	return def.Description() + ` "` + def.Path() + `"`
}
