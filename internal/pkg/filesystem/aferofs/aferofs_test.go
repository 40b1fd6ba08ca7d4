package aferofs_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/filesystem/memoryfs"
)

func TestReadWriteFile(t *testing.T) {
	t.Parallel()
	fs := memoryfs.New()

	require.NoError(t, fs.WriteFile(filesystem.NewRawFile("dir/file.sh", "echo hello\n")))
	assert.True(t, fs.Exists("dir/file.sh"))
	assert.True(t, fs.IsFile("dir/file.sh"))
	assert.True(t, fs.IsDir("dir"))

	file, err := fs.ReadFile(filesystem.NewFileDef("dir/file.sh"))
	require.NoError(t, err)
	assert.Equal(t, "echo hello\n", file.Content)
}

func TestReadFileNotFound(t *testing.T) {
	t.Parallel()
	fs := memoryfs.New()

	_, err := fs.ReadFile(filesystem.NewFileDef("missing.sh").SetDescription("lockfile"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cannot read lockfile "missing.sh"`)
}

func TestWalk(t *testing.T) {
	t.Parallel()
	fs := memoryfs.New()
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile("src/a.sh", "")))
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile("src/sub/b.sh", "")))

	var files []string
	require.NoError(t, fs.Walk("src", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	}))
	assert.Equal(t, []string{filesystem.Join("src", "a.sh"), filesystem.Join("src", "sub", "b.sh")}, files)
}
