package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marijncv/pants/internal/pkg/env"
	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/filesystem/memoryfs"
	"github.com/marijncv/pants/internal/pkg/log"
)

func TestMap(t *testing.T) {
	t.Parallel()
	m := env.Empty()

	_, found := m.Lookup("foo")
	assert.False(t, found)

	m.Set("foo", "bar")
	assert.Equal(t, "bar", m.Get("FOO"))
	assert.Equal(t, []string{"FOO=bar"}, m.ToSlice())

	m.Unset("FOO")
	_, found = m.Lookup("foo")
	assert.False(t, found)
}

func TestMapMerge(t *testing.T) {
	t.Parallel()
	m := env.FromMap(map[string]string{"A": "1", "B": "2"})
	other := env.FromMap(map[string]string{"B": "20", "C": "30"})

	m.Merge(other, false)
	assert.Equal(t, map[string]string{"A": "1", "B": "2", "C": "30"}, m.ToMap())

	m.Merge(other, true)
	assert.Equal(t, map[string]string{"A": "1", "B": "20", "C": "30"}, m.ToMap())
}

func TestLoadDotEnv(t *testing.T) {
	t.Parallel()
	fs := memoryfs.New()
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile(".env", "PANTS_VERBOSE=true\nPANTS_LOG_FILE=log.txt\n")))
	require.NoError(t, fs.WriteFile(filesystem.NewRawFile(".env.local", "PANTS_VERBOSE=false\n")))

	osEnvs := env.FromMap(map[string]string{"PANTS_LOG_FILE": "os.txt"})
	envs := env.LoadDotEnv(log.NewDebugLogger(), osEnvs, fs, []string{"."})

	// ".env.local" takes precedence over ".env", OS envs take precedence over both.
	assert.Equal(t, "false", envs.Get("PANTS_VERBOSE"))
	assert.Equal(t, "os.txt", envs.Get("PANTS_LOG_FILE"))
}
