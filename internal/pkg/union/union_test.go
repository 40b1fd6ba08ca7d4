package union_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marijncv/pants/internal/pkg/target"
	"github.com/marijncv/pants/internal/pkg/union"
)

const exportableTool = union.Capability("export.ExportableTool")

type tool struct {
	name string
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	r := union.NewRegistry()

	shellcheck := &tool{name: "shellcheck"}
	shfmt := &tool{name: "shfmt"}

	require.NoError(t, r.Add(union.Rule{Capability: exportableTool, Member: shellcheck}))
	require.NoError(t, r.Add(union.Rule{Capability: exportableTool, Member: shfmt}))

	// Registration order is preserved.
	assert.Equal(t, []any{shellcheck, shfmt}, r.Members(exportableTool))
	assert.True(t, r.HasMember(exportableTool, shellcheck))
	assert.False(t, r.HasMember(exportableTool, &tool{name: "other"}))
	assert.Equal(t, []union.Capability{exportableTool}, r.Capabilities())

	// Registering the identical member twice is a no-op.
	require.NoError(t, r.Add(union.Rule{Capability: exportableTool, Member: shellcheck}))
	assert.Len(t, r.Members(exportableTool), 2)

	// Unknown capability
	assert.Empty(t, r.Members(union.Capability("unknown")))
}

func TestRegistryValidation(t *testing.T) {
	t.Parallel()
	r := union.NewRegistry()

	err := r.Add(union.Rule{Capability: "", Member: &tool{}})
	require.Error(t, err)
	assert.Equal(t, "union rule capability cannot be empty", err.Error())

	err = r.Add(union.Rule{Capability: exportableTool, Member: nil})
	require.Error(t, err)
	assert.Equal(t, `union rule member for capability "export.ExportableTool" cannot be nil`, err.Error())
}

func TestRegistryFreeze(t *testing.T) {
	t.Parallel()
	r := union.NewRegistry()
	require.NoError(t, r.Add(union.Rule{Capability: exportableTool, Member: &tool{name: "shellcheck"}}))

	r.Freeze()
	err := r.Add(union.Rule{Capability: exportableTool, Member: &tool{name: "shfmt"}})
	var frozenErr *target.FrozenRegistryError
	require.ErrorAs(t, err, &frozenErr)

	assert.Len(t, r.Members(exportableTool), 1)
}
