package target_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marijncv/pants/internal/pkg/target"
)

func TestInstanceDefaults(t *testing.T) {
	t.Parallel()
	skip := target.NewBoolField("skip_fortran_lint", false, "")
	typ := target.NewType("fortran_sources", "", skip)
	address := target.NewAddress("src/fortran", "lib")

	// Unset field returns the default.
	unset, err := target.NewInstance(typ, address, nil)
	require.NoError(t, err)
	value, err := skip.Get(unset)
	require.NoError(t, err)
	assert.False(t, value)
	assert.False(t, unset.IsExplicit(skip))

	// Explicitly set value wins over the default.
	set, err := target.NewInstance(typ, address, map[string]any{"skip_fortran_lint": true})
	require.NoError(t, err)
	value, err = skip.Get(set)
	require.NoError(t, err)
	assert.True(t, value)
	assert.True(t, set.IsExplicit(skip))

	// The first instance is not affected.
	value, err = skip.Get(unset)
	require.NoError(t, err)
	assert.False(t, value)
}

func TestInstanceUnknownField(t *testing.T) {
	t.Parallel()
	typ := target.NewType("fortran_sources", "")
	_, err := target.NewInstance(typ, target.NewAddress("src", ""), map[string]any{"unknown": 123})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid target "src"`)
	assert.Contains(t, err.Error(), `invalid "unknown" field in target "src": field is not registered on the target type`)
}

func TestInstanceFieldNotRegistered(t *testing.T) {
	t.Parallel()
	typ := target.NewType("fortran_sources", "")
	instance, err := target.NewInstance(typ, target.NewAddress("src", ""), nil)
	require.NoError(t, err)

	other := target.NewBoolField("skip", false, "")
	_, err = instance.Get(other)
	require.Error(t, err)
	var notRegistered *target.FieldNotRegisteredError
	require.ErrorAs(t, err, &notRegistered)
	assert.Equal(t, `field "skip" is not registered on target type "fortran_sources"`, err.Error())

	assert.PanicsWithError(t, err.Error(), func() {
		instance.MustGet(other)
	})
}

func TestInstanceIntFieldValidation(t *testing.T) {
	t.Parallel()
	timeout := target.NewIntField("timeout", "A timeout (in seconds).").WithMin(1)
	typ := target.NewType("shunit2_test", "", timeout)
	address := target.NewAddress("src/sh", "tests")

	// Unset, no default
	instance, err := target.NewInstance(typ, address, nil)
	require.NoError(t, err)
	_, set, err := timeout.Get(instance)
	require.NoError(t, err)
	assert.False(t, set)

	// Valid value
	instance, err = target.NewInstance(typ, address, map[string]any{"timeout": 30})
	require.NoError(t, err)
	value, set, err := timeout.Get(instance)
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, 30, value)

	// Value below the minimum
	_, err = target.NewInstance(typ, address, map[string]any{"timeout": 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid "timeout" field in target "src/sh:tests": value must be >= 1, but was 0`)

	// Not an integer
	_, err = target.NewInstance(typ, address, map[string]any{"timeout": "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `expected an integer, found "abc"`)
}

func TestInstanceStringFieldChoices(t *testing.T) {
	t.Parallel()
	shell := target.NewStringField("shell", "Which shell to run the tests with.").WithChoices("sh", "bash", "zsh")
	typ := target.NewType("shunit2_test", "", shell)
	address := target.NewAddress("src/sh", "tests")

	instance, err := target.NewInstance(typ, address, map[string]any{"shell": "bash"})
	require.NoError(t, err)
	value, set, err := shell.Get(instance)
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, "bash", value)

	_, err = target.NewInstance(typ, address, map[string]any{"shell": "fish"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value "fish" is not valid, use one of: sh, bash, zsh`)
}

func TestInstanceRequiredField(t *testing.T) {
	t.Parallel()
	command := target.NewStringField("command", "Shell command to execute.").Required()
	typ := target.NewType("shell_command", "", command)

	_, err := target.NewInstance(typ, target.NewAddress("src", "cmd"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid "command" field in target "src:cmd": field is required`)
}

func TestInstanceMultipleErrors(t *testing.T) {
	t.Parallel()
	timeout := target.NewIntField("timeout", "").WithMin(1)
	shell := target.NewStringField("shell", "").WithChoices("sh", "bash")
	typ := target.NewType("shunit2_test", "", timeout, shell)

	_, err := target.NewInstance(typ, target.NewAddress("src/sh", "tests"), map[string]any{
		"timeout": -5,
		"shell":   "fish",
	})
	require.Error(t, err)
	expected := `
invalid target "src/sh:tests":
- invalid "timeout" field in target "src/sh:tests": value must be >= 1, but was -5
- invalid "shell" field in target "src/sh:tests": value "fish" is not valid, use one of: sh, bash
`
	assert.Equal(t, expected[1:len(expected)-1], err.Error())
}
