package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marijncv/pants/internal/pkg/export"
	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/filesystem/memoryfs"
	"github.com/marijncv/pants/internal/pkg/log"
	"github.com/marijncv/pants/internal/pkg/union"
)

type fakeTool struct {
	name     string
	lockfile export.Lockfile
}

func (t *fakeTool) ToolName() string {
	return t.name
}

func (t *fakeTool) DefaultLockfile() export.Lockfile {
	return t.lockfile
}

func testUnions(t *testing.T, tools ...*fakeTool) *union.Registry {
	t.Helper()
	unions := union.NewRegistry()
	for _, tool := range tools {
		require.NoError(t, unions.Add(union.Rule{Capability: export.Capability, Member: tool}))
	}
	unions.Freeze()
	return unions
}

func TestNewPlan(t *testing.T) {
	t.Parallel()
	unions := testUnions(
		t,
		&fakeTool{name: "shellcheck", lockfile: export.Lockfile{Dest: "locks/shellcheck.lock"}},
		&fakeTool{name: "shfmt", lockfile: export.Lockfile{Dest: "locks/shfmt.lock"}},
	)

	plan, err := export.NewPlan(unions, nil)
	require.NoError(t, err)
	require.Len(t, plan.Actions(), 2)
	assert.False(t, plan.Empty())
	assert.Equal(t, `shellcheck -> "locks/shellcheck.lock"`, plan.Actions()[0].String())

	logger := log.NewDebugLogger()
	plan.Log(logger.InfoWriter())
	expected := `
INFO  Plan for "export" operation:
INFO    - shellcheck -> "locks/shellcheck.lock"
INFO    - shfmt -> "locks/shfmt.lock"
`
	assert.Equal(t, expected[1:], logger.InfoMessages())
}

func TestNewPlanOnlyFilter(t *testing.T) {
	t.Parallel()
	unions := testUnions(
		t,
		&fakeTool{name: "shellcheck", lockfile: export.Lockfile{Dest: "locks/shellcheck.lock"}},
		&fakeTool{name: "shfmt", lockfile: export.Lockfile{Dest: "locks/shfmt.lock"}},
	)

	plan, err := export.NewPlan(unions, []string{"shfmt"})
	require.NoError(t, err)
	require.Len(t, plan.Actions(), 1)
	assert.Equal(t, "shfmt", plan.Actions()[0].Tool)

	_, err = export.NewPlan(unions, []string{"missing"})
	require.Error(t, err)
	assert.Equal(t, `tool "missing" is not exportable or does not exist`, err.Error())
}

func TestPlanInvoke(t *testing.T) {
	t.Parallel()
	unions := testUnions(t, &fakeTool{
		name:     "shellcheck",
		lockfile: export.Lockfile{Dest: "locks/shellcheck.lock", DefaultContent: "version: v0.10.0\n"},
	})

	plan, err := export.NewPlan(unions, nil)
	require.NoError(t, err)

	fs := memoryfs.New()
	logger := log.NewDebugLogger()
	require.NoError(t, plan.Invoke(logger, fs))

	file, err := fs.ReadFile(filesystem.NewFileDef("locks/shellcheck.lock"))
	require.NoError(t, err)
	assert.Equal(t, "version: v0.10.0\n", file.Content)
	assert.Contains(t, logger.InfoMessages(), `Exported "shellcheck" lockfile to "locks/shellcheck.lock".`)
}

func TestToolsInvalidMember(t *testing.T) {
	t.Parallel()
	unions := union.NewRegistry()
	require.NoError(t, unions.Add(union.Rule{Capability: export.Capability, Member: "not-a-tool"}))
	unions.Freeze()

	_, err := export.NewPlan(unions, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `member "string" of the "export.ExportableTool" union does not implement ExportableTool`)
}

func TestEmptyPlanLog(t *testing.T) {
	t.Parallel()
	plan, err := export.NewPlan(testUnions(t), nil)
	require.NoError(t, err)
	assert.True(t, plan.Empty())

	logger := log.NewDebugLogger()
	plan.Log(logger.InfoWriter())
	assert.Contains(t, logger.InfoMessages(), "no exportable tools")
}
