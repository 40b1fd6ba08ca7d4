package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marijncv/pants/internal/pkg/env"
)

func runCommand(t *testing.T, workingDir string, args ...string) (exitCode int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(""), &out, &errOut, env.Empty(), workingDir)
	cmd.SetArgs(args)
	return cmd.Execute(), out.String(), errOut.String()
}

func TestTargetsCommand(t *testing.T) {
	t.Parallel()

	exitCode, stdout, stderr := runCommand(t, t.TempDir(), "targets")
	assert.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, "shell_source")
	assert.Contains(t, stdout, "shell_sources")
	assert.Contains(t, stdout, `Deprecated alias "shell_library", to be removed in version 2.9.0.`)
	assert.Contains(t, stdout, "source (singleSource, required)")
	assert.Contains(t, stdout, "timeout (int, default 30)")
}

func TestExportDryRun(t *testing.T) {
	t.Parallel()
	workingDir := t.TempDir()

	exitCode, stdout, stderr := runCommand(t, workingDir, "export", "--dry-run")
	assert.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, `Plan for "export" operation:`)
	assert.Contains(t, stdout, `shellcheck -> "locks/shellcheck.lock"`)
	assert.Contains(t, stdout, `shfmt -> "locks/shfmt.lock"`)
	assert.Contains(t, stdout, "Dry run, nothing exported.")
	assert.NoFileExists(t, filepath.Join(workingDir, "locks", "shellcheck.lock"))
}

func TestExportOnly(t *testing.T) {
	t.Parallel()
	workingDir := t.TempDir()

	exitCode, stdout, stderr := runCommand(t, workingDir, "export", "--only", "shellcheck")
	assert.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, `Exported "shellcheck" lockfile to "locks/shellcheck.lock".`)
	assert.NotContains(t, stdout, "shfmt")

	content, err := os.ReadFile(filepath.Join(workingDir, "locks", "shellcheck.lock"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "tool: shellcheck")
}

func TestExportUnknownTool(t *testing.T) {
	t.Parallel()

	exitCode, _, stderr := runCommand(t, t.TempDir(), "export", "--only", "pylint")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, `Error: tool "pylint" is not exportable or does not exist`)
}

func TestGenerateCommand(t *testing.T) {
	t.Parallel()
	workingDir := t.TempDir()
	writeScripts(t, workingDir)

	exitCode, stdout, stderr := runCommand(t, workingDir, "generate", "shell_sources", "scripts")
	assert.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stdout, `Generated 2 "shell_source" targets:`)
	assert.Contains(t, stdout, "scripts:deploy.sh")
	assert.Contains(t, stdout, "scripts:lib.sh")
	assert.NotContains(t, stdout, "lib_test.sh")
}

func TestGenerateDeprecatedAlias(t *testing.T) {
	t.Parallel()
	workingDir := t.TempDir()
	writeScripts(t, workingDir)

	exitCode, stdout, stderr := runCommand(t, workingDir, "generate", "shell_library", "scripts")
	assert.Equal(t, 0, exitCode, stderr)
	assert.Contains(t, stderr, `Target type alias "shell_library" is deprecated, use "shell_sources" instead, the alias will be removed in version 2.9.0.`)
	assert.Contains(t, stdout, "scripts:deploy.sh")
}

func TestGenerateUnknownType(t *testing.T) {
	t.Parallel()

	exitCode, _, stderr := runCommand(t, t.TempDir(), "generate", "nope")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, `Error: target type "nope" is not registered`)
}

func TestGenerateNotAGenerator(t *testing.T) {
	t.Parallel()

	exitCode, _, stderr := runCommand(t, t.TempDir(), "generate", "shell_source")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, `Error: target type "shell_source" does not generate file-level targets`)
}

func writeScripts(t *testing.T, workingDir string) {
	t.Helper()
	dir := filepath.Join(workingDir, "scripts")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range []string{"deploy.sh", "lib.sh", "lib_test.sh"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o644))
	}
}
