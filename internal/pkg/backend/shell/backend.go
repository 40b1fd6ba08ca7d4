// Package shell provides the shell backend: target types for shell
// sources, shunit2 tests and ad-hoc shell commands, the shellcheck and
// shfmt rules with per-target opt-out fields, and target generation
// from source globs.
package shell

import (
	"github.com/marijncv/pants/internal/pkg/export"
	"github.com/marijncv/pants/internal/pkg/fieldset"
	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/generate"
	"github.com/marijncv/pants/internal/pkg/plugin"
	"github.com/marijncv/pants/internal/pkg/target"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

const (
	// DefaultCommandTimeout limits an adhoc shell command run, in seconds.
	DefaultCommandTimeout = 30
	// ShellSourcesAlias and the other aliases are the target type names used in build files.
	ShellSourcesAlias      = "shell_sources"
	ShellSourceAlias       = "shell_source"
	Shunit2TestsAlias      = "shunit2_tests"
	Shunit2TestAlias       = "shunit2_test"
	ShellCommandAlias      = "shell_command"
	RunShellCommandAlias   = "run_shell_command"
	deprecatedLibraryAlias = "shell_library"
	// libraryAliasRemovalIn is the release that drops the deprecated "shell_library" alias.
	libraryAliasRemovalIn = "2.9.0"
)

// defaultTestPatterns match shunit2 test files, shell_sources excludes them by default.
var defaultTestPatterns = []string{"*_test.sh", "test_*.sh", "tests.sh"} //nolint:gochecknoglobals

// Backend bundles the shell target types, their fields, the lint subsystems
// and the plugins registering all of them.
type Backend struct {
	// Fields shared by the file-level target types.
	Source       *target.SingleSourceField
	Sources      *target.MultipleSourcesField
	TestSources  *target.MultipleSourcesField
	Dependencies *target.StringSequenceField

	// Test execution fields.
	TestTimeout *target.IntField
	TestShell   *target.StringField

	// Adhoc command fields.
	Command        *target.StringField
	Tools          *target.StringSequenceField
	Outputs        *target.StringSequenceField
	CommandTimeout *target.IntField
	LogOutput      *target.BoolField
	Workdir        *target.StringField

	// Lint opt-out fields, attached to the shell file targets during the plugin load.
	SkipShellcheck *target.BoolField
	SkipShfmt      *target.BoolField

	SourceTarget     *target.Type
	SourcesTarget    *target.Type
	TestTarget       *target.Type
	TestsTarget      *target.Type
	CommandTarget    *target.Type
	RunCommandTarget *target.Type

	Shellcheck *Shellcheck
	Shfmt      *Shfmt

	ShellcheckFieldSet *fieldset.FieldSet
	ShfmtFieldSet      *fieldset.FieldSet
}

func NewBackend() *Backend {
	b := &Backend{}

	b.Source = target.NewSingleSourceField("source", "Path of the shell file, relative to the target directory.")
	b.Sources = target.NewMultipleSourcesField("sources", "Glob patterns matching the shell files, a \"!\" prefix excludes a pattern.").
		WithDefault(sourcesDefault()...)
	b.TestSources = target.NewMultipleSourcesField("sources", "Glob patterns matching the shunit2 test files.").
		WithDefault(defaultTestPatterns...)
	b.Dependencies = target.NewStringSequenceField("dependencies", "Addresses of the targets this target depends on.")

	b.TestTimeout = target.NewIntField("timeout", "Limit of the test run, in seconds.").WithMin(1)
	b.TestShell = target.NewStringField("shell", "Shell used to run the test, detected from the shebang line if unset.").
		WithChoices(Shells()...)

	b.Command = target.NewStringField("command", "Shell command to run.").Required()
	b.Tools = target.NewStringSequenceField("tools", "Names of the executables the command needs on PATH.").Required()
	b.Outputs = target.NewStringSequenceField("outputs", "Paths of the files the command creates, relative to the working directory.")
	b.CommandTimeout = target.NewIntField("timeout", "Limit of the command run, in seconds.").
		WithDefault(DefaultCommandTimeout).
		WithMin(1)
	b.LogOutput = target.NewBoolField("log_output", false, "Log the command output to the console.")
	b.Workdir = target.NewStringField("workdir", "Working directory of the command, relative to the build root.").
		WithDefault(".")

	b.SkipShellcheck = target.NewBoolField("skip_shellcheck", false, "If true, do not run shellcheck on this target's code.")
	b.SkipShfmt = target.NewBoolField("skip_shfmt", false, "If true, do not run shfmt on this target's code.")

	b.SourceTarget = target.NewType(ShellSourceAlias, "A single shell file.", b.Source, b.Dependencies)
	b.SourcesTarget = target.NewType(ShellSourcesAlias, "Generates a shell_source target per matched file.", b.Sources, b.Dependencies).
		WithDeprecatedAlias(deprecatedLibraryAlias, libraryAliasRemovalIn)
	b.TestTarget = target.NewType(Shunit2TestAlias, "A single shunit2 test file.", b.Source, b.Dependencies, b.TestTimeout, b.TestShell)
	b.TestsTarget = target.NewType(Shunit2TestsAlias, "Generates a shunit2_test target per matched file.", b.TestSources, b.Dependencies, b.TestTimeout, b.TestShell)
	b.CommandTarget = target.NewType(ShellCommandAlias, "Runs a shell command and captures its outputs.", b.Command, b.Tools, b.Outputs, b.CommandTimeout, b.LogOutput, b.Dependencies)
	b.RunCommandTarget = target.NewType(RunShellCommandAlias, "Runs a shell command in the workspace.", b.Command, b.Workdir, b.Dependencies)

	b.Shellcheck = NewShellcheck()
	b.Shfmt = NewShfmt()

	b.ShellcheckFieldSet = fieldset.New("shellcheck", b.Source, b.SkipShellcheck).
		WithOptOutField(b.SkipShellcheck)
	b.ShfmtFieldSet = fieldset.New("shfmt", b.Source, b.SkipShfmt).
		WithOptOutField(b.SkipShfmt)

	return b
}

// sourcesDefault matches all shell files except the shunit2 test files.
func sourcesDefault() []string {
	out := []string{"*.sh"}
	for _, pattern := range defaultTestPatterns {
		out = append(out, "!"+pattern)
	}
	return out
}

// Plugins returns the shell backend plugins in the load order,
// the lint plugin attaches fields to the target types of the base plugin.
func (b *Backend) Plugins() []plugin.Plugin {
	return []plugin.Plugin{b.basePlugin(), b.lintPlugin()}
}

func (b *Backend) basePlugin() plugin.Plugin {
	return plugin.Plugin{Name: "shell", Rules: func() []plugin.Registration {
		return []plugin.Registration{
			plugin.TargetType(b.SourceTarget),
			plugin.TargetType(b.SourcesTarget),
			plugin.TargetType(b.TestTarget),
			plugin.TargetType(b.TestsTarget),
			plugin.TargetType(b.CommandTarget),
			plugin.TargetType(b.RunCommandTarget),
			plugin.Generator(&generate.Generator{
				From:    b.SourcesTarget,
				To:      b.SourceTarget,
				Sources: b.Sources,
				Source:  b.Source,
			}),
			plugin.Generator(&generate.Generator{
				From:    b.TestsTarget,
				To:      b.TestTarget,
				Sources: b.TestSources,
				Source:  b.Source,
			}),
		}
	}}
}

func (b *Backend) lintPlugin() plugin.Plugin {
	return plugin.Plugin{Name: "shell-lint", Rules: func() []plugin.Registration {
		var out []plugin.Registration
		for _, alias := range []string{ShellSourceAlias, ShellSourcesAlias, Shunit2TestAlias, Shunit2TestsAlias} {
			out = append(out,
				plugin.Field(alias, b.SkipShellcheck),
				plugin.Field(alias, b.SkipShfmt),
			)
		}
		return append(out,
			plugin.FieldSet(b.ShellcheckFieldSet),
			plugin.FieldSet(b.ShfmtFieldSet),
			plugin.UnionRule(export.Capability, b.Shellcheck),
			plugin.UnionRule(export.Capability, b.Shfmt),
		)
	}}
}

// ResolveTestShell returns the shell of a shunit2 test,
// an explicitly set "shell" field wins over the shebang of the source file.
func (b *Backend) ResolveTestShell(fs filesystem.Fs, instance *target.Instance) (Shell, error) {
	if value, found, err := b.TestShell.Get(instance); err != nil {
		return "", err
	} else if found {
		return Shell(value), nil
	}

	path, found, err := b.Source.Get(instance)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.Errorf(`cannot determine shell of the test "%s": the source file is not set`, instance.Address().String())
	}

	file, err := fs.ReadFile(filesystem.NewFileDef(filesystem.Join(instance.Address().Path(), path)).SetDescription("test source"))
	if err != nil {
		return "", err
	}
	if shell, found := ParseShebang(file.Content); found {
		return shell, nil
	}
	return "", errors.Errorf(`cannot determine shell of the test "%s": set the "shell" field or add a shebang line`, instance.Address().String())
}
