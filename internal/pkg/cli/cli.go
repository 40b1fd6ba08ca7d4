// Package cli implements the pants command:
// the root command loads the plugins and the sub-commands
// inspect the registries, generate targets and export lockfiles.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/marijncv/pants/internal/pkg/backend/shell"
	"github.com/marijncv/pants/internal/pkg/env"
	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/filesystem/localfs"
	"github.com/marijncv/pants/internal/pkg/log"
	"github.com/marijncv/pants/internal/pkg/plugin"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
	"github.com/marijncv/pants/internal/pkg/version"
)

type RootCommand struct {
	*cobra.Command
	logger  log.Logger
	stderr  io.Writer
	fs      filesystem.Fs
	envs    *env.Map
	host    *plugin.Host
	backend *shell.Backend
	verbose bool
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer, osEnvs *env.Map, workingDir string) *RootCommand {
	root := &RootCommand{stderr: stderr, envs: osEnvs}
	root.Command = &cobra.Command{
		Use:           "pants",
		Short:         "Build orchestration for shell projects.",
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true, // custom error handling, see printError
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.Help()
		},
	}

	// Setup in/out
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("{{.Version}}")

	// Persistent flags for all sub-commands
	root.PersistentFlags().BoolVarP(&root.verbose, "verbose", "v", false, "print details")

	// Init when flags are parsed
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		root.logger = log.NewCliLogger(stdout, stderr, root.verbose)
		root.fs = localfs.New(workingDir)

		// ENVs from working dir files take lower precedence than OS ENVs
		root.envs = env.LoadDotEnv(root.logger, osEnvs, root.fs, []string{""})

		// Plugin load phase, everything after is read-only
		root.backend = shell.NewBackend()
		host, err := plugin.Load(root.logger, root.backend.Plugins()...)
		if err != nil {
			return err
		}
		root.host = host
		return nil
	}

	// Sub-commands
	root.AddCommand(
		targetsCommand(root),
		generateCommand(root),
		exportCommand(root),
	)

	return root
}

// Execute command or sub-command.
func (root *RootCommand) Execute() (exitCode int) {
	if err := root.Command.Execute(); err != nil {
		root.printError(err)
		return 1
	}
	return 0
}

func (root *RootCommand) printError(err error) {
	if root.verbose {
		_, _ = io.WriteString(root.stderr, "Error: "+errors.FormatWithDebug(err)+"\n")
	} else {
		_, _ = io.WriteString(root.stderr, "Error: "+errors.Format(err)+"\n")
	}
}
