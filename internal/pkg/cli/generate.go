package cli

import (
	"github.com/spf13/cobra"

	"github.com/marijncv/pants/internal/pkg/target"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

func generateCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <type> [dir]",
		Short: "Generate file-level targets from the source globs of a generator target type.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := args[0]
			dir := ""
			if len(args) == 2 {
				dir = args[1]
			}

			typ, deprecated, found := root.host.Targets.TypeByAnyAlias(alias)
			if !found {
				return errors.Errorf(`target type "%s" is not registered`, alias)
			}
			if deprecated {
				root.logger.Warnf(
					`Target type alias "%s" is deprecated, use "%s" instead, the alias will be removed in version %s.`,
					alias, typ.Alias(), typ.DeprecatedAliasRemovalVersion().String(),
				)
			}

			generator, found := root.host.GeneratorFor(typ)
			if !found {
				return errors.Errorf(`target type "%s" does not generate file-level targets`, typ.Alias())
			}

			// Generator instance with the default source globs.
			instance, err := target.NewInstance(typ, target.NewAddress(dir, typ.Alias()), nil)
			if err != nil {
				return err
			}

			generated, err := generator.FileLevelTargets(root.fs, instance)
			if err != nil {
				return err
			}

			w := root.logger.InfoWriter()
			defer func() { _ = w.Close() }()
			w.Writef(`Generated %d "%s" targets:`, len(generated), generator.To.Alias())
			for _, g := range generated {
				w.WriteStringIndent(1, g.Address().String())
			}
			return nil
		},
	}
}
