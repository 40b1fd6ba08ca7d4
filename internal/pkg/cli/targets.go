package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marijncv/pants/internal/pkg/target"
)

func targetsCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the registered target types and their fields.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := root.logger.InfoWriter()
			defer func() { _ = w.Close() }()

			for _, typ := range root.host.Targets.Types() {
				w.Writef("%s", typ.Alias())
				if typ.Help() != "" {
					w.WriteStringIndent(1, typ.Help())
				}
				if alias := typ.DeprecatedAlias(); alias != "" {
					w.WriteStringIndent(1, fmt.Sprintf(
						`Deprecated alias "%s", to be removed in version %s.`,
						alias, typ.DeprecatedAliasRemovalVersion().String(),
					))
				}
				for _, field := range typ.Fields() {
					w.WriteStringIndent(1, fieldLine(field))
				}
			}
			return nil
		},
	}
}

func fieldLine(field target.Field) string {
	var notes []string
	if field.IsRequired() {
		notes = append(notes, "required")
	} else if def := field.DefaultValue(); def != nil {
		notes = append(notes, fmt.Sprintf("default %v", def))
	}

	out := fmt.Sprintf("%s (%s", field.Alias(), field.Kind())
	if len(notes) > 0 {
		out += ", " + strings.Join(notes, ", ")
	}
	return out + ")"
}
