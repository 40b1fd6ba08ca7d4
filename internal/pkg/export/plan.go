package export

import (
	"fmt"

	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/log"
	"github.com/marijncv/pants/internal/pkg/union"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// Plan of the "export" operation: one action per eligible subsystem.
type Plan struct {
	actions []Action
}

type Action struct {
	Tool     string
	Lockfile Lockfile
}

func (a Action) String() string {
	return fmt.Sprintf(`%s -> "%s"`, a.Tool, a.Lockfile.Dest)
}

// NewPlan plans lockfile export for the eligible subsystems.
// If the "only" filter is not empty, it selects the tools by name,
// an unknown name is an error.
func NewPlan(unions *union.Registry, only []string) (*Plan, error) {
	tools, err := Tools(unions)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]ExportableTool, len(tools))
	for _, tool := range tools {
		byName[tool.ToolName()] = tool
	}

	if len(only) > 0 {
		selected := make([]ExportableTool, 0, len(only))
		errs := errors.NewMultiError()
		for _, name := range only {
			tool, found := byName[name]
			if !found {
				errs.Append(errors.Errorf(`tool "%s" is not exportable or does not exist`, name))
				continue
			}
			selected = append(selected, tool)
		}
		if err := errs.ErrorOrNil(); err != nil {
			return nil, err
		}
		tools = selected
	}

	plan := &Plan{}
	for _, tool := range tools {
		plan.actions = append(plan.actions, Action{Tool: tool.ToolName(), Lockfile: tool.DefaultLockfile()})
	}
	return plan, nil
}

func (p *Plan) Name() string {
	return "export"
}

func (p *Plan) Empty() bool {
	return len(p.actions) == 0
}

func (p *Plan) Actions() []Action {
	return p.actions
}

func (p *Plan) Log(writer *log.LevelWriter) {
	writer.Writef(`Plan for "%s" operation:`, p.Name())
	if len(p.actions) == 0 {
		writer.WriteStringIndent(1, "no exportable tools")
		return
	}
	for _, action := range p.actions {
		writer.WriteStringIndent(1, "- "+action.String())
	}
}

// Invoke writes the lockfiles to the filesystem.
func (p *Plan) Invoke(logger log.Logger, fs filesystem.Fs) error {
	errs := errors.NewMultiError()
	for _, action := range p.actions {
		file := filesystem.NewRawFile(action.Lockfile.Dest, action.Lockfile.DefaultContent)
		file.SetDescription(fmt.Sprintf(`"%s" lockfile`, action.Tool))
		if err := fs.WriteFile(file); err != nil {
			errs.AppendWithPrefixf(err, `cannot export tool "%s"`, action.Tool)
			continue
		}
		logger.Infof(`Exported "%s" lockfile to "%s".`, action.Tool, action.Lockfile.Dest)
	}
	return errs.ErrorOrNil()
}
