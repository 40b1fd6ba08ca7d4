// Package export implements the export eligibility of subsystems:
// a subsystem registered under the ExportableTool capability
// can be exported with its default lockfile.
package export

import (
	"github.com/marijncv/pants/internal/pkg/union"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// Capability under which exportable subsystems are registered by a union rule.
const Capability = union.Capability("export.ExportableTool")

// Lockfile describes the exported lockfile of a subsystem.
type Lockfile struct {
	// Dest is a path, relative to the export root, where the lockfile is written.
	Dest string
	// DefaultContent is the content of the packaged default lockfile,
	// used until the host resolves the subsystem's dependencies itself.
	DefaultContent string
}

// ExportableTool marks a subsystem whose resolved dependencies can be exported as a lockfile.
type ExportableTool interface {
	ToolName() string
	DefaultLockfile() Lockfile
}

// Tools returns all exportable subsystems from the union membership, in the registration order.
// A member registered under the capability without implementing it is a plugin authoring error.
func Tools(unions *union.Registry) ([]ExportableTool, error) {
	errs := errors.NewMultiError()
	members := unions.Members(Capability)
	out := make([]ExportableTool, 0, len(members))
	for _, member := range members {
		tool, ok := member.(ExportableTool)
		if !ok {
			errs.Append(errors.Errorf(`member "%T" of the "%s" union does not implement ExportableTool`, member, Capability))
			continue
		}
		out = append(out, tool)
	}
	return out, errs.ErrorOrNil()
}
