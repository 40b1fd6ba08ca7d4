// Package plugin implements the serial plugin load phase:
// each plugin returns a list of registration directives,
// the loader batch-applies them and freezes the registries,
// all reads after the load phase are lock-free.
package plugin

import (
	"github.com/marijncv/pants/internal/pkg/fieldset"
	"github.com/marijncv/pants/internal/pkg/generate"
	"github.com/marijncv/pants/internal/pkg/target"
	"github.com/marijncv/pants/internal/pkg/union"
)

// Plugin provides registration directives, the Rules function is called once during the load phase.
type Plugin struct {
	Name  string
	Rules func() []Registration
}

// Registration is one directive, use the constructors below.
type Registration interface {
	register(host *Host) error
}

// TargetType registers a new target type.
func TargetType(t *target.Type) Registration {
	return registerFunc(func(host *Host) error {
		return host.Targets.AddType(t)
	})
}

// Field attaches a field to an already registered target type.
func Field(typeAlias string, f target.Field) Registration {
	return registerFunc(func(host *Host) error {
		return host.Targets.AttachField(typeAlias, f)
	})
}

// FieldSet registers a rule selector.
func FieldSet(s *fieldset.FieldSet) Registration {
	return registerFunc(func(host *Host) error {
		return host.addFieldSet(s)
	})
}

// UnionRule registers a member implementation of a capability.
func UnionRule(c union.Capability, member any) Registration {
	return registerFunc(func(host *Host) error {
		return host.Unions.Add(union.Rule{Capability: c, Member: member})
	})
}

// Generator registers file-level target generation for a generator target type.
func Generator(g *generate.Generator) Registration {
	return registerFunc(func(host *Host) error {
		return host.addGenerator(g)
	})
}

type registerFunc func(host *Host) error

func (f registerFunc) register(host *Host) error {
	return f(host)
}
