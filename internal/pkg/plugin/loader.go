package plugin

import (
	"github.com/marijncv/pants/internal/pkg/fieldset"
	"github.com/marijncv/pants/internal/pkg/generate"
	"github.com/marijncv/pants/internal/pkg/log"
	"github.com/marijncv/pants/internal/pkg/target"
	"github.com/marijncv/pants/internal/pkg/union"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// Host holds all registries filled during the plugin load phase.
type Host struct {
	Targets        *target.Registry
	Unions         *union.Registry
	fieldSetByName map[string]*fieldset.FieldSet
	fieldSets      []*fieldset.FieldSet
	generators     []*generate.Generator
}

// Load applies registrations of all plugins in order and freezes the registries.
// All registration errors are collected, a failed plugin rejects the whole load.
func Load(logger log.Logger, plugins ...Plugin) (*Host, error) {
	host := &Host{
		Targets:        target.NewRegistry(),
		Unions:         union.NewRegistry(),
		fieldSetByName: make(map[string]*fieldset.FieldSet),
	}

	errs := errors.NewMultiError()
	for _, p := range plugins {
		if p.Name == "" {
			errs.Append(errors.New("plugin name cannot be empty"))
			continue
		}
		if p.Rules == nil {
			errs.AppendWithPrefixf(errors.New("no rules"), `cannot load plugin "%s"`, p.Name)
			continue
		}

		logger.Debugf(`Loading plugin "%s"`, p.Name)
		pluginErrs := errors.NewMultiError()
		for _, registration := range p.Rules() {
			pluginErrs.Append(registration.register(host))
		}
		if err := pluginErrs.ErrorOrNil(); err != nil {
			errs.AppendWithPrefixf(err, `cannot load plugin "%s"`, p.Name)
		}
	}

	// Registries are frozen even if the load failed, the host rejects the plugins either way.
	host.Targets.Freeze()
	host.Unions.Freeze()

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	logger.Debugf("Loaded %d plugins", len(plugins))
	return host, nil
}

// FieldSets returns all registered rule selectors in the registration order.
func (h *Host) FieldSets() []*fieldset.FieldSet {
	return h.fieldSets
}

// FieldSet returns the rule selector by the rule name.
func (h *Host) FieldSet(name string) (*fieldset.FieldSet, bool) {
	s, found := h.fieldSetByName[name]
	return s, found
}

// Generators returns all registered target generators in the registration order.
func (h *Host) Generators() []*generate.Generator {
	return h.generators
}

// GeneratorFor returns the generator registered for the generator target type.
func (h *Host) GeneratorFor(typ *target.Type) (*generate.Generator, bool) {
	for _, g := range h.generators {
		if g.From == typ {
			return g, true
		}
	}
	return nil, false
}

func (h *Host) addFieldSet(s *fieldset.FieldSet) error {
	if _, found := h.fieldSetByName[s.Name()]; found {
		return errors.Errorf(`field set "%s" is already registered`, s.Name())
	}
	h.fieldSetByName[s.Name()] = s
	h.fieldSets = append(h.fieldSets, s)
	return nil
}

func (h *Host) addGenerator(g *generate.Generator) error {
	if g.From == nil || g.To == nil || g.Sources == nil || g.Source == nil {
		return errors.New("generator registration is incomplete")
	}
	if _, found := h.GeneratorFor(g.From); found {
		return errors.Errorf(`generator for target type "%s" is already registered`, g.From.Alias())
	}
	h.generators = append(h.generators, g)
	return nil
}
