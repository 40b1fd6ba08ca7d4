// Package fieldset implements rule selectors: a FieldSet binds a rule
// to the target instances holding the required fields and decides,
// per target, whether the rule should skip it.
package fieldset

import (
	"github.com/marijncv/pants/internal/pkg/target"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// OptOutFunc decides whether a target instance is excluded from the rule's action.
// It must be a pure function of the instance's field values, without side effects or I/O,
// so it can run concurrently across many instances.
type OptOutFunc func(instance *target.Instance) bool

// FieldSet binds a rule to targets holding the required fields.
type FieldSet struct {
	name     string
	required []target.Field
	optOut   OptOutFunc
}

func New(name string, required ...target.Field) *FieldSet {
	if name == "" {
		panic(errors.New("field set name cannot be empty"))
	}
	return &FieldSet{name: name, required: required}
}

// WithOptOut sets the opt-out predicate, see OptOutBool for the common case.
func (s *FieldSet) WithOptOut(fn OptOutFunc) *FieldSet {
	s.optOut = fn
	return s
}

// WithOptOutField opts targets out by the value of a single boolean field.
func (s *FieldSet) WithOptOutField(field *target.BoolField) *FieldSet {
	return s.WithOptOut(OptOutBool(field))
}

func (s *FieldSet) Name() string {
	return s.name
}

func (s *FieldSet) RequiredFields() []target.Field {
	return s.required
}

// Applicable verifies that all required fields are registered on the instance's type.
// The rule selection must call it before OptOut, a failure is a configuration error, it is never retried.
func (s *FieldSet) Applicable(instance *target.Instance) error {
	errs := errors.NewMultiError()
	for _, field := range s.required {
		if !instance.Type().HasField(field) {
			errs.Append(&target.FieldNotRegisteredError{TypeAlias: instance.Type().Alias(), FieldAlias: field.Alias()})
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return errors.PrefixErrorf(err, `field set "%s" is not applicable to target "%s"`, s.name, instance.Address().String())
	}
	return nil
}

// OptOut returns true if the target instance should be excluded from the rule's action.
// The caller must verify the instance by Applicable first, a missing field panics.
func (s *FieldSet) OptOut(instance *target.Instance) bool {
	if s.optOut == nil {
		return false
	}
	return s.optOut(instance)
}

// OptOutBool reads the boolean field value, falling back to the field default, and returns it verbatim.
func OptOutBool(field *target.BoolField) OptOutFunc {
	return func(instance *target.Instance) bool {
		return instance.MustGet(field).(bool)
	}
}
