package target

import (
	"sort"

	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// Instance is a configured target from a build file.
// Values are validated at construction, reads are lock-free and side-effect free.
type Instance struct {
	typ     *Type
	address Address
	values  *orderedmap.OrderedMap // field alias -> computed value, only explicitly set fields
}

// NewInstance validates the raw values against the type's fields and creates the instance.
// All invalid values are collected to one error.
func NewInstance(typ *Type, address Address, raw map[string]any) (*Instance, error) {
	instance := &Instance{typ: typ, address: address, values: orderedmap.New()}
	errs := errors.NewMultiError()

	// Unknown keys are configuration errors, report them in a stable order.
	var unknown []string
	for alias := range raw {
		if _, found := typ.Field(alias); !found {
			unknown = append(unknown, alias)
		}
	}
	sort.Strings(unknown)
	for _, alias := range unknown {
		errs.Append(&InvalidFieldError{FieldAlias: alias, Address: address, Message: "field is not registered on the target type"})
	}

	// Compute values in the field declaration order.
	for _, field := range typ.Fields() {
		rawValue, set := raw[field.Alias()]
		if !set {
			if field.IsRequired() {
				errs.Append(&InvalidFieldError{FieldAlias: field.Alias(), Address: address, Message: "field is required"})
			}
			continue
		}
		value, err := field.ComputeValue(rawValue, address)
		if err != nil {
			errs.Append(err)
			continue
		}
		instance.values.Set(field.Alias(), value)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, errors.PrefixErrorf(err, `invalid target "%s"`, address.String())
	}
	return instance, nil
}

func (i *Instance) Type() *Type {
	return i.typ
}

func (i *Instance) Address() Address {
	return i.address
}

// Get returns the explicitly configured value, or the field default if unset.
// The field must be registered on the instance's type, otherwise a FieldNotRegisteredError is returned.
func (i *Instance) Get(field Field) (any, error) {
	if !i.typ.HasField(field) {
		return nil, &FieldNotRegisteredError{TypeAlias: i.typ.Alias(), FieldAlias: field.Alias()}
	}
	if value, found := i.values.Get(field.Alias()); found {
		return value, nil
	}
	return field.DefaultValue(), nil
}

// MustGet is Get, a missing field is a precondition violation and panics.
func (i *Instance) MustGet(field Field) any {
	value, err := i.Get(field)
	if err != nil {
		panic(err)
	}
	return value
}

// IsExplicit returns true if the field was explicitly set, not defaulted.
func (i *Instance) IsExplicit(field Field) bool {
	_, found := i.values.Get(field.Alias())
	return found
}

// ExplicitValues returns a copy of the explicitly set values, keyed by the field alias.
func (i *Instance) ExplicitValues() map[string]any {
	out := make(map[string]any, i.values.Len())
	for _, alias := range i.values.Keys() {
		value, _ := i.values.Get(alias)
		out[alias] = value
	}
	return out
}
