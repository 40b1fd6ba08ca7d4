package target

import (
	"fmt"
)

// DuplicateFieldError - a field with the same alias is already registered on the target type.
type DuplicateFieldError struct {
	TypeAlias  string
	FieldAlias string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf(`field "%s" is already registered on target type "%s"`, e.FieldAlias, e.TypeAlias)
}

// DuplicateTypeError - a target type with the same alias is already registered.
type DuplicateTypeError struct {
	TypeAlias string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf(`target type "%s" is already registered`, e.TypeAlias)
}

// FieldNotRegisteredError - the field is not registered on the instance's target type.
// It is a programming error in the rule selection, the caller must check the instance by FieldSet.Applicable.
type FieldNotRegisteredError struct {
	TypeAlias  string
	FieldAlias string
}

func (e *FieldNotRegisteredError) Error() string {
	return fmt.Sprintf(`field "%s" is not registered on target type "%s"`, e.FieldAlias, e.TypeAlias)
}

// InvalidFieldError - the configured value doesn't match the field definition.
type InvalidFieldError struct {
	FieldAlias string
	Address    Address
	Message    string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf(`invalid "%s" field in target "%s": %s`, e.FieldAlias, e.Address.String(), e.Message)
}

// FrozenRegistryError - the registry can be modified only during the plugin load phase.
type FrozenRegistryError struct{}

func (e *FrozenRegistryError) Error() string {
	return "registry is frozen, registrations are allowed only during the plugin load phase"
}
