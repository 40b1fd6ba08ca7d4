package target

import (
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

type Kind string

const (
	KindBool            Kind = "bool"
	KindInt             Kind = "int"
	KindString          Kind = "string"
	KindStringSequence  Kind = "stringSequence"
	KindSingleSource    Kind = "singleSource"
	KindMultipleSources Kind = "multipleSources"
)

// Field is a named, typed attribute attachable to a target type.
// A definition is immutable once declared, it lives for the process lifetime.
type Field interface {
	Alias() string
	Help() string
	Kind() Kind
	// DefaultValue returns the declared default, nil if the field has no default.
	DefaultValue() any
	// ComputeValue validates and normalizes the raw configured value.
	// A nil raw value means the field is unset, then the default is returned.
	ComputeValue(raw any, address Address) (any, error)
	// Required fields must be explicitly set on each target instance.
	IsRequired() bool
}

type fieldBase struct {
	alias    string
	help     string
	required bool
}

func newFieldBase(alias, help string) fieldBase {
	if alias == "" {
		panic(errors.New("field alias cannot be empty"))
	}
	return fieldBase{alias: alias, help: help}
}

func (f fieldBase) Alias() string {
	return f.alias
}

func (f fieldBase) Help() string {
	return f.help
}

func (f fieldBase) IsRequired() bool {
	return f.required
}
