package target

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// BoolField is a boolean flag with a default, for example an opt-out field of a lint rule.
type BoolField struct {
	fieldBase
	def bool
}

func NewBoolField(alias string, def bool, help string) *BoolField {
	return &BoolField{fieldBase: newFieldBase(alias, help), def: def}
}

func (f *BoolField) Kind() Kind {
	return KindBool
}

func (f *BoolField) DefaultValue() any {
	return f.def
}

func (f *BoolField) ComputeValue(raw any, address Address) (any, error) {
	if raw == nil {
		return f.def, nil
	}
	v, err := cast.ToBoolE(raw)
	if err != nil {
		return nil, &InvalidFieldError{FieldAlias: f.alias, Address: address, Message: fmt.Sprintf(`expected a boolean, found "%v"`, raw)}
	}
	return v, nil
}

// Get returns the configured value, or the default if the field is unset.
func (f *BoolField) Get(instance *Instance) (bool, error) {
	v, err := instance.Get(f)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// IntField is an integer attribute, optionally with a minimal allowed value.
type IntField struct {
	fieldBase
	def *int
	min *int
}

func NewIntField(alias, help string) *IntField {
	return &IntField{fieldBase: newFieldBase(alias, help)}
}

func (f *IntField) WithDefault(v int) *IntField {
	f.def = &v
	return f
}

func (f *IntField) WithMin(v int) *IntField {
	f.min = &v
	return f
}

func (f *IntField) Kind() Kind {
	return KindInt
}

func (f *IntField) DefaultValue() any {
	if f.def == nil {
		return nil
	}
	return *f.def
}

func (f *IntField) ComputeValue(raw any, address Address) (any, error) {
	if raw == nil {
		return f.DefaultValue(), nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return nil, &InvalidFieldError{FieldAlias: f.alias, Address: address, Message: fmt.Sprintf(`expected an integer, found "%v"`, raw)}
	}
	if f.min != nil && v < *f.min {
		return nil, &InvalidFieldError{FieldAlias: f.alias, Address: address, Message: fmt.Sprintf(`value must be >= %d, but was %d`, *f.min, v)}
	}
	return v, nil
}

// Get returns the configured value, or the default. The second result is false if the field is unset and has no default.
func (f *IntField) Get(instance *Instance) (int, bool, error) {
	v, err := instance.Get(f)
	if err != nil {
		return 0, false, err
	}
	if v == nil {
		return 0, false, nil
	}
	return v.(int), true, nil
}

// StringField is a string attribute, optionally restricted to a list of valid choices.
type StringField struct {
	fieldBase
	def     *string
	choices []string
}

func NewStringField(alias, help string) *StringField {
	return &StringField{fieldBase: newFieldBase(alias, help)}
}

func (f *StringField) WithDefault(v string) *StringField {
	f.def = &v
	return f
}

func (f *StringField) WithChoices(choices ...string) *StringField {
	f.choices = choices
	return f
}

func (f *StringField) Required() *StringField {
	f.required = true
	return f
}

func (f *StringField) Kind() Kind {
	return KindString
}

func (f *StringField) DefaultValue() any {
	if f.def == nil {
		return nil
	}
	return *f.def
}

func (f *StringField) ComputeValue(raw any, address Address) (any, error) {
	if raw == nil {
		return f.DefaultValue(), nil
	}
	v, err := cast.ToStringE(raw)
	if err != nil {
		return nil, &InvalidFieldError{FieldAlias: f.alias, Address: address, Message: fmt.Sprintf(`expected a string, found "%v"`, raw)}
	}
	if len(f.choices) > 0 && !contains(f.choices, v) {
		return nil, &InvalidFieldError{
			FieldAlias: f.alias,
			Address:    address,
			Message:    fmt.Sprintf(`value "%s" is not valid, use one of: %s`, v, strings.Join(f.choices, ", ")),
		}
	}
	return v, nil
}

// Get returns the configured value, or the default. The second result is false if the field is unset and has no default.
func (f *StringField) Get(instance *Instance) (string, bool, error) {
	v, err := instance.Get(f)
	if err != nil {
		return "", false, err
	}
	if v == nil {
		return "", false, nil
	}
	return v.(string), true, nil
}

// StringSequenceField is a list of strings, for example dependencies or required tools.
type StringSequenceField struct {
	fieldBase
	def []string
}

func NewStringSequenceField(alias, help string) *StringSequenceField {
	return &StringSequenceField{fieldBase: newFieldBase(alias, help)}
}

func (f *StringSequenceField) WithDefault(v ...string) *StringSequenceField {
	f.def = v
	return f
}

func (f *StringSequenceField) Required() *StringSequenceField {
	f.required = true
	return f
}

func (f *StringSequenceField) Kind() Kind {
	return KindStringSequence
}

func (f *StringSequenceField) DefaultValue() any {
	if f.def == nil {
		return nil
	}
	return append([]string(nil), f.def...)
}

func (f *StringSequenceField) ComputeValue(raw any, address Address) (any, error) {
	if raw == nil {
		return f.DefaultValue(), nil
	}
	v, err := cast.ToStringSliceE(raw)
	if err != nil {
		return nil, &InvalidFieldError{FieldAlias: f.alias, Address: address, Message: fmt.Sprintf(`expected a list of strings, found "%v"`, raw)}
	}
	return v, nil
}

func (f *StringSequenceField) Get(instance *Instance) ([]string, error) {
	v, err := instance.Get(f)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return v.([]string), nil
}

// SingleSourceField holds a path of one source file, relative to the target directory.
type SingleSourceField struct {
	fieldBase
}

func NewSingleSourceField(alias, help string) *SingleSourceField {
	base := newFieldBase(alias, help)
	base.required = true
	return &SingleSourceField{fieldBase: base}
}

func (f *SingleSourceField) Kind() Kind {
	return KindSingleSource
}

func (f *SingleSourceField) DefaultValue() any {
	return nil
}

func (f *SingleSourceField) ComputeValue(raw any, address Address) (any, error) {
	if raw == nil {
		return nil, nil
	}
	v, err := cast.ToStringE(raw)
	if err != nil || v == "" {
		return nil, &InvalidFieldError{FieldAlias: f.alias, Address: address, Message: fmt.Sprintf(`expected a file path, found "%v"`, raw)}
	}
	return v, nil
}

func (f *SingleSourceField) Get(instance *Instance) (string, bool, error) {
	v, err := instance.Get(f)
	if err != nil {
		return "", false, err
	}
	if v == nil {
		return "", false, nil
	}
	return v.(string), true, nil
}

// MultipleSourcesField holds glob patterns matching source files,
// a "!" prefix excludes the pattern, for example "!*_test.sh".
type MultipleSourcesField struct {
	fieldBase
	def []string
}

func NewMultipleSourcesField(alias, help string) *MultipleSourcesField {
	return &MultipleSourcesField{fieldBase: newFieldBase(alias, help)}
}

func (f *MultipleSourcesField) WithDefault(patterns ...string) *MultipleSourcesField {
	f.def = patterns
	return f
}

func (f *MultipleSourcesField) Kind() Kind {
	return KindMultipleSources
}

func (f *MultipleSourcesField) DefaultValue() any {
	if f.def == nil {
		return nil
	}
	return append([]string(nil), f.def...)
}

func (f *MultipleSourcesField) ComputeValue(raw any, address Address) (any, error) {
	if raw == nil {
		return f.DefaultValue(), nil
	}
	v, err := cast.ToStringSliceE(raw)
	if err != nil {
		return nil, &InvalidFieldError{FieldAlias: f.alias, Address: address, Message: fmt.Sprintf(`expected a list of glob patterns, found "%v"`, raw)}
	}
	return v, nil
}

func (f *MultipleSourcesField) Get(instance *Instance) ([]string, error) {
	v, err := instance.Get(f)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return v.([]string), nil
}

func contains(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}
