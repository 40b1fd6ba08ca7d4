package target

import (
	"github.com/Masterminds/semver"
	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// Type is a target type, it defines the alias used in build files and the set of registered fields.
// Plugins register additional fields via Registry.AttachField during the plugin load phase.
type Type struct {
	alias                    string
	help                     string
	fields                   *orderedmap.OrderedMap // field alias -> Field
	deprecatedAlias          string
	deprecatedRemovalVersion *semver.Version
}

func NewType(alias, help string, coreFields ...Field) *Type {
	if alias == "" {
		panic(errors.New("target type alias cannot be empty"))
	}
	t := &Type{alias: alias, help: help, fields: orderedmap.New()}
	for _, f := range coreFields {
		if err := t.addField(f); err != nil {
			panic(err)
		}
	}
	return t
}

// WithDeprecatedAlias registers an old alias of the target type.
// Usage of the old alias emits a warning with the version in which the alias will be removed.
func (t *Type) WithDeprecatedAlias(alias, removalVersion string) *Type {
	v, err := semver.NewVersion(removalVersion)
	if err != nil {
		panic(errors.Errorf(`invalid removal version "%s" for deprecated alias "%s": %w`, removalVersion, alias, err))
	}
	t.deprecatedAlias = alias
	t.deprecatedRemovalVersion = v
	return t
}

func (t *Type) Alias() string {
	return t.alias
}

func (t *Type) Help() string {
	return t.help
}

func (t *Type) DeprecatedAlias() string {
	return t.deprecatedAlias
}

func (t *Type) DeprecatedAliasRemovalVersion() *semver.Version {
	return t.deprecatedRemovalVersion
}

// Fields returns all registered fields in the declaration order.
func (t *Type) Fields() []Field {
	out := make([]Field, 0, t.fields.Len())
	for _, alias := range t.fields.Keys() {
		value, _ := t.fields.Get(alias)
		out = append(out, value.(Field))
	}
	return out
}

func (t *Type) Field(alias string) (Field, bool) {
	value, found := t.fields.Get(alias)
	if !found {
		return nil, false
	}
	return value.(Field), true
}

// HasField returns true if the exact field definition is registered on the type.
func (t *Type) HasField(f Field) bool {
	value, found := t.fields.Get(f.Alias())
	return found && value.(Field) == f
}

// addField registers the field definition.
// Attaching the identical definition twice is a no-op,
// a different definition with the same alias is a DuplicateFieldError.
func (t *Type) addField(f Field) error {
	if value, found := t.fields.Get(f.Alias()); found {
		if value.(Field) == f {
			return nil
		}
		return &DuplicateFieldError{TypeAlias: t.alias, FieldAlias: f.Alias()}
	}
	t.fields.Set(f.Alias(), f)
	return nil
}
