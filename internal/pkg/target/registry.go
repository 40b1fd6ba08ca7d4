package target

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/sasha-s/go-deadlock"

	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// Registry holds all registered target types and their fields.
// It is mutated only during the serial plugin load phase,
// after Freeze it is read-only and reads need no synchronization.
type Registry struct {
	lock       *deadlock.Mutex
	frozen     bool
	types      *orderedmap.OrderedMap // type alias -> *Type
	deprecated map[string]*Type       // deprecated alias -> *Type
}

func NewRegistry() *Registry {
	return &Registry{
		lock:       &deadlock.Mutex{},
		types:      orderedmap.New(),
		deprecated: make(map[string]*Type),
	}
}

// AddType registers a target type under its alias and deprecated alias.
func (r *Registry) AddType(t *Type) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.frozen {
		return &FrozenRegistryError{}
	}

	if _, found := r.types.Get(t.Alias()); found {
		return &DuplicateTypeError{TypeAlias: t.Alias()}
	}
	if _, found := r.deprecated[t.Alias()]; found {
		return &DuplicateTypeError{TypeAlias: t.Alias()}
	}
	if alias := t.DeprecatedAlias(); alias != "" {
		if _, found := r.types.Get(alias); found {
			return &DuplicateTypeError{TypeAlias: alias}
		}
		if _, found := r.deprecated[alias]; found {
			return &DuplicateTypeError{TypeAlias: alias}
		}
	}

	r.types.Set(t.Alias(), t)
	if alias := t.DeprecatedAlias(); alias != "" {
		r.deprecated[alias] = t
	}
	return nil
}

// AttachField registers a new field on an already registered target type.
// Attaching the identical definition twice is a no-op.
func (r *Registry) AttachField(typeAlias string, field Field) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.frozen {
		return &FrozenRegistryError{}
	}

	value, found := r.types.Get(typeAlias)
	if !found {
		return errors.Errorf(`cannot attach field "%s": target type "%s" is not registered`, field.Alias(), typeAlias)
	}
	return value.(*Type).addField(field)
}

// Type returns the target type registered under the alias.
func (r *Registry) Type(alias string) (*Type, bool) {
	value, found := r.types.Get(alias)
	if !found {
		return nil, false
	}
	return value.(*Type), true
}

// TypeByAnyAlias returns the target type by the current or deprecated alias.
func (r *Registry) TypeByAnyAlias(alias string) (t *Type, deprecated bool, found bool) {
	if value, ok := r.types.Get(alias); ok {
		return value.(*Type), false, true
	}
	if t, ok := r.deprecated[alias]; ok {
		return t, true, true
	}
	return nil, false, false
}

// Types returns all registered target types in the registration order.
func (r *Registry) Types() []*Type {
	out := make([]*Type, 0, r.types.Len())
	for _, alias := range r.types.Keys() {
		value, _ := r.types.Get(alias)
		out = append(out, value.(*Type))
	}
	return out
}

// Freeze ends the plugin load phase, further registrations are rejected.
func (r *Registry) Freeze() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.frozen = true
}

func (r *Registry) Frozen() bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.frozen
}
