// Package union implements capability-based dispatch:
// a plugin declares that its implementation provides an abstract capability,
// the host resolves the capability to the list of registered implementations.
package union

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/sasha-s/go-deadlock"

	"github.com/marijncv/pants/internal/pkg/target"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// Capability is a name of an abstract extension point, for example "export.ExportableTool".
type Capability string

// Rule associates a member implementation with a capability.
type Rule struct {
	Capability Capability
	Member     any
}

// Registry collects union rules during the plugin load phase.
// After Freeze it is read-only and may be read concurrently without locks.
type Registry struct {
	lock    *deadlock.Mutex
	frozen  bool
	members *orderedmap.OrderedMap // capability -> []any, in the registration order
}

func NewRegistry() *Registry {
	return &Registry{lock: &deadlock.Mutex{}, members: orderedmap.New()}
}

func (r *Registry) Add(rule Rule) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.frozen {
		return &target.FrozenRegistryError{}
	}
	if rule.Capability == "" {
		return errors.New("union rule capability cannot be empty")
	}
	if rule.Member == nil {
		return errors.Errorf(`union rule member for capability "%s" cannot be nil`, rule.Capability)
	}

	key := string(rule.Capability)
	var members []any
	if value, found := r.members.Get(key); found {
		members = value.([]any)
	}

	// Registering the identical member twice is a no-op.
	for _, member := range members {
		if member == rule.Member {
			return nil
		}
	}

	r.members.Set(key, append(members, rule.Member))
	return nil
}

// Members returns implementations of the capability in the registration order.
func (r *Registry) Members(c Capability) []any {
	value, found := r.members.Get(string(c))
	if !found {
		return nil
	}
	members := value.([]any)
	return append([]any(nil), members...)
}

// HasMember returns true if the member provides the capability.
func (r *Registry) HasMember(c Capability, member any) bool {
	for _, m := range r.Members(c) {
		if m == member {
			return true
		}
	}
	return false
}

// Capabilities returns all capabilities with at least one member.
func (r *Registry) Capabilities() []Capability {
	out := make([]Capability, 0, r.members.Len())
	for _, key := range r.members.Keys() {
		out = append(out, Capability(key))
	}
	return out
}

// Freeze ends the plugin load phase, further registrations are rejected.
func (r *Registry) Freeze() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.frozen = true
}
