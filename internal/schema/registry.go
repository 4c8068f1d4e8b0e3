package schema

import "sync"

// Registry accumulates field rules per record type. Each type owns its
// rule list exclusively: readers receive copies, and Add follows a
// copy-on-write discipline so a previously returned list is never mutated.
// All access is serialized with a mutex, making registration safe from
// concurrent goroutines.
type Registry struct {
	mu    sync.RWMutex
	rules map[*Type][]FieldRule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[*Type][]FieldRule),
	}
}

// Default is the process-wide registry used by type definitions that do
// not carry their own.
var Default = NewRegistry()

// Rules returns a copy of the rules registered directly on t in the
// default registry.
func Rules(t *Type) []FieldRule {
	return Default.Rules(t)
}

// Add appends rule for t in the default registry
func Add(t *Type, rule FieldRule) {
	Default.Add(t, rule)
}

// Annotate registers rule on t in the default registry
func Annotate(t *Type, rule FieldRule) error {
	return Default.Annotate(t, rule)
}

// Resolve produces t's merged rule set from the default registry
func Resolve(t *Type) []FieldRule {
	return Default.Resolve(t)
}

// Rules returns a copy of the rules registered directly on t, not its
// ancestors. An unregistered type yields an empty list.
func (r *Registry) Rules(t *Type) []FieldRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.rules[t]
	result := make([]FieldRule, len(stored))
	copy(result, stored)
	return result
}

// SetRules replaces the stored list for t wholesale
func (r *Registry) SetRules(t *Type, rules []FieldRule) {
	stored := make([]FieldRule, len(rules))
	copy(stored, rules)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[t] = stored
}

// Add appends rule to a new list derived from the current one and stores
// that new list. Lists handed out before the call are unaffected.
func (r *Registry) Add(t *Type, rule FieldRule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(t, rule)
}

// add appends under an already-held write lock
func (r *Registry) add(t *Type, rule FieldRule) {
	current := r.rules[t]
	next := make([]FieldRule, len(current), len(current)+1)
	copy(next, current)
	r.rules[t] = append(next, rule)
}

// Has reports whether t's own list contains a rule for the field name
func (r *Registry) Has(t *Type, fieldName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.has(t, fieldName)
}

// has checks under an already-held lock
func (r *Registry) has(t *Type, fieldName string) bool {
	for _, rule := range r.rules[t] {
		if rule.Name == fieldName {
			return true
		}
	}
	return false
}

// Unregister removes t's entry. Intended for long-running processes that
// redefine types dynamically; build-time callers never need it.
func (r *Registry) Unregister(t *Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rules, t)
}

// Types returns the registered type descriptors
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]*Type, 0, len(r.rules))
	for t := range r.rules {
		types = append(types, t)
	}
	return types
}

// Count returns the number of registered types
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}
