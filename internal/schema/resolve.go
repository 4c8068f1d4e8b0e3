package schema

// Resolve produces the merged rule set for t: the type's own rules plus
// its ancestors', deduplicated by field name with the closest declaration
// winning. The walk follows explicit parent pointers and stops at the
// chain's end, so only user-defined types contribute rules. The result is
// a fresh slice on every call; nothing is cached, and redefining a type's
// rules between calls is always observed.
func (r *Registry) Resolve(t *Type) []FieldRule {
	var merged []FieldRule
	seen := make(map[string]bool)
	visited := make(map[*Type]bool)

	for current := t; current != nil && !visited[current]; current = current.Parent {
		visited[current] = true
		for _, rule := range r.Rules(current) {
			if seen[rule.Name] {
				continue
			}
			seen[rule.Name] = true
			merged = append(merged, rule)
		}
	}

	return merged
}
