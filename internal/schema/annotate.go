package schema

import (
	"fmt"

	"github.com/recordkit/recordkit/internal/valid"
)

// DuplicateRuleError is returned when a second rule is registered for the
// same field on the same type
type DuplicateRuleError struct {
	Type  *Type
	Field string
}

// Error implements the error interface
func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("field %q is already annotated on type %s", e.Field, e.Type.Name)
}

// Annotate registers a single field rule on t. Registering the same field
// twice is an error; the first registration stays intact.
func (r *Registry) Annotate(t *Type, rule FieldRule) error {
	if rule.Name == "" {
		return fmt.Errorf("field rule on type %s has no field name", t.Name)
	}
	if rule.Schema == nil {
		return fmt.Errorf("field %q on type %s has no schema", rule.Name, t.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.has(t, rule.Name) {
		return &DuplicateRuleError{Type: t, Field: rule.Name}
	}
	r.add(t, rule)
	return nil
}

// FieldOption configures a field rule at definition time
type FieldOption func(*FieldRule)

// SkipOn excludes the field from the given variants
func SkipOn(variants ...Variant) FieldOption {
	return func(rule *FieldRule) {
		rule.Skip = append(rule.Skip, variants...)
	}
}

// NullableColumn marks the field's column as nullable
func NullableColumn() FieldOption {
	return func(rule *FieldRule) {
		if rule.Column == nil {
			rule.Column = &ColumnHints{}
		}
		rule.Column.Nullable = true
	}
}

// ColumnDefault attaches the column's default value
func ColumnDefault(value any) FieldOption {
	return func(rule *FieldRule) {
		if rule.Column == nil {
			rule.Column = &ColumnHints{}
		}
		rule.Column.Default = value
		rule.Column.HasDefault = true
	}
}

// Definition is a fluent registration builder used by hand-written type
// definitions. Errors are collected and reported once from Err, so a
// definition reads as a single declaration.
type Definition struct {
	registry *Registry
	t        *Type
	err      error
}

// Define starts a definition for t against the given registry
func Define(registry *Registry, t *Type) *Definition {
	return &Definition{registry: registry, t: t}
}

// Field registers one field rule. After the first error, subsequent calls
// are no-ops.
func (d *Definition) Field(name string, s valid.Schema, opts ...FieldOption) *Definition {
	if d.err != nil {
		return d
	}

	rule := FieldRule{Name: name, Schema: s}
	for _, opt := range opts {
		opt(&rule)
	}

	if err := d.registry.Annotate(d.t, rule); err != nil {
		d.err = err
	}
	return d
}

// Err returns the first registration error, if any
func (d *Definition) Err() error {
	return d.err
}
