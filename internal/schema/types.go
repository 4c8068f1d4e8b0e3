// Package schema provides record-type descriptors, per-field validation
// rules, and the registry that accumulates rules at type-definition time.
// Rules are keyed by descriptor identity, so two unrelated record types
// with identical field names never share state.
package schema

import (
	"fmt"

	"github.com/recordkit/recordkit/internal/valid"
)

// Variant identifies one of the five derived schema shapes
type Variant int

const (
	// VariantFull covers every registered field
	VariantFull Variant = iota
	// VariantCreate omits server-generated fields
	VariantCreate
	// VariantUpdate requires the identifier and makes other fields optional
	VariantUpdate
	// VariantPatch makes every field optional
	VariantPatch
	// VariantQuery makes every field optional for filtering
	VariantQuery
)

// String returns the string representation of the variant
func (v Variant) String() string {
	switch v {
	case VariantFull:
		return "full"
	case VariantCreate:
		return "create"
	case VariantUpdate:
		return "update"
	case VariantPatch:
		return "patch"
	case VariantQuery:
		return "query"
	default:
		return "unknown"
	}
}

// ParseVariant converts a string to a Variant
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "full":
		return VariantFull, nil
	case "create":
		return VariantCreate, nil
	case "update":
		return VariantUpdate, nil
	case "patch":
		return VariantPatch, nil
	case "query":
		return VariantQuery, nil
	default:
		return 0, fmt.Errorf("unknown variant: %s", s)
	}
}

// Variants returns all five variants in derivation order
func Variants() []Variant {
	return []Variant{VariantFull, VariantCreate, VariantUpdate, VariantPatch, VariantQuery}
}

// Type is a record-type descriptor. Descriptors carry an explicit parent
// pointer, so ancestor resolution never depends on any runtime object
// model. Identity is pointer identity: two descriptors with the same name
// are unrelated types.
type Type struct {
	Name   string
	Parent *Type
}

// NewType creates a new record-type descriptor
func NewType(name string, parent *Type) *Type {
	return &Type{Name: name, Parent: parent}
}

// Ancestors returns the parent chain from closest to farthest
func (t *Type) Ancestors() []*Type {
	var chain []*Type
	seen := map[*Type]bool{t: true}
	for p := t.Parent; p != nil && !seen[p]; p = p.Parent {
		seen[p] = true
		chain = append(chain, p)
	}
	return chain
}

// ColumnHints carries structural hints from a persistence-mapping
// declaration. Only the nullability and default flags are ever inspected.
type ColumnHints struct {
	Nullable   bool
	Default    any
	HasDefault bool
}

// FieldRule is one declared validation binding for a single field
type FieldRule struct {
	Name   string
	Schema valid.Schema
	Column *ColumnHints
	Skip   []Variant
}

// Skips reports whether the rule excludes its field from the given variant
func (r FieldRule) Skips(v Variant) bool {
	for _, s := range r.Skip {
		if s == v {
			return true
		}
	}
	return false
}
