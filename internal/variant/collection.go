package variant

import (
	"fmt"

	"github.com/recordkit/recordkit/internal/schema"
	"github.com/recordkit/recordkit/internal/valid"
)

// Conventional server-managed field names omitted from the create variant.
// Record types that do not follow the convention extend the list through
// Options.OmitFromCreate.
const (
	DefaultIdentifierField = "id"
	createdAtField         = "created_at"
	updatedAtField         = "updated_at"
	deletedAtField         = "deleted_at"
)

// Options configures collection building for one record type
type Options struct {
	// OmitFromCreate names fields excluded from the create variant in
	// addition to the conventional server-managed fields.
	OmitFromCreate []string

	// OmitFromUpdate names fields excluded from the update variant.
	OmitFromUpdate []string

	// Transforms rewrites individual field schemas before hint coercion.
	Transforms map[string]Transform

	// IdentifierField overrides the conventional identifier name. Empty
	// means DefaultIdentifierField.
	IdentifierField string
}

func (o Options) identifier() string {
	if o.IdentifierField != "" {
		return o.IdentifierField
	}
	return DefaultIdentifierField
}

// Collection holds the five derived schema variants for one record type
type Collection struct {
	Full   *valid.ObjectSchema
	Create *valid.ObjectSchema
	Update *valid.ObjectSchema
	Patch  *valid.ObjectSchema
	Query  *valid.ObjectSchema
}

// Variant returns the schema for the given variant
func (c *Collection) Variant(v schema.Variant) *valid.ObjectSchema {
	switch v {
	case schema.VariantFull:
		return c.Full
	case schema.VariantCreate:
		return c.Create
	case schema.VariantUpdate:
		return c.Update
	case schema.VariantPatch:
		return c.Patch
	case schema.VariantQuery:
		return c.Query
	default:
		return nil
	}
}

// Build resolves t's merged rule set against the registry and derives all
// five variants. It is a pure function of the registry contents and the
// options at call time; nothing is cached between calls.
func Build(registry *schema.Registry, t *schema.Type, opts Options) (*Collection, error) {
	rules := registry.Resolve(t)
	if len(rules) == 0 {
		return nil, &NoRulesError{Type: t}
	}

	id := opts.identifier()

	full, err := derive(rules, schema.VariantFull, nil, opts.Transforms, "")
	if err != nil {
		return nil, err
	}

	createOmit := append(
		[]string{id, createdAtField, updatedAtField, deletedAtField},
		opts.OmitFromCreate...,
	)
	create, err := derive(rules, schema.VariantCreate, createOmit, opts.Transforms, "")
	if err != nil {
		return nil, err
	}

	update, err := derive(rules, schema.VariantUpdate, opts.OmitFromUpdate, opts.Transforms, id)
	if err != nil {
		return nil, err
	}
	update, err = update.Partial().Require(id)
	if err != nil {
		return nil, fmt.Errorf("update variant for type %s: %w", t.Name, err)
	}

	patch, err := derive(rules, schema.VariantPatch, nil, opts.Transforms, "")
	if err != nil {
		return nil, err
	}
	patch = patch.Partial()

	query, err := derive(rules, schema.VariantQuery, nil, opts.Transforms, "")
	if err != nil {
		return nil, err
	}
	query = query.Partial()

	return &Collection{
		Full:   full,
		Create: create,
		Update: update,
		Patch:  patch,
		Query:  query,
	}, nil
}
