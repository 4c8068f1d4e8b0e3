// Package valid provides composable value validators. Schemas are built
// from scalar primitives, wrapped with optionality, nullability, and
// default values, and composed into ordered object schemas. Parsing either
// returns the coerced value or a structured validation error; schemas are
// immutable, so every wrapping operation returns a new schema.
package valid

// Schema is the capability interface every validator implements. A schema
// parses a single value and reports its own optionality, nullability, and
// default-value state so that composing code never has to probe concrete
// types.
type Schema interface {
	// Parse validates value and returns its coerced form.
	Parse(value any) (any, error)

	// IsOptional reports whether the field may be absent from an object.
	IsOptional() bool

	// IsNullable reports whether an explicit nil value is accepted.
	IsNullable() bool

	// IsDefaulted reports whether a default value is attached.
	IsDefaulted() bool

	// DefaultValue returns the attached default, or nil when none is set.
	DefaultValue() any
}

// wrapped decorates an inner schema with optional/nullable/default state.
// Wrapping an already-wrapped schema clones it instead of stacking
// decorators, so flag queries never recurse.
type wrapped struct {
	inner    Schema
	optional bool
	nullable bool
	def      any
	hasDef   bool
}

func wrap(s Schema) *wrapped {
	if w, ok := s.(*wrapped); ok {
		clone := *w
		return &clone
	}
	return &wrapped{inner: s}
}

// Optional returns a schema that may be absent when used as an object field.
func Optional(s Schema) Schema {
	w := wrap(s)
	w.optional = true
	return w
}

// Required returns a schema with the optional flag cleared. Schemas that
// were never marked optional are returned unchanged.
func Required(s Schema) Schema {
	w, ok := s.(*wrapped)
	if !ok {
		return s
	}
	clone := *w
	clone.optional = false
	return &clone
}

// Nullable returns a schema that accepts an explicit nil value.
func Nullable(s Schema) Schema {
	w := wrap(s)
	w.nullable = true
	return w
}

// WithDefault returns a schema that substitutes value when the field is
// absent from a parsed object.
func WithDefault(s Schema, value any) Schema {
	w := wrap(s)
	w.def = value
	w.hasDef = true
	return w
}

// Base returns the innermost schema, stripping any wrapping decorators.
func Base(s Schema) Schema {
	for {
		w, ok := s.(*wrapped)
		if !ok {
			return s
		}
		s = w.inner
	}
}

// Parse implements the Schema interface
func (w *wrapped) Parse(value any) (any, error) {
	if value == nil && w.nullable {
		return nil, nil
	}
	return w.inner.Parse(value)
}

// IsOptional implements the Schema interface
func (w *wrapped) IsOptional() bool {
	return w.optional || w.inner.IsOptional()
}

// IsNullable implements the Schema interface
func (w *wrapped) IsNullable() bool {
	return w.nullable || w.inner.IsNullable()
}

// IsDefaulted implements the Schema interface
func (w *wrapped) IsDefaulted() bool {
	return w.hasDef || w.inner.IsDefaulted()
}

// DefaultValue implements the Schema interface
func (w *wrapped) DefaultValue() any {
	if w.hasDef {
		return w.def
	}
	return w.inner.DefaultValue()
}

// baseSchema provides the zero-state flag methods shared by all scalar
// schemas. Flags only ever come from wrapping.
type baseSchema struct{}

func (baseSchema) IsOptional() bool  { return false }
func (baseSchema) IsNullable() bool  { return false }
func (baseSchema) IsDefaulted() bool { return false }
func (baseSchema) DefaultValue() any { return nil }
