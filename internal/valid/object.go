package valid

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// ObjectField binds a field name to its schema within an object
type ObjectField struct {
	Name   string
	Schema Schema
}

// Field creates an ObjectField
func Field(name string, schema Schema) ObjectField {
	return ObjectField{Name: name, Schema: schema}
}

// ObjectSchema validates a map of named values against an ordered list of
// field schemas. Unknown keys are stripped from the result. Required
// fields that are absent, and present values that fail their field schema,
// are reported together in a single ValidationErrors.
type ObjectSchema struct {
	baseSchema
	fields []ObjectField
	index  map[string]int
}

// Object creates a new object schema over the given fields
func Object(fields ...ObjectField) *ObjectSchema {
	o := &ObjectSchema{
		fields: append([]ObjectField(nil), fields...),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range o.fields {
		o.index[f.Name] = i
	}
	return o
}

// Fields returns a copy of the object's field list in declaration order
func (o *ObjectSchema) Fields() []ObjectField {
	return append([]ObjectField(nil), o.fields...)
}

// FieldSchema returns the schema for a named field
func (o *ObjectSchema) FieldSchema(name string) (Schema, bool) {
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.fields[i].Schema, true
}

// Len returns the number of fields
func (o *ObjectSchema) Len() int {
	return len(o.fields)
}

// Parse implements the Schema interface. The input must be a
// map[string]any; the output is a new map containing only declared fields.
func (o *ObjectSchema) Parse(value any) (any, error) {
	record, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected object value, got %T", value)
	}

	result := make(map[string]any, len(o.fields))
	errs := NewValidationErrors()

	for _, f := range o.fields {
		raw, present := record[f.Name]
		if !present {
			switch {
			case f.Schema.IsDefaulted():
				// Defaults are cloned so callers cannot mutate the
				// schema's stored default through the result.
				result[f.Name] = deepcopy.Copy(f.Schema.DefaultValue())
			case f.Schema.IsOptional():
				// absent and allowed to be
			default:
				errs.Add(f.Name, "is required")
			}
			continue
		}

		parsed, err := f.Schema.Parse(raw)
		if err != nil {
			errs.Merge(f.Name, err)
			continue
		}
		result[f.Name] = parsed
	}

	if errs.HasErrors() {
		return nil, errs
	}
	return result, nil
}

// Partial returns a new object schema with every field marked optional
func (o *ObjectSchema) Partial() *ObjectSchema {
	fields := make([]ObjectField, len(o.fields))
	for i, f := range o.fields {
		fields[i] = ObjectField{Name: f.Name, Schema: Optional(f.Schema)}
	}
	return Object(fields...)
}

// Require returns a new object schema with the named field forced to
// required and all other fields unchanged. It fails when the field is not
// part of the object.
func (o *ObjectSchema) Require(name string) (*ObjectSchema, error) {
	if _, ok := o.index[name]; !ok {
		return nil, fmt.Errorf("required field %q is absent from object schema", name)
	}
	fields := make([]ObjectField, len(o.fields))
	for i, f := range o.fields {
		if f.Name == name {
			fields[i] = ObjectField{Name: f.Name, Schema: Required(f.Schema)}
		} else {
			fields[i] = f
		}
	}
	return Object(fields...), nil
}
