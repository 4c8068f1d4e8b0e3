// Package variant derives the five purpose-specific schema shapes (full,
// create, update, patch, query) from a record type's merged rule set.
package variant

import (
	"fmt"

	"github.com/recordkit/recordkit/internal/schema"
	"github.com/recordkit/recordkit/internal/valid"
)

// Transform rewrites a single field's schema during derivation
type Transform func(valid.Schema) (valid.Schema, error)

// derive filters and transforms the merged rule list into one variant's
// object schema. Per field, the rule's own skip set is checked first, then
// the call's global omission list; included fields keep the merged order.
// The exempt field bypasses its own skip set but not the omission list;
// the update variant uses this for the identifier, which it forces back to
// required regardless of how the field was declared.
func derive(
	rules []schema.FieldRule,
	target schema.Variant,
	omit []string,
	transforms map[string]Transform,
	exempt string,
) (*valid.ObjectSchema, error) {
	omitted := make(map[string]bool, len(omit))
	for _, name := range omit {
		omitted[name] = true
	}

	fields := make([]valid.ObjectField, 0, len(rules))
	for _, rule := range rules {
		if rule.Skips(target) && rule.Name != exempt {
			continue
		}
		if omitted[rule.Name] {
			continue
		}

		s := rule.Schema
		if transform, ok := transforms[rule.Name]; ok {
			transformed, err := transform(s)
			if err != nil {
				return nil, fmt.Errorf("transform for field %q failed: %w", rule.Name, err)
			}
			s = transformed
		}

		if rule.Column != nil {
			if rule.Column.Nullable && !s.IsOptional() && !s.IsNullable() {
				s = valid.Nullable(s)
			}
			if rule.Column.HasDefault && !s.IsDefaulted() {
				s = valid.WithDefault(s, rule.Column.Default)
			}
		}

		fields = append(fields, valid.Field(rule.Name, s))
	}

	return valid.Object(fields...), nil
}
