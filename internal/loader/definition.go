// Package loader reads record-type definition documents from YAML files
// and registers their field rules. Definitions reference each other by
// name through `extends`, so loading is a two-pass operation: descriptors
// first, field registration second.
package loader

import (
	"fmt"
	"regexp"

	"github.com/recordkit/recordkit/internal/schema"
	"github.com/recordkit/recordkit/internal/valid"
)

// Document is one record-type definition as declared in YAML
type Document struct {
	Record         string     `yaml:"record"`
	Extends        string     `yaml:"extends"`
	Table          string     `yaml:"table"`
	Identifier     string     `yaml:"identifier"`
	OmitFromCreate []string   `yaml:"omit_from_create"`
	OmitFromUpdate []string   `yaml:"omit_from_update"`
	Fields         []FieldDef `yaml:"fields"`
}

// FieldDef is one field declaration within a definition document
type FieldDef struct {
	Name    string     `yaml:"name"`
	Type    string     `yaml:"type"`
	Min     *float64   `yaml:"min"`
	Max     *float64   `yaml:"max"`
	Pattern string     `yaml:"pattern"`
	Values  []string   `yaml:"values"`
	Format  string     `yaml:"format"`
	Skip    []string   `yaml:"skip"`
	Column  *ColumnDef `yaml:"column"`
}

// ColumnDef carries persistence hints for a field. A nil default means no
// default; YAML cannot declare an explicit null default.
type ColumnDef struct {
	Nullable bool `yaml:"nullable"`
	Default  any  `yaml:"default"`
}

// buildSchema converts a field declaration into its validator schema
func buildSchema(f FieldDef) (valid.Schema, error) {
	switch f.Type {
	case "string", "text":
		s := valid.String()
		if f.Min != nil {
			s = s.Min(int(*f.Min))
		}
		if f.Max != nil {
			s = s.Max(int(*f.Max))
		}
		if f.Pattern != "" {
			re, err := regexp.Compile(f.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern for field %q: %w", f.Name, err)
			}
			s = s.Pattern(re)
		}
		switch f.Format {
		case "":
		case "email":
			s = s.Email()
		case "url":
			s = s.URL()
		default:
			return nil, fmt.Errorf("unknown format %q for field %q", f.Format, f.Name)
		}
		return s, nil

	case "int", "bigint":
		s := valid.Int()
		if f.Min != nil {
			s = s.Min(int64(*f.Min))
		}
		if f.Max != nil {
			s = s.Max(int64(*f.Max))
		}
		return s, nil

	case "float":
		s := valid.Float()
		if f.Min != nil {
			s = s.Min(*f.Min)
		}
		if f.Max != nil {
			s = s.Max(*f.Max)
		}
		return s, nil

	case "bool":
		return valid.Bool(), nil

	case "uuid":
		return valid.UUID(), nil

	case "time", "timestamp", "date":
		return valid.Time(), nil

	case "decimal":
		return valid.Decimal(), nil

	case "enum":
		if len(f.Values) == 0 {
			return nil, fmt.Errorf("enum field %q declares no values", f.Name)
		}
		return valid.Enum(f.Values...), nil

	case "any", "json":
		return valid.Any(), nil

	default:
		return nil, fmt.Errorf("unknown field type %q for field %q", f.Type, f.Name)
	}
}

// buildRule converts a field declaration into a registrable field rule
func buildRule(f FieldDef) (schema.FieldRule, error) {
	s, err := buildSchema(f)
	if err != nil {
		return schema.FieldRule{}, err
	}

	rule := schema.FieldRule{Name: f.Name, Schema: s}

	for _, name := range f.Skip {
		v, err := schema.ParseVariant(name)
		if err != nil {
			return schema.FieldRule{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		rule.Skip = append(rule.Skip, v)
	}

	if f.Column != nil {
		rule.Column = &schema.ColumnHints{
			Nullable:   f.Column.Nullable,
			Default:    f.Column.Default,
			HasDefault: f.Column.Default != nil,
		}
	}

	return rule, nil
}
