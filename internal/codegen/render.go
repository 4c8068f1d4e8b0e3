package codegen

import (
	"sort"

	"github.com/recordkit/recordkit/internal/valid"
)

// renderGoType maps a field schema to its Go type string, recording any
// import paths the type needs. Optional and nullable fields render as
// pointers so absence round-trips through JSON.
func renderGoType(s valid.Schema, imports map[string]bool) string {
	var goType string

	switch valid.Base(s).(type) {
	case *valid.StringSchema, *valid.EnumSchema, *valid.UUIDSchema:
		goType = "string"
	case *valid.IntSchema:
		goType = "int64"
	case *valid.FloatSchema:
		goType = "float64"
	case *valid.BoolSchema:
		goType = "bool"
	case *valid.TimeSchema:
		imports["time"] = true
		goType = "time.Time"
	case *valid.DecimalSchema:
		imports["github.com/shopspring/decimal"] = true
		goType = "decimal.Decimal"
	default:
		return "any"
	}

	if s.IsOptional() || s.IsNullable() {
		return "*" + goType
	}
	return goType
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
