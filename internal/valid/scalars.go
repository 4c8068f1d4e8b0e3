package valid

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StringSchema validates string values with optional length, pattern, and
// format constraints. Constraint methods return a modified copy.
type StringSchema struct {
	baseSchema
	minLen  *int
	maxLen  *int
	pattern *regexp.Regexp
	email   bool
	url     bool
}

// String creates a new string schema
func String() *StringSchema {
	return &StringSchema{}
}

func (s *StringSchema) clone() *StringSchema {
	c := *s
	return &c
}

// Min sets the minimum length in runes
func (s *StringSchema) Min(n int) *StringSchema {
	c := s.clone()
	c.minLen = &n
	return c
}

// Max sets the maximum length in runes
func (s *StringSchema) Max(n int) *StringSchema {
	c := s.clone()
	c.maxLen = &n
	return c
}

// Pattern requires values to match the given regular expression
func (s *StringSchema) Pattern(re *regexp.Regexp) *StringSchema {
	c := s.clone()
	c.pattern = re
	return c
}

// Email requires values to be RFC 5322 addresses
func (s *StringSchema) Email() *StringSchema {
	c := s.clone()
	c.email = true
	return c
}

// URL requires values to be absolute URLs with a scheme and host
func (s *StringSchema) URL() *StringSchema {
	c := s.clone()
	c.url = true
	return c
}

// Parse implements the Schema interface
func (s *StringSchema) Parse(value any) (any, error) {
	strVal, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string value, got %T", value)
	}

	if s.minLen != nil && utf8.RuneCountInString(strVal) < *s.minLen {
		return nil, fmt.Errorf("must be at least %d characters", *s.minLen)
	}
	if s.maxLen != nil && utf8.RuneCountInString(strVal) > *s.maxLen {
		return nil, fmt.Errorf("must be at most %d characters", *s.maxLen)
	}
	if s.pattern != nil && !s.pattern.MatchString(strVal) {
		return nil, fmt.Errorf("does not match required pattern")
	}

	if s.email {
		if strings.TrimSpace(strVal) == "" {
			return nil, fmt.Errorf("email address cannot be empty")
		}
		if _, err := mail.ParseAddress(strVal); err != nil {
			return nil, fmt.Errorf("must be a valid email address")
		}
	}

	if s.url {
		if strings.TrimSpace(strVal) == "" {
			return nil, fmt.Errorf("URL cannot be empty")
		}
		parsedURL, err := url.Parse(strVal)
		if err != nil {
			return nil, fmt.Errorf("must be a valid URL")
		}
		if parsedURL.Scheme == "" {
			return nil, fmt.Errorf("URL must include a scheme (http, https, etc.)")
		}
		if parsedURL.Host == "" {
			return nil, fmt.Errorf("URL must include a host")
		}
	}

	return strVal, nil
}

// IntSchema validates integer values with optional bounds. Any Go numeric
// type is accepted as input; non-integral floats are rejected.
type IntSchema struct {
	baseSchema
	min *int64
	max *int64
}

// Int creates a new integer schema
func Int() *IntSchema {
	return &IntSchema{}
}

func (s *IntSchema) clone() *IntSchema {
	c := *s
	return &c
}

// Min sets the minimum value
func (s *IntSchema) Min(n int64) *IntSchema {
	c := s.clone()
	c.min = &n
	return c
}

// Max sets the maximum value
func (s *IntSchema) Max(n int64) *IntSchema {
	c := s.clone()
	c.max = &n
	return c
}

// Parse implements the Schema interface
func (s *IntSchema) Parse(value any) (any, error) {
	intVal, ok := toInt64(value)
	if !ok {
		return nil, fmt.Errorf("expected integer value, got %T", value)
	}
	if s.min != nil && intVal < *s.min {
		return nil, fmt.Errorf("must be at least %d", *s.min)
	}
	if s.max != nil && intVal > *s.max {
		return nil, fmt.Errorf("must be at most %d", *s.max)
	}
	return intVal, nil
}

// FloatSchema validates floating point values with optional bounds
type FloatSchema struct {
	baseSchema
	min *float64
	max *float64
}

// Float creates a new float schema
func Float() *FloatSchema {
	return &FloatSchema{}
}

func (s *FloatSchema) clone() *FloatSchema {
	c := *s
	return &c
}

// Min sets the minimum value
func (s *FloatSchema) Min(n float64) *FloatSchema {
	c := s.clone()
	c.min = &n
	return c
}

// Max sets the maximum value
func (s *FloatSchema) Max(n float64) *FloatSchema {
	c := s.clone()
	c.max = &n
	return c
}

// Parse implements the Schema interface
func (s *FloatSchema) Parse(value any) (any, error) {
	floatVal, ok := toFloat64(value)
	if !ok {
		return nil, fmt.Errorf("expected numeric value, got %T", value)
	}
	if s.min != nil && floatVal < *s.min {
		return nil, fmt.Errorf("must be at least %v", *s.min)
	}
	if s.max != nil && floatVal > *s.max {
		return nil, fmt.Errorf("must be at most %v", *s.max)
	}
	return floatVal, nil
}

// BoolSchema validates boolean values
type BoolSchema struct {
	baseSchema
}

// Bool creates a new boolean schema
func Bool() *BoolSchema {
	return &BoolSchema{}
}

// Parse implements the Schema interface
func (s *BoolSchema) Parse(value any) (any, error) {
	boolVal, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("expected boolean value, got %T", value)
	}
	return boolVal, nil
}

// UUIDSchema validates RFC 4122 UUID strings and normalizes them to the
// canonical lowercase form.
type UUIDSchema struct {
	baseSchema
}

// UUID creates a new UUID schema
func UUID() *UUIDSchema {
	return &UUIDSchema{}
}

// Parse implements the Schema interface
func (s *UUIDSchema) Parse(value any) (any, error) {
	strVal, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected UUID string, got %T", value)
	}
	parsed, err := uuid.Parse(strVal)
	if err != nil {
		return nil, fmt.Errorf("must be a valid UUID")
	}
	return parsed.String(), nil
}

// TimeSchema validates timestamps. Accepts time.Time values or RFC 3339
// strings; always yields time.Time.
type TimeSchema struct {
	baseSchema
}

// Time creates a new timestamp schema
func Time() *TimeSchema {
	return &TimeSchema{}
}

// Parse implements the Schema interface
func (s *TimeSchema) Parse(value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("must be an RFC 3339 timestamp")
		}
		return t, nil
	default:
		return nil, fmt.Errorf("expected timestamp value, got %T", value)
	}
}

// DecimalSchema validates arbitrary-precision decimal values. Accepts
// decimal.Decimal, numeric strings, and Go numerics; always yields
// decimal.Decimal.
type DecimalSchema struct {
	baseSchema
	min *decimal.Decimal
	max *decimal.Decimal
}

// Decimal creates a new decimal schema
func Decimal() *DecimalSchema {
	return &DecimalSchema{}
}

func (s *DecimalSchema) clone() *DecimalSchema {
	c := *s
	return &c
}

// Min sets the minimum value
func (s *DecimalSchema) Min(d decimal.Decimal) *DecimalSchema {
	c := s.clone()
	c.min = &d
	return c
}

// Max sets the maximum value
func (s *DecimalSchema) Max(d decimal.Decimal) *DecimalSchema {
	c := s.clone()
	c.max = &d
	return c
}

// Parse implements the Schema interface
func (s *DecimalSchema) Parse(value any) (any, error) {
	var d decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("must be a valid decimal number")
		}
		d = parsed
	default:
		floatVal, ok := toFloat64(value)
		if !ok {
			return nil, fmt.Errorf("expected decimal value, got %T", value)
		}
		d = decimal.NewFromFloat(floatVal)
	}

	if s.min != nil && d.LessThan(*s.min) {
		return nil, fmt.Errorf("must be at least %s", s.min.String())
	}
	if s.max != nil && d.GreaterThan(*s.max) {
		return nil, fmt.Errorf("must be at most %s", s.max.String())
	}
	return d, nil
}

// EnumSchema validates membership in a fixed set of string values
type EnumSchema struct {
	baseSchema
	values []string
}

// Enum creates a new enum schema over the given values
func Enum(values ...string) *EnumSchema {
	return &EnumSchema{values: append([]string(nil), values...)}
}

// Values returns a copy of the allowed values
func (s *EnumSchema) Values() []string {
	return append([]string(nil), s.values...)
}

// Parse implements the Schema interface
func (s *EnumSchema) Parse(value any) (any, error) {
	strVal, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string value, got %T", value)
	}
	for _, v := range s.values {
		if v == strVal {
			return strVal, nil
		}
	}
	return nil, fmt.Errorf("must be one of: %s", strings.Join(s.values, ", "))
}

// AnySchema accepts every value unchanged
type AnySchema struct {
	baseSchema
}

// Any creates a schema that accepts any value
func Any() *AnySchema {
	return &AnySchema{}
}

// Parse implements the Schema interface
func (s *AnySchema) Parse(value any) (any, error) {
	return value, nil
}
