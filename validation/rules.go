package validation

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Messages produced by the built-in checks.
const (
	MsgBlank   = "can't be blank"
	MsgInvalid = "is invalid"
)

// Check inspects one attribute value and returns a message when the value
// violates the rule.
type Check func(value any) (message string, ok bool)

// Rule binds a Check to an attribute name.
type Rule struct {
	Field string
	Check Check
}

// Rules is the declarative rule list of one record variant.
type Rules []Rule

// Evaluate runs every rule against the values returned by lookup and returns
// all violations in rule order. It never stops at the first failure.
func (rs Rules) Evaluate(lookup func(field string) any) []FieldError {
	v := New()
	for _, r := range rs {
		if msg, ok := r.Check(lookup(r.Field)); !ok {
			v.AddError(r.Field, msg)
		}
	}
	return v.Errors()
}

// Presence requires a non-blank value.
func Presence(field string) Rule {
	return Rule{Field: field, Check: func(value any) (string, bool) {
		if IsBlank(value) {
			return MsgBlank, false
		}
		return "", true
	}}
}

// PresenceOf returns one Presence rule per field.
func PresenceOf(fields ...string) Rules {
	rs := make(Rules, 0, len(fields))
	for _, f := range fields {
		rs = append(rs, Presence(f))
	}
	return rs
}

// Pattern requires string values to match pattern. Blank values pass; pair
// with Presence when the field is also required.
func Pattern(field, pattern string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{Field: field, Check: func(value any) (string, bool) {
		s, blank := stringValue(value)
		if blank || re.MatchString(s) {
			return "", true
		}
		return MsgInvalid, false
	}}
}

// Tag checks the value with a go-playground validator tag such as "bic" or
// "email". Blank values pass.
func Tag(field, tag string) Rule {
	return Rule{Field: field, Check: func(value any) (string, bool) {
		s, blank := stringValue(value)
		if blank {
			return "", true
		}
		if err := getValidator().Var(s, tag); err != nil {
			return MsgInvalid, false
		}
		return "", true
	}}
}

// Positive requires numeric values greater than zero. Values implementing
// IsPositive (decimal.Decimal) are supported alongside Go integers and floats.
// Blank values pass.
func Positive(field string) Rule {
	return Rule{Field: field, Check: func(value any) (string, bool) {
		if IsBlank(value) {
			return "", true
		}
		if p, ok := value.(interface{ IsPositive() bool }); ok {
			if p.IsPositive() {
				return "", true
			}
			return "must be greater than 0", false
		}
		rv := reflect.Indirect(reflect.ValueOf(value))
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if rv.Int() > 0 {
				return "", true
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if rv.Uint() > 0 {
				return "", true
			}
		case reflect.Float32, reflect.Float64:
			if rv.Float() > 0 {
				return "", true
			}
		default:
			return fmt.Sprintf("is not a number (%T)", value), false
		}
		return "must be greater than 0", false
	}}
}

// Scale requires decimal values to have no more than places fractional
// digits once trailing zeros are dropped. Blank values pass.
func Scale(field string, places int32) Rule {
	return Rule{Field: field, Check: func(value any) (string, bool) {
		if IsBlank(value) {
			return "", true
		}
		var d decimal.Decimal
		switch v := value.(type) {
		case decimal.Decimal:
			d = v
		case decimal.NullDecimal:
			d = v.Decimal
		default:
			return fmt.Sprintf("is not a number (%T)", value), false
		}
		if d.Equal(d.Truncate(places)) {
			return "", true
		}
		return fmt.Sprintf("must have at most %d decimal places", places), false
	}}
}

// IsBlank reports whether value counts as absent: nil, a nil pointer, a
// whitespace-only string, an empty slice or map, or a null-able struct such as
// decimal.NullDecimal whose Value is nil. Zero numbers and false are present.
func IsBlank(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsBlank(rv.Elem().Interface())
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Struct:
		if v, ok := value.(driver.Valuer); ok {
			dv, err := v.Value()
			return err == nil && dv == nil
		}
	}
	return false
}

// stringValue dereferences string and *string values.
func stringValue(value any) (string, bool) {
	if IsBlank(value) {
		return "", true
	}
	switch v := value.(type) {
	case string:
		return v, false
	case *string:
		return *v, false
	case fmt.Stringer:
		return v.String(), false
	}
	return fmt.Sprint(value), false
}
