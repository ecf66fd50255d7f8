package resource

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/kbukum/fidor/money"
)

// Wire is the JSON object sent for a write. Absent attributes are omitted,
// never sent as null.
type Wire map[string]any

// Text sets key to v unless v is blank.
func (w Wire) Text(key, v string) Wire {
	if strings.TrimSpace(v) != "" {
		w[key] = v
	}
	return w
}

// OptText sets key to *v when v is non-nil.
func (w Wire) OptText(key string, v *string) Wire {
	if v != nil {
		w[key] = *v
	}
	return w
}

// Amount sets key to v in integer minor units when v is present.
func (w Wire) Amount(key string, v decimal.NullDecimal) Wire {
	if v.Valid {
		w[key] = money.ToMinorUnits(v.Decimal)
	}
	return w
}

// The scalar types below decode the loosely typed values the API emits
// (ids as numbers or strings, booleans as "true" or 1). JSON null leaves a
// pointer field nil.

// Text decodes any JSON scalar into its string form.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	v, err := scalar(data)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Errorf("resource: text: %w", err)
	}
	*t = Text(s)
	return nil
}

// Ptr returns the value as *string, nil for a nil receiver.
func (t *Text) Ptr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

// String returns the value, "" for a nil receiver.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(*t)
}

// Int decodes a JSON number or numeric string.
type Int int64

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	v, err := scalar(data)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return fmt.Errorf("resource: int: %w", err)
	}
	*i = Int(n)
	return nil
}

// Flag decodes true/false, "true"/"false" and 1/0.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	v, err := scalar(data)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return fmt.Errorf("resource: flag: %w", err)
	}
	*f = Flag(b)
	return nil
}

// Ptr returns the value as *bool, nil for a nil receiver.
func (f *Flag) Ptr() *bool {
	if f == nil {
		return nil
	}
	b := bool(*f)
	return &b
}

// MinorUnits decodes an integer amount in minor units.
type MinorUnits int64

// UnmarshalJSON implements json.Unmarshaler.
func (m *MinorUnits) UnmarshalJSON(data []byte) error {
	v, err := scalar(data)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	d, err := decimal.NewFromString(cast.ToString(v))
	if err != nil {
		return fmt.Errorf("resource: amount: %w", err)
	}
	*m = MinorUnits(d.Round(0).IntPart())
	return nil
}

// Decimal converts a possibly absent wire amount to a decimal amount.
func (m *MinorUnits) Decimal() decimal.NullDecimal {
	if m == nil {
		return decimal.NullDecimal{}
	}
	return money.Amount(money.FromMinorUnits(int64(*m)))
}

// Time decodes an ISO-8601 timestamp with offset.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	v, err := scalar(data)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	parsed, err := cast.ToTimeE(v)
	if err != nil {
		return fmt.Errorf("resource: time: %w", err)
	}
	t.Time = parsed
	return nil
}

// Ptr returns the value as *time.Time, nil for a nil receiver.
func (t *Time) Ptr() *time.Time {
	if t == nil {
		return nil
	}
	tt := t.Time
	return &tt
}

func scalar(data []byte) (any, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("resource: decode scalar: %w", err)
	}
	switch v.(type) {
	case map[string]any, []any:
		return nil, fmt.Errorf("resource: expected scalar, got %s", string(data))
	}
	if n, ok := v.(json.Number); ok {
		return n.String(), nil
	}
	return v, nil
}

// AssignTo copies the value into dst when the attribute was present.
func (t *Text) AssignTo(dst *string) {
	if t != nil {
		*dst = string(*t)
	}
}

// AssignPtr points dst at a copy of the value when the attribute was present.
func (t *Text) AssignPtr(dst **string) {
	if t != nil {
		*dst = t.Ptr()
	}
}

// AssignPtr points dst at a copy of the value when the attribute was present.
func (f *Flag) AssignPtr(dst **bool) {
	if f != nil {
		*dst = f.Ptr()
	}
}

// AssignTo copies the amount into dst when the attribute was present.
func (m *MinorUnits) AssignTo(dst *decimal.NullDecimal) {
	if m != nil {
		*dst = m.Decimal()
	}
}

// AssignTo copies the timestamp into dst when the attribute was present.
func (t *Time) AssignTo(dst **time.Time) {
	if t != nil {
		*dst = t.Ptr()
	}
}
