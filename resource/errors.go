package resource

import (
	"sort"

	"github.com/kbukum/fidor/validation"
)

// BaseKey is the errors key for messages that concern the whole record.
const BaseKey = "base"

// Errors maps attribute names to their messages in the order they were
// reported.
type Errors map[string][]string

// Add appends msg to field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Get returns the messages for field.
func (e Errors) Get(field string) []string {
	return e[field]
}

// Base returns the record-level messages.
func (e Errors) Base() []string {
	return e[BaseKey]
}

// Empty reports whether there are no messages.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Keys returns the attribute names with messages, sorted.
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FullMessages renders "field message" lines, base messages unprefixed.
func (e Errors) FullMessages() []string {
	var out []string
	for _, k := range e.Keys() {
		for _, msg := range e[k] {
			if k == BaseKey {
				out = append(out, msg)
			} else {
				out = append(out, k+" "+msg)
			}
		}
	}
	return out
}

// Clone returns a deep copy.
func (e Errors) Clone() Errors {
	if e == nil {
		return Errors{}
	}
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func errorsFromFields(fieldErrors []validation.FieldError) Errors {
	return Errors(validation.Group(fieldErrors))
}
