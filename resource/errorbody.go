package resource

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
)

// ParseErrorBody extracts per-attribute messages from a rejection body. It
// understands
//
//	{"errors": {"field": ["msg", ...]}}
//	{"errors": [{"field": "f", "message": "msg"}, ...]}
//	{"errors": ["msg", ...]}
//	{"message": "msg"} or {"error": "msg"}
//
// Messages without a field land under BaseKey. ok is false when the body has
// none of these shapes or carries no message at all.
func ParseErrorBody(body []byte) (Errors, bool) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, false
	}

	out := Errors{}
	if raw, ok := doc["errors"]; ok {
		collectErrors(out, raw)
	}
	if out.Empty() {
		for _, key := range []string{"message", "error"} {
			var msg any
			if raw, ok := doc[key]; ok && json.Unmarshal(raw, &msg) == nil {
				if s := strings.TrimSpace(cast.ToString(msg)); s != "" {
					out.Add(BaseKey, s)
					break
				}
			}
		}
	}
	return out, !out.Empty()
}

func collectErrors(out Errors, raw json.RawMessage) {
	var byField map[string]any
	if err := json.Unmarshal(raw, &byField); err == nil {
		for field, v := range byField {
			for _, msg := range messages(v) {
				out.Add(field, msg)
			}
		}
		return
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return
	}
	for _, item := range list {
		switch it := item.(type) {
		case map[string]any:
			field := firstString(it, "field", "key", "attribute")
			if field == "" {
				field = BaseKey
			}
			if msg := firstString(it, "message", "msg", "error"); msg != "" {
				out.Add(field, msg)
			}
		default:
			if msg := strings.TrimSpace(cast.ToString(it)); msg != "" {
				out.Add(BaseKey, msg)
			}
		}
	}
}

func messages(v any) []string {
	items, ok := v.([]any)
	if !ok {
		items = []any{v}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(cast.ToString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := strings.TrimSpace(cast.ToString(m[k])); s != "" {
			return s
		}
	}
	return ""
}
