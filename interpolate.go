package lingo

import (
	"encoding/json"
	"fmt"
	"strings"
)

// M is a convenience alias for translation parameters and fragments.
type M = map[string]any

// Interpolate renders a template value against params. Placeholders use
// the %{name} format; nested parameter maps are flattened to dotted keys
// first, so %{user.name} resolves against M{"user": M{"name": ...}}.
//
// A nil value renders as an empty string. Non-scalar values are
// stringified as JSON before substitution. Placeholders without a
// matching parameter are left intact.
func Interpolate(value any, params M) string {
	if value == nil {
		return ""
	}

	template := stringify(value)
	if len(params) == 0 {
		return template
	}

	for key, val := range flattenParams(params, "") {
		template = strings.ReplaceAll(template, "%{"+key+"}", stringify(val))
	}

	return template
}

// stringify converts a leaf value to its textual form. Scalars keep
// their natural formatting; everything else goes through JSON.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(t)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	}
}

// flattenParams collapses nested parameter maps into dotted keys.
func flattenParams(params M, prefix string) M {
	flat := make(M, len(params))

	for key, value := range params {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenParams(nested, fullKey) {
				flat[k] = v
			}
			continue
		}

		flat[fullKey] = value
	}

	return flat
}

// mergeParams merges parameter maps left to right, later maps winning.
func mergeParams(params ...M) M {
	if len(params) == 0 {
		return nil
	}
	if len(params) == 1 {
		return params[0]
	}

	merged := make(M)
	for _, p := range params {
		for k, v := range p {
			merged[k] = v
		}
	}
	return merged
}
