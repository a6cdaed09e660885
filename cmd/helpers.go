package cmd

import "math"

// Parameter helpers for MCP tool arguments, which arrive as a generic map
// with JSON number semantics (all numbers are float64).

// StringParam extracts a string parameter with a default.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// BoolParam extracts a bool parameter with a default.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// Uint64Param extracts a non-negative integer parameter with a default.
// Fractional or out-of-range numbers fall back to the default rather than
// being truncated or wrapped.
func Uint64Param(params map[string]interface{}, key string, def uint64) uint64 {
	switch v := params[key].(type) {
	case float64:
		if v >= 0 && v < math.MaxUint64 && v == math.Trunc(v) {
			return uint64(v)
		}
	case int:
		if v >= 0 {
			return uint64(v)
		}
	}
	return def
}
