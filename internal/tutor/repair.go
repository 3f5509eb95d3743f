package tutor

import (
	"fmt"
	"math"
)

// Defensive field coercion for parsed model output. A wrong-typed list is an
// empty list, a missing scalar is its declared default; the repaired struct
// is always fully populated.

func strField(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}

func intField(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case float64:
		return int(math.Round(v))
	case int:
		return v
	}
	return def
}

func boolField(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func strListField(m map[string]any, key string) []string {
	arr, ok := m[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		case float64, bool:
			out = append(out, fmt.Sprint(t))
		}
	}
	return out
}

func intListField(m map[string]any, key string) []int {
	arr, ok := m[key].([]any)
	if !ok {
		return []int{}
	}
	out := make([]int, 0, len(arr))
	for _, v := range arr {
		if f, ok := v.(float64); ok {
			out = append(out, int(math.Round(f)))
		}
	}
	return out
}
