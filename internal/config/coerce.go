package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Host option maps arrive with loose value types: TOML gives int64, JSON
// gives float64, YAML may give map[any]any. These helpers normalize them.

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float32:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

func toFloat(v any) (float64, error) {
	switch f := v.(type) {
	case float64:
		return f, nil
	case float32:
		return float64(f), nil
	case int:
		return float64(f), nil
	case int64:
		return float64(f), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(f), 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float", v)
	}
}

func toStringSlice(v any) ([]string, error) {
	switch s := v.(type) {
	case []string:
		return s, nil
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %v is %T, want string", item, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to string slice", v)
	}
}

func toStringIntMap(v any) (map[string]int, error) {
	out := make(map[string]int)
	switch m := v.(type) {
	case map[string]int:
		return m, nil
	case map[string]any:
		for k, item := range m {
			n, err := toInt(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[strings.ToLower(k)] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to string->int map", v)
	}
}

// toTitleMap accepts threshold->label tables whose keys may be ints,
// strings, or interface keys depending on the decoder that produced them.
func toTitleMap(v any) (map[int]string, error) {
	out := make(map[int]string)
	switch m := v.(type) {
	case map[int]string:
		return m, nil
	case map[string]string:
		for k, label := range m {
			threshold, err := strconv.Atoi(strings.TrimSpace(k))
			if err != nil {
				return nil, fmt.Errorf("threshold %q: %w", k, err)
			}
			out[threshold] = label
		}
	case map[string]any:
		for k, item := range m {
			threshold, err := strconv.Atoi(strings.TrimSpace(k))
			if err != nil {
				return nil, fmt.Errorf("threshold %q: %w", k, err)
			}
			label, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("label for %q is %T, want string", k, item)
			}
			out[threshold] = label
		}
	case map[any]any:
		for k, item := range m {
			threshold, err := toInt(k)
			if err != nil {
				return nil, fmt.Errorf("threshold %v: %w", k, err)
			}
			label, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("label for %v is %T, want string", k, item)
			}
			out[threshold] = label
		}
	default:
		return nil, fmt.Errorf("cannot convert %T to title map", v)
	}
	return out, nil
}
