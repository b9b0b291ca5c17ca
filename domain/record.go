package domain

// Record is the flat field mapping exchanged with callers: string keys to
// primitive values, never a storage row type.
type Record = map[string]any

func recString(r Record, key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

func recInt64(r Record, key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func recInt(r Record, key string) int {
	return int(recInt64(r, key))
}

func recFloat64(r Record, key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

func recBool(r Record, key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}

// recInt64Ptr distinguishes an absent (or nil) key from a present zero:
// only the former maps to nil, so a round trip never drops an explicit id.
func recInt64Ptr(r Record, key string) *int64 {
	switch v := r[key].(type) {
	case nil:
		return nil
	case *int64:
		if v == nil {
			return nil
		}
		out := *v
		return &out
	default:
		out := recInt64(r, key)
		return &out
	}
}
