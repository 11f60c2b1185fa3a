// pkg/geoconv/numeric.go - Numeric coercion for decoded fields
package geoconv

// ToFloat64 widens a numeric document value to float64. Documents written by
// other drivers or by hand may hold whole numbers as int32 or int64, so every
// coordinate and radius is read through this function. Strings are never
// parsed and uint64 is rejected.
func ToFloat64(field string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	default:
		return 0, typeMismatch(field, "number", v)
	}
}

// numberField reads key from doc as a float64
func numberField(doc Document, key string) (float64, error) {
	v, ok := lookup(doc, key)
	if !ok {
		return 0, missingField(key)
	}
	return ToFloat64(key, v)
}
