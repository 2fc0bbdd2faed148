package convert

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedType is returned when a value cannot be converted to the
// requested Go type.
var ErrUnsupportedType = errors.New("unsupported value type")

// Float64 widens a numeric value to float64.
func Float64(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%w: %T to float64", ErrUnsupportedType, v)
	}
}

// Int converts a numeric value to int. Floating-point values are accepted
// only when they hold an integral value.
func Int(v interface{}) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("%w: uint64 %d overflows int", ErrUnsupportedType, x)
		}
		return int(x), nil
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	default:
		return 0, fmt.Errorf("%w: %T to int", ErrUnsupportedType, v)
	}
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: non-integral float %v to int", ErrUnsupportedType, f)
	}
	return int(f), nil
}

// String asserts that v holds a string.
func String(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %T to string", ErrUnsupportedType, v)
	}
	return s, nil
}

// Float64s converts a slice of table cells to float64 values.
func Float64s(values []interface{}) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, err := Float64(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// Scalar normalises v to one of string, int64, float64 or bool.
// The second return value is false when v is not a scalar.
func Scalar(v interface{}) (interface{}, bool) {
	switch x := v.(type) {
	case string, bool, float64, int64:
		return x, true
	case float32:
		return float64(x), true
	case int, int8, int16, int32, uint8, uint16, uint32:
		n, _ := Int(x)
		return int64(n), true
	case uint64:
		if x > math.MaxInt64 {
			return float64(x), true
		}
		return int64(x), true
	default:
		return nil, false
	}
}
