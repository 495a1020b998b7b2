// File: lixenwraith/launcher/type.go
package launcher

import (
	"fmt"
	"reflect"
	"strconv"
)

// String retrieves a string value for key.
// Attempts conversion from common types if the stored value isn't already a string.
func (c *Config) String(key string) (string, error) {
	val, found := c.Get(key)
	if !found {
		return "", fmt.Errorf("key not set: %s", key)
	}
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	if strVal, ok := val.(string); ok {
		return strVal, nil
	}

	switch v := val.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case []string:
		// A single CLI token after a repeated flag still reads as a string
		if len(v) == 1 {
			return v[0], nil
		}
	}
	return "", fmt.Errorf("cannot convert type %T to string for key %s", val, key)
}

// Strings retrieves an ordered []string for key.
// Arrays from any source are accepted; a lone string becomes a one-element slice.
func (c *Config) Strings(key string) ([]string, error) {
	val, found := c.Get(key)
	if !found {
		return nil, fmt.Errorf("key not set: %s", key)
	}

	switch v := val.(type) {
	case nil:
		return nil, nil
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d of key %s is %T, not string", i, key, item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot convert type %T to []string for key %s", val, key)
}

// Int64 retrieves an int64 value for key.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (c *Config) Int64(key string) (int64, error) {
	val, found := c.Get(key)
	if !found {
		return 0, fmt.Errorf("key not set: %s", key)
	}
	if val == nil {
		return 0, fmt.Errorf("value for key %s is nil, cannot convert to int64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		maxInt64 := int64(^uint64(0) >> 1)
		if u > uint64(maxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d to int64 for key %s: overflow", u, key)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		// Truncate float to int
		return int64(v.Float()), nil
	case reflect.String:
		s := v.String()
		i, err := strconv.ParseInt(s, 0, 64) // Base 0 for auto-detection (e.g., "0xFF")
		if err == nil {
			return i, nil
		}
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("cannot convert string %q to int64 for key %s: %w", s, key, err)
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for key %s", val, key)
}

// Bool retrieves a boolean value for key.
// Attempts conversion from numeric types (0=false, non-zero=true) and parsable strings.
func (c *Config) Bool(key string) (bool, error) {
	val, found := c.Get(key)
	if !found {
		return false, fmt.Errorf("key not set: %s", key)
	}
	if val == nil {
		return false, fmt.Errorf("value for key %s is nil, cannot convert to bool", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		s := v.String()
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for key %s: %w", s, key, err)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for key %s", val, key)
}

// Float64 retrieves a float64 value for key.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (c *Config) Float64(key string) (float64, error) {
	val, found := c.Get(key)
	if !found {
		return 0.0, fmt.Errorf("key not set: %s", key)
	}
	if val == nil {
		return 0.0, fmt.Errorf("value for key %s is nil, cannot convert to float64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		s := v.String()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for key %s: %w", s, key, err)
		}
		return f, nil
	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return 0.0, fmt.Errorf("cannot convert type %T to float64 for key %s", val, key)
}
