package models

import (
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// Query is a parameterized SQL statement produced by an insight tool.
// Values never appear in SQL, only in Args.
type Query struct {
	Name string
	SQL  string
	Args []interface{}
}

// Row is a single result row keyed by column name.
type Row map[string]interface{}

// Normalize converts driver-specific values into JSON-friendly ones.
// Pointers are dereferenced, byte slices become strings and timestamps
// become RFC3339 UTC.
func (r Row) Normalize() Row {
	for key, value := range r {
		value = deref(value)
		r[key] = value
		switch v := value.(type) {
		case []byte:
			r[key] = string(v)
		case time.Time:
			r[key] = v.UTC().Format(time.RFC3339)
		}
	}
	return r
}

// deref follows pointers (including *interface{}) down to the value; nil
// pointers become nil.
func deref(value any) any {
	for value != nil {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Pointer {
			return value
		}
		if rv.IsNil() {
			return nil
		}
		value = rv.Elem().Interface()
	}
	return value
}

// DecimalText renders a numeric column as exact decimal text. Text from the
// driver keeps its scale, so "15000.50" stays "15000.50". NULL is "".
func (r Row) DecimalText(key string) (string, error) {
	d, ok, err := r.Decimal(key)
	if err != nil || !ok {
		return "", err
	}
	return d.StringFixed(max(-d.Exponent(), 0)), nil
}

// Decimal reads a numeric column. The boolean is false when the column is
// absent or NULL.
func (r Row) Decimal(key string) (decimal.Decimal, bool, error) {
	value, ok := r[key]
	if !ok || value == nil {
		return decimal.Zero, false, nil
	}

	switch v := deref(value).(type) {
	case nil:
		return decimal.Zero, false, nil
	case decimal.Decimal:
		return v, true, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("column %s is not numeric: %w", key, err)
		}
		return d, true, nil
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("column %s is not numeric: %w", key, err)
		}
		return d, true, nil
	case float64:
		return decimal.NewFromFloat(v), true, nil
	case float32:
		return decimal.NewFromFloat32(v), true, nil
	case int64:
		return decimal.NewFromInt(v), true, nil
	case int32:
		return decimal.NewFromInt32(v), true, nil
	case int16:
		return decimal.NewFromInt(int64(v)), true, nil
	case int:
		return decimal.NewFromInt(int64(v)), true, nil
	default:
		return decimal.Zero, false, fmt.Errorf("column %s has unsupported type %T", key, value)
	}
}

// String reads a text column, returning "" when absent or NULL.
func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
