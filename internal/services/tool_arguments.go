package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMissingArgument = errors.New("missing argument")
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

var timestampLayouts = []string{TimestampLayout, "2006-01-02T15:04:05", time.RFC3339, DateLayout}

// ToolArguments holds decoded tool-call arguments. Numbers arrive as
// json.Number when decoded with UseNumber, float64 otherwise.
type ToolArguments map[string]any

// WithDefaults returns a copy with every missing parameter set to its default.
func (a ToolArguments) WithDefaults(params []ParamSpec) ToolArguments {
	out := make(ToolArguments, len(a)+len(params))
	for k, v := range a {
		out[k] = v
	}
	for _, p := range params {
		if _, ok := out[p.Name]; !ok && p.Default != nil {
			out[p.Name] = p.Default
		}
	}
	return out
}

func (a ToolArguments) value(name string) (any, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	return v, nil
}

func (a ToolArguments) String(name string) (string, error) {
	v, err := a.value(name)
	if err != nil {
		return "", err
	}

	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return "", fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, name)
		}
		return s, nil
	case json.Number:
		return val.String(), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, name)
	}
}

func (a ToolArguments) Decimal(name string) (decimal.Decimal, error) {
	v, err := a.value(name)
	if err != nil {
		return decimal.Zero, err
	}

	var d decimal.Decimal
	switch val := v.(type) {
	case json.Number:
		d, err = decimal.NewFromString(val.String())
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(val))
	case float64:
		d = decimal.NewFromFloat(val)
	case int:
		d = decimal.NewFromInt(int64(val))
	case int64:
		d = decimal.NewFromInt(val)
	case decimal.Decimal:
		d = val
	default:
		return decimal.Zero, fmt.Errorf("%w: %s must be a number", ErrInvalidArgument, name)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidArgument, name, v)
	}
	return d, nil
}

func (a ToolArguments) Int(name string) (int, error) {
	d, err := a.Decimal(name)
	if err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArgument, name)
		}
		return 0, err
	}
	if !d.IsInteger() || d.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArgument, name)
	}
	return int(d.IntPart()), nil
}

func (a ToolArguments) Date(name string) (time.Time, error) {
	s, err := a.String(name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date in YYYY-MM-DD format", ErrInvalidArgument, name)
	}
	return t, nil
}

// Timestamp accepts a full timestamp or a bare date, interpreted as UTC.
func (a ToolArguments) Timestamp(name string) (time.Time, error) {
	s, err := a.String(name)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s must be a timestamp in YYYY-MM-DD HH:MM:SS format", ErrInvalidArgument, name)
}

func (a ToolArguments) AccountID() (uuid.UUID, error) {
	v, err := a.value("account_id")
	if err != nil {
		return uuid.Nil, err
	}

	switch val := v.(type) {
	case uuid.UUID:
		return val, nil
	case string:
		id, err := uuid.Parse(val)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: account_id must be a UUID", ErrInvalidArgument)
		}
		return id, nil
	default:
		return uuid.Nil, fmt.Errorf("%w: account_id must be a UUID", ErrInvalidArgument)
	}
}
