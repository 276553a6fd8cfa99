package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_Decimal(t *testing.T) {
	row := Row{
		"text":    "1250.50",
		"bytes":   []byte("10.25"),
		"float":   float64(3.5),
		"int":     int64(7),
		"decimal": decimal.NewFromInt(9),
		"null":    nil,
		"bad":     "abc",
		"bool":    true,
	}

	tests := []struct {
		key     string
		want    string
		present bool
		wantErr bool
	}{
		{key: "text", want: "1250.5", present: true},
		{key: "bytes", want: "10.25", present: true},
		{key: "float", want: "3.5", present: true},
		{key: "int", want: "7", present: true},
		{key: "decimal", want: "9", present: true},
		{key: "null", want: "0", present: false},
		{key: "missing", want: "0", present: false},
		{key: "bad", want: "0", wantErr: true},
		{key: "bool", want: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok, err := row.Decimal(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRow_String(t *testing.T) {
	row := Row{"a": "x", "b": []byte("y"), "c": 12, "d": nil}

	assert.Equal(t, "x", row.String("a"))
	assert.Equal(t, "y", row.String("b"))
	assert.Equal(t, "12", row.String("c"))
	assert.Equal(t, "", row.String("d"))
	assert.Equal(t, "", row.String("missing"))
}

func TestRow_Normalize(t *testing.T) {
	ts := time.Date(2024, 5, 10, 8, 30, 0, 0, time.FixedZone("WAT", 3600))
	row := Row{"narration": []byte("POS"), "date": ts, "amount": "10.00"}.Normalize()

	assert.Equal(t, "POS", row["narration"])
	assert.Equal(t, "2024-05-10T07:30:00Z", row["date"])
	assert.Equal(t, "10.00", row["amount"])
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", CircuitBreakerState(0).String())
	assert.Equal(t, "open", CircuitBreakerState(1).String())
	assert.Equal(t, "half_open", CircuitBreakerState(2).String())
	assert.Equal(t, "unknown", CircuitBreakerState(9).String())
}

func TestRow_NormalizeDereferencesPointers(t *testing.T) {
	var total any = int64(700)
	name := "salary"
	var missing *string
	row := Row{"total": &total, "category": &name, "bank": missing}.Normalize()

	assert.Equal(t, int64(700), row["total"])
	assert.Equal(t, "salary", row["category"])
	assert.Nil(t, row["bank"])

	d, ok, err := row.Decimal("total")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "700", d.String())
}

func TestRow_DecimalAcceptsInt16(t *testing.T) {
	d, ok, err := Row{"n": int16(12)}.Decimal("n")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12", d.String())
}

func TestRow_DecimalTextKeepsScale(t *testing.T) {
	row := Row{
		"text":  "15000.50",
		"bytes": []byte("123456789012.35"),
		"int":   int64(700),
		"float": 0.1,
		"null":  nil,
		"bad":   "abc",
	}

	for key, want := range map[string]string{
		"text":  "15000.50",
		"bytes": "123456789012.35",
		"int":   "700",
		"float": "0.1",
		"null":  "",
	} {
		got, err := row.DecimalText(key)
		assert.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	_, err := row.DecimalText("bad")
	assert.Error(t, err)
}
