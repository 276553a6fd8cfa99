package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSchema(t *testing.T) {
	tests := []struct {
		name         string
		params       []ParamSpec
		wantRequired []string
		check        func(t *testing.T, properties map[string]any)
	}{
		{
			name:         "no parameters",
			params:       nil,
			wantRequired: []string{},
		},
		{
			name: "required and defaulted parameters",
			params: []ParamSpec{
				{Name: "param1", Type: ParamString},
				{Name: "param2", Type: ParamInteger, Default: 10},
			},
			wantRequired: []string{"param1"},
			check: func(t *testing.T, properties map[string]any) {
				param2 := properties["param2"].(map[string]any)
				assert.Equal(t, "integer", param2["type"])
				assert.Equal(t, 10, param2["default"])

				param1 := properties["param1"].(map[string]any)
				_, hasDefault := param1["default"]
				assert.False(t, hasDefault)
			},
		},
		{
			name: "untyped parameter falls back to string",
			params: []ParamSpec{
				{Name: "value"},
			},
			wantRequired: []string{"value"},
			check: func(t *testing.T, properties map[string]any) {
				assert.Equal(t, "string", properties["value"].(map[string]any)["type"])
			},
		},
		{
			name: "required keeps declaration order",
			params: []ParamSpec{
				{Name: "min_amount", Type: ParamNumber},
				{Name: "max_amount", Type: ParamNumber},
				{Name: "category"},
			},
			wantRequired: []string{"min_amount", "max_amount", "category"},
		},
		{
			name: "format and description are emitted",
			params: []ParamSpec{
				{Name: "date_str", Format: "date", Description: "Date in YYYY-MM-DD format."},
			},
			wantRequired: []string{"date_str"},
			check: func(t *testing.T, properties map[string]any) {
				prop := properties["date_str"].(map[string]any)
				assert.Equal(t, "date", prop["format"])
				assert.Equal(t, "Date in YYYY-MM-DD format.", prop["description"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := GenerateSchema(tt.params)

			assert.Equal(t, "object", schema["type"])
			properties := schema["properties"].(map[string]any)
			assert.Len(t, properties, len(tt.params))
			assert.Equal(t, tt.wantRequired, schema["required"])
			if tt.check != nil {
				tt.check(t, properties)
			}
		})
	}
}

func TestGenerateSchema_Deterministic(t *testing.T) {
	params := []ParamSpec{
		{Name: "amount", Type: ParamNumber},
		{Name: "days", Type: ParamInteger, Default: 30},
	}

	assert.Equal(t, GenerateSchema(params), GenerateSchema(params))
}
