package services

type ParamType string

const (
	ParamString  ParamType = "string"
	ParamNumber  ParamType = "number"
	ParamInteger ParamType = "integer"
)

// ParamSpec describes one model-facing tool parameter. A nil Default makes
// the parameter required.
type ParamSpec struct {
	Name        string
	Type        ParamType
	Description string
	Default     any
	Format      string
}

func (p ParamSpec) Required() bool {
	return p.Default == nil
}

// GenerateSchema renders params as a JSON Schema object. Properties without a
// type are strings; required lists parameters without defaults in declaration
// order.
func GenerateSchema(params []ParamSpec) map[string]any {
	properties := make(map[string]any, len(params))
	required := make([]string, 0, len(params))

	for _, p := range params {
		paramType := p.Type
		if paramType == "" {
			paramType = ParamString
		}

		property := map[string]any{
			"type": string(paramType),
		}
		if p.Description != "" {
			property["description"] = p.Description
		}
		if p.Default != nil {
			property["default"] = p.Default
		}
		if p.Format != "" {
			property["format"] = p.Format
		}
		properties[p.Name] = property

		if p.Required() {
			required = append(required, p.Name)
		}
	}

	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
