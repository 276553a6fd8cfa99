package services

import (
	"errors"

	"transaction-insights/internal/llm"
	"transaction-insights/internal/models"

	"github.com/google/uuid"
)

var (
	ErrToolNotFound = errors.New("tool not found")
)

// QueryBuilder turns an account and coerced filter arguments into a bound query.
type QueryBuilder func(accountID uuid.UUID, args ToolArguments) (models.Query, error)

type ToolSpec struct {
	Name        string
	Description string
	Params      []ParamSpec
	Build       QueryBuilder
}

type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ToolRegistry is the ordered catalog of insight tools.
type ToolRegistry struct {
	specs []ToolSpec
	index map[string]int
}

func NewToolRegistry(specs ...ToolSpec) *ToolRegistry {
	r := &ToolRegistry{
		specs: make([]ToolSpec, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}
	for _, spec := range specs {
		if i, ok := r.index[spec.Name]; ok {
			r.specs[i] = spec
			continue
		}
		r.index[spec.Name] = len(r.specs)
		r.specs = append(r.specs, spec)
	}
	return r
}

func DefaultToolRegistry() *ToolRegistry {
	return NewToolRegistry(insightTools()...)
}

func (r *ToolRegistry) Lookup(name string) (ToolSpec, bool) {
	i, ok := r.index[name]
	if !ok {
		return ToolSpec{}, false
	}
	return r.specs[i], true
}

func (r *ToolRegistry) Names() []string {
	names := make([]string, len(r.specs))
	for i, spec := range r.specs {
		names[i] = spec.Name
	}
	return names
}

func (r *ToolRegistry) ToolCatalog() []ToolDescriptor {
	catalog := make([]ToolDescriptor, len(r.specs))
	for i, spec := range r.specs {
		catalog[i] = ToolDescriptor{
			Name:        spec.Name,
			Description: spec.Description,
			Parameters:  GenerateSchema(spec.Params),
		}
	}
	return catalog
}

func (r *ToolRegistry) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, len(r.specs))
	for i, d := range r.ToolCatalog() {
		defs[i] = llm.ToolDefinition{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  d.Parameters,
		}
	}
	return defs
}
