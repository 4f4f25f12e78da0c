package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harun/toolbelt/pkg/tool"
)

func validDefinition() tool.Definition {
	return tool.Definition{
		ID:          "echo-upper",
		Name:        "Echo Upper",
		Description: "Uppercase the input",
		Category:    tool.CategoryText,
		Parameters: []tool.ParameterSchema{
			{Name: "text", Type: tool.FieldText, Description: "text", Required: true},
		},
		Example: &tool.Example{
			Input:  map[string]string{"text": "hi"},
			Output: map[string]any{"success": true, "output": "HI"},
		},
	}
}

func TestDefinition_Valid(t *testing.T) {
	assert.Nil(t, Definition(validDefinition()))
}

func TestDefinition_Invalid(t *testing.T) {
	num := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		mutate func(*tool.Definition)
		kind   tool.ErrorKind
	}{
		{
			name:   "missing id",
			mutate: func(d *tool.Definition) { d.ID = "" },
			kind:   tool.KindMissingField,
		},
		{
			name:   "uppercase id",
			mutate: func(d *tool.Definition) { d.ID = "EchoUpper" },
			kind:   tool.KindInvalidSlug,
		},
		{
			name:   "trailing hyphen",
			mutate: func(d *tool.Definition) { d.ID = "echo-" },
			kind:   tool.KindInvalidSlug,
		},
		{
			name:   "missing name",
			mutate: func(d *tool.Definition) { d.Name = "" },
			kind:   tool.KindMissingField,
		},
		{
			name:   "missing description",
			mutate: func(d *tool.Definition) { d.Description = "" },
			kind:   tool.KindMissingField,
		},
		{
			name:   "unknown category",
			mutate: func(d *tool.Definition) { d.Category = "shell" },
			kind:   tool.KindInvalidCategory,
		},
		{
			name: "duplicate parameter names",
			mutate: func(d *tool.Definition) {
				d.Parameters = append(d.Parameters, tool.ParameterSchema{
					Name: "text", Type: tool.FieldNumber,
				})
			},
			kind: tool.KindDuplicateName,
		},
		{
			name: "invalid field type",
			mutate: func(d *tool.Definition) {
				d.Parameters[0].Type = "integer"
			},
			kind: tool.KindInvalidFieldType,
		},
		{
			name: "select without options",
			mutate: func(d *tool.Definition) {
				d.Parameters[0].Type = tool.FieldSelect
			},
			kind: tool.KindInvalidSchema,
		},
		{
			name: "min greater than max",
			mutate: func(d *tool.Definition) {
				d.Parameters[0].Type = tool.FieldNumber
				d.Parameters[0].Constraints.Min = num(10)
				d.Parameters[0].Constraints.Max = num(1)
			},
			kind: tool.KindInvalidSchema,
		},
		{
			name: "pattern does not compile",
			mutate: func(d *tool.Definition) {
				d.Parameters[0].Constraints.Pattern = "(["
			},
			kind: tool.KindInvalidSchema,
		},
		{
			name: "default fails coercion",
			mutate: func(d *tool.Definition) {
				d.Parameters[0].Type = tool.FieldNumber
				d.Parameters[0].Default = "abc"
				d.Parameters[0].HasDefault = true
			},
			kind: tool.KindInvalidNumber,
		},
		{
			name:   "missing example",
			mutate: func(d *tool.Definition) { d.Example = nil },
			kind:   tool.KindMissingField,
		},
		{
			name: "depends on undeclared parameter",
			mutate: func(d *tool.Definition) {
				d.Parameters[0].DependsOn = &tool.Dependency{Field: "mode", Equals: "on"}
			},
			kind: tool.KindInvalidSchema,
		},
		{
			name: "parameter depends on itself",
			mutate: func(d *tool.Definition) {
				d.Parameters[0].DependsOn = &tool.Dependency{Field: "text", Equals: "x"}
			},
			kind: tool.KindInvalidSchema,
		},
		{
			name: "example output without success discriminator",
			mutate: func(d *tool.Definition) {
				d.Example.Output = map[string]any{"output": "HI"}
			},
			kind: tool.KindInvalidExample,
		},
		{
			name: "example input fails validation",
			mutate: func(d *tool.Definition) {
				d.Example.Input = map[string]string{}
			},
			kind: tool.KindInvalidExample,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := validDefinition()
			tt.mutate(&def)

			errs := Definition(def)
			require.NotEmpty(t, errs)

			found := false
			for _, fe := range errs {
				if fe.Kind == tt.kind {
					found = true
				}
			}
			assert.True(t, found, "expected kind %s, got %v", tt.kind, errs)
		})
	}
}

func TestDefinition_CollectsAllErrors(t *testing.T) {
	def := validDefinition()
	def.ID = "Bad ID"
	def.Name = ""
	def.Description = ""

	errs := Definition(def)
	assert.GreaterOrEqual(t, len(errs), 3)
}

func TestDefinition_ForwardDependency(t *testing.T) {
	// A dependency may reference a parameter declared after it.
	def := validDefinition()
	def.Parameters[0].DependsOn = &tool.Dependency{Field: "mode", Equals: "custom"}
	def.Parameters = append(def.Parameters, tool.ParameterSchema{
		Name: "mode", Type: tool.FieldSelect, Description: "mode",
		Default: "custom", HasDefault: true,
		Constraints: tool.Constraints{Options: []string{"custom", "plain"}},
	})

	assert.Nil(t, Definition(def))
}

func TestDefinition_ExampleUsesDefaults(t *testing.T) {
	// An example may omit parameters whose defaults fill the gap.
	def := validDefinition()
	def.Parameters = append(def.Parameters, tool.ParameterSchema{
		Name: "mode", Type: tool.FieldSelect, Description: "mode",
		Default: "fast", HasDefault: true,
		Constraints: tool.Constraints{Options: []string{"fast", "slow"}},
	})

	assert.Nil(t, Definition(def))
}
