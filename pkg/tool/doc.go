// Package tool defines the data contracts shared by the toolbelt runtime:
// tool definitions, parameter schemas, normalized parameters, and the
// discriminated success/failure result.
//
// Invariants:
// - Parameter names are unique within a definition.
// - Select parameters declare at least one option.
// - Every definition ships a worked example whose input validates against
//   the parameters and whose output carries the success discriminator.
// - A Result is either a success with an output payload or a failure with
//   an error message and a code from the closed ErrorCode vocabulary.
// - Metadata is stamped by the registry, never by a tool body.
//
// Usage:
//
//	def := tool.Definition{
//		ID:          "echo-upper",
//		Name:        "Echo Upper",
//		Description: "Uppercase the input text",
//		Category:    tool.CategoryText,
//		Parameters: []tool.ParameterSchema{
//			{Name: "text", Type: tool.FieldText, Description: "text to transform", Required: true},
//		},
//		Example: &tool.Example{
//			Input:  map[string]string{"text": "hi"},
//			Output: map[string]any{"success": true, "output": "HI"},
//		},
//	}
//	fn := func(ctx context.Context, p tool.Params) tool.Result {
//		return tool.OK(map[string]any{"output": strings.ToUpper(p["text"])})
//	}
package tool
