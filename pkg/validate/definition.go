// Package validate implements the pure validation functions of the toolbelt
// protocol: checking a tool definition's shape at registration time and
// checking a normalized parameter bag against a definition before execution.
package validate

import (
	"fmt"
	"regexp"

	"github.com/xeipuuv/gojsonschema"

	"github.com/harun/toolbelt/pkg/tool"
)

// slugPattern matches lowercase hyphen-separated identifiers: "echo-upper".
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Definition checks a tool definition's shape. It returns nil when the
// definition is well formed; otherwise every problem found, not just the
// first.
func Definition(def tool.Definition) tool.FieldErrors {
	var errs tool.FieldErrors

	if def.ID == "" {
		errs = append(errs, tool.FieldError{Field: "id", Message: "identifier is required", Kind: tool.KindMissingField})
	} else if !slugPattern.MatchString(def.ID) {
		errs = append(errs, tool.FieldError{Field: "id", Message: fmt.Sprintf("identifier %q must be lowercase hyphen-separated", def.ID), Kind: tool.KindInvalidSlug})
	}
	if def.Name == "" {
		errs = append(errs, tool.FieldError{Field: "name", Message: "name is required", Kind: tool.KindMissingField})
	}
	if def.Description == "" {
		errs = append(errs, tool.FieldError{Field: "description", Message: "description is required", Kind: tool.KindMissingField})
	}
	if def.Category == "" {
		errs = append(errs, tool.FieldError{Field: "category", Message: "category is required", Kind: tool.KindMissingField})
	} else if !tool.IsValidCategory(string(def.Category)) {
		errs = append(errs, tool.FieldError{Field: "category", Message: fmt.Sprintf("invalid category %q", def.Category), Kind: tool.KindInvalidCategory})
	}

	seen := make(map[string]bool, len(def.Parameters))
	for _, ps := range def.Parameters {
		errs = append(errs, validateParameterSchema(ps, seen)...)
	}

	// Visibility dependencies may reference parameters declared later, so
	// they are checked once the whole set is known.
	for _, ps := range def.Parameters {
		dep := ps.DependsOn
		if dep == nil {
			continue
		}
		field := "parameters." + ps.Name + ".depends_on"
		if dep.Field == ps.Name {
			errs = append(errs, tool.FieldError{Field: field, Message: "parameter cannot depend on itself", Kind: tool.KindInvalidSchema})
		} else if !seen[dep.Field] {
			errs = append(errs, tool.FieldError{Field: field, Message: fmt.Sprintf("depends on undeclared parameter %q", dep.Field), Kind: tool.KindInvalidSchema})
		}
	}

	if def.Example == nil {
		errs = append(errs, tool.FieldError{Field: "example", Message: "a worked example is required", Kind: tool.KindMissingField})
	} else {
		errs = append(errs, validateExample(*def.Example, def)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateParameterSchema(ps tool.ParameterSchema, seen map[string]bool) tool.FieldErrors {
	var errs tool.FieldErrors
	field := "parameters." + ps.Name

	if ps.Name == "" {
		return tool.FieldErrors{{Field: "parameters", Message: "parameter name is required", Kind: tool.KindMissingField}}
	}
	if seen[ps.Name] {
		errs = append(errs, tool.FieldError{Field: field, Message: fmt.Sprintf("duplicate parameter name %q", ps.Name), Kind: tool.KindDuplicateName})
	}
	seen[ps.Name] = true

	if !tool.IsValidFieldType(ps.Type) {
		errs = append(errs, tool.FieldError{Field: field, Message: fmt.Sprintf("invalid field type %q", ps.Type), Kind: tool.KindInvalidFieldType})
		return errs
	}

	c := ps.Constraints
	if ps.Type == tool.FieldSelect && len(c.Options) == 0 {
		errs = append(errs, tool.FieldError{Field: field, Message: "select parameter needs at least one option", Kind: tool.KindInvalidSchema})
	}
	if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
		errs = append(errs, tool.FieldError{Field: field, Message: "min must not exceed max", Kind: tool.KindInvalidSchema})
	}
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		errs = append(errs, tool.FieldError{Field: field, Message: "min_length must not exceed max_length", Kind: tool.KindInvalidSchema})
	}
	if c.Pattern != "" {
		if _, err := regexp.Compile(c.Pattern); err != nil {
			errs = append(errs, tool.FieldError{Field: field, Message: fmt.Sprintf("pattern does not compile: %v", err), Kind: tool.KindInvalidSchema})
		}
	}
	if c.JSONSchema != nil {
		if _, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(c.JSONSchema)); err != nil {
			errs = append(errs, tool.FieldError{Field: field, Message: fmt.Sprintf("json_schema does not compile: %v", err), Kind: tool.KindInvalidSchema})
		}
	}

	// A declared default must itself coerce, so a misconfigured tool never
	// reaches a caller.
	if ps.HasDefault {
		for _, fe := range coerceField(ps, ps.Default) {
			fe.Field = field + ".default"
			fe.Message = "default value: " + fe.Message
			errs = append(errs, fe)
		}
	}

	return errs
}

func validateExample(ex tool.Example, def tool.Definition) tool.FieldErrors {
	var errs tool.FieldErrors

	input := tool.Params(ex.Input).Clone()
	for _, ps := range def.Parameters {
		if !ps.HasDefault {
			continue
		}
		if _, ok := input[ps.Name]; !ok {
			input[ps.Name] = ps.Default
		}
	}
	for _, fe := range Parameters(input, def) {
		fe.Field = "example.input." + fe.Field
		fe.Kind = tool.KindInvalidExample
		errs = append(errs, fe)
	}

	if success, ok := ex.Output["success"].(bool); !ok || !success {
		errs = append(errs, tool.FieldError{
			Field:   "example.output",
			Message: "example output must carry the success discriminator",
			Kind:    tool.KindInvalidExample,
		})
	}

	return errs
}
