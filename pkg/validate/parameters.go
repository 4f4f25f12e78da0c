package validate

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"

	"github.com/harun/toolbelt/pkg/tool"
)

var (
	colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

const dateLayout = "2006-01-02"

// Parameters checks a normalized parameter bag against a definition. Every
// field is checked and every error collected; validation never stops at the
// first bad field. Unknown keys in p are ignored.
func Parameters(p tool.Params, def tool.Definition) tool.FieldErrors {
	var errs tool.FieldErrors

	for _, ps := range def.Parameters {
		value, present := p[ps.Name]
		if !present {
			if ps.Required {
				errs = append(errs, tool.FieldError{
					Field:   ps.Name,
					Message: fmt.Sprintf("parameter %q is required", ps.Name),
					Kind:    tool.KindRequired,
				})
			}
			continue
		}
		errs = append(errs, coerceField(ps, value)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// coerceField runs the type-specific coercion for one present value. The
// switch over FieldType is total; adding a field type means adding a case.
func coerceField(ps tool.ParameterSchema, value string) tool.FieldErrors {
	switch ps.Type {
	case tool.FieldText, tool.FieldTextarea:
		return checkText(ps, value)
	case tool.FieldNumber:
		return checkNumber(ps, value)
	case tool.FieldBoolean:
		return checkBoolean(ps, value)
	case tool.FieldSelect:
		return checkSelect(ps, value)
	case tool.FieldJSON:
		return checkJSON(ps, value)
	case tool.FieldFile:
		return checkFile(ps, value)
	case tool.FieldColor:
		return checkColor(ps, value)
	case tool.FieldDate:
		return checkDate(ps, value, dateLayout)
	case tool.FieldDateTime:
		return checkDate(ps, value, time.RFC3339)
	case tool.FieldURL:
		return checkURL(ps, value)
	case tool.FieldEmail:
		return checkEmail(ps, value)
	default:
		// Unreachable for definitions that passed Definition().
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("unknown field type %q", ps.Type),
			Kind:    tool.KindInvalidFieldType,
		}}
	}
}

func checkText(ps tool.ParameterSchema, value string) tool.FieldErrors {
	var errs tool.FieldErrors
	c := ps.Constraints
	length := utf8.RuneCountInString(value)

	if c.MinLength != nil && length < *c.MinLength {
		errs = append(errs, tool.FieldError{
			Field:   ps.Name,
			Message: fmt.Sprintf("must be at least %d characters, got %d", *c.MinLength, length),
			Kind:    tool.KindTooShort,
		})
	}
	if c.MaxLength != nil && length > *c.MaxLength {
		errs = append(errs, tool.FieldError{
			Field:   ps.Name,
			Message: fmt.Sprintf("must be at most %d characters, got %d", *c.MaxLength, length),
			Kind:    tool.KindTooLong,
		})
	}
	if c.Pattern != "" {
		// Compiles; Definition() rejected it otherwise.
		if re, err := regexp.Compile(c.Pattern); err == nil && !re.MatchString(value) {
			errs = append(errs, tool.FieldError{
				Field:   ps.Name,
				Message: fmt.Sprintf("does not match pattern %q", c.Pattern),
				Kind:    tool.KindPatternMismatch,
			})
		}
	}
	return errs
}

func checkNumber(ps tool.ParameterSchema, value string) tool.FieldErrors {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("%q is not a number", value),
			Kind:    tool.KindInvalidNumber,
		}}
	}
	c := ps.Constraints
	if c.Min != nil && n < *c.Min {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("must be at least %v, got %v", *c.Min, n),
			Kind:    tool.KindOutOfRange,
		}}
	}
	if c.Max != nil && n > *c.Max {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("must be at most %v, got %v", *c.Max, n),
			Kind:    tool.KindOutOfRange,
		}}
	}
	return nil
}

func checkBoolean(ps tool.ParameterSchema, value string) tool.FieldErrors {
	if _, ok := ParseBool(value); !ok {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("%q is not a boolean", value),
			Kind:    tool.KindInvalidBoolean,
		}}
	}
	return nil
}

func checkSelect(ps tool.ParameterSchema, value string) tool.FieldErrors {
	for _, opt := range ps.Constraints.Options {
		if value == opt {
			return nil
		}
	}
	return tool.FieldErrors{{
		Field:   ps.Name,
		Message: fmt.Sprintf("%q is not one of: %s", value, strings.Join(ps.Constraints.Options, ", ")),
		Kind:    tool.KindNotAnOption,
	}}
}

func checkJSON(ps tool.ParameterSchema, value string) tool.FieldErrors {
	var doc any
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("invalid JSON: %v", err),
			Kind:    tool.KindInvalidJSON,
		}}
	}
	if ps.Constraints.JSONSchema == nil {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(ps.Constraints.JSONSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("schema validation failed: %v", err),
			Kind:    tool.KindSchemaViolation,
		}}
	}
	if result.Valid() {
		return nil
	}
	var errs tool.FieldErrors
	for _, desc := range result.Errors() {
		errs = append(errs, tool.FieldError{
			Field:   ps.Name,
			Message: desc.String(),
			Kind:    tool.KindSchemaViolation,
		})
	}
	return errs
}

func checkFile(ps tool.ParameterSchema, value string) tool.FieldErrors {
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: "binary parameter must be base64-encoded",
			Kind:    tool.KindInvalidFile,
		}}
	}
	if max := ps.Constraints.MaxLength; max != nil && len(data) > *max {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("payload exceeds %d bytes", *max),
			Kind:    tool.KindTooLong,
		}}
	}
	return nil
}

func checkColor(ps tool.ParameterSchema, value string) tool.FieldErrors {
	if !colorPattern.MatchString(value) {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("%q is not a hex color", value),
			Kind:    tool.KindInvalidColor,
		}}
	}
	return nil
}

func checkDate(ps tool.ParameterSchema, value, layout string) tool.FieldErrors {
	if _, err := time.Parse(layout, value); err != nil {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("%q does not match %s", value, layout),
			Kind:    tool.KindInvalidDate,
		}}
	}
	return nil
}

func checkURL(ps tool.ParameterSchema, value string) tool.FieldErrors {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("%q is not an absolute URL", value),
			Kind:    tool.KindInvalidURL,
		}}
	}
	return nil
}

func checkEmail(ps tool.ParameterSchema, value string) tool.FieldErrors {
	if !emailPattern.MatchString(value) {
		return tool.FieldErrors{{
			Field:   ps.Name,
			Message: fmt.Sprintf("%q is not an email address", value),
			Kind:    tool.KindInvalidEmail,
		}}
	}
	return nil
}

// ParseBool maps the closed truthy/falsy token set onto a boolean. The
// second return reports whether the token was recognized.
func ParseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on", "y":
		return true, true
	case "false", "0", "no", "off", "n":
		return false, true
	default:
		return false, false
	}
}
