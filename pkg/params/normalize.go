// Package params converts the heterogeneous parameter containers accepted
// at the runtime boundary into one canonical string-keyed map and merges
// declared defaults. Type coercion is deliberately deferred to validation.
package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/harun/toolbelt/pkg/tool"
)

// ErrUnsupportedShape is returned when the raw container is none of the
// supported input shapes.
var ErrUnsupportedShape = errors.New("unsupported parameter shape")

// Field is one entry of a parsed form body.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Normalize converts any supported input shape into tool.Params:
//
//   - tool.Params / map[string]string: copied as-is
//   - map[string]any: scalar values stringified, composites re-encoded as JSON
//   - url.Values: ordered multi-map from a parsed query string, first value wins
//   - []Field: parsed form body, last occurrence wins
//
// Unknown keys pass through unmodified. A nil container yields an empty map.
func Normalize(raw any) (tool.Params, error) {
	switch v := raw.(type) {
	case nil:
		return tool.Params{}, nil
	case tool.Params:
		return v.Clone(), nil
	case map[string]string:
		return FromMap(v), nil
	case map[string]any:
		return FromAnyMap(v)
	case url.Values:
		return FromValues(v), nil
	case []Field:
		return FromFields(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, raw)
	}
}

// FromMap normalizes a plain string map.
func FromMap(m map[string]string) tool.Params {
	p := make(tool.Params, len(m))
	for k, v := range m {
		p[k] = v
	}
	return p
}

// FromAnyMap normalizes a decoded JSON object. Scalars are stringified;
// nested objects and arrays are re-encoded so json-typed parameters survive
// the round trip.
func FromAnyMap(m map[string]any) (tool.Params, error) {
	p := make(tool.Params, len(m))
	for k, v := range m {
		s, err := stringify(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", k, err)
		}
		p[k] = s
	}
	return p, nil
}

// FromValues normalizes a query-string multi-map. The first value for a key
// wins, matching query-string semantics.
func FromValues(values url.Values) tool.Params {
	p := make(tool.Params, len(values))
	for k, vs := range values {
		if len(vs) == 0 {
			p[k] = ""
			continue
		}
		p[k] = vs[0]
	}
	return p
}

// FromFields normalizes a parsed form-field list. A repeated name keeps the
// last occurrence, matching form submission semantics.
func FromFields(fields []Field) tool.Params {
	p := make(tool.Params, len(fields))
	for _, f := range fields {
		p[f.Name] = f.Value
	}
	return p
}

func stringify(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case json.Number:
		return t.String(), nil
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("cannot normalize value of type %T", v)
	}
}
