package params

import "github.com/harun/toolbelt/pkg/tool"

// ApplyDefaults merges declared defaults into p for every parameter absent
// from the caller's map. An explicitly supplied value is never overwritten,
// including an empty string. Returns the same map for chaining.
func ApplyDefaults(p tool.Params, schema []tool.ParameterSchema) tool.Params {
	if p == nil {
		p = tool.Params{}
	}
	for _, ps := range schema {
		if !ps.HasDefault {
			continue
		}
		if _, ok := p[ps.Name]; !ok {
			p[ps.Name] = ps.Default
		}
	}
	return p
}
