package tool

// Params is the canonical flat string map a tool implementation receives,
// regardless of the wire shape the caller supplied. Absence of a key means
// the parameter was not provided; an empty string is an explicit value.
type Params map[string]string

// Get returns the value for a key and whether it was present.
func (p Params) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Has reports whether a key is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
