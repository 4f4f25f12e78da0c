package tool

import "strings"

// ProtocolVersion identifies the tool contract version stamped into
// execution metadata.
const ProtocolVersion = "1.0"

// FieldType is the declared type of a tool parameter. The set is closed;
// validation dispatches over it with a total switch.
type FieldType string

const (
	FieldText     FieldType = "text"     // short single-line text
	FieldTextarea FieldType = "textarea" // long multi-line text
	FieldNumber   FieldType = "number"
	FieldBoolean  FieldType = "boolean"
	FieldSelect   FieldType = "select" // single choice from declared options
	FieldJSON     FieldType = "json"   // structured JSON document
	FieldFile     FieldType = "file"   // binary payload, base64-encoded
	FieldColor    FieldType = "color"  // hex color, #rgb or #rrggbb
	FieldDate     FieldType = "date"   // 2006-01-02
	FieldDateTime FieldType = "datetime"
	FieldURL      FieldType = "url"
	FieldEmail    FieldType = "email"
)

// AllFieldTypes returns every valid field type.
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldText, FieldTextarea, FieldNumber, FieldBoolean,
		FieldSelect, FieldJSON, FieldFile, FieldColor,
		FieldDate, FieldDateTime, FieldURL, FieldEmail,
	}
}

// IsValidFieldType checks if a field type is one of the closed set.
func IsValidFieldType(t FieldType) bool {
	for _, valid := range AllFieldTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// Category classifies a tool for discovery queries.
type Category string

const (
	CategoryText      Category = "text"
	CategoryCrypto    Category = "crypto"
	CategoryConverter Category = "converter"
	CategoryGenerator Category = "generator"
	CategoryWeb       Category = "web"
	CategoryData      Category = "data"
	CategoryGeneral   Category = "general"
)

// AllCategories returns all valid tool categories.
func AllCategories() []Category {
	return []Category{
		CategoryText,
		CategoryCrypto,
		CategoryConverter,
		CategoryGenerator,
		CategoryWeb,
		CategoryData,
		CategoryGeneral,
	}
}

// IsValidCategory checks if a category is valid.
func IsValidCategory(category string) bool {
	cat := Category(strings.ToLower(category))
	for _, valid := range AllCategories() {
		if cat == valid {
			return true
		}
	}
	return false
}

// Constraints carries the optional per-type restrictions of a parameter.
// Which fields apply depends on the parameter's FieldType.
type Constraints struct {
	MinLength *int     `json:"min_length,omitempty"` // text, textarea
	MaxLength *int     `json:"max_length,omitempty"` // text, textarea, file (decoded bytes)
	Min       *float64 `json:"min,omitempty"`        // number
	Max       *float64 `json:"max,omitempty"`        // number
	Pattern   string   `json:"pattern,omitempty"`    // text, textarea
	Options   []string `json:"options,omitempty"`    // select
	// JSONSchema, when set on a json parameter, is a JSON Schema document
	// the parsed value must satisfy.
	JSONSchema map[string]any `json:"json_schema,omitempty"`
}

// Dependency makes a parameter visible only when another parameter holds a
// given value. The runtime does not enforce it; consumers rendering forms do.
type Dependency struct {
	Field  string `json:"field"`
	Equals string `json:"equals"`
}

// ParameterSchema declares one parameter of a tool.
type ParameterSchema struct {
	Name        string      `json:"name"`
	Type        FieldType   `json:"type"`
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Default     string      `json:"default,omitempty"`
	HasDefault  bool        `json:"has_default,omitempty"`
	Constraints Constraints `json:"constraints,omitzero"`
	DependsOn   *Dependency `json:"depends_on,omitempty"`
}

// Example is the worked example shipped with every definition: an input map
// that validates against the parameters and the output it produces. The
// output must carry the success discriminator.
type Example struct {
	Input  map[string]string `json:"input"`
	Output map[string]any    `json:"output"`
}

// Definition is the declarative metadata and parameter schema for one tool.
// It is validated at registration and immutable thereafter.
type Definition struct {
	ID                string            `json:"id"` // lowercase, hyphen-separated slug
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Category          Category          `json:"category"`
	Tags              []string          `json:"tags,omitempty"`
	Parameters        []ParameterSchema `json:"parameters"`
	ReadOnly          bool              `json:"read_only"`
	OutputDescription string            `json:"output_description,omitempty"`
	// Example is required; a definition without one fails validation.
	Example *Example `json:"example"`
}

// Parameter returns the schema for a named parameter, or nil.
func (d Definition) Parameter(name string) *ParameterSchema {
	for i := range d.Parameters {
		if d.Parameters[i].Name == name {
			return &d.Parameters[i]
		}
	}
	return nil
}

// HasTag reports whether the definition carries the given tag.
func (d Definition) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
