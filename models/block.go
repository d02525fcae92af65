package models

// FieldKind enumerates the closed set of field types a block schema may use.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldRichText FieldKind = "richtext"
	FieldTextarea FieldKind = "textarea"
	FieldNumber   FieldKind = "number"
	FieldBoolean  FieldKind = "boolean"
	FieldImage    FieldKind = "image"
	FieldSelect   FieldKind = "select"
	FieldArray    FieldKind = "array"
)

// FieldRule describes the validation contract for a single block field.
// For array fields, ItemSchema holds the sub-field rules applied to every
// element independently; nesting depth is unbounded in principle.
type FieldRule struct {
	Kind     FieldKind `json:"kind"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`

	// Numeric bounds, checked only when the runtime value is numeric.
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`

	// Array cardinality bounds.
	MinItems *int `json:"minItems,omitempty"`
	MaxItems *int `json:"maxItems,omitempty"`

	// Allowed values for select fields.
	Options []string `json:"options,omitempty"`

	// Sub-field rules for arrays of objects.
	ItemSchema map[string]FieldRule `json:"itemSchema,omitempty"`
}

// BlockSchema bundles the field contract for one block type. Schemas are
// loaded once at process start and never mutated afterwards; identity is
// the BlockType string.
type BlockSchema struct {
	BlockType   string               `json:"blockType"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Fields      map[string]FieldRule `json:"fields"`
	DefaultData map[string]any       `json:"defaultData"`
}

// Block is one content unit of a service page layout. Data is an open-ended
// payload expected to satisfy the schema keyed by Type. Order determines
// render sequence; duplicates are permitted.
type Block struct {
	Type  string         `bson:"type" json:"type"`
	Order int            `bson:"order" json:"order"`
	Data  map[string]any `bson:"data" json:"data"`
}

// ValidationResult carries the accumulated outcome of validating a block or
// a whole layout. Validation never panics or aborts early; every offending
// field is reported so a UI can highlight all of them at once.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
