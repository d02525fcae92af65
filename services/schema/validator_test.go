package schema

import (
	"testing"

	"cleansweep/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(schemas ...models.BlockSchema) *Validator {
	reg := &Registry{schemas: make(map[string]models.BlockSchema)}
	for _, s := range schemas {
		reg.schemas[s.BlockType] = s
	}
	return NewValidator(reg)
}

func TestValidateUnknownBlockType(t *testing.T) {
	v := NewValidator(NewRegistry())

	res := v.Validate("not_a_type", map[string]any{})

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "not_a_type")
}

func TestRequiredAcceptsZeroAndFalse(t *testing.T) {
	v := newTestValidator(models.BlockSchema{
		BlockType: "widget",
		Fields: map[string]models.FieldRule{
			"count":   {Kind: models.FieldNumber, Label: "Count", Required: true},
			"enabled": {Kind: models.FieldBoolean, Label: "Enabled", Required: true},
		},
	})

	res := v.Validate("widget", map[string]any{
		"count":   0,
		"enabled": false,
	})

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestRequiredRejectsAbsentNilAndEmptyString(t *testing.T) {
	v := newTestValidator(models.BlockSchema{
		BlockType: "widget",
		Fields: map[string]models.FieldRule{
			"a": {Kind: models.FieldText, Label: "A", Required: true},
			"b": {Kind: models.FieldText, Label: "B", Required: true},
			"c": {Kind: models.FieldText, Label: "C", Required: true},
		},
	})

	res := v.Validate("widget", map[string]any{
		"b": nil,
		"c": "",
	})

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, `field "a" (A) is required`, res.Errors[0])
	assert.Equal(t, `field "b" (B) is required`, res.Errors[1])
	assert.Equal(t, `field "c" (C) is required`, res.Errors[2])
}

func TestValidatePricingNestedArray(t *testing.T) {
	v := NewValidator(NewRegistry())

	res := v.Validate("pricing", map[string]any{
		"service_title": "Deep cleaning",
		"subservices": []any{
			map[string]any{"id": "a", "subservice_title": "A"},
		},
	})

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "subservices[0].price")
}

func TestValidatePricingAcceptsZeroPrice(t *testing.T) {
	v := NewValidator(NewRegistry())

	res := v.Validate("pricing", map[string]any{
		"service_title": "Deep cleaning",
		"subservices": []any{
			map[string]any{"id": "a", "subservice_title": "A", "price": float64(0)},
		},
	})

	assert.True(t, res.Valid, "price 0 must not trip the required check: %v", res.Errors)
}

func TestValidateProcessEmptySteps(t *testing.T) {
	v := NewValidator(NewRegistry())

	res := v.Validate("process", map[string]any{
		"steps": []any{},
	})

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "at least 1")
}

func TestValidateArrayTypeMismatch(t *testing.T) {
	v := NewValidator(NewRegistry())

	res := v.Validate("process", map[string]any{
		"steps": "not a list",
	})

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "must be a list")
}

func TestValidateCardinalityAndItemErrorsAccumulate(t *testing.T) {
	maxOne := 1
	v := newTestValidator(models.BlockSchema{
		BlockType: "widget",
		Fields: map[string]models.FieldRule{
			"entries": {
				Kind:     models.FieldArray,
				Label:    "Entries",
				MaxItems: &maxOne,
				ItemSchema: map[string]models.FieldRule{
					"name": {Kind: models.FieldText, Label: "Name", Required: true},
				},
			},
		},
	})

	res := v.Validate("widget", map[string]any{
		"entries": []any{
			map[string]any{"name": "ok"},
			map[string]any{},
		},
	})

	// The bounds error does not suppress the item-level pass.
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "at most 1")
	assert.Contains(t, res.Errors[1], "entries[1].name")
}

func TestValidateNumericBoundSkipsWrongTypes(t *testing.T) {
	min := 1.0
	v := newTestValidator(models.BlockSchema{
		BlockType: "widget",
		Fields: map[string]models.FieldRule{
			"entries": {
				Kind:  models.FieldArray,
				Label: "Entries",
				ItemSchema: map[string]models.FieldRule{
					"amount": {Kind: models.FieldNumber, Label: "Amount", Min: &min},
				},
			},
		},
	})

	// A present but non-numeric amount is skipped for the bound check.
	res := v.Validate("widget", map[string]any{
		"entries": []any{
			map[string]any{"amount": "plenty"},
		},
	})
	assert.True(t, res.Valid)

	// A numeric amount below the bound is rejected.
	res = v.Validate("widget", map[string]any{
		"entries": []any{
			map[string]any{"amount": float64(0)},
		},
	})
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "entries[0].amount")
}

func TestValidateItemNotAnObject(t *testing.T) {
	v := NewValidator(NewRegistry())

	// A non-object element has every sub-field absent, so the required
	// rules of the item schema fire.
	res := v.Validate("process", map[string]any{
		"steps": []any{"just a string"},
	})

	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors[0], "steps[0].step_text")
	assert.Contains(t, res.Errors[1], "steps[0].step_title")
}

func TestValidateSelectOptions(t *testing.T) {
	v := NewValidator(NewRegistry())

	res := v.Validate("booking", map[string]any{
		"layout": "sidebar",
	})

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "layout")
}

func TestValidateLayout(t *testing.T) {
	v := NewValidator(NewRegistry())

	blocks := []models.Block{
		{Type: "intro", Order: 1, Data: map[string]any{"heading": "Welcome"}},
		{Type: "definition", Order: 2, Data: map[string]any{"title": "What we do"}},
		{Type: "bogus", Order: 3, Data: map[string]any{}},
	}

	res := v.ValidateLayout(blocks)

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "block 1 (definition)")
	assert.Contains(t, res.Errors[0], `field "body"`)
	assert.Contains(t, res.Errors[1], "block 2 (bogus)")

	// Duplicate order values are permitted; only per-block validity counts.
	valid := []models.Block{
		{Type: "intro", Order: 1, Data: map[string]any{"heading": "A"}},
		{Type: "intro", Order: 1, Data: map[string]any{"heading": "B"}},
	}
	assert.True(t, v.ValidateLayout(valid).Valid)
}
