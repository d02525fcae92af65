package schema

import (
	"fmt"
	"sort"

	"cleansweep/models"
)

// Validator checks block payloads against the registry's schemas. It is a
// pure function of (blockType, data): no side effects, never panics, and it
// accumulates every field error instead of stopping at the first one.
type Validator struct {
	Registry *Registry
}

// NewValidator returns a validator backed by the given registry.
func NewValidator(reg *Registry) *Validator {
	return &Validator{Registry: reg}
}

// Validate checks one block's data payload against the schema for blockType.
// An unknown block type fails closed with a single error and no field checks.
func (v *Validator) Validate(blockType string, data map[string]any) models.ValidationResult {
	blockSchema, err := v.Registry.Get(blockType)
	if err != nil {
		return models.ValidationResult{Valid: false, Errors: []string{err.Error()}}
	}

	var errs []string
	for _, name := range sortedKeys(blockSchema.Fields) {
		rule := blockSchema.Fields[name]
		errs = append(errs, v.checkField(name, rule, data)...)
	}

	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateLayout checks an ordered block sequence. The layout is valid iff
// every block validates independently; cross-block invariants (such as
// duplicate order values) are deliberately not enforced.
func (v *Validator) ValidateLayout(blocks []models.Block) models.ValidationResult {
	var errs []string
	for i, block := range blocks {
		res := v.Validate(block.Type, block.Data)
		for _, e := range res.Errors {
			errs = append(errs, fmt.Sprintf("block %d (%s): %s", i, block.Type, e))
		}
	}
	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// checkField applies the rule set for a single field. If a required field is
// empty, the remaining checks for that field are skipped; other fields still
// run in full.
func (v *Validator) checkField(name string, rule models.FieldRule, data map[string]any) []string {
	value, present := data[name]

	if isEmptyValue(value, present) {
		if rule.Required {
			return []string{fmt.Sprintf("field %q (%s) is required", name, rule.Label)}
		}
		return nil
	}

	var errs []string
	switch rule.Kind {
	case models.FieldArray:
		items, ok := value.([]any)
		if !ok {
			return []string{fmt.Sprintf("field %q (%s) must be a list", name, rule.Label)}
		}
		errs = append(errs, checkCardinality(name, rule, items)...)
		if rule.ItemSchema != nil {
			errs = append(errs, v.checkItems(name, rule.ItemSchema, items)...)
		}
	case models.FieldNumber:
		// Non-numeric values are skipped for the bound check rather than
		// rejected; see the item-level pass for the same leniency.
		if num, ok := asNumber(value); ok {
			errs = append(errs, checkBounds(name, rule, num)...)
		}
	case models.FieldSelect:
		if s, ok := value.(string); ok && len(rule.Options) > 0 && !containsString(rule.Options, s) {
			errs = append(errs, fmt.Sprintf("field %q (%s) must be one of %v", name, rule.Label, rule.Options))
		}
	}
	return errs
}

// checkItems runs the required/number-bound logic of itemSchema against each
// element, labeling errors with the path field[i].subField. A non-object
// element simply has every sub-field absent, so its required rules fire.
func (v *Validator) checkItems(name string, itemSchema map[string]models.FieldRule, items []any) []string {
	var errs []string
	subNames := sortedKeys(itemSchema)
	for i, item := range items {
		itemMap, _ := item.(map[string]any)
		for _, sub := range subNames {
			subRule := itemSchema[sub]
			path := fmt.Sprintf("%s[%d].%s", name, i, sub)
			subValue, subPresent := itemMap[sub]

			if isEmptyValue(subValue, subPresent) {
				if subRule.Required {
					errs = append(errs, fmt.Sprintf("field %q (%s) is required", path, subRule.Label))
				}
				continue
			}
			if num, ok := asNumber(subValue); ok {
				errs = append(errs, checkBounds(path, subRule, num)...)
			}
		}
	}
	return errs
}

func checkCardinality(name string, rule models.FieldRule, items []any) []string {
	var errs []string
	if rule.MinItems != nil && len(items) < *rule.MinItems {
		errs = append(errs, fmt.Sprintf("field %q (%s) must have at least %d items", name, rule.Label, *rule.MinItems))
	}
	if rule.MaxItems != nil && len(items) > *rule.MaxItems {
		errs = append(errs, fmt.Sprintf("field %q (%s) must have at most %d items", name, rule.Label, *rule.MaxItems))
	}
	return errs
}

func checkBounds(name string, rule models.FieldRule, num float64) []string {
	var errs []string
	if rule.Min != nil && num < *rule.Min {
		errs = append(errs, fmt.Sprintf("field %q (%s) must be at least %v", name, rule.Label, *rule.Min))
	}
	if rule.Max != nil && num > *rule.Max {
		errs = append(errs, fmt.Sprintf("field %q (%s) must be at most %v", name, rule.Label, *rule.Max))
	}
	return errs
}

// isEmptyValue reports whether a field value counts as empty for required
// checks: absent, nil, or an empty string. The number 0 and the boolean
// false are legitimate values and are NOT empty.
func isEmptyValue(value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}

// asNumber normalizes the numeric types that JSON decoding and Go literals
// produce into a float64.
func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func sortedKeys(rules map[string]models.FieldRule) []string {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsString(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
