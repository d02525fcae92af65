package schema

import "cleansweep/models"

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// defaultCatalog holds the six block types shipped with the platform. Field
// rules mirror what the page builder renders; the validator consumes them
// without knowing any type by name.
var defaultCatalog = []models.BlockSchema{
	{
		BlockType:   "intro",
		Name:        "Intro",
		Description: "Hero section with heading, supporting text and an image.",
		Fields: map[string]models.FieldRule{
			"heading":    {Kind: models.FieldText, Label: "Heading", Required: true},
			"subheading": {Kind: models.FieldText, Label: "Subheading"},
			"image":      {Kind: models.FieldImage, Label: "Hero image"},
			"show_cta":   {Kind: models.FieldBoolean, Label: "Show call to action"},
		},
		DefaultData: map[string]any{
			"heading":  "",
			"show_cta": true,
		},
	},
	{
		BlockType:   "definition",
		Name:        "Definition",
		Description: "Explains what the service includes.",
		Fields: map[string]models.FieldRule{
			"title": {Kind: models.FieldText, Label: "Title", Required: true},
			"body":  {Kind: models.FieldRichText, Label: "Body", Required: true},
		},
		DefaultData: map[string]any{
			"title": "",
			"body":  "",
		},
	},
	{
		BlockType:   "pricing",
		Name:        "Pricing",
		Description: "Sub-services with individual prices.",
		Fields: map[string]models.FieldRule{
			"service_title": {Kind: models.FieldText, Label: "Service title", Required: true},
			"subservices": {
				Kind:     models.FieldArray,
				Label:    "Sub-services",
				Required: true,
				MinItems: intPtr(1),
				ItemSchema: map[string]models.FieldRule{
					"id":               {Kind: models.FieldText, Label: "Identifier", Required: true},
					"subservice_title": {Kind: models.FieldText, Label: "Title", Required: true},
					"price":            {Kind: models.FieldNumber, Label: "Price", Required: true, Min: floatPtr(0)},
					"description":      {Kind: models.FieldTextarea, Label: "Description"},
				},
			},
		},
		DefaultData: map[string]any{
			"service_title": "",
			"subservices":   []any{},
		},
	},
	{
		BlockType:   "task_tab",
		Name:        "Task tabs",
		Description: "Tabbed list of tasks covered by the service.",
		Fields: map[string]models.FieldRule{
			"tab_title": {Kind: models.FieldText, Label: "Tab title", Required: true},
			"tasks": {
				Kind:  models.FieldArray,
				Label: "Tasks",
				ItemSchema: map[string]models.FieldRule{
					"task_text": {Kind: models.FieldText, Label: "Task", Required: true},
					"included":  {Kind: models.FieldBoolean, Label: "Included"},
				},
			},
		},
		DefaultData: map[string]any{
			"tab_title": "",
			"tasks":     []any{},
		},
	},
	{
		BlockType:   "process",
		Name:        "Process",
		Description: "Step-by-step walkthrough of how the service works.",
		Fields: map[string]models.FieldRule{
			"process_title": {Kind: models.FieldText, Label: "Process title"},
			"steps": {
				Kind:     models.FieldArray,
				Label:    "Steps",
				Required: true,
				MinItems: intPtr(1),
				MaxItems: intPtr(10),
				ItemSchema: map[string]models.FieldRule{
					"step_title": {Kind: models.FieldText, Label: "Step title", Required: true},
					"step_text":  {Kind: models.FieldTextarea, Label: "Step text", Required: true},
					"icon":       {Kind: models.FieldImage, Label: "Icon"},
				},
			},
		},
		DefaultData: map[string]any{
			"steps": []any{},
		},
	},
	{
		BlockType:   "booking",
		Name:        "Booking",
		Description: "Booking widget configuration.",
		Fields: map[string]models.FieldRule{
			"booking_title": {Kind: models.FieldText, Label: "Booking title"},
			"min_hours":     {Kind: models.FieldNumber, Label: "Minimum hours", Min: floatPtr(1), Max: floatPtr(12)},
			"layout":        {Kind: models.FieldSelect, Label: "Layout", Options: []string{"inline", "modal"}},
			"note":          {Kind: models.FieldTextarea, Label: "Note"},
		},
		DefaultData: map[string]any{
			"booking_title": "Book now",
			"min_hours":     2,
			"layout":        "inline",
		},
	},
}
