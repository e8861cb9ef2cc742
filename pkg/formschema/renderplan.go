package formschema

// RenderSection is one section of a render plan with its ordered fields.
type RenderSection struct {
	Section Section `json:"section"`
	Fields  []Field `json:"fields"`
}

// RenderPlan is the full input surface derived from a template: every
// resolved section in order, each with its fields and autocomplete
// bindings. Empty sections are included and render with zero fields.
type RenderPlan struct {
	TemplateID   uint                        `json:"templateId"`
	Name         string                      `json:"name"`
	FormType     string                      `json:"formType"`
	Sections     []RenderSection             `json:"sections"`
	Autocomplete map[string]AutocompleteKind `json:"autocomplete,omitempty"`
	HasFields    bool                        `json:"hasFields"`
}

// BuildRenderPlan derives the input surface for a template.
func BuildRenderPlan(t Template) RenderPlan {
	plan := RenderPlan{
		TemplateID: t.ID,
		Name:       t.Name,
		FormType:   t.FormType,
		HasFields:  len(t.Fields) > 0,
	}
	for _, s := range ResolveSections(t) {
		plan.Sections = append(plan.Sections, RenderSection{
			Section: s,
			Fields:  FieldsForSection(t, s.Name),
		})
	}
	for _, f := range t.Fields {
		if kind := AutocompleteKindOf(f); kind != AutocompleteNone {
			if plan.Autocomplete == nil {
				plan.Autocomplete = map[string]AutocompleteKind{}
			}
			plan.Autocomplete[f.Name] = kind
		}
	}
	return plan
}
