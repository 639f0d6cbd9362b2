// Package prompt holds the static prompt templates driving the generation
// pipeline, one per artifact kind, each paired with a system instruction.
package prompt

import (
	"fmt"
	"strings"
)

// Template identifiers, keyed by artifact kind.
const (
	DataExtraction = "data_extraction"
	Component      = "component"
	Page           = "page"
	Layout         = "layout"
	Stylesheet     = "stylesheet"
)

// Template is a static prompt body with {name} placeholder slots and a
// paired system instruction. Required lists the binding names that must be
// supplied at render time.
type Template struct {
	ID       string
	Body     string
	System   string
	Required []string
}

// BindingError reports a render call missing a required placeholder value.
type BindingError struct {
	Template string
	Missing  []string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("template %s: missing bindings: %s", e.Template, strings.Join(e.Missing, ", "))
}

// Registry resolves template IDs and renders prompts.
type Registry struct {
	templates map[string]Template
}

// NewRegistry returns the fixed template set.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]Template)}
	for _, t := range []Template{
		dataExtractionTemplate,
		componentTemplate,
		pageTemplate,
		layoutTemplate,
		stylesheetTemplate,
	} {
		r.templates[t.ID] = t
	}
	return r
}

// Render substitutes bindings into the template body and returns the prompt
// together with its system instruction. Placeholders use {name} syntax;
// values may contain braces (JSON payloads) without escaping.
func (r *Registry) Render(templateID string, bindings map[string]string) (prompt, system string, err error) {
	t, ok := r.templates[templateID]
	if !ok {
		return "", "", fmt.Errorf("unknown template: %s", templateID)
	}

	var missing []string
	for _, name := range t.Required {
		if _, ok := bindings[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", "", &BindingError{Template: templateID, Missing: missing}
	}

	prompt = t.Body
	for _, name := range t.Required {
		prompt = strings.ReplaceAll(prompt, "{"+name+"}", bindings[name])
	}
	return prompt, t.System, nil
}
