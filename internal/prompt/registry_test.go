package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SubstitutesBindings(t *testing.T) {
	r := NewRegistry()

	p, system, err := r.Render(Component, map[string]string{
		"component_name": "Navbar",
		"site_data":      `{"artisanInfo":{"name":"Sarah"}}`,
	})
	require.NoError(t, err)
	assert.Contains(t, p, "Component: Navbar")
	assert.Contains(t, p, `{"artisanInfo":{"name":"Sarah"}}`)
	assert.NotContains(t, p, "{component_name}")
	assert.NotContains(t, p, "{site_data}")
	assert.Contains(t, system, "TSX")
}

func TestRender_BoundJSONKeepsBraces(t *testing.T) {
	r := NewRegistry()

	data := `{"colorPalette":{"primary":"#1A73E8"}}`
	p, _, err := r.Render(Stylesheet, map[string]string{"design_system": data})
	require.NoError(t, err)
	assert.Contains(t, p, data)
}

func TestRender_MissingBindingFails(t *testing.T) {
	r := NewRegistry()

	_, _, err := r.Render(Page, map[string]string{"page_name": "homepage"})
	require.Error(t, err)

	var berr *BindingError
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, Page, berr.Template)
	assert.Equal(t, []string{"site_data"}, berr.Missing)
}

func TestRender_UnknownTemplateFails(t *testing.T) {
	r := NewRegistry()

	_, _, err := r.Render("sitemap", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestRegistry_EachTemplateHasSystemInstruction(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{DataExtraction, Component, Page, Layout, Stylesheet} {
		tpl, ok := r.templates[id]
		require.True(t, ok, id)
		assert.NotEmpty(t, tpl.System, id)
		assert.NotEmpty(t, tpl.Required, id)
	}
}
