package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsTaggedFence(t *testing.T) {
	raw := "```tsx\nexport default function Navbar() { return null; }\n```"
	got := Normalize(raw, Markup)
	assert.Equal(t, "export default function Navbar() { return null; }", got)
}

func TestNormalize_StripsBareFence(t *testing.T) {
	raw := "```\nbody { margin: 0; }\n```"
	got := Normalize(raw, Stylesheet)
	assert.Equal(t, "body { margin: 0; }", got)
}

func TestNormalize_StripsCSSFence(t *testing.T) {
	raw := "```css\n:root { --color-primary: #1A73E8; }\n```"
	got := Normalize(raw, Stylesheet)
	assert.Equal(t, ":root { --color-primary: #1A73E8; }", got)
}

func TestNormalize_CleanTextUnchanged(t *testing.T) {
	clean := "export default function Footer() { return null; }"
	assert.Equal(t, clean, Normalize(clean, Markup))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"```tsx\nconst x = 1;\n```",
		"```typescript\nconst x = 1;\n```",
		"const x = 1;",
		"```\ncontent\n```",
		"  padded  ",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in, Markup)
		twice := Normalize(once, Markup)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalize_AllFenceNoContentReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(" ```tsx\n```  ", Markup))
	assert.Equal(t, "", Normalize("```css\n```", Stylesheet))
	assert.Equal(t, "", Normalize("", Markup))
	assert.Equal(t, "", Normalize("   ", Markup))
}

func TestNormalize_MissingClosingFence(t *testing.T) {
	raw := "```jsx\nconst y = 2;"
	assert.Equal(t, "const y = 2;", Normalize(raw, Markup))
}
