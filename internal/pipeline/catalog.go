package pipeline

import (
	"github.com/Elementx07/gen-ai-hackathon/internal/normalize"
	"github.com/Elementx07/gen-ai-hackathon/internal/prompt"
)

// Step is one unit of pipeline work producing exactly one output artifact.
type Step struct {
	Name       string
	OutputPath string
	TemplateID string
	Kind       normalize.Kind
}

// Catalog returns the fixed ordered step list: components, then pages,
// then layout, then the global stylesheet. Paths are relative to the
// output root.
func Catalog() []Step {
	return []Step{
		{Name: "Navbar", OutputPath: "src/components/Navbar.tsx", TemplateID: prompt.Component, Kind: normalize.Markup},
		{Name: "Footer", OutputPath: "src/components/Footer.tsx", TemplateID: prompt.Component, Kind: normalize.Markup},
		{Name: "ProductCard", OutputPath: "src/components/ProductCard.tsx", TemplateID: prompt.Component, Kind: normalize.Markup},
		{Name: "ContactForm", OutputPath: "src/components/ContactForm.tsx", TemplateID: prompt.Component, Kind: normalize.Markup},
		{Name: "homepage", OutputPath: "src/app/page.tsx", TemplateID: prompt.Page, Kind: normalize.Markup},
		{Name: "products", OutputPath: "src/app/products/page.tsx", TemplateID: prompt.Page, Kind: normalize.Markup},
		{Name: "about", OutputPath: "src/app/about/page.tsx", TemplateID: prompt.Page, Kind: normalize.Markup},
		{Name: "gallery", OutputPath: "src/app/gallery/page.tsx", TemplateID: prompt.Page, Kind: normalize.Markup},
		{Name: "contact", OutputPath: "src/app/contact/page.tsx", TemplateID: prompt.Page, Kind: normalize.Markup},
		{Name: "RootLayout", OutputPath: "src/app/layout.tsx", TemplateID: prompt.Layout, Kind: normalize.Markup},
		{Name: "GlobalsCSS", OutputPath: "src/app/globals.css", TemplateID: prompt.Stylesheet, Kind: normalize.Stylesheet},
	}
}

// DataArtifactPath is where the validated site data is persisted, relative
// to the output root. Every generation template binds this file's content.
const DataArtifactPath = "src/data/products.json"

// ReportPath is where the run report is written, relative to the output root.
const ReportPath = "sitegen_report.json"
