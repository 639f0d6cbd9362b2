// Package sitedata defines the structured data extracted from an artisan
// business description. It is the single source of truth for every
// generation step: the validated aggregate is persisted as
// src/data/products.json and bound into each prompt.
package sitedata

// SiteData is the root aggregate. Immutable once produced for a run.
type SiteData struct {
	ArtisanInfo  ArtisanInfo   `json:"artisanInfo" validate:"required"`
	Products     []Product     `json:"products" validate:"required,min=4,dive"`
	GalleryItems []GalleryItem `json:"galleryItems" validate:"required,min=6,dive"`
	Navigation   Navigation    `json:"navigation" validate:"required"`
	DesignSystem DesignSystem  `json:"designSystem" validate:"required"`
	SiteSettings SiteSettings  `json:"siteSettings" validate:"required"`
}

type ArtisanInfo struct {
	Name    string `json:"name" validate:"required"`
	Story   string `json:"story" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

type Product struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Category    string `json:"category" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required"`
}

type GalleryItem struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required"`
}

type MenuItem struct {
	Name        string `json:"name" validate:"required"`
	Href        string `json:"href" validate:"required"`
	Description string `json:"description"`
}

type Navigation struct {
	MenuItems []MenuItem `json:"menuItems" validate:"required,min=1,dive"`
	// SocialLinks maps platform name to an optional profile URL.
	SocialLinks map[string]string `json:"socialLinks"`
}

type ColorPalette struct {
	Primary    string `json:"primary" validate:"required"`
	Secondary  string `json:"secondary" validate:"required"`
	Accent     string `json:"accent" validate:"required"`
	Background string `json:"background" validate:"required"`
	Text       string `json:"text" validate:"required"`
	Muted      string `json:"muted" validate:"required"`
}

type TypographySizes struct {
	H1   string `json:"h1" validate:"required"`
	H2   string `json:"h2" validate:"required"`
	H3   string `json:"h3" validate:"required"`
	Body string `json:"body" validate:"required"`
}

type Typography struct {
	HeadingFont string          `json:"headingFont" validate:"required"`
	BodyFont    string          `json:"bodyFont" validate:"required"`
	Sizes       TypographySizes `json:"sizes" validate:"required"`
}

type Logo struct {
	Text    string `json:"text" validate:"required"`
	Tagline string `json:"tagline"`
}

type DesignSystem struct {
	ColorPalette ColorPalette `json:"colorPalette" validate:"required"`
	Typography   Typography   `json:"typography" validate:"required"`
	BrandPersona string       `json:"brandPersona" validate:"required"`
	Logo         Logo         `json:"logo" validate:"required"`
}

type SiteSettings struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Keywords    []string `json:"keywords" validate:"required,min=1,unique"`
	Favicon     string   `json:"favicon" validate:"required"`
	OgImage     string   `json:"ogImage" validate:"required"`
}
