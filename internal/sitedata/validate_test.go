package sitedata

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSiteData() *SiteData {
	data := &SiteData{
		ArtisanInfo: ArtisanInfo{
			Name:    "Sarah's Pottery",
			Story:   "Hand-thrown stoneware from a small studio.",
			Contact: "sarah@pottery.com",
			Address: "12 Kiln Lane, Asheville, NC",
			Phone:   "+1-828-555-0142",
		},
		Navigation: Navigation{
			MenuItems: []MenuItem{
				{Name: "Home", Href: "/", Description: "Landing page"},
				{Name: "Products", Href: "/products", Description: "Shop"},
			},
			SocialLinks: map[string]string{"instagram": "https://instagram.com/sarahspottery"},
		},
		DesignSystem: DesignSystem{
			ColorPalette: ColorPalette{
				Primary:    "#8B5E3C",
				Secondary:  "#D9C5B2",
				Accent:     "#C97B4A",
				Background: "#FAF6F0",
				Text:       "#2E2A26",
				Muted:      "#A89F94",
			},
			Typography: Typography{
				HeadingFont: "Playfair Display",
				BodyFont:    "Montserrat",
				Sizes:       TypographySizes{H1: "3rem", H2: "2.25rem", H3: "1.5rem", Body: "1rem"},
			},
			BrandPersona: "Warm, earthy, handmade.",
			Logo:         Logo{Text: "Sarah's Pottery", Tagline: "Clay, fired with care"},
		},
		SiteSettings: SiteSettings{
			Title:       "Sarah's Pottery",
			Description: "Handmade stoneware mugs and bowls.",
			Keywords:    []string{"pottery", "handmade", "stoneware"},
			Favicon:     "/favicon.ico",
			OgImage:     "/images/og/sarahs-pottery.jpg",
		},
	}
	for i := 0; i < 4; i++ {
		data.Products = append(data.Products, Product{
			ID:          fmt.Sprintf("prod-%d", i+1),
			Name:        fmt.Sprintf("Mug %d", i+1),
			Description: "A hand-thrown mug.",
			Price:       "$25",
			Category:    "mugs",
			ImageURL:    fmt.Sprintf("/images/products/mug-%d.jpg", i+1),
		})
	}
	for i := 0; i < 6; i++ {
		data.GalleryItems = append(data.GalleryItems, GalleryItem{
			ID:          fmt.Sprintf("gal-%d", i+1),
			Name:        fmt.Sprintf("Studio shot %d", i+1),
			Description: "Behind the scenes.",
			ImageURL:    fmt.Sprintf("/images/gallery/studio-%d.jpg", i+1),
		})
	}
	return data
}

func TestValidate_AcceptsExactMinimums(t *testing.T) {
	data := validSiteData()
	require.Len(t, data.Products, 4)
	require.Len(t, data.GalleryItems, 6)
	require.NoError(t, Validate(data))
}

func TestValidate_RejectsTooFewProducts(t *testing.T) {
	data := validSiteData()
	data.Products = data.Products[:2]

	err := Validate(data)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "at least 4")
}

func TestValidate_RejectsTooFewGalleryItems(t *testing.T) {
	data := validSiteData()
	data.GalleryItems = data.GalleryItems[:5]

	var verr *ValidationError
	require.True(t, errors.As(Validate(data), &verr))
}

func TestValidate_RejectsDuplicateProductIDs(t *testing.T) {
	data := validSiteData()
	data.Products[1].ID = data.Products[0].ID

	var verr *ValidationError
	err := Validate(data)
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestValidate_RejectsBadImagePath(t *testing.T) {
	data := validSiteData()
	data.Products[0].ImageURL = "https://cdn.example.com/mug.png"

	var verr *ValidationError
	err := Validate(data)
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "/images/{category}/{slug}.jpg")
}

func TestValidate_RejectsMissingRequiredKey(t *testing.T) {
	data := validSiteData()
	data.ArtisanInfo.Contact = ""

	var verr *ValidationError
	err := Validate(data)
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "Contact")
}

func TestValidate_CollectsMultipleIssues(t *testing.T) {
	data := validSiteData()
	data.Products[0].ImageURL = "bad"
	data.GalleryItems[1].ID = data.GalleryItems[0].ID

	var verr *ValidationError
	require.True(t, errors.As(Validate(data), &verr))
	assert.GreaterOrEqual(t, len(verr.Issues), 2)
}
