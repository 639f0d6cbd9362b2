package sitedata

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a schema violation. Raw carries the offending
// model output when the caller has it, for diagnostics only.
type ValidationError struct {
	Issues []string
	Raw    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("site data validation failed: %s", strings.Join(e.Issues, "; "))
}

// imageURLPattern is the fixed path convention /images/{category}/{slug}.jpg.
var imageURLPattern = regexp.MustCompile(`^/images/[^/]+/[^/]+\.jpg$`)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the aggregate against the schema invariants: required
// keys, minimum cardinalities, unique ids per collection, and the image
// path convention. Violations are never repaired.
func Validate(data *SiteData) error {
	var issues []string

	if err := validate.Struct(data); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				issues = append(issues, describeFieldError(fe))
			}
		} else {
			issues = append(issues, err.Error())
		}
	}

	seenProducts := make(map[string]bool, len(data.Products))
	for i, p := range data.Products {
		if p.ID != "" && seenProducts[p.ID] {
			issues = append(issues, fmt.Sprintf("products[%d]: duplicate id %q", i, p.ID))
		}
		seenProducts[p.ID] = true
		if p.ImageURL != "" && !imageURLPattern.MatchString(p.ImageURL) {
			issues = append(issues, fmt.Sprintf("products[%d]: imageUrl %q does not match /images/{category}/{slug}.jpg", i, p.ImageURL))
		}
	}

	seenGallery := make(map[string]bool, len(data.GalleryItems))
	for i, g := range data.GalleryItems {
		if g.ID != "" && seenGallery[g.ID] {
			issues = append(issues, fmt.Sprintf("galleryItems[%d]: duplicate id %q", i, g.ID))
		}
		seenGallery[g.ID] = true
		if g.ImageURL != "" && !imageURLPattern.MatchString(g.ImageURL) {
			issues = append(issues, fmt.Sprintf("galleryItems[%d]: imageUrl %q does not match /images/{category}/{slug}.jpg", i, g.ImageURL))
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: required field is missing or empty", fe.Namespace())
	case "min":
		return fmt.Sprintf("%s: needs at least %s entries", fe.Namespace(), fe.Param())
	case "unique":
		return fmt.Sprintf("%s: entries must be unique", fe.Namespace())
	default:
		return fmt.Sprintf("%s: failed %q constraint", fe.Namespace(), fe.Tag())
	}
}
