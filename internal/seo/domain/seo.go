package domain

import (
	"context"

	"github.com/granitmemory/catalog/internal/category"
)

// Fields is the four-field SEO block shared by catalog rows, templates and
// page metadata. Nil means "not set"; empty string counts as unset too.
type Fields struct {
	Title       *string `json:"seoTitle"`
	Description *string `json:"seoDescription"`
	Keywords    *string `json:"seoKeywords"`
	OgImage     *string `json:"ogImage"`
}

// Empty reports whether none of the four fields carries a value.
func (f Fields) Empty() bool {
	return !set(f.Title) && !set(f.Description) && !set(f.Keywords) && !set(f.OgImage)
}

func set(v *string) bool {
	return v != nil && *v != ""
}

// Resolver computes the effective SEO for an entity being created. The
// override is all-or-nothing: if any entity field is set, the template is
// not consulted and absent fields stay nil.
type Resolver interface {
	Resolve(ctx context.Context, own Fields, entityType category.EntityType, categoryKey string) Fields
}
