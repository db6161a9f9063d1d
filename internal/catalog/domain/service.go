package domain

import (
	"context"
	"errors"

	"github.com/granitmemory/catalog/internal/category"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
)

type Service interface {
	List(ctx context.Context, entityType category.EntityType, req ListRequest) ([]Entity, error)
	GetByID(ctx context.Context, entityType category.EntityType, categoryKey string, id int64) (*Entity, error)
	GetBySlug(ctx context.Context, entityType category.EntityType, categoryKey, slug string) (*Entity, error)
	Create(ctx context.Context, entityType category.EntityType, req CreateRequest) (*Entity, error)
	Update(ctx context.Context, entityType category.EntityType, req UpdateRequest) (*Entity, error)
	Delete(ctx context.Context, entityType category.EntityType, req DeleteRequest) (*Entity, error)
}

type ListRequest struct {
	CategoryKey string
	Search      string
	MinPrice    *float64
	MaxPrice    *float64
	Hit         *bool
	Popular     *bool
	Limit       int
	Offset      int
}

type CreateRequest struct {
	Slug           string            `json:"slug"`
	Name           string            `json:"name"`
	Height         *string           `json:"height"`
	Price          *Price            `json:"price"`
	OldPrice       *Price            `json:"oldPrice"`
	Discount       *Price            `json:"discount"`
	TextPrice      *string           `json:"textPrice"`
	Category       string            `json:"category"`
	Image          string            `json:"image"`
	Colors         *string           `json:"colors"`
	Options        *string           `json:"options"`
	Description    *string           `json:"description"`
	Specifications map[string]any    `json:"specifications"`
	Availability   *string           `json:"availability"`
	Hit            *bool             `json:"hit"`
	Popular        *bool             `json:"popular"`
	New            *bool             `json:"new"`
	SeoTitle       *string           `json:"seoTitle"`
	SeoDescription *string           `json:"seoDescription"`
	SeoKeywords    *string           `json:"seoKeywords"`
	OgImage        *string           `json:"ogImage"`
}

type UpdateRequest struct {
	ID          int64
	CategoryKey string

	Name           *string        `json:"name"`
	Slug           *string        `json:"slug"`
	Height         *string        `json:"height"`
	Price          *Price         `json:"price"`
	OldPrice       *Price         `json:"oldPrice"`
	Discount       *Price         `json:"discount"`
	TextPrice      *string        `json:"textPrice"`
	Image          *string        `json:"image"`
	Colors         *string        `json:"colors"`
	Options        *string        `json:"options"`
	Description    *string        `json:"description"`
	Specifications map[string]any `json:"specifications"`
	Availability   *string        `json:"availability"`
	Hit            *bool          `json:"hit"`
	Popular        *bool          `json:"popular"`
	New            *bool          `json:"new"`
	SeoTitle       *string        `json:"seoTitle"`
	SeoDescription *string        `json:"seoDescription"`
	SeoKeywords    *string        `json:"seoKeywords"`
	OgImage        *string        `json:"ogImage"`
}

// SeoFields collects the submitted entity-level SEO override.
func (r CreateRequest) SeoFields() seodomain.Fields {
	return seodomain.Fields{
		Title:       r.SeoTitle,
		Description: r.SeoDescription,
		Keywords:    r.SeoKeywords,
		OgImage:     r.OgImage,
	}
}

type DeleteRequest struct {
	ID          int64
	CategoryKey string
	// Slug, when provided, must match the stored row. Guards against
	// deleting the wrong row when ids collide across tables.
	Slug string
}

var (
	ErrNotFound     = errors.New("not_found")
	ErrInvalidName  = errors.New("invalid_name")
	ErrSlugTaken    = errors.New("slug_taken")
	ErrSlugMismatch = errors.New("slug_mismatch")
	ErrNoFields     = errors.New("no_fields_to_update")
)
