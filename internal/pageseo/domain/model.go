package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MaxTitleLen       = 60
	MaxDescriptionLen = 160
)

var (
	ErrNotFound           = errors.New("page_seo_not_found")
	ErrMissingFields      = errors.New("pageSlug, pageTitle, seoTitle and seoDescription are required")
	ErrDuplicateSlug      = errors.New("page_seo_already_exists")
	ErrTitleTooLong       = errors.New("seo title must not exceed 60 characters")
	ErrDescriptionTooLong = errors.New("seo description must not exceed 160 characters")
)

// PageSeo holds the head metadata of one static page, keyed by its slug.
type PageSeo struct {
	ID             int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	PageSlug       string  `gorm:"not null;uniqueIndex" json:"pageSlug"`
	PageTitle      string  `gorm:"not null" json:"pageTitle"`
	SeoTitle       string  `gorm:"not null" json:"seoTitle"`
	SeoDescription string  `gorm:"not null" json:"seoDescription"`
	SeoKeywords    *string `json:"seoKeywords"`

	OgTitle       *string `json:"ogTitle"`
	OgDescription *string `json:"ogDescription"`
	OgImage       *string `json:"ogImage"`
	OgImageWidth  int     `gorm:"default:1200" json:"ogImageWidth"`
	OgImageHeight int     `gorm:"default:630" json:"ogImageHeight"`

	TwitterTitle       *string `json:"twitterTitle"`
	TwitterDescription *string `json:"twitterDescription"`
	TwitterImage       *string `json:"twitterImage"`

	CanonicalURL *string `gorm:"column:canonical_url" json:"canonicalUrl"`
	RobotsMeta   *string `json:"robotsMeta"`
	Author       *string `json:"author"`

	SchemaMarkup datatypes.JSON `gorm:"type:jsonb" json:"schemaMarkup"`
	IsIndexed    bool           `gorm:"default:true" json:"isIndexed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (PageSeo) TableName() string {
	return "page_seo"
}

type CreateRequest struct {
	PageSlug       string  `json:"pageSlug"`
	PageTitle      string  `json:"pageTitle"`
	SeoTitle       string  `json:"seoTitle"`
	SeoDescription string  `json:"seoDescription"`
	SeoKeywords    *string `json:"seoKeywords"`
	OgImage        *string `json:"ogImage"`
}

type UpdateRequest struct {
	PageSlug       string  `json:"pageSlug"`
	PageTitle      string  `json:"pageTitle"`
	SeoTitle       string  `json:"seoTitle"`
	SeoDescription string  `json:"seoDescription"`
	SeoKeywords    *string `json:"seoKeywords"`
	OgImage        *string `json:"ogImage"`
	IsIndexed      *bool   `json:"isIndexed"`
}

type Repository interface {
	// FindAll lists page SEO rows ordered by page title.
	FindAll(ctx context.Context, db *gorm.DB) ([]PageSeo, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*PageSeo, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*PageSeo, error)
	Create(ctx context.Context, db *gorm.DB, p *PageSeo) error
	Save(ctx context.Context, db *gorm.DB, p *PageSeo) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]PageSeo, error)
	// GetBySlug returns (nil, nil) when the page has no SEO row; pages
	// without metadata are not an error for the storefront.
	GetBySlug(ctx context.Context, slug string) (*PageSeo, error)
	Create(ctx context.Context, req CreateRequest) (*PageSeo, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*PageSeo, error)
	Delete(ctx context.Context, id int64) error
}
