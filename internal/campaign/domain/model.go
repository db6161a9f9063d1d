package domain

import (
	"context"
	"errors"
	"time"

	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("campaign_not_found")
	ErrMissingTitle = errors.New("title and content are required")
	ErrSlugTaken    = errors.New("slug_taken")
)

// Campaign is a promo page. Products holds IDs of goods from any product
// line, the page links them together.
type Campaign struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug            string         `gorm:"not null;uniqueIndex" json:"slug"`
	Title           string         `gorm:"not null" json:"title"`
	Description     *string        `gorm:"type:text" json:"description"`
	Content         string         `gorm:"type:text;not null" json:"content"`
	MetaTitle       *string        `json:"metaTitle"`
	MetaDescription *string        `gorm:"type:text" json:"metaDescription"`
	FeaturedImage   *string        `gorm:"type:text" json:"featuredImage"`
	Images          datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	Blocks          datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"blocks"`
	Tags            datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags"`
	Products        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"products"`
	SeoTitle        *string        `json:"seoTitle"`
	SeoDescription  *string        `json:"seoDescription"`
	SeoKeywords     *string        `json:"seoKeywords"`
	OgImage         *string        `gorm:"type:text" json:"ogImage"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

type CreateRequest struct {
	Slug            string         `json:"slug"`
	Title           string         `json:"title"`
	Description     *string        `json:"description"`
	Content         string         `json:"content"`
	MetaTitle       *string        `json:"metaTitle"`
	MetaDescription *string        `json:"metaDescription"`
	FeaturedImage   *string        `json:"featuredImage"`
	Images          datatypes.JSON `json:"images"`
	Blocks          datatypes.JSON `json:"blocks"`
	Tags            datatypes.JSON `json:"tags"`
	Products        datatypes.JSON `json:"products"`
	SeoTitle        *string        `json:"seoTitle"`
	SeoDescription  *string        `json:"seoDescription"`
	SeoKeywords     *string        `json:"seoKeywords"`
	OgImage         *string        `json:"ogImage"`
}

func (r CreateRequest) SeoFields() seodomain.Fields {
	return seodomain.Fields{
		Title:       r.SeoTitle,
		Description: r.SeoDescription,
		Keywords:    r.SeoKeywords,
		OgImage:     r.OgImage,
	}
}

type UpdateRequest struct {
	Slug            *string         `json:"slug"`
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	Content         *string         `json:"content"`
	MetaTitle       *string         `json:"metaTitle"`
	MetaDescription *string         `json:"metaDescription"`
	FeaturedImage   *string         `json:"featuredImage"`
	Images          *datatypes.JSON `json:"images"`
	Blocks          *datatypes.JSON `json:"blocks"`
	Tags            *datatypes.JSON `json:"tags"`
	Products        *datatypes.JSON `json:"products"`
}

type Repository interface {
	List(ctx context.Context, db *gorm.DB, f ListFilter) ([]Campaign, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Campaign, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Campaign, error)
	Create(ctx context.Context, db *gorm.DB, c *Campaign) error
	Save(ctx context.Context, db *gorm.DB, c *Campaign) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

type Service interface {
	List(ctx context.Context, f ListFilter) ([]Campaign, error)
	GetByID(ctx context.Context, id int64) (*Campaign, error)
	GetBySlug(ctx context.Context, slug string) (*Campaign, error)
	Create(ctx context.Context, req CreateRequest) (*Campaign, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Campaign, error)
	Delete(ctx context.Context, id int64) error
}
