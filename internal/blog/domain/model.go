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
	ErrNotFound     = errors.New("blog_not_found")
	ErrMissingTitle = errors.New("title and content are required")
	ErrSlugTaken    = errors.New("slug_taken")
)

type Blog struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug            string         `gorm:"not null;uniqueIndex" json:"slug"`
	Title           string         `gorm:"not null" json:"title"`
	Description     *string        `json:"description"`
	Content         string         `gorm:"type:text;not null" json:"content"`
	MetaTitle       *string        `json:"metaTitle"`
	MetaDescription *string        `gorm:"type:text" json:"metaDescription"`
	FeaturedImage   *string        `gorm:"type:text" json:"featuredImage"`
	Images          datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	Blocks          datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"blocks"`
	Tags            datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"tags"`
	SeoTitle        *string        `json:"seoTitle"`
	SeoDescription  *string        `json:"seoDescription"`
	SeoKeywords     *string        `json:"seoKeywords"`
	OgImage         *string        `gorm:"type:text" json:"ogImage"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (Blog) TableName() string {
	return "blogs"
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
}

type Repository interface {
	List(ctx context.Context, db *gorm.DB, f ListFilter) ([]Blog, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Blog, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Blog, error)
	Create(ctx context.Context, db *gorm.DB, b *Blog) error
	Save(ctx context.Context, db *gorm.DB, b *Blog) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

type Service interface {
	List(ctx context.Context, f ListFilter) ([]Blog, error)
	GetByID(ctx context.Context, id int64) (*Blog, error)
	GetBySlug(ctx context.Context, slug string) (*Blog, error)
	Create(ctx context.Context, req CreateRequest) (*Blog, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Blog, error)
	Delete(ctx context.Context, id int64) error
}
