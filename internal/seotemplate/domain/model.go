package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// SeoTemplate is reusable SEO metadata for one (entityType, categoryKey)
// pair. Templates are stamped onto entity rows at create or bulk-update
// time; editing a template never rewrites rows that already resolved it.
type SeoTemplate struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoryKey    string    `json:"categoryKey" gorm:"column:category_key;uniqueIndex;not null"`
	CategoryName   string    `json:"categoryName" gorm:"column:category_name;not null"`
	EntityType     string    `json:"entityType" gorm:"column:entity_type;not null"`
	SeoTitle       string    `json:"seoTitle" gorm:"column:seo_title;not null"`
	SeoDescription string    `json:"seoDescription" gorm:"column:seo_description;not null"`
	SeoKeywords    *string   `json:"seoKeywords" gorm:"column:seo_keywords"`
	OgImage        *string   `json:"ogImage" gorm:"column:og_image"`
	CreatedAt      time.Time `json:"createdAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (SeoTemplate) TableName() string { return "seo_templates" }

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]SeoTemplate, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*SeoTemplate, error)
	FindByCategoryKey(ctx context.Context, db *gorm.DB, categoryKey string) (*SeoTemplate, error)
	FindForCategory(ctx context.Context, db *gorm.DB, entityType, categoryKey string) (*SeoTemplate, error)
	Create(ctx context.Context, db *gorm.DB, t *SeoTemplate) error
	Update(ctx context.Context, db *gorm.DB, t *SeoTemplate) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

type CreateRequest struct {
	CategoryKey    string  `json:"categoryKey"`
	CategoryName   string  `json:"categoryName"`
	EntityType     string  `json:"entityType"`
	SeoTitle       string  `json:"seoTitle"`
	SeoDescription string  `json:"seoDescription"`
	SeoKeywords    *string `json:"seoKeywords"`
	OgImage        *string `json:"ogImage"`
}

type UpdateRequest struct {
	CategoryName   string  `json:"categoryName"`
	SeoTitle       string  `json:"seoTitle"`
	SeoDescription string  `json:"seoDescription"`
	SeoKeywords    *string `json:"seoKeywords"`
	OgImage        *string `json:"ogImage"`
}

type Service interface {
	List(ctx context.Context) ([]SeoTemplate, error)
	// GetByCategoryKey returns (nil, nil) when no template exists.
	GetByCategoryKey(ctx context.Context, categoryKey string) (*SeoTemplate, error)
	// GetForCategory returns (nil, nil) when no template exists.
	GetForCategory(ctx context.Context, entityType, categoryKey string) (*SeoTemplate, error)
	Create(ctx context.Context, req CreateRequest) (*SeoTemplate, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*SeoTemplate, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrNotFound           = errors.New("template_not_found")
	ErrDuplicateKey       = errors.New("template_exists")
	ErrMissingFields      = errors.New("missing_required_fields")
	ErrTitleTooLong       = errors.New("seo_title_too_long")
	ErrDescriptionTooLong = errors.New("seo_description_too_long")
)

const (
	MaxTitleLen       = 255
	MaxDescriptionLen = 500
)
