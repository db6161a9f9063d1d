package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("page_description_not_found")
	ErrMissingFields = errors.New("pageSlug and pageTitle are required")
	ErrDuplicateSlug = errors.New("page_description_already_exists")
)

// PageDescription holds the editable text blocks of one static page, keyed
// by its slug. Blocks are an ordered JSON array the frontend renders as-is.
type PageDescription struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	PageSlug  string         `gorm:"not null;uniqueIndex" json:"pageSlug"`
	PageTitle string         `gorm:"not null" json:"pageTitle"`
	Blocks    datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"blocks"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (PageDescription) TableName() string {
	return "page_descriptions"
}

type CreateRequest struct {
	PageSlug  string         `json:"pageSlug"`
	PageTitle string         `json:"pageTitle"`
	Blocks    datatypes.JSON `json:"blocks"`
}

type UpdateRequest struct {
	PageSlug  string         `json:"pageSlug"`
	PageTitle string         `json:"pageTitle"`
	Blocks    datatypes.JSON `json:"blocks"`
}

type Repository interface {
	// FindAll lists page descriptions ordered by page title.
	FindAll(ctx context.Context, db *gorm.DB) ([]PageDescription, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*PageDescription, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*PageDescription, error)
	Create(ctx context.Context, db *gorm.DB, p *PageDescription) error
	Save(ctx context.Context, db *gorm.DB, p *PageDescription) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]PageDescription, error)
	// GetBySlug returns (nil, nil) when the page has no description; pages
	// without text blocks are not an error for the storefront.
	GetBySlug(ctx context.Context, slug string) (*PageDescription, error)
	Create(ctx context.Context, req CreateRequest) (*PageDescription, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*PageDescription, error)
	Delete(ctx context.Context, id int64) error
}
