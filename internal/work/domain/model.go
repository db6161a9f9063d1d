package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("work_not_found")
	ErrMissingFields = errors.New("title, image and productType are required")
)

// Work is a portfolio item, optionally pinned to the product it shows.
type Work struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Image       string    `gorm:"type:text;not null" json:"image"`
	ProductID   *string   `gorm:"column:product_id" json:"productId"`
	ProductType string    `gorm:"not null" json:"productType"`
	Category    *string   `json:"category"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Work) TableName() string {
	return "works"
}

type ListFilter struct {
	ProductID   string
	ProductType string
	Category    string
	// ActiveOnly hides unpublished works; the storefront always sets it.
	ActiveOnly bool
}

type CreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Image       string  `json:"image"`
	ProductID   *string `json:"productId"`
	ProductType string  `json:"productType"`
	Category    *string `json:"category"`
}

type UpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ProductID   *string `json:"productId"`
	ProductType *string `json:"productType"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

type Repository interface {
	List(ctx context.Context, db *gorm.DB, f ListFilter) ([]Work, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Work, error)
	Create(ctx context.Context, db *gorm.DB, w *Work) error
	Save(ctx context.Context, db *gorm.DB, w *Work) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

type Service interface {
	List(ctx context.Context, f ListFilter) ([]Work, error)
	Create(ctx context.Context, req CreateRequest) (*Work, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Work, error)
	Delete(ctx context.Context, id int64) error
}
