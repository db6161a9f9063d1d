package domain

import (
	"context"

	"gorm.io/gorm"
)

// ListFilter narrows a table scan. Label is matched against the category
// column when non-empty.
type ListFilter struct {
	Label    string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Hit      *bool
	Popular  *bool
	Limit    int
	Offset   int
}

type Repository interface {
	List(ctx context.Context, db *gorm.DB, table string, filter ListFilter) ([]Entity, error)
	FindByID(ctx context.Context, db *gorm.DB, table string, id int64) (*Entity, error)
	FindBySlug(ctx context.Context, db *gorm.DB, table, slug string) (*Entity, error)
	Create(ctx context.Context, db *gorm.DB, table string, entity *Entity) error
	Update(ctx context.Context, db *gorm.DB, table string, id int64, values map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, table string, id int64) error
}
