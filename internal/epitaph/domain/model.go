package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("epitaph_not_found")
	ErrMissingText = errors.New("text is required")
)

// Epitaph is one line of remembrance text offered for engraving.
type Epitaph struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Epitaph) TableName() string {
	return "epitaphs"
}

type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, db *gorm.DB, f ListFilter) ([]Epitaph, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Epitaph, error)
	Create(ctx context.Context, db *gorm.DB, e *Epitaph) error
	Save(ctx context.Context, db *gorm.DB, e *Epitaph) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

type Service interface {
	List(ctx context.Context, f ListFilter) ([]Epitaph, error)
	Create(ctx context.Context, text string) (*Epitaph, error)
	Update(ctx context.Context, id int64, text string) (*Epitaph, error)
	Delete(ctx context.Context, id int64) error
}
