package domain

import (
	"context"
	"errors"
)

const (
	MaxFieldTitleLen       = 255
	MaxFieldDescriptionLen = 500
)

var (
	ErrEntityNotFound     = errors.New("entity_not_found")
	ErrTitleTooLong       = errors.New("seo title too long")
	ErrDescriptionTooLong = errors.New("seo description too long")
)

// FieldsService reads and writes the SEO block of a single catalog row,
// addressed by the table-oriented resource name the admin panel uses
// ("single-monuments", "fences", ...).
type FieldsService interface {
	Get(ctx context.Context, resource string, id int64) (Fields, error)
	Update(ctx context.Context, resource string, id int64, f Fields) (Fields, error)
}
