package domain

import (
	"context"

	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
	"gorm.io/gorm"
)

// SafetyLimit caps how many rows one Update call may touch. Larger
// categories need repeated invocations.
const SafetyLimit = 1000

// Preview reports what an Update call with the same parameters would do.
// It takes no lock: a concurrent template or row edit between Preview and
// Update can make the counts stale. Accepted, not guarded.
type Preview struct {
	TemplateName    string           `json:"templateName"`
	EntityType      string           `json:"entityType"`
	CategoryKey     string           `json:"categoryKey"`
	TotalInCategory int64            `json:"totalInCategory"`
	WithoutSeo      int64            `json:"withoutSeo"`
	WillBeUpdated   int64            `json:"willBeUpdated"`
	Template        seodomain.Fields `json:"template"`
}

type Stats struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

type RowError struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

type UpdateResult struct {
	Stats        Stats
	ErrorDetails []RowError
}

// Row is the slice of an entity row the propagator needs.
type Row struct {
	ID       int64
	SeoTitle *string
}

type Repository interface {
	// Count counts rows in a table; label=="" counts the whole table.
	Count(ctx context.Context, db *gorm.DB, table, label string) (int64, error)
	// CountWithoutSeo counts rows whose seo_title is NULL or empty.
	CountWithoutSeo(ctx context.Context, db *gorm.DB, table, label string) (int64, error)
	// FindCandidates selects the rows an update would touch, capped at limit.
	FindCandidates(ctx context.Context, db *gorm.DB, table, label string, force bool, limit int) ([]Row, error)
	// StampSeo overwrites the four SEO columns of one row.
	StampSeo(ctx context.Context, db *gorm.DB, table string, id int64, t *seotemplatedomain.SeoTemplate) error
}

type Service interface {
	Preview(ctx context.Context, entityType, categoryKey string, force bool) (*Preview, error)
	Update(ctx context.Context, entityType, categoryKey string, force bool) (*UpdateResult, error)
	// CheckTemplate returns (nil, nil) when no template exists.
	CheckTemplate(ctx context.Context, entityType, categoryKey string) (*seotemplatedomain.SeoTemplate, error)
}
