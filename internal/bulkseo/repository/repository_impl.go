package repository

import (
	"context"

	"github.com/granitmemory/catalog/internal/bulkseo/domain"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Count(ctx context.Context, db *gorm.DB, table, label string) (int64, error) {
	stmt := db.WithContext(ctx).Table(table)
	if label != "" {
		stmt = stmt.Where("category = ?", label)
	}
	var n int64
	if err := stmt.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *repo) CountWithoutSeo(ctx context.Context, db *gorm.DB, table, label string) (int64, error) {
	stmt := db.WithContext(ctx).Table(table).
		Where("seo_title IS NULL OR seo_title = ''")
	if label != "" {
		stmt = stmt.Where("category = ?", label)
	}
	var n int64
	if err := stmt.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *repo) FindCandidates(ctx context.Context, db *gorm.DB, table, label string, force bool, limit int) ([]domain.Row, error) {
	stmt := db.WithContext(ctx).Table(table).
		Select("id, seo_title")
	if label != "" {
		stmt = stmt.Where("category = ?", label)
	}
	if !force {
		stmt = stmt.Where("seo_title IS NULL OR seo_title = ''")
	}

	var rows []domain.Row
	if err := stmt.Order("id").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) StampSeo(ctx context.Context, db *gorm.DB, table string, id int64, t *seotemplatedomain.SeoTemplate) error {
	return db.WithContext(ctx).Table(table).
		Where("id = ?", id).
		Updates(map[string]any{
			"seo_title":       t.SeoTitle,
			"seo_description": t.SeoDescription,
			"seo_keywords":    t.SeoKeywords,
			"og_image":        t.OgImage,
		}).Error
}
