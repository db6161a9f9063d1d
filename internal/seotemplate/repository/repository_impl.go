package repository

import (
	"context"
	"errors"

	"github.com/granitmemory/catalog/internal/seotemplate/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.SeoTemplate, error) {
	var items []domain.SeoTemplate
	err := db.WithContext(ctx).
		Order("entity_type, category_name").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.SeoTemplate, error) {
	var t domain.SeoTemplate
	err := db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repo) FindByCategoryKey(ctx context.Context, db *gorm.DB, categoryKey string) (*domain.SeoTemplate, error) {
	var t domain.SeoTemplate
	err := db.WithContext(ctx).
		Where("category_key = ?", categoryKey).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repo) FindForCategory(ctx context.Context, db *gorm.DB, entityType, categoryKey string) (*domain.SeoTemplate, error) {
	var t domain.SeoTemplate
	err := db.WithContext(ctx).
		Where("entity_type = ? AND category_key = ?", entityType, categoryKey).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, t *domain.SeoTemplate) error {
	return db.WithContext(ctx).Create(t).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, t *domain.SeoTemplate) error {
	return db.WithContext(ctx).Save(t).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Delete(&domain.SeoTemplate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
