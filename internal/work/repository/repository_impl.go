package repository

import (
	"context"
	"errors"

	"github.com/granitmemory/catalog/internal/work/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB, f domain.ListFilter) ([]domain.Work, error) {
	stmt := db.WithContext(ctx).Model(&domain.Work{})
	if f.ProductID != "" {
		stmt = stmt.Where("product_id = ?", f.ProductID)
	}
	if f.ProductType != "" {
		stmt = stmt.Where("product_type = ?", f.ProductType)
	}
	if f.Category != "" {
		stmt = stmt.Where("category = ?", f.Category)
	}
	if f.ActiveOnly {
		stmt = stmt.Where("is_active = ?", true)
	}

	var works []domain.Work
	if err := stmt.Order("created_at").Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Work, error) {
	var w domain.Work
	err := db.WithContext(ctx).First(&w, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, w *domain.Work) error {
	return db.WithContext(ctx).Create(w).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, w *domain.Work) error {
	return db.WithContext(ctx).Save(w).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Work{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
