package repository

import (
	"context"
	"errors"

	"github.com/granitmemory/catalog/internal/pagedescription/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.PageDescription, error) {
	var rows []domain.PageDescription
	if err := db.WithContext(ctx).Order("page_title").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.PageDescription, error) {
	var p domain.PageDescription
	err := db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.PageDescription, error) {
	var p domain.PageDescription
	err := db.WithContext(ctx).First(&p, "page_slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, p *domain.PageDescription) error {
	return db.WithContext(ctx).Create(p).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, p *domain.PageDescription) error {
	return db.WithContext(ctx).Save(p).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.PageDescription{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
