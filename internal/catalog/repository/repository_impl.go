package repository

import (
	"context"
	"errors"

	"github.com/granitmemory/catalog/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB, table string, filter domain.ListFilter) ([]domain.Entity, error) {
	stmt := db.WithContext(ctx).Table(table)

	if filter.Label != "" {
		stmt = stmt.Where("category = ?", filter.Label)
	}
	if filter.Search != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.MinPrice != nil {
		stmt = stmt.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		stmt = stmt.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Hit != nil {
		stmt = stmt.Where("hit = ?", *filter.Hit)
	}
	if filter.Popular != nil {
		stmt = stmt.Where("popular = ?", *filter.Popular)
	}
	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		stmt = stmt.Offset(filter.Offset)
	}

	var items []domain.Entity
	if err := stmt.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, table string, id int64) (*domain.Entity, error) {
	var e domain.Entity
	err := db.WithContext(ctx).Table(table).
		Where("id = ?", id).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, table, slug string) (*domain.Entity, error) {
	var e domain.Entity
	err := db.WithContext(ctx).Table(table).
		Where("slug = ?", slug).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, table string, entity *domain.Entity) error {
	return db.WithContext(ctx).Table(table).Create(entity).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, table string, id int64, values map[string]any) error {
	res := db.WithContext(ctx).Table(table).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, table string, id int64) error {
	res := db.WithContext(ctx).Table(table).
		Where("id = ?", id).
		Delete(&domain.Entity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
