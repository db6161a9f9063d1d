package repository

import (
	"context"
	"errors"

	"github.com/granitmemory/catalog/internal/blog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB, f domain.ListFilter) ([]domain.Blog, error) {
	stmt := db.WithContext(ctx).Model(&domain.Blog{})
	if f.Search != "" {
		stmt = stmt.Where("title LIKE ?", "%"+f.Search+"%")
	}
	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)
	}
	if f.Offset > 0 {
		stmt = stmt.Offset(f.Offset)
	}

	var blogs []domain.Blog
	if err := stmt.Order("id").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Blog, error) {
	var b domain.Blog
	err := db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Blog, error) {
	var b domain.Blog
	err := db.WithContext(ctx).First(&b, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, b *domain.Blog) error {
	return db.WithContext(ctx).Create(b).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, b *domain.Blog) error {
	return db.WithContext(ctx).Save(b).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Blog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
