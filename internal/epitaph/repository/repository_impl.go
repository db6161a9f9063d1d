package repository

import (
	"context"
	"errors"

	"github.com/granitmemory/catalog/internal/epitaph/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB, f domain.ListFilter) ([]domain.Epitaph, error) {
	stmt := db.WithContext(ctx).Model(&domain.Epitaph{})
	if f.Search != "" {
		stmt = stmt.Where("text LIKE ?", "%"+f.Search+"%")
	}
	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)
	}
	if f.Offset > 0 {
		stmt = stmt.Offset(f.Offset)
	}

	var epitaphs []domain.Epitaph
	if err := stmt.Order("id").Find(&epitaphs).Error; err != nil {
		return nil, err
	}
	return epitaphs, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Epitaph, error) {
	var e domain.Epitaph
	err := db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, e *domain.Epitaph) error {
	return db.WithContext(ctx).Create(e).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, e *domain.Epitaph) error {
	return db.WithContext(ctx).Save(e).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Epitaph{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
