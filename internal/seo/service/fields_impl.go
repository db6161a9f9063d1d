package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/granitmemory/catalog/internal/category"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FieldsParams struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type FieldsService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewFields(p FieldsParams) seodomain.FieldsService {
	return &FieldsService{
		db:  p.DB,
		log: p.Log.Named("seo.fields"),
	}
}

func (s *FieldsService) Get(ctx context.Context, resource string, id int64) (seodomain.Fields, error) {
	table, err := category.ResolveResource(resource)
	if err != nil {
		return seodomain.Fields{}, err
	}

	var row struct {
		SeoTitle       *string
		SeoDescription *string
		SeoKeywords    *string
		OgImage        *string
	}
	res := s.db.WithContext(ctx).Table(table).
		Select("seo_title, seo_description, seo_keywords, og_image").
		Where("id = ?", id).
		Take(&row)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return seodomain.Fields{}, seodomain.ErrEntityNotFound
	}
	if res.Error != nil {
		return seodomain.Fields{}, res.Error
	}
	return seodomain.Fields{
		Title:       row.SeoTitle,
		Description: row.SeoDescription,
		Keywords:    row.SeoKeywords,
		OgImage:     row.OgImage,
	}, nil
}

func (s *FieldsService) Update(ctx context.Context, resource string, id int64, f seodomain.Fields) (seodomain.Fields, error) {
	if f.Title != nil && utf8.RuneCountInString(*f.Title) > seodomain.MaxFieldTitleLen {
		return seodomain.Fields{}, seodomain.ErrTitleTooLong
	}
	if f.Description != nil && utf8.RuneCountInString(*f.Description) > seodomain.MaxFieldDescriptionLen {
		return seodomain.Fields{}, seodomain.ErrDescriptionTooLong
	}

	table, err := category.ResolveResource(resource)
	if err != nil {
		return seodomain.Fields{}, err
	}

	// Empty strings are stored as NULL so the row falls back to its
	// category template on the next bulk pass.
	res := s.db.WithContext(ctx).Table(table).
		Where("id = ?", id).
		Updates(map[string]any{
			"seo_title":       nullIfEmpty(f.Title),
			"seo_description": nullIfEmpty(f.Description),
			"seo_keywords":    nullIfEmpty(f.Keywords),
			"og_image":        nullIfEmpty(f.OgImage),
		})
	if res.Error != nil {
		return seodomain.Fields{}, res.Error
	}
	if res.RowsAffected == 0 {
		return seodomain.Fields{}, seodomain.ErrEntityNotFound
	}

	s.log.Info("seo fields updated", zap.String("resource", resource), zap.Int64("id", id))
	return s.Get(ctx, resource, id)
}

func nullIfEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
