package service

import (
	"context"
	"strings"
	"time"

	"github.com/granitmemory/catalog/internal/seotemplate/domain"
	"github.com/granitmemory/catalog/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("seotemplate.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.SeoTemplate, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetByCategoryKey(ctx context.Context, categoryKey string) (*domain.SeoTemplate, error) {
	return s.repo.FindByCategoryKey(ctx, s.db, strings.TrimSpace(categoryKey))
}

func (s *Service) GetForCategory(ctx context.Context, entityType, categoryKey string) (*domain.SeoTemplate, error) {
	return s.repo.FindForCategory(ctx, s.db, strings.TrimSpace(entityType), strings.TrimSpace(categoryKey))
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.SeoTemplate, error) {
	categoryKey := strings.TrimSpace(req.CategoryKey)
	categoryName := strings.TrimSpace(req.CategoryName)
	entityType := strings.TrimSpace(req.EntityType)
	title := strings.TrimSpace(req.SeoTitle)
	description := strings.TrimSpace(req.SeoDescription)

	if categoryKey == "" || categoryName == "" || entityType == "" || title == "" || description == "" {
		return nil, domain.ErrMissingFields
	}
	if err := validateLengths(title, description); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByCategoryKey(ctx, s.db, categoryKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateKey
	}

	now := time.Now().UTC()
	t := &domain.SeoTemplate{
		CategoryKey:    categoryKey,
		CategoryName:   categoryName,
		EntityType:     entityType,
		SeoTitle:       title,
		SeoDescription: description,
		SeoKeywords:    req.SeoKeywords,
		OgImage:        req.OgImage,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, s.db, t); err != nil {
		// The uniqueness check above races with concurrent creates.
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.SeoTemplate, error) {
	categoryName := strings.TrimSpace(req.CategoryName)
	title := strings.TrimSpace(req.SeoTitle)
	description := strings.TrimSpace(req.SeoDescription)

	if categoryName == "" || title == "" || description == "" {
		return nil, domain.ErrMissingFields
	}
	if err := validateLengths(title, description); err != nil {
		return nil, err
	}

	t, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	t.CategoryName = categoryName
	t.SeoTitle = title
	t.SeoDescription = description
	t.SeoKeywords = req.SeoKeywords
	t.OgImage = req.OgImage
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, s.db, id)
}

func validateLengths(title, description string) error {
	if len([]rune(title)) > domain.MaxTitleLen {
		return domain.ErrTitleTooLong
	}
	if len([]rune(description)) > domain.MaxDescriptionLen {
		return domain.ErrDescriptionTooLong
	}
	return nil
}
