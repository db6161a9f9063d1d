package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/granitmemory/catalog/internal/pageseo/domain"
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
		log:  p.Log.Named("pageseo.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.PageSeo, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.PageSeo, error) {
	return s.repo.FindBySlug(ctx, s.db, slug)
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.PageSeo, error) {
	slug := strings.TrimSpace(req.PageSlug)
	title := strings.TrimSpace(req.PageTitle)
	seoTitle := strings.TrimSpace(req.SeoTitle)
	seoDescription := strings.TrimSpace(req.SeoDescription)

	if slug == "" || title == "" || seoTitle == "" || seoDescription == "" {
		return nil, domain.ErrMissingFields
	}
	if err := validateLengths(seoTitle, seoDescription); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSlug
	}

	p := &domain.PageSeo{
		PageSlug:       slug,
		PageTitle:      title,
		SeoTitle:       seoTitle,
		SeoDescription: seoDescription,
		SeoKeywords:    req.SeoKeywords,
		OgImage:        req.OgImage,
		OgImageWidth:   1200,
		OgImageHeight:  630,
		IsIndexed:      true,
	}

	if err := s.repo.Create(ctx, s.db, p); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, err
	}

	s.log.Info("page seo created", zap.String("page_slug", p.PageSlug))
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.PageSeo, error) {
	slug := strings.TrimSpace(req.PageSlug)
	title := strings.TrimSpace(req.PageTitle)
	seoTitle := strings.TrimSpace(req.SeoTitle)
	seoDescription := strings.TrimSpace(req.SeoDescription)

	if slug == "" || title == "" || seoTitle == "" || seoDescription == "" {
		return nil, domain.ErrMissingFields
	}
	if err := validateLengths(seoTitle, seoDescription); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	p.PageSlug = slug
	p.PageTitle = title
	p.SeoTitle = seoTitle
	p.SeoDescription = seoDescription
	p.SeoKeywords = req.SeoKeywords
	p.OgImage = req.OgImage
	if req.IsIndexed != nil {
		p.IsIndexed = *req.IsIndexed
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, s.db, p); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, s.db, id)
}

func validateLengths(title, description string) error {
	if utf8.RuneCountInString(title) > domain.MaxTitleLen {
		return domain.ErrTitleTooLong
	}
	if utf8.RuneCountInString(description) > domain.MaxDescriptionLen {
		return domain.ErrDescriptionTooLong
	}
	return nil
}
