package service

import (
	"context"
	"strings"
	"time"

	"github.com/granitmemory/catalog/internal/pagedescription/domain"
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
		log:  p.Log.Named("pagedescription.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.PageDescription, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.PageDescription, error) {
	return s.repo.FindBySlug(ctx, s.db, slug)
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.PageDescription, error) {
	slug := strings.TrimSpace(req.PageSlug)
	title := strings.TrimSpace(req.PageTitle)
	if slug == "" || title == "" {
		return nil, domain.ErrMissingFields
	}

	existing, err := s.repo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSlug
	}

	p := &domain.PageDescription{
		PageSlug:  slug,
		PageTitle: title,
		Blocks:    emptyJSONArray(req.Blocks),
	}

	if err := s.repo.Create(ctx, s.db, p); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, err
	}

	s.log.Info("page description created", zap.String("page_slug", p.PageSlug))
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.PageDescription, error) {
	slug := strings.TrimSpace(req.PageSlug)
	title := strings.TrimSpace(req.PageTitle)
	if slug == "" || title == "" {
		return nil, domain.ErrMissingFields
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
	p.Blocks = emptyJSONArray(req.Blocks)
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

func emptyJSONArray(v []byte) []byte {
	if len(v) == 0 {
		return []byte("[]")
	}
	return v
}
