package service

import (
	"context"
	"strings"

	"github.com/granitmemory/catalog/internal/epitaph/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultListLimit = 200

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
		log:  p.Log.Named("epitaph.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context, f domain.ListFilter) ([]domain.Epitaph, error) {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	return s.repo.List(ctx, s.db, f)
}

func (s *Service) Create(ctx context.Context, text string) (*domain.Epitaph, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrMissingText
	}

	e := &domain.Epitaph{Text: text}
	if err := s.repo.Create(ctx, s.db, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id int64, text string) (*domain.Epitaph, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrMissingText
	}

	e, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}

	e.Text = text
	if err := s.repo.Save(ctx, s.db, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}
	s.log.Info("epitaph deleted", zap.Int64("id", id))
	return nil
}
