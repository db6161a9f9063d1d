package service

import (
	"context"
	"strings"
	"time"

	"github.com/granitmemory/catalog/internal/work/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// allWorksLabel is the storefront's "no filter" category value.
const allWorksLabel = "Все работы"

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
		log:  p.Log.Named("work.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context, f domain.ListFilter) ([]domain.Work, error) {
	if f.Category == allWorksLabel {
		f.Category = ""
	}
	return s.repo.List(ctx, s.db, f)
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Work, error) {
	title := strings.TrimSpace(req.Title)
	image := strings.TrimSpace(req.Image)
	productType := strings.TrimSpace(req.ProductType)
	if title == "" || image == "" || productType == "" {
		return nil, domain.ErrMissingFields
	}

	w := &domain.Work{
		Title:       title,
		Description: req.Description,
		Image:       image,
		ProductID:   req.ProductID,
		ProductType: productType,
		Category:    req.Category,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, s.db, w); err != nil {
		return nil, err
	}

	s.log.Info("work created", zap.Int64("id", w.ID), zap.String("product_type", w.ProductType))
	return w, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Work, error) {
	w, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}

	if req.Title != nil {
		w.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		w.Description = req.Description
	}
	if req.Image != nil {
		w.Image = strings.TrimSpace(*req.Image)
	}
	if req.ProductID != nil {
		w.ProductID = req.ProductID
	}
	if req.ProductType != nil {
		w.ProductType = strings.TrimSpace(*req.ProductType)
	}
	if req.Category != nil {
		w.Category = req.Category
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}
	w.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, s.db, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}
	s.log.Info("work deleted", zap.Int64("id", id))
	return nil
}
