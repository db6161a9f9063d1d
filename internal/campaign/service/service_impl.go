package service

import (
	"context"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/granitmemory/catalog/internal/campaign/domain"
	"github.com/granitmemory/catalog/internal/category"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	"github.com/granitmemory/catalog/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultListLimit = 50

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
	Seo  seodomain.Resolver
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
	seo  seodomain.Resolver
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("campaign.service"),
		repo: p.Repo,
		seo:  p.Seo,
	}
}

func (s *Service) List(ctx context.Context, f domain.ListFilter) ([]domain.Campaign, error) {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	return s.repo.List(ctx, s.db, f)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) GetBySlug(ctx context.Context, slugName string) (*domain.Campaign, error) {
	c, err := s.repo.FindBySlug(ctx, s.db, slugName)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Campaign, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, domain.ErrMissingTitle
	}

	campaignSlug := strings.TrimSpace(req.Slug)
	if campaignSlug == "" {
		campaignSlug = slug.Make(title)
	}

	seo := s.seo.Resolve(ctx, req.SeoFields(), category.Campaigns, string(category.Campaigns))

	c := &domain.Campaign{
		Slug:            campaignSlug,
		Title:           title,
		Description:     req.Description,
		Content:         content,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		FeaturedImage:   req.FeaturedImage,
		Images:          emptyJSONArray(req.Images),
		Blocks:          emptyJSONArray(req.Blocks),
		Tags:            emptyJSONArray(req.Tags),
		Products:        emptyJSONArray(req.Products),
		SeoTitle:        seo.Title,
		SeoDescription:  seo.Description,
		SeoKeywords:     seo.Keywords,
		OgImage:         seo.OgImage,
	}

	if err := s.repo.Create(ctx, s.db, c); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.log.Info("campaign created", zap.Int64("id", c.ID), zap.String("slug", c.Slug))
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Campaign, error) {
	c, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if req.Slug != nil {
		c.Slug = strings.TrimSpace(*req.Slug)
	}
	if req.Title != nil {
		c.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.Content != nil {
		c.Content = strings.TrimSpace(*req.Content)
	}
	if req.MetaTitle != nil {
		c.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		c.MetaDescription = req.MetaDescription
	}
	if req.FeaturedImage != nil {
		c.FeaturedImage = req.FeaturedImage
	}
	if req.Images != nil {
		c.Images = *req.Images
	}
	if req.Blocks != nil {
		c.Blocks = *req.Blocks
	}
	if req.Tags != nil {
		c.Tags = *req.Tags
	}
	if req.Products != nil {
		c.Products = *req.Products
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, s.db, c); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}
	s.log.Info("campaign deleted", zap.Int64("id", id))
	return nil
}

func emptyJSONArray(v []byte) []byte {
	if len(v) == 0 {
		return []byte("[]")
	}
	return v
}
