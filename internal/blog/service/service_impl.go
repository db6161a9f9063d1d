package service

import (
	"context"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/granitmemory/catalog/internal/blog/domain"
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
		log:  p.Log.Named("blog.service"),
		repo: p.Repo,
		seo:  p.Seo,
	}
}

func (s *Service) List(ctx context.Context, f domain.ListFilter) ([]domain.Blog, error) {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	return s.repo.List(ctx, s.db, f)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	b, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (s *Service) GetBySlug(ctx context.Context, slugName string) (*domain.Blog, error) {
	b, err := s.repo.FindBySlug(ctx, s.db, slugName)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Blog, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, domain.ErrMissingTitle
	}

	blogSlug := strings.TrimSpace(req.Slug)
	if blogSlug == "" {
		blogSlug = slug.Make(title)
	}

	seo := s.seo.Resolve(ctx, req.SeoFields(), category.Blogs, string(category.Blogs))

	b := &domain.Blog{
		Slug:            blogSlug,
		Title:           title,
		Description:     req.Description,
		Content:         content,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		FeaturedImage:   req.FeaturedImage,
		Images:          emptyJSONArray(req.Images),
		Blocks:          emptyJSONArray(req.Blocks),
		Tags:            emptyJSONArray(req.Tags),
		SeoTitle:        seo.Title,
		SeoDescription:  seo.Description,
		SeoKeywords:     seo.Keywords,
		OgImage:         seo.OgImage,
	}

	if err := s.repo.Create(ctx, s.db, b); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.log.Info("blog created", zap.Int64("id", b.ID), zap.String("slug", b.Slug))
	return b, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Blog, error) {
	b, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}

	if req.Slug != nil {
		b.Slug = strings.TrimSpace(*req.Slug)
	}
	if req.Title != nil {
		b.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		b.Description = req.Description
	}
	if req.Content != nil {
		b.Content = strings.TrimSpace(*req.Content)
	}
	if req.MetaTitle != nil {
		b.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		b.MetaDescription = req.MetaDescription
	}
	if req.FeaturedImage != nil {
		b.FeaturedImage = req.FeaturedImage
	}
	if req.Images != nil {
		b.Images = *req.Images
	}
	if req.Blocks != nil {
		b.Blocks = *req.Blocks
	}
	if req.Tags != nil {
		b.Tags = *req.Tags
	}
	b.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, s.db, b); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		return err
	}
	s.log.Info("blog deleted", zap.Int64("id", id))
	return nil
}

func emptyJSONArray(v []byte) []byte {
	if len(v) == 0 {
		return []byte("[]")
	}
	return v
}
