package service

import (
	"context"
	"strings"

	"github.com/granitmemory/catalog/internal/bulkseo/domain"
	"github.com/granitmemory/catalog/internal/category"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Repo      domain.Repository
	Templates seotemplatedomain.Service
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	repo      domain.Repository
	templates seotemplatedomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("bulkseo.service"),
		repo:      p.Repo,
		templates: p.Templates,
	}
}

// target is the resolved physical scope of one bulk operation.
type target struct {
	table string
	// label filters the table to the category; empty for entity types
	// without a category dimension.
	label string
}

func resolveTarget(entityType, categoryKey string) (target, error) {
	et, err := category.ParseEntityType(entityType)
	if err != nil {
		return target{}, err
	}

	if !category.HasCategories(et) {
		table, err := category.Table(et)
		if err != nil {
			return target{}, err
		}
		return target{table: table}, nil
	}

	cat, err := category.Resolve(et, categoryKey)
	if err != nil {
		return target{}, err
	}
	return target{table: cat.Table, label: cat.Label}, nil
}

func (s *Service) Preview(ctx context.Context, entityType, categoryKey string, force bool) (*domain.Preview, error) {
	t, err := s.requireTemplate(ctx, entityType, categoryKey)
	if err != nil {
		return nil, err
	}

	tgt, err := resolveTarget(entityType, categoryKey)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, s.db, tgt.table, tgt.label)
	if err != nil {
		return nil, err
	}
	withoutSeo, err := s.repo.CountWithoutSeo(ctx, s.db, tgt.table, tgt.label)
	if err != nil {
		return nil, err
	}

	willBeUpdated := withoutSeo
	if force {
		willBeUpdated = total
	}

	title := t.SeoTitle
	description := t.SeoDescription
	return &domain.Preview{
		TemplateName:    t.CategoryName,
		EntityType:      entityType,
		CategoryKey:     categoryKey,
		TotalInCategory: total,
		WithoutSeo:      withoutSeo,
		WillBeUpdated:   willBeUpdated,
		Template: seodomain.Fields{
			Title:       &title,
			Description: &description,
			Keywords:    t.SeoKeywords,
			OgImage:     t.OgImage,
		},
	}, nil
}

func (s *Service) Update(ctx context.Context, entityType, categoryKey string, force bool) (*domain.UpdateResult, error) {
	t, err := s.requireTemplate(ctx, entityType, categoryKey)
	if err != nil {
		return nil, err
	}

	tgt, err := resolveTarget(entityType, categoryKey)
	if err != nil {
		return nil, err
	}

	s.log.Info("bulk seo update started",
		zap.String("entity_type", entityType),
		zap.String("category_key", categoryKey),
		zap.Bool("force", force),
	)

	rows, err := s.repo.FindCandidates(ctx, s.db, tgt.table, tgt.label, force, domain.SafetyLimit)
	if err != nil {
		return nil, err
	}

	result := &domain.UpdateResult{Stats: domain.Stats{Total: len(rows)}}

	// Sequential, best effort: one failing row is counted and the loop
	// moves on. Nothing here runs in a transaction.
	for _, row := range rows {
		if !force && row.SeoTitle != nil && strings.TrimSpace(*row.SeoTitle) != "" {
			result.Stats.Skipped++
			continue
		}

		if err := s.repo.StampSeo(ctx, s.db, tgt.table, row.ID, t); err != nil {
			s.log.Error("bulk seo row update failed",
				zap.String("table", tgt.table),
				zap.Int64("id", row.ID),
				zap.Error(err),
			)
			result.Stats.Errors++
			result.ErrorDetails = append(result.ErrorDetails, domain.RowError{
				ID:    row.ID,
				Error: err.Error(),
			})
			continue
		}
		result.Stats.Updated++
	}

	s.log.Info("bulk seo update finished",
		zap.String("table", tgt.table),
		zap.Int("updated", result.Stats.Updated),
		zap.Int("skipped", result.Stats.Skipped),
		zap.Int("errors", result.Stats.Errors),
	)
	return result, nil
}

func (s *Service) CheckTemplate(ctx context.Context, entityType, categoryKey string) (*seotemplatedomain.SeoTemplate, error) {
	return s.templates.GetForCategory(ctx, entityType, categoryKey)
}

func (s *Service) requireTemplate(ctx context.Context, entityType, categoryKey string) (*seotemplatedomain.SeoTemplate, error) {
	t, err := s.templates.GetForCategory(ctx, entityType, categoryKey)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, seotemplatedomain.ErrNotFound
	}
	return t, nil
}
