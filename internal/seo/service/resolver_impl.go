package service

import (
	"context"

	"github.com/granitmemory/catalog/internal/category"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Templates seotemplatedomain.Service
}

type Resolver struct {
	log       *zap.Logger
	templates seotemplatedomain.Service
}

func New(p Params) seodomain.Resolver {
	return &Resolver{
		log:       p.Log.Named("seo.resolver"),
		templates: p.Templates,
	}
}

// Resolve applies the override hierarchy: entity fields win as a block, then
// the category template, then nothing. A failed template lookup downgrades to
// "no template" so entity creation is never blocked by the templates table.
func (r *Resolver) Resolve(ctx context.Context, own seodomain.Fields, entityType category.EntityType, categoryKey string) seodomain.Fields {
	if !own.Empty() {
		return own
	}

	t, err := r.templates.GetForCategory(ctx, string(entityType), categoryKey)
	if err != nil {
		r.log.Warn("seo template lookup failed",
			zap.String("entity_type", string(entityType)),
			zap.String("category_key", categoryKey),
			zap.Error(err),
		)
		return seodomain.Fields{}
	}
	if t == nil {
		return seodomain.Fields{}
	}

	title := t.SeoTitle
	description := t.SeoDescription
	return seodomain.Fields{
		Title:       &title,
		Description: &description,
		Keywords:    t.SeoKeywords,
		OgImage:     t.OgImage,
	}
}
