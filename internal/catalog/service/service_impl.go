package service

import (
	"context"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/granitmemory/catalog/internal/catalog/domain"
	"github.com/granitmemory/catalog/internal/category"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	"github.com/granitmemory/catalog/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultListLimit = 2000

const defaultAvailability = "под заказ"

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
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
		seo:  p.Seo,
	}
}

func (s *Service) List(ctx context.Context, entityType category.EntityType, req domain.ListRequest) ([]domain.Entity, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	if req.CategoryKey == "" && entityType == category.Monuments {
		return s.listAllMonuments(ctx, req, limit)
	}

	filter := domain.ListFilter{
		Search:   req.Search,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Hit:      req.Hit,
		Popular:  req.Popular,
		Limit:    limit,
		Offset:   req.Offset,
	}

	var table string
	if req.CategoryKey == "" {
		t, err := category.Table(entityType)
		if err != nil {
			return nil, err
		}
		table = t
	} else {
		cat, err := resolveCategory(entityType, req.CategoryKey)
		if err != nil {
			return nil, err
		}
		table = cat.Table
		// Monument sub-category tables hold a single category each; only
		// shared tables need the label predicate there. Fence, accessory
		// and landscape categories all live in one table and are told
		// apart by label alone.
		if cat.Shared || entityType != category.Monuments {
			filter.Label = cat.Label
		}
	}

	return s.repo.List(ctx, s.db, table, filter)
}

// listAllMonuments merges every monument table, sorts by id and paginates
// the merged set. A failing table is skipped so one broken schema does not
// take the whole listing down.
func (s *Service) listAllMonuments(ctx context.Context, req domain.ListRequest, limit int) ([]domain.Entity, error) {
	var all []domain.Entity
	for _, cat := range category.MonumentTables() {
		filter := domain.ListFilter{
			Search:   req.Search,
			MinPrice: req.MinPrice,
			MaxPrice: req.MaxPrice,
			Hit:      req.Hit,
			Popular:  req.Popular,
		}
		if cat.Shared {
			filter.Label = cat.Label
		}
		items, err := s.repo.List(ctx, s.db, cat.Table, filter)
		if err != nil {
			s.log.Warn("monument table scan failed",
				zap.String("table", cat.Table),
				zap.Error(err),
			)
			continue
		}
		all = append(all, items...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	start := req.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (s *Service) GetByID(ctx context.Context, entityType category.EntityType, categoryKey string, id int64) (*domain.Entity, error) {
	table, err := s.tableFor(entityType, categoryKey)
	if err != nil {
		return nil, err
	}
	e, err := s.repo.FindByID(ctx, s.db, table, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *Service) GetBySlug(ctx context.Context, entityType category.EntityType, categoryKey, slug string) (*domain.Entity, error) {
	if categoryKey == "" && entityType == category.Monuments {
		for _, cat := range category.MonumentTables() {
			e, err := s.repo.FindBySlug(ctx, s.db, cat.Table, slug)
			if err != nil {
				return nil, err
			}
			if e != nil {
				return e, nil
			}
		}
		return nil, domain.ErrNotFound
	}

	cat, err := resolveCategory(entityType, categoryKey)
	var table, label string
	if err == nil {
		table = cat.Table
		if cat.Shared {
			label = cat.Label
		}
	} else if categoryKey == "" {
		table, err = category.Table(entityType)
		if err != nil {
			return nil, err
		}
	} else {
		return nil, err
	}

	e, err := s.repo.FindBySlug(ctx, s.db, table, slug)
	if err != nil {
		return nil, err
	}
	if e == nil || (label != "" && e.Category != label) {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, entityType category.EntityType, req domain.CreateRequest) (*domain.Entity, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	cat, err := resolveCategory(entityType, strings.TrimSpace(req.Category))
	if err != nil {
		return nil, err
	}

	entitySlug := strings.TrimSpace(req.Slug)
	if entitySlug == "" {
		entitySlug = slug.Make(name)
	}
	existing, err := s.repo.FindBySlug(ctx, s.db, cat.Table, entitySlug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSlugTaken
	}

	resolved := s.seo.Resolve(ctx, req.SeoFields(), entityType, cat.Key)

	availability := req.Availability
	if availability == nil && entityType == category.Monuments {
		v := defaultAvailability
		availability = &v
	}

	e := &domain.Entity{
		Slug:           entitySlug,
		Name:           name,
		Height:         req.Height,
		Price:          req.Price.Float(),
		OldPrice:       req.OldPrice.Float(),
		Discount:       req.Discount.Float(),
		TextPrice:      req.TextPrice,
		Category:       cat.Label,
		Image:          req.Image,
		Colors:         req.Colors,
		Options:        req.Options,
		Description:    req.Description,
		Availability:   availability,
		Hit:            boolValue(req.Hit),
		Popular:        boolValue(req.Popular),
		New:            boolValue(req.New),
		SeoTitle:       resolved.Title,
		SeoDescription: resolved.Description,
		SeoKeywords:    resolved.Keywords,
		OgImage:        resolved.OgImage,
	}
	if req.Specifications != nil {
		e.Specifications = datatypes.JSONMap(req.Specifications)
	}

	if err := s.repo.Create(ctx, s.db, cat.Table, e); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, entityType category.EntityType, req domain.UpdateRequest) (*domain.Entity, error) {
	values := updateValues(req)
	if len(values) == 0 {
		return nil, domain.ErrNoFields
	}

	table, err := s.tableForUpdate(ctx, entityType, req.CategoryKey, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, s.db, table, req.ID, values); err != nil {
		return nil, err
	}
	e, err := s.repo.FindByID(ctx, s.db, table, req.ID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, entityType category.EntityType, req domain.DeleteRequest) (*domain.Entity, error) {
	table, err := s.tableFor(entityType, req.CategoryKey)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.FindByID(ctx, s.db, table, req.ID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if req.Slug != "" && e.Slug != req.Slug {
		return nil, domain.ErrSlugMismatch
	}

	if err := s.repo.Delete(ctx, s.db, table, req.ID); err != nil {
		return nil, err
	}

	s.log.Info("entity deleted",
		zap.String("table", table),
		zap.Int64("id", req.ID),
		zap.String("slug", e.Slug),
	)
	return e, nil
}

// tableFor resolves the table for id-scoped operations. Monuments without a
// category default to the legacy products table.
func (s *Service) tableFor(entityType category.EntityType, categoryKey string) (string, error) {
	if categoryKey != "" {
		cat, err := resolveCategory(entityType, categoryKey)
		if err != nil {
			return "", err
		}
		return cat.Table, nil
	}
	if entityType == category.Monuments {
		return "products", nil
	}
	return category.Table(entityType)
}

// tableForUpdate additionally falls back to scanning every monument table
// when the client did not say which sub-category the row lives in.
func (s *Service) tableForUpdate(ctx context.Context, entityType category.EntityType, categoryKey string, id int64) (string, error) {
	if categoryKey != "" {
		if cat, err := resolveCategory(entityType, categoryKey); err == nil {
			return cat.Table, nil
		}
	}
	if entityType != category.Monuments {
		return category.Table(entityType)
	}

	for _, cat := range category.MonumentTables() {
		e, err := s.repo.FindByID(ctx, s.db, cat.Table, id)
		if err != nil {
			return "", err
		}
		if e != nil {
			return cat.Table, nil
		}
	}
	return "", domain.ErrNotFound
}

// resolveCategory accepts both the routing key and the display label; legacy
// clients send either.
func resolveCategory(entityType category.EntityType, key string) (category.Category, error) {
	cat, err := category.Resolve(entityType, key)
	if err == nil {
		return cat, nil
	}
	if byLabel, ok := category.ResolveByLabel(entityType, key); ok {
		return byLabel, nil
	}
	return category.Category{}, err
}

func updateValues(req domain.UpdateRequest) map[string]any {
	values := map[string]any{}
	putString := func(column string, v *string) {
		if v != nil && *v != "" {
			values[column] = *v
		}
	}
	putString("name", req.Name)
	putString("slug", req.Slug)
	putString("height", req.Height)
	putString("text_price", req.TextPrice)
	putString("image", req.Image)
	putString("colors", req.Colors)
	putString("options", req.Options)
	putString("description", req.Description)
	putString("availability", req.Availability)
	putString("seo_title", req.SeoTitle)
	putString("seo_description", req.SeoDescription)
	putString("seo_keywords", req.SeoKeywords)
	putString("og_image", req.OgImage)

	if req.Price != nil {
		values["price"] = float64(*req.Price)
	}
	if req.OldPrice != nil {
		values["old_price"] = float64(*req.OldPrice)
	}
	if req.Discount != nil {
		values["discount"] = float64(*req.Discount)
	}
	if req.Specifications != nil {
		values["specifications"] = datatypes.JSONMap(req.Specifications)
	}
	if req.Hit != nil {
		values["hit"] = *req.Hit
	}
	if req.Popular != nil {
		values["popular"] = *req.Popular
	}
	if req.New != nil {
		values["new"] = *req.New
	}
	return values
}

func boolValue(v *bool) bool {
	return v != nil && *v
}
