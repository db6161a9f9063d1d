package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/granitmemory/catalog/internal/bulkseo/domain"
	"github.com/granitmemory/catalog/internal/bulkseo/repository"
	catalogdomain "github.com/granitmemory/catalog/internal/catalog/domain"
	"github.com/granitmemory/catalog/internal/category"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
	seotemplaterepository "github.com/granitmemory/catalog/internal/seotemplate/repository"
	seotemplateservice "github.com/granitmemory/catalog/internal/seotemplate/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupBulk(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.Table("fences").AutoMigrate(&catalogdomain.Entity{}))
	require.NoError(t, conn.AutoMigrate(&seotemplatedomain.SeoTemplate{}))

	templates := seotemplateservice.New(seotemplateservice.Params{
		DB:   conn,
		Log:  zap.NewNop(),
		Repo: seotemplaterepository.Provide(),
	})
	svc := New(Params{
		DB:        conn,
		Log:       zap.NewNop(),
		Repo:      repository.Provide(),
		Templates: templates,
	})
	return svc, conn
}

func seedGraniteTemplate(t *testing.T, conn *gorm.DB) {
	t.Helper()
	keywords := "ограды,гранит"
	require.NoError(t, conn.Create(&seotemplatedomain.SeoTemplate{
		CategoryKey:    "granite",
		CategoryName:   "Гранитные ограды",
		EntityType:     "fences",
		SeoTitle:       "Гранитные ограды — купить",
		SeoDescription: "Ограды из натурального гранита",
		SeoKeywords:    &keywords,
	}).Error)
}

// seedFences inserts total rows with the granite label; the first withSeo of
// them already carry a seo_title.
func seedFences(t *testing.T, conn *gorm.DB, total, withSeo int) {
	t.Helper()
	for i := 0; i < total; i++ {
		row := map[string]any{
			"slug":     fmt.Sprintf("fence-%d", i),
			"name":     fmt.Sprintf("Ограда %d", i),
			"category": "Гранитные ограды",
		}
		if i < withSeo {
			row["seo_title"] = "existing title"
		}
		require.NoError(t, conn.Table("fences").Create(row).Error)
	}
}

func TestPreviewCountsRowsWithoutSeo(t *testing.T) {
	svc, conn := setupBulk(t)
	ctx := context.Background()

	seedGraniteTemplate(t, conn)
	seedFences(t, conn, 40, 28)

	preview, err := svc.Preview(ctx, "fences", "granite", false)
	require.NoError(t, err)
	assert.Equal(t, int64(40), preview.TotalInCategory)
	assert.Equal(t, int64(12), preview.WithoutSeo)
	assert.Equal(t, int64(12), preview.WillBeUpdated)
	assert.Equal(t, "Гранитные ограды", preview.TemplateName)
	require.NotNil(t, preview.Template.Title)
	assert.Equal(t, "Гранитные ограды — купить", *preview.Template.Title)

	forced, err := svc.Preview(ctx, "fences", "granite", true)
	require.NoError(t, err)
	assert.Equal(t, int64(40), forced.WillBeUpdated)
}

func TestUpdateStampsOnlyRowsWithoutSeo(t *testing.T) {
	svc, conn := setupBulk(t)
	ctx := context.Background()

	seedGraniteTemplate(t, conn)
	seedFences(t, conn, 40, 28)

	result, err := svc.Update(ctx, "fences", "granite", false)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Stats.Total)
	assert.Equal(t, 12, result.Stats.Updated)
	assert.Equal(t, 0, result.Stats.Skipped)
	assert.Equal(t, 0, result.Stats.Errors)
	assert.Empty(t, result.ErrorDetails)

	var stamped int64
	require.NoError(t, conn.Table("fences").
		Where("seo_title = ?", "Гранитные ограды — купить").
		Count(&stamped).Error)
	assert.Equal(t, int64(12), stamped)

	// Rows that already had their own title keep it.
	var kept int64
	require.NoError(t, conn.Table("fences").
		Where("seo_title = ?", "existing title").
		Count(&kept).Error)
	assert.Equal(t, int64(28), kept)

	// Second run finds nothing left to do.
	again, err := svc.Update(ctx, "fences", "granite", false)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Stats.Total)
	assert.Equal(t, 0, again.Stats.Updated)
}

func TestUpdateForceOverwritesEverything(t *testing.T) {
	svc, conn := setupBulk(t)
	ctx := context.Background()

	seedGraniteTemplate(t, conn)
	seedFences(t, conn, 40, 28)

	result, err := svc.Update(ctx, "fences", "granite", true)
	require.NoError(t, err)
	assert.Equal(t, 40, result.Stats.Total)
	assert.Equal(t, 40, result.Stats.Updated)
	assert.Equal(t, 0, result.Stats.Skipped)

	var stamped int64
	require.NoError(t, conn.Table("fences").
		Where("seo_title = ?", "Гранитные ограды — купить").
		Count(&stamped).Error)
	assert.Equal(t, int64(40), stamped)
}

func TestUpdateIgnoresOtherLabels(t *testing.T) {
	svc, conn := setupBulk(t)
	ctx := context.Background()

	seedGraniteTemplate(t, conn)
	seedFences(t, conn, 5, 0)
	require.NoError(t, conn.Table("fences").Create(map[string]any{
		"slug":     "metal-1",
		"name":     "Металлическая",
		"category": "Металлические ограды",
	}).Error)

	result, err := svc.Update(ctx, "fences", "granite", false)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Stats.Updated)

	var row struct{ SeoTitle *string }
	require.NoError(t, conn.Table("fences").
		Select("seo_title").
		Where("slug = ?", "metal-1").
		Take(&row).Error)
	assert.Nil(t, row.SeoTitle)
}

func TestUpdateCapsAtSafetyLimit(t *testing.T) {
	svc, conn := setupBulk(t)
	ctx := context.Background()

	seedGraniteTemplate(t, conn)

	seedFences(t, conn, domain.SafetyLimit+5, 0)

	result, err := svc.Update(ctx, "fences", "granite", false)
	require.NoError(t, err)
	assert.Equal(t, domain.SafetyLimit, result.Stats.Total)
	assert.Equal(t, domain.SafetyLimit, result.Stats.Updated)

	preview, err := svc.Preview(ctx, "fences", "granite", false)
	require.NoError(t, err)
	assert.Equal(t, int64(5), preview.WithoutSeo)
}

func TestMissingTemplateStopsBeforeAnyMutation(t *testing.T) {
	svc, conn := setupBulk(t)
	ctx := context.Background()

	seedFences(t, conn, 3, 0)

	_, err := svc.Preview(ctx, "fences", "granite", false)
	assert.ErrorIs(t, err, seotemplatedomain.ErrNotFound)

	_, err = svc.Update(ctx, "fences", "granite", false)
	assert.ErrorIs(t, err, seotemplatedomain.ErrNotFound)

	var stamped int64
	require.NoError(t, conn.Table("fences").
		Where("seo_title IS NOT NULL").
		Count(&stamped).Error)
	assert.Equal(t, int64(0), stamped)
}

func TestUnknownScopeRejected(t *testing.T) {
	svc, conn := setupBulk(t)
	ctx := context.Background()

	seedGraniteTemplate(t, conn)

	// The template gate runs first: scopes without a template report 404
	// regardless of whether the entity type is real.
	_, err := svc.Update(ctx, "fences", "wooden", false)
	assert.ErrorIs(t, err, seotemplatedomain.ErrNotFound)

	// A template row for a bogus entity type still cannot be applied.
	require.NoError(t, conn.Create(&seotemplatedomain.SeoTemplate{
		CategoryKey:    "sofas",
		CategoryName:   "Диваны",
		EntityType:     "furniture",
		SeoTitle:       "t",
		SeoDescription: "d",
	}).Error)
	_, err = svc.Update(ctx, "furniture", "sofas", false)
	assert.ErrorIs(t, err, category.ErrUnknownEntityType)
}

func TestCheckTemplate(t *testing.T) {
	svc, conn := setupBulk(t)
	ctx := context.Background()

	got, err := svc.CheckTemplate(ctx, "fences", "granite")
	require.NoError(t, err)
	assert.Nil(t, got)

	seedGraniteTemplate(t, conn)

	got, err = svc.CheckTemplate(ctx, "fences", "granite")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Гранитные ограды", got.CategoryName)
}
