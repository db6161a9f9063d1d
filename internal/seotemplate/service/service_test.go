package service

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/granitmemory/catalog/internal/seotemplate/domain"
	"github.com/granitmemory/catalog/internal/seotemplate/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.SeoTemplate{}))

	return New(Params{
		DB:   conn,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func validCreate() domain.CreateRequest {
	return domain.CreateRequest{
		CategoryKey:    "granite",
		CategoryName:   "Гранитные ограды",
		EntityType:     "fences",
		SeoTitle:       "Гранитные ограды — купить в Минске",
		SeoDescription: "Ограды из натурального гранита с установкой",
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetForCategory(ctx, "fences", "granite")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	byKey, err := svc.GetByCategoryKey(ctx, "granite")
	require.NoError(t, err)
	require.NotNil(t, byKey)
	assert.Equal(t, created.ID, byKey.ID)
}

func TestGetForCategoryAbsentIsNil(t *testing.T) {
	svc := setupService(t)

	got, err := svc.GetForCategory(context.Background(), "fences", "metal")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	req := validCreate()
	req.SeoTitle = "  "
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	req = validCreate()
	req.SeoTitle = strings.Repeat("т", domain.MaxTitleLen+1)
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrTitleTooLong)

	req = validCreate()
	req.SeoDescription = strings.Repeat("о", domain.MaxDescriptionLen+1)
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrDescriptionTooLong)
}

func TestCreateRejectsDuplicateCategoryKey(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreate())
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestUpdate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, domain.UpdateRequest{
		CategoryName:   "Гранитные ограды",
		SeoTitle:       "Новый заголовок",
		SeoDescription: "Новое описание",
	})
	require.NoError(t, err)
	assert.Equal(t, "Новый заголовок", updated.SeoTitle)

	_, err = svc.Update(ctx, 9999, domain.UpdateRequest{
		CategoryName:   "x",
		SeoTitle:       "x",
		SeoDescription: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)

	got, err := svc.GetByCategoryKey(ctx, "granite")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListOrdered(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	second := validCreate()
	second.CategoryKey = "single"
	second.CategoryName = "Одиночные"
	second.EntityType = "monuments"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "fences", all[0].EntityType)
	assert.Equal(t, "monuments", all[1].EntityType)
}
