package service

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/granitmemory/catalog/internal/pageseo/domain"
	"github.com/granitmemory/catalog/internal/pageseo/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.PageSeo{}))

	return New(Params{
		DB:   conn,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func validCreate() domain.CreateRequest {
	return domain.CreateRequest{
		PageSlug:       "delivery",
		PageTitle:      "Доставка и установка",
		SeoTitle:       "Доставка памятников по Беларуси",
		SeoDescription: "Сроки и условия доставки и установки памятников",
	}
}

func TestCreateAndGetBySlug(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 1200, created.OgImageWidth)
	assert.Equal(t, 630, created.OgImageHeight)
	assert.True(t, created.IsIndexed)

	got, err := svc.GetBySlug(ctx, "delivery")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	absent, err := svc.GetBySlug(ctx, "unknown-page")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestCreateValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	req := validCreate()
	req.SeoDescription = " "
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

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreate())
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
}

func TestUpdateReplacesFields(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	keywords := "доставка,установка"
	updated, err := svc.Update(ctx, created.ID, domain.UpdateRequest{
		PageSlug:       "delivery",
		PageTitle:      "Доставка",
		SeoTitle:       "Новый заголовок",
		SeoDescription: "Новое описание",
		SeoKeywords:    &keywords,
	})
	require.NoError(t, err)
	assert.Equal(t, "Новый заголовок", updated.SeoTitle)
	require.NotNil(t, updated.SeoKeywords)
	assert.Equal(t, "доставка,установка", *updated.SeoKeywords)

	// Update is a full replace: keywords not resent are dropped.
	updated, err = svc.Update(ctx, created.ID, domain.UpdateRequest{
		PageSlug:       "delivery",
		PageTitle:      "Доставка",
		SeoTitle:       "Новый заголовок",
		SeoDescription: "Новое описание",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.SeoKeywords)

	_, err = svc.Update(ctx, 9999, domain.UpdateRequest{
		PageSlug:       "x",
		PageTitle:      "x",
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
}

func TestListOrderedByTitle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	second := validCreate()
	second.PageSlug = "about"
	second.PageTitle = "О компании"

	_, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Доставка и установка", all[0].PageTitle)
	assert.Equal(t, "О компании", all[1].PageTitle)
}
