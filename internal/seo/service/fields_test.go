package service

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	catalogdomain "github.com/granitmemory/catalog/internal/catalog/domain"
	"github.com/granitmemory/catalog/internal/category"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupFields(t *testing.T) (seodomain.FieldsService, *gorm.DB) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.Table("fences").AutoMigrate(&catalogdomain.Entity{}))

	return NewFields(FieldsParams{DB: conn, Log: zap.NewNop()}), conn
}

func seedFence(t *testing.T, conn *gorm.DB, seoTitle *string) int64 {
	t.Helper()
	e := catalogdomain.Entity{
		Slug:     "fence-seo",
		Name:     "Ограда",
		Category: "Гранитные ограды",
		SeoTitle: seoTitle,
	}
	require.NoError(t, conn.Table("fences").Create(&e).Error)
	return e.ID
}

func TestFieldsGet(t *testing.T) {
	svc, conn := setupFields(t)
	ctx := context.Background()

	id := seedFence(t, conn, strptr("stored title"))

	got, err := svc.Get(ctx, "fences", id)
	require.NoError(t, err)
	require.NotNil(t, got.Title)
	assert.Equal(t, "stored title", *got.Title)
	assert.Nil(t, got.Description)

	_, err = svc.Get(ctx, "fences", 9999)
	assert.ErrorIs(t, err, seodomain.ErrEntityNotFound)

	_, err = svc.Get(ctx, "reviews", id)
	assert.ErrorIs(t, err, category.ErrUnknownEntityType)
}

func TestFieldsUpdate(t *testing.T) {
	svc, conn := setupFields(t)
	ctx := context.Background()

	id := seedFence(t, conn, nil)

	got, err := svc.Update(ctx, "fences", id, seodomain.Fields{
		Title:       strptr("new title"),
		Description: strptr("new description"),
	})
	require.NoError(t, err)
	require.NotNil(t, got.Title)
	assert.Equal(t, "new title", *got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "new description", *got.Description)
	assert.Nil(t, got.Keywords)

	_, err = svc.Update(ctx, "fences", 9999, seodomain.Fields{Title: strptr("x")})
	assert.ErrorIs(t, err, seodomain.ErrEntityNotFound)
}

func TestFieldsUpdateEmptyStringClears(t *testing.T) {
	svc, conn := setupFields(t)
	ctx := context.Background()

	id := seedFence(t, conn, strptr("stored title"))

	// An empty string must end up as NULL so the bulk propagator picks the
	// row up again.
	got, err := svc.Update(ctx, "fences", id, seodomain.Fields{Title: strptr("")})
	require.NoError(t, err)
	assert.Nil(t, got.Title)

	var n int64
	require.NoError(t, conn.Table("fences").
		Where("id = ? AND seo_title IS NULL", id).
		Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestFieldsUpdateLengthLimits(t *testing.T) {
	svc, conn := setupFields(t)
	ctx := context.Background()

	id := seedFence(t, conn, nil)

	_, err := svc.Update(ctx, "fences", id, seodomain.Fields{
		Title: strptr(strings.Repeat("т", seodomain.MaxFieldTitleLen+1)),
	})
	assert.ErrorIs(t, err, seodomain.ErrTitleTooLong)

	_, err = svc.Update(ctx, "fences", id, seodomain.Fields{
		Description: strptr(strings.Repeat("о", seodomain.MaxFieldDescriptionLen+1)),
	})
	assert.ErrorIs(t, err, seodomain.ErrDescriptionTooLong)
}
