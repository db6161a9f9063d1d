package service

import (
	"context"
	"errors"
	"testing"

	"github.com/granitmemory/catalog/internal/category"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type templateStub struct {
	template *seotemplatedomain.SeoTemplate
	err      error
}

func (s *templateStub) List(ctx context.Context) ([]seotemplatedomain.SeoTemplate, error) {
	return nil, s.err
}

func (s *templateStub) GetByCategoryKey(ctx context.Context, categoryKey string) (*seotemplatedomain.SeoTemplate, error) {
	return s.template, s.err
}

func (s *templateStub) GetForCategory(ctx context.Context, entityType, categoryKey string) (*seotemplatedomain.SeoTemplate, error) {
	return s.template, s.err
}

func (s *templateStub) Create(ctx context.Context, req seotemplatedomain.CreateRequest) (*seotemplatedomain.SeoTemplate, error) {
	return nil, s.err
}

func (s *templateStub) Update(ctx context.Context, id int64, req seotemplatedomain.UpdateRequest) (*seotemplatedomain.SeoTemplate, error) {
	return nil, s.err
}

func (s *templateStub) Delete(ctx context.Context, id int64) error {
	return s.err
}

func newResolver(stub *templateStub) seodomain.Resolver {
	return New(Params{Log: zap.NewNop(), Templates: stub})
}

func strptr(v string) *string { return &v }

func TestResolveOwnFieldsWinAsBlock(t *testing.T) {
	stub := &templateStub{template: &seotemplatedomain.SeoTemplate{
		SeoTitle:       "template title",
		SeoDescription: "template description",
		SeoKeywords:    strptr("template,keywords"),
	}}
	r := newResolver(stub)

	// One own field set: the whole template is ignored, absent fields stay nil.
	own := seodomain.Fields{Title: strptr("custom title")}
	got := r.Resolve(context.Background(), own, category.Fences, "granite")

	require.NotNil(t, got.Title)
	assert.Equal(t, "custom title", *got.Title)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.Keywords)
	assert.Nil(t, got.OgImage)
}

func TestResolveFallsBackToTemplate(t *testing.T) {
	stub := &templateStub{template: &seotemplatedomain.SeoTemplate{
		SeoTitle:       "Гранитные ограды — купить",
		SeoDescription: "Ограды из гранита",
		SeoKeywords:    strptr("ограды,гранит"),
		OgImage:        strptr("/img/fences.webp"),
	}}
	r := newResolver(stub)

	got := r.Resolve(context.Background(), seodomain.Fields{}, category.Fences, "granite")

	require.NotNil(t, got.Title)
	assert.Equal(t, "Гранитные ограды — купить", *got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Ограды из гранита", *got.Description)
	require.NotNil(t, got.Keywords)
	assert.Equal(t, "ограды,гранит", *got.Keywords)
}

func TestResolveEmptyStringsCountAsUnset(t *testing.T) {
	stub := &templateStub{template: &seotemplatedomain.SeoTemplate{
		SeoTitle:       "template title",
		SeoDescription: "template description",
	}}
	r := newResolver(stub)

	own := seodomain.Fields{Title: strptr(""), Description: strptr("")}
	got := r.Resolve(context.Background(), own, category.Fences, "granite")

	require.NotNil(t, got.Title)
	assert.Equal(t, "template title", *got.Title)
}

func TestResolveNoTemplate(t *testing.T) {
	r := newResolver(&templateStub{})

	got := r.Resolve(context.Background(), seodomain.Fields{}, category.Blogs, "blogs")
	assert.True(t, got.Empty())
}

func TestResolveLookupErrorDowngradesToEmpty(t *testing.T) {
	r := newResolver(&templateStub{err: errors.New("db down")})

	got := r.Resolve(context.Background(), seodomain.Fields{}, category.Fences, "granite")
	assert.True(t, got.Empty())
}
