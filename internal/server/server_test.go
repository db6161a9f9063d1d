package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	bulkseorepository "github.com/granitmemory/catalog/internal/bulkseo/repository"
	bulkseoservice "github.com/granitmemory/catalog/internal/bulkseo/service"
	catalogdomain "github.com/granitmemory/catalog/internal/catalog/domain"
	catalogrepository "github.com/granitmemory/catalog/internal/catalog/repository"
	catalogservice "github.com/granitmemory/catalog/internal/catalog/service"
	"github.com/granitmemory/catalog/internal/category"
	pagedescriptiondomain "github.com/granitmemory/catalog/internal/pagedescription/domain"
	pagedescriptionrepository "github.com/granitmemory/catalog/internal/pagedescription/repository"
	pagedescriptionservice "github.com/granitmemory/catalog/internal/pagedescription/service"
	seoservice "github.com/granitmemory/catalog/internal/seo/service"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
	seotemplaterepository "github.com/granitmemory/catalog/internal/seotemplate/repository"
	seotemplateservice "github.com/granitmemory/catalog/internal/seotemplate/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// envelope is the wire shape every error response shares.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.Table("fences").AutoMigrate(&catalogdomain.Entity{}); err != nil {
		t.Fatalf("migrate fences: %v", err)
	}
	if err := conn.AutoMigrate(&seotemplatedomain.SeoTemplate{}, &pagedescriptiondomain.PageDescription{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := zap.NewNop()
	templates := seotemplateservice.New(seotemplateservice.Params{
		DB:   conn,
		Log:  log,
		Repo: seotemplaterepository.Provide(),
	})

	return &Server{
		catalogSvc: catalogservice.New(catalogservice.Params{
			DB:   conn,
			Log:  log,
			Repo: catalogrepository.Provide(),
			Seo:  seoservice.New(seoservice.Params{Log: log, Templates: templates}),
		}),
		seoTemplateSvc: templates,
		bulkSeoSvc: bulkseoservice.New(bulkseoservice.Params{
			DB:        conn,
			Log:       log,
			Repo:      bulkseorepository.Provide(),
			Templates: templates,
		}),
		pageDescriptionSvc: pagedescriptionservice.New(pagedescriptionservice.Params{
			DB:   conn,
			Log:  log,
			Repo: pagedescriptionrepository.Provide(),
		}),
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var env envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", resp.Body.String(), err)
	}
	return resp, env
}

func TestBulkSeoPreviewWithoutTemplateReturns404(t *testing.T) {
	srv := newTestServer(t)

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/api/admin/bulk-seo/preview/:entityType/:categoryKey", srv.PreviewBulkSeo)

	resp, env := doJSON(t, router, http.MethodGet, "/api/admin/bulk-seo/preview/blogs/blogs", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d (%s)", resp.Code, resp.Body.String())
	}
	if env.Success {
		t.Fatal("expected success=false in the error envelope")
	}
	if env.Error != "template_not_found" {
		t.Fatalf("expected error %q, got %q", "template_not_found", env.Error)
	}
}

func TestCreateCatalogUnknownCategoryReturns400(t *testing.T) {
	srv := newTestServer(t)

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/api/fences", srv.CreateCatalog(category.Fences))

	resp, env := doJSON(t, router, http.MethodPost, "/api/fences",
		`{"name":"Ограда из дуба","category":"wooden"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d (%s)", resp.Code, resp.Body.String())
	}
	if env.Success {
		t.Fatal("expected success=false in the error envelope")
	}
	if env.Error == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestCreateSeoTemplateDuplicateKeyReturns409(t *testing.T) {
	srv := newTestServer(t)

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.POST("/api/seo-templates", srv.CreateSeoTemplate)

	body := `{"categoryKey":"granite","categoryName":"Гранитные ограды","entityType":"fences","seoTitle":"Гранитные ограды","seoDescription":"Ограды из гранита"}`

	resp, env := doJSON(t, router, http.MethodPost, "/api/seo-templates", body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	if !env.Success {
		t.Fatalf("expected success=true, got %s", resp.Body.String())
	}

	resp, env = doJSON(t, router, http.MethodPost, "/api/seo-templates", body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d (%s)", resp.Code, resp.Body.String())
	}
	if env.Error != "template_exists" {
		t.Fatalf("expected error %q, got %q", "template_exists", env.Error)
	}
}

func TestGetPageDescriptionAbsentSlugReturnsNullData(t *testing.T) {
	srv := newTestServer(t)

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/api/page-descriptions/:slug", srv.GetPageDescriptionBySlug)

	req := httptest.NewRequest(http.MethodGet, "/api/page-descriptions/unknown-page", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", resp.Code, resp.Body.String())
	}

	var body struct {
		Success bool             `json:"success"`
		Data    *json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", resp.Body.String(), err)
	}
	if !body.Success {
		t.Fatal("expected success=true for a page without a description")
	}
	if body.Data != nil && string(*body.Data) != "null" {
		t.Fatalf("expected data to be null, got %s", string(*body.Data))
	}
}
