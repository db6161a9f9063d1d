package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/granitmemory/catalog/internal/blog"
	blogdomain "github.com/granitmemory/catalog/internal/blog/domain"
	"github.com/granitmemory/catalog/internal/bulkseo"
	bulkseodomain "github.com/granitmemory/catalog/internal/bulkseo/domain"
	"github.com/granitmemory/catalog/internal/campaign"
	campaigndomain "github.com/granitmemory/catalog/internal/campaign/domain"
	"github.com/granitmemory/catalog/internal/catalog"
	catalogdomain "github.com/granitmemory/catalog/internal/catalog/domain"
	"github.com/granitmemory/catalog/internal/category"
	"github.com/granitmemory/catalog/internal/config"
	"github.com/granitmemory/catalog/internal/epitaph"
	epitaphdomain "github.com/granitmemory/catalog/internal/epitaph/domain"
	"github.com/granitmemory/catalog/internal/observability"
	"github.com/granitmemory/catalog/internal/pagedescription"
	pagedescriptiondomain "github.com/granitmemory/catalog/internal/pagedescription/domain"
	"github.com/granitmemory/catalog/internal/pageseo"
	pageseodomain "github.com/granitmemory/catalog/internal/pageseo/domain"
	"github.com/granitmemory/catalog/internal/seo"
	seodomain "github.com/granitmemory/catalog/internal/seo/domain"
	"github.com/granitmemory/catalog/internal/seotemplate"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
	"github.com/granitmemory/catalog/internal/work"
	workdomain "github.com/granitmemory/catalog/internal/work/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Provide(newSnowflakeNode),
	catalog.Module,
	seotemplate.Module,
	seo.Module,
	bulkseo.Module,
	blog.Module,
	campaign.Module,
	pageseo.Module,
	pagedescription.Module,
	work.Module,
	epitaph.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log))
	r.Use(observability.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	return NewEngine(log, httpMetrics)
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	genID          *snowflake.Node
	catalogSvc     catalogdomain.Service
	seoTemplateSvc seotemplatedomain.Service
	seoFieldsSvc   seodomain.FieldsService
	bulkSeoSvc     bulkseodomain.Service
	blogSvc        blogdomain.Service
	campaignSvc    campaigndomain.Service
	pageSeoSvc     pageseodomain.Service
	workSvc        workdomain.Service
	epitaphSvc     epitaphdomain.Service

	pageDescriptionSvc pagedescriptiondomain.Service
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	GenID          *snowflake.Node
	CatalogSvc     catalogdomain.Service
	SeoTemplateSvc seotemplatedomain.Service
	SeoFieldsSvc   seodomain.FieldsService
	BulkSeoSvc     bulkseodomain.Service
	BlogSvc        blogdomain.Service
	CampaignSvc    campaigndomain.Service
	PageSeoSvc     pageseodomain.Service
	WorkSvc        workdomain.Service
	EpitaphSvc     epitaphdomain.Service

	PageDescriptionSvc pagedescriptiondomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		genID:          p.GenID,
		catalogSvc:     p.CatalogSvc,
		seoTemplateSvc: p.SeoTemplateSvc,
		seoFieldsSvc:   p.SeoFieldsSvc,
		bulkSeoSvc:     p.BulkSeoSvc,
		blogSvc:        p.BlogSvc,
		campaignSvc:    p.CampaignSvc,
		pageSeoSvc:     p.PageSeoSvc,
		workSvc:        p.WorkSvc,
		epitaphSvc:     p.EpitaphSvc,

		pageDescriptionSvc: p.PageDescriptionSvc,
	}

	svc.registerAPIRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Catalog resources --------
	// Monuments route across eleven tables; fences, accessories and
	// landscape each live in one table filtered by category label.
	s.registerCatalogRoutes(api.Group("/monuments"), category.Monuments)
	s.registerCatalogRoutes(api.Group("/fences"), category.Fences)
	s.registerCatalogRoutes(api.Group("/accessories"), category.Accessories)
	s.registerCatalogRoutes(api.Group("/landscape"), category.Landscape)

	// -------- Blogs --------
	blogs := api.Group("/blogs")
	blogs.GET("", s.ListBlogs)
	blogs.GET("/by-slug/:slug", s.GetBlogBySlug)
	blogs.GET("/:id", s.GetBlogByID)
	blogs.POST("", s.CreateBlog)
	blogs.PUT("/:id", s.UpdateBlog)
	blogs.DELETE("/:id", s.DeleteBlog)

	// -------- Campaigns --------
	campaigns := api.Group("/campaigns")
	campaigns.GET("", s.ListCampaigns)
	campaigns.GET("/by-slug/:slug", s.GetCampaignBySlug)
	campaigns.GET("/:id", s.GetCampaignByID)
	campaigns.POST("", s.CreateCampaign)
	campaigns.PUT("/:id", s.UpdateCampaign)
	campaigns.DELETE("/:id", s.DeleteCampaign)

	// -------- Works --------
	works := api.Group("/works")
	works.GET("", s.ListWorks)
	works.POST("", s.CreateWork)
	works.PUT("/:id", s.UpdateWork)
	works.DELETE("/:id", s.DeleteWork)

	// -------- Epitaphs --------
	epitaphs := api.Group("/epitaphs")
	epitaphs.GET("", s.ListEpitaphs)
	epitaphs.POST("", s.CreateEpitaph)
	epitaphs.PUT("/:id", s.UpdateEpitaph)
	epitaphs.DELETE("/:id", s.DeleteEpitaph)

	// -------- Page SEO --------
	pageSeo := api.Group("/page-seo")
	pageSeo.GET("", s.ListPageSeo)
	pageSeo.GET("/by-slug/:slug", s.GetPageSeoBySlug)
	pageSeo.GET("/public/:slug", s.GetPublicPageSeo)
	pageSeo.POST("", s.CreatePageSeo)
	pageSeo.PUT("/:id", s.UpdatePageSeo)
	pageSeo.DELETE("/:id", s.DeletePageSeo)

	// -------- Page descriptions (storefront) --------
	api.GET("/page-descriptions/:slug", s.GetPageDescriptionBySlug)

	// -------- SEO hierarchy / templates --------
	api.GET("/seo-hierarchy/:entityType/:categoryKey", s.GetSeoHierarchy)

	templates := api.Group("/seo-templates")
	templates.GET("", s.ListSeoTemplates)
	templates.GET("/:categoryKey", s.GetSeoTemplateByCategoryKey)
	templates.POST("", s.CreateSeoTemplate)
	templates.PUT("/:id", s.UpdateSeoTemplate)
	templates.DELETE("/:id", s.DeleteSeoTemplate)

	// -------- Upload --------
	api.POST("/upload", s.UploadFile)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/api/admin")

	// -------- Bulk SEO --------
	bulk := admin.Group("/bulk-seo")
	bulk.GET("/preview/:entityType/:categoryKey", s.PreviewBulkSeo)
	bulk.POST("/update/:entityType/:categoryKey", s.UpdateBulkSeo)
	bulk.GET("/check-template/:entityType/:categoryKey", s.CheckBulkSeoTemplate)

	// -------- Page descriptions --------
	descriptions := admin.Group("/page-descriptions")
	descriptions.GET("", s.ListPageDescriptions)
	descriptions.GET("/by-slug/:slug", s.GetPageDescriptionBySlug)
	descriptions.POST("", s.CreatePageDescription)
	descriptions.PUT("/:id", s.UpdatePageDescription)
	descriptions.DELETE("/:id", s.DeletePageDescription)

	// -------- Per-entity SEO fields --------
	admin.GET("/:entityType/:entityId/seo", s.GetEntitySeo)
	admin.PUT("/:entityType/:entityId/seo", s.UpdateEntitySeo)
}

func (s *Server) registerCatalogRoutes(g *gin.RouterGroup, et category.EntityType) {
	g.GET("", s.ListCatalog(et))
	g.GET("/slug/:slug", s.GetCatalogBySlug(et))
	g.GET("/id/:id", s.GetCatalogByID(et))
	g.GET("/:category", s.ListCatalogByCategory(et))
	g.GET("/:category/:slug", s.GetCatalogByCategorySlug(et))
	g.POST("", s.CreateCatalog(et))
	g.PUT("/id/:id", s.UpdateCatalog(et))
	g.DELETE("/id/:id", s.DeleteCatalog(et))
}
