package migration

import (
	blogdomain "github.com/granitmemory/catalog/internal/blog/domain"
	campaigndomain "github.com/granitmemory/catalog/internal/campaign/domain"
	catalogdomain "github.com/granitmemory/catalog/internal/catalog/domain"
	"github.com/granitmemory/catalog/internal/category"
	epitaphdomain "github.com/granitmemory/catalog/internal/epitaph/domain"
	pagedescriptiondomain "github.com/granitmemory/catalog/internal/pagedescription/domain"
	pageseodomain "github.com/granitmemory/catalog/internal/pageseo/domain"
	seotemplatedomain "github.com/granitmemory/catalog/internal/seotemplate/domain"
	workdomain "github.com/granitmemory/catalog/internal/work/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run creates or extends the schema on startup. The product tables all share
// one column set, so the same model is migrated into each of them.
func Run(db *gorm.DB, log *zap.Logger) error {
	log = log.Named("migration")

	tables := map[string]struct{}{
		"fences":      {},
		"accessories": {},
		"landscape":   {},
	}
	for _, c := range category.MonumentTables() {
		tables[c.Table] = struct{}{}
	}

	for table := range tables {
		if err := db.Table(table).AutoMigrate(&catalogdomain.Entity{}); err != nil {
			return err
		}
	}

	if err := db.AutoMigrate(
		&seotemplatedomain.SeoTemplate{},
		&blogdomain.Blog{},
		&campaigndomain.Campaign{},
		&pageseodomain.PageSeo{},
		&pagedescriptiondomain.PageDescription{},
		&workdomain.Work{},
		&epitaphdomain.Epitaph{},
	); err != nil {
		return err
	}

	log.Info("schema migrated", zap.Int("product_tables", len(tables)))
	return nil
}

var Module = fx.Module("migration",
	fx.Invoke(Run),
)
