package migration

import (
	auditdomain "github.com/hillcosite/priceguide/internal/audit/domain"
	catalogdomain "github.com/hillcosite/priceguide/internal/catalog/domain"
	"github.com/hillcosite/priceguide/internal/config"
	ratedomain "github.com/hillcosite/priceguide/internal/rate/domain"
	"github.com/hillcosite/priceguide/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// Local sqlite/mysql environments skip the versioned migrations.
			if err := conn.AutoMigrate(
				&catalogdomain.PricingEntry{},
				&ratedomain.InflationRate{},
				&auditdomain.AutomationLog{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedCatalog {
			return seed.EnsureDefaultCatalog(conn)
		}
		return nil
	}),
)
