package database

import (
	"fmt"
	"strings"
	"time"

	"listing-service/internal/config"
	model "listing-service/internal/models"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Dialect returns the gorm dialector for the configured driver
func Dialect(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported %s database driver", cfg.Driver)
	}
}

// Open connects to the configured database and applies pool settings
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(log.StandardLogger(), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		// deleting a product leaves its bids in place
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// sqliteProductsTable declares products with AUTOINCREMENT so deleted ids
// are never handed out again. Bids outlive their product and would otherwise
// attach to the next listing that reuses the id.
const sqliteProductsTable = `CREATE TABLE products (
	id integer PRIMARY KEY AUTOINCREMENT,
	name text NOT NULL,
	description text NOT NULL,
	picture_url text NOT NULL,
	original_price real NOT NULL,
	category text NOT NULL,
	end_date datetime NOT NULL,
	seller_id integer NOT NULL
)`

const productColumns = "id, name, description, picture_url, original_price, category, end_date, seller_id"

// Migrate creates or updates the users, products and bids tables
func Migrate(db *gorm.DB) error {
	tables := []any{&model.User{}, &model.Product{}, &model.Bid{}}

	if db.Dialector.Name() == "sqlite" {
		if err := migrateSQLiteProducts(db); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
		tables = []any{&model.User{}, &model.Bid{}}
	}

	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// migrateSQLiteProducts creates the products table, rebuilding one created
// without AUTOINCREMENT and keeping its rows
func migrateSQLiteProducts(db *gorm.DB) error {
	var ddl string
	if err := db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", "products").Scan(&ddl).Error; err != nil {
		return fmt.Errorf("inspect products table: %w", err)
	}

	switch {
	case ddl == "":
		if err := db.Exec(sqliteProductsTable).Error; err != nil {
			return fmt.Errorf("create products table: %w", err)
		}
	case !strings.Contains(strings.ToUpper(ddl), "AUTOINCREMENT"):
		log.Warn("Rebuilding SQLite products table so product ids are never reused")
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, stmt := range []string{
				"ALTER TABLE products RENAME TO products_legacy",
				sqliteProductsTable,
				"INSERT INTO products (" + productColumns + ") SELECT " + productColumns + " FROM products_legacy",
				"DROP TABLE products_legacy",
			} {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("rebuild products table: %w", err)
		}
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_products_seller_id ON products (seller_id)").Error; err != nil {
		return fmt.Errorf("index products seller: %w", err)
	}
	return nil
}
