package database

import (
	"fmt"
	"strings"
	"time"

	"clinic-api/internal/config"
	"clinic-api/internal/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqlitePragmas turns on foreign key enforcement (needed for ON DELETE CASCADE)
// and makes writers wait for the lock instead of failing with SQLITE_BUSY.
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
}

// Open connects to the database selected by cfg.DBDriver.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.SQLitePath))
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresURI)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := OpenDialector(dialector)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.DBDriver == config.DriverSQLite {
		// One connection serializes SQLite transactions.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxOpenConns)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if log != nil {
		log.Info("database connected", zap.String("driver", cfg.DBDriver))
	}
	return db, nil
}

// OpenDialector opens gorm on an already chosen dialector. TranslateError makes
// unique and foreign key violations comparable with errors.Is.
func OpenDialector(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path
	for _, p := range sqlitePragmas {
		name := strings.SplitN(p, "(", 2)[0]
		if strings.Contains(path, name) {
			continue
		}
		dsn += sep + p
		sep = "&"
	}
	return dsn
}
