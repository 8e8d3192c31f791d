package db

import (
	"fmt"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smallbiznis/lockerdocs/internal/config"
)

var Module = fx.Module("db",
	fx.Provide(Open),
)

// Open connects to the configured sqlite database.
func Open(cfg config.Config) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.IsProduction() {
		level = logger.Error
	}
	conn, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", cfg.DatabasePath, err)
	}
	return conn, nil
}
