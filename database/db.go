package database

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/astrenrest/storefront/config"
)

// Init opens the backing key-value database. SQLite is the default
// embedded store; setting a MySQL DSN in the environment switches
// drivers for shared deployments.
func Init(cfg config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)
	if cfg.MySQLDSN != "" {
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&StateBlob{}); err != nil {
		return nil, err
	}
	return db, nil
}
