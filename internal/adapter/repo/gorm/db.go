package gormrepo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenPostgres connects with default GORM settings; schema management is
// the migrator's job, not AutoMigrate.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
