package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"scratchbook/internal/repository/dao"
)

// OpenSQLite opens (or creates) the local database file and migrates the
// schema. TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func OpenSQLite(path string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(database); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return database, nil
}
