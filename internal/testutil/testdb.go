package testutil

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-tracker-api/internal/store/sqlstore"
)

// NewSQLStore creates a store over an in-memory SQLite DB with migrations run.
func NewSQLStore() (*sqlstore.Store, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return sqlstore.NewWithDB(db)
}
