package repository

import (
	"fmt"
	"testing"

	"github.com/lshigami/Marmoset/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database and migrates the
// schema. Each test gets its own named database so parallel tests cannot see
// each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Baby{}, &model.Assessment{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
