package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/junaidrashid-git/sportsstore/database"
	"github.com/junaidrashid-git/sportsstore/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	tb.Cleanup(log.Sync)
	return log
}

// DB opens a private, migrated in-memory sqlite database for one test.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	// one connection keeps the in-memory database alive and avoids shared-cache table locks
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

// SeededDB is DB plus the demo catalog.
func SeededDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db := DB(tb)
	if _, err := database.Seed(tb.Context(), db); err != nil {
		tb.Fatalf("seed: %v", err)
	}
	return db
}
