// Package dbtest opens throwaway in-memory sqlite databases with the service
// schema applied, for tests that need a real SQL engine.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"versenotes/internal/platform/database"
)

var seq atomic.Int64

// Open returns a fresh database that lives until the test ends. The pool is
// pinned to one connection so the in-memory database is never dropped.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	db, err := database.Open(context.Background(), database.Options{
		Driver:       database.DriverSQLite,
		DSN:          dsn,
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.InitSchema(context.Background(), db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}
