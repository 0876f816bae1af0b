// Package repotest opens migrated in-memory databases for tests.
package repotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/repo"
	pkgdb "github.com/Skotchmaster/shop_api/pkg/db"
)

func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := pkgdb.Open(context.Background(), pkgdb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(db))

	t.Cleanup(func() { _ = pkgdb.Close(db) })
	return db
}

func NewRepo(t testing.TB) *repo.GormRepo {
	t.Helper()
	return repo.New(NewDB(t))
}
