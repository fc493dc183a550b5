//go:build integration

package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_cache_entries.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := Open(s.ctx, DriverPostgres, connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM cache_entries")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) TestMigrate_OverInitScript() {
	s.NoError(Migrate(s.ctx, s.db))
}

func (s *PostgresIntegrationSuite) TestKVStore_Upsert() {
	store := NewKVStore(s.db)

	s.Require().NoError(store.Put(s.ctx, "article_cache_x", []byte("first"), time.Hour))
	s.Require().NoError(store.Put(s.ctx, "article_cache_x", []byte("second"), time.Hour))

	got, ok, err := store.Get(s.ctx, "article_cache_x")
	s.NoError(err)
	s.True(ok)
	s.Equal("second", string(got))

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM cache_entries"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestKVStore_KeysAndDelete() {
	store := NewKVStore(s.db)
	for _, k := range []string{"article_cache_1", "article_cache_2", "articleXcache_3"} {
		s.Require().NoError(store.Put(s.ctx, k, []byte("v"), time.Hour))
	}

	keys, err := store.Keys(s.ctx, "article_cache_")
	s.NoError(err)
	s.Equal([]string{"article_cache_1", "article_cache_2"}, keys)

	s.NoError(store.Delete(s.ctx, "article_cache_1"))
	keys, err = store.Keys(s.ctx, "article_cache_")
	s.NoError(err)
	s.Equal([]string{"article_cache_2"}, keys)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	store := NewKVStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return store.Put(ctx, "committed", []byte("v"), time.Hour)
	})
	s.NoError(err)

	_, ok, err := store.Get(s.ctx, "committed")
	s.NoError(err)
	s.True(ok)
}
