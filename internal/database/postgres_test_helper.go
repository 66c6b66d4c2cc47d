//go:build integration

package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"accounts-service/internal/config"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupPostgresTestDB starts a disposable postgres container, applies the SQL
// migrations through the migration runner and returns a gorm connection to it.
// Seeds are loaded when seed is true.
func SetupPostgresTestDB(t *testing.T, seed bool) *DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("accounts_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("get mapped port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Driver:          config.DriverPostgres,
		Host:            host,
		Port:            port.Port(),
		User:            "test",
		Password:        "test",
		Name:            "accounts_test",
		SSLMode:         "disable",
		MaxConnections:  10,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		AutoMigrate:     true,
		SeedDatabase:    seed,
		MigrationsPath:  findProjectDir(t, "db/migrations"),
		SeedsPath:       findProjectDir(t, "db/seeds"),
	}

	if err := runPostgresMigrations(cfg); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("connect to postgres: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// findProjectDir walks up from the package directory until rel exists
func findProjectDir(t *testing.T, rel string) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for range 10 {
		candidate := filepath.Join(dir, rel)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		dir = filepath.Dir(dir)
	}

	t.Fatalf("%s not found above the package directory", rel)
	return ""
}
