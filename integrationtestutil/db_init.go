package integrationtestutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/l3montree-dev/vulntracker/database"
	"github.com/l3montree-dev/vulntracker/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// InitSQLiteDatabase creates a migrated sqlite database which lives as long as the test.
func InitSQLiteDatabase(t *testing.T) shared.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "vulntracker.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite database: %s", err)
	}
	if err := database.RunMigrationsWithDB(db); err != nil {
		t.Fatalf("failed to migrate sqlite database: %s", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// InitDatabaseContainer starts a postgres container and runs the embedded migrations against it.
// The test is skipped in short mode or if no container runtime is available.
func InitDatabaseContainer(t *testing.T) shared.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	dbName := "vulntracker"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, postgresC)
	if err != nil {
		t.Fatalf("failed to start postgres container: %s", err)
	}

	host, err := postgresC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %s", err)
	}
	port, err := postgresC.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %s", err)
	}

	db, err := database.NewConnection(database.PoolConfig{
		User:         dbUser,
		Password:     dbPassword,
		Host:         host,
		Port:         port.Port(),
		DBName:       dbName,
		MaxOpenConns: 10,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %s", err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		t.Fatalf("failed to run migrations: %s", err)
	}

	return db
}
