package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	root "smartdomain"
	"smartdomain/pkg/logger"
	"smartdomain/pkg/storage/postgres"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	adminDB      = "postgres"
)

// postgresContainer is started once per package run. Every test gets its own
// freshly migrated database on it.
type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

var (
	shared    *postgresContainer //nolint: gochecknoglobals
	sharedErr error              //nolint: gochecknoglobals
	dbSeq     atomic.Int64       //nolint: gochecknoglobals
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	shared, sharedErr = startPostgresContainer(ctx)

	code := m.Run()

	if shared != nil {
		_ = shared.Container.Terminate(ctx)
	}
	os.Exit(code)
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       adminDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func (c *postgresContainer) dsn(database string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, testUser, testPassword, database)
}

// createDatabase creates an empty database and returns a function dropping it.
func (c *postgresContainer) createDatabase(ctx context.Context, name string) (func(), error) {
	admin, err := sql.Open("pgx", c.dsn(adminDB))
	if err != nil {
		return nil, fmt.Errorf("could not connect to admin database: %w", err)
	}
	if _, err := admin.ExecContext(ctx, "CREATE DATABASE "+name); err != nil {
		_ = admin.Close()

		return nil, fmt.Errorf("could not create database: %w", err)
	}

	return func() {
		_, _ = admin.ExecContext(context.Background(), "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
		_ = admin.Close()
	}, nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	require.NoError(t, sharedErr, "postgres container is not available")

	ctx := context.Background()
	name := fmt.Sprintf("test_%d_%s", dbSeq.Add(1), strings.ReplaceAll(uuid.NewString()[:8], "-", ""))

	dropDB, err := shared.createDatabase(ctx, name)
	require.NoError(t, err)

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               shared.Host,
		Port:               shared.Port,
		Database:           name,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)

	require.NoError(t, goose.UpContext(ctx, pgSQL.DB.(*sql.DB), "migrations"))

	return pgSQL, func() {
		_ = pgSQL.Close()
		dropDB()
	}
}

func TestPgSQL_Ping(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, pg.Ping(context.Background()))
}
