package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"glass-connect-backend/internal/database"
	"glass-connect-backend/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

const (
	postgresRepository = "postgres"
	defaultPostgresTag = "15-alpine"
	postgresUser       = "glass"
	postgresPassword   = "glass"
	postgresDatabase   = "glass_test"
)

// joinTables are created by many2many relations and have no model of their own.
var joinTables = []string{"team_labs"}

// One Postgres container serves every integration suite of a test binary.
var shared struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
}

// BaseTestSuite hands a migrated, empty database to repository suites.
type BaseTestSuite struct {
	DB *gorm.DB
}

// SetupTestSuite starts the shared container on first use.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = startPostgres() })
	if shared.err != nil {
		t.Fatalf("failed to start the test database: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db}
}

// RunIntegration runs the tests of m and purges the container afterwards,
// also when the run is interrupted.
func RunIntegration(m *testing.M) int {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		logger.New().Warn("Integration tests interrupted, purging the test database")
		purgePostgres()
		os.Exit(1)
	}()

	code := m.Run()
	purgePostgres()
	return code
}

func (s *BaseTestSuite) SetupTest()         { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest()      { s.CleanTestDB() }
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every table of the backend in one statement so
// foreign keys never block the truncation.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := append([]string(nil), joinTables...)
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: s.DB}
		if err := stmt.Parse(model); err == nil {
			tables = append(tables, stmt.Schema.Table)
		}
	}
	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = `"` + table + `"`
	}
	if err := s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(quoted, ", ") + ` RESTART IDENTITY CASCADE`).Error; err != nil {
		logger.New().WithError(err).Warn("Failed to clean the test database")
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	shared.pool = pool

	tag := os.Getenv("TEST_POSTGRES_TAG")
	if tag == "" {
		tag = defaultPostgresTag
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: postgresRepository,
		Tag:        tag,
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	shared.resource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, port, postgresDatabase)

	// The server accepts TCP before it accepts logins.
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		return fmt.Errorf("postgres did not become ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{
		MaxOpenConns:   5,
		MaxIdleConns:   2,
		ConnectTimeout: 30 * time.Second,
	})
	if err != nil {
		return err
	}
	shared.db = db

	logger.New().WithFields(map[string]interface{}{
		"port":   port,
		"tables": len(database.Models()) + len(joinTables),
	}).Info("Test database ready")
	return nil
}

func purgePostgres() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if shared.pool != nil && shared.resource != nil {
		if err := shared.pool.Purge(shared.resource); err != nil {
			logger.New().WithError(err).Warn("Could not purge the test database container")
		}
	}
	shared.db, shared.pool, shared.resource = nil, nil, nil
}
