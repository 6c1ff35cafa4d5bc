package integration

import (
	"context"
	"testing"
	"time"

	"menu-catalog/internal/config"
	"menu-catalog/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB starts a PostgreSQL container, connects a pool and applies the schema migrations.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("menucatalog"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	logger := zerolog.Nop()
	pool, err := database.NewPoolFromURL(ctx, connStr, config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if _, err := database.NewMigrator(pool, database.MigrationsFS(), logger).Up(ctx); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// seedProduct is a row written by SeedProducts.
type seedProduct struct {
	name      string
	price     string
	category  string
	available bool
}

// seedMenu is inserted oldest first; each row is one minute newer than the previous.
var seedMenu = []seedProduct{
	{"Bruschetta", "8.99", "APPETIZER", true},
	{"Grilled Salmon", "24.99", "MAIN_COURSE", true},
	{"Beef Tenderloin", "32.99", "MAIN_COURSE", true},
	{"Tiramisu", "9.99", "DESSERT", true},
	{"Panna Cotta", "7.50", "DESSERT", false},
	{"Fresh Fruit Smoothie", "6.99", "BEVERAGE", true},
	{"Iced Tea", "3.50", "BEVERAGE", true},
	{"Truffle Fries", "8.99", "SIDE_DISH", true},
	{"Garlic Bread", "4.50", "SIDE_DISH", false},
}

// seedAvailableCount is the number of available rows in seedMenu.
const seedAvailableCount = 7

// SeedProducts inserts seedMenu and returns the generated IDs keyed by name.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) map[string]int64 {
	t.Helper()

	ctx := context.Background()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	ids := make(map[string]int64, len(seedMenu))
	for i, p := range seedMenu {
		createdAt := base.Add(time.Duration(i) * time.Minute)

		var id int64
		err := pool.QueryRow(ctx,
			`INSERT INTO products (name, description, price, category, image_url, is_available, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`,
			p.name, p.name+" from the test kitchen", p.price, p.category, "", p.available, createdAt,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		ids[p.name] = id
	}

	return ids
}

// CleanupDB removes all products and resets the ID sequence.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "TRUNCATE products RESTART IDENTITY"); err != nil {
		t.Logf("failed to clean products: %v", err)
	}
}
