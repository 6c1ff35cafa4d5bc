package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMigrations() fstest.MapFS {
	return fstest.MapFS{
		"001_create_widgets.up.sql":   {Data: []byte("CREATE TABLE widgets (id INT)")},
		"001_create_widgets.down.sql": {Data: []byte("DROP TABLE widgets")},
		"002_add_colour.up.sql":       {Data: []byte("ALTER TABLE widgets ADD COLUMN colour TEXT")},
		"002_add_colour.down.sql":     {Data: []byte("ALTER TABLE widgets DROP COLUMN colour")},
		"README.md":                   {Data: []byte("not a migration")},
	}
}

func setupMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestMigrator_Load(t *testing.T) {
	m := NewMigrator(nil, testMigrations(), zerolog.Nop())

	migrations, err := m.Load()

	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "create_widgets", migrations[0].Name)
	assert.Equal(t, "DROP TABLE widgets", migrations[0].DownSQL)
	assert.Equal(t, 2, migrations[1].Version)
	assert.Equal(t, "add_colour", migrations[1].Name)
}

func TestMigrator_LoadMissingDown(t *testing.T) {
	fsys := fstest.MapFS{
		"001_create_widgets.up.sql": {Data: []byte("CREATE TABLE widgets (id INT)")},
	}
	m := NewMigrator(nil, fsys, zerolog.Nop())

	_, err := m.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read down migration")
}

func TestMigrator_EmbeddedMigrations(t *testing.T) {
	m := NewMigrator(nil, MigrationsFS(), zerolog.Nop())

	migrations, err := m.Load()

	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, "create_products", migrations[0].Name)
	assert.Contains(t, migrations[0].UpSQL, "CREATE TABLE IF NOT EXISTS products")
	assert.Contains(t, migrations[0].UpSQL, "NUMERIC(10, 2)")
}

func TestMigrator_Up(t *testing.T) {
	t.Run("Applies pending migrations only", func(t *testing.T) {
		mock := setupMockDB(t)
		m := NewMigrator(mock, testMigrations(), zerolog.Nop())

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow(1))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE widgets ADD COLUMN colour TEXT")).
			WillReturnResult(pgxmock.NewResult("ALTER", 0))
		mock.ExpectExec("INSERT INTO schema_migrations").
			WithArgs(2, "add_colour", checksum("ALTER TABLE widgets ADD COLUMN colour TEXT")).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		count, err := m.Up(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Up to date", func(t *testing.T) {
		mock := setupMockDB(t)
		m := NewMigrator(mock, testMigrations(), zerolog.Nop())

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow(1).AddRow(2))

		count, err := m.Up(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed migration rolls back", func(t *testing.T) {
		mock := setupMockDB(t)
		m := NewMigrator(mock, testMigrations(), zerolog.Nop())

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(pgxmock.NewRows([]string{"version"}))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE widgets (id INT)")).
			WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		count, err := m.Up(context.Background())

		require.Error(t, err)
		assert.Equal(t, 0, count)
		assert.Contains(t, err.Error(), "failed to apply migration 1")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Migrations table error", func(t *testing.T) {
		mock := setupMockDB(t)
		m := NewMigrator(mock, testMigrations(), zerolog.Nop())

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
			WillReturnError(errors.New("permission denied"))

		_, err := m.Up(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create migrations table")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMigrator_Down(t *testing.T) {
	t.Run("Rolls back latest migration", func(t *testing.T) {
		mock := setupMockDB(t)
		m := NewMigrator(mock, testMigrations(), zerolog.Nop())

		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(pgxmock.NewRows([]string{"version"}).AddRow(1).AddRow(2))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE widgets DROP COLUMN colour")).
			WillReturnResult(pgxmock.NewResult("ALTER", 0))
		mock.ExpectExec("DELETE FROM schema_migrations").
			WithArgs(2).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		err := m.Down(context.Background())

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing applied", func(t *testing.T) {
		mock := setupMockDB(t)
		m := NewMigrator(mock, testMigrations(), zerolog.Nop())

		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(pgxmock.NewRows([]string{"version"}))

		err := m.Down(context.Background())

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
