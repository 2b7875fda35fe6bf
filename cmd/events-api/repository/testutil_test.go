package repository

import (
	"testing"
	"time"

	"fstt-events-backend/cmd/events-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a fresh in-memory SQLite store with the full schema.
// The pool is pinned to a single connection so every query sees the same
// memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Event{},
		&model.Registration{},
		&model.Comment{},
	))

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// setupMockDB wires GORM over sqlmock for store-error injection. The
// sqlite dialector probes the engine version during initialization, so
// that query is expected up front.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock database: %v", err)
	}

	mock.ExpectQuery(`select sqlite_version\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"sqlite_version()"}).AddRow("3.45.1"))

	gormDB, err := gorm.Open(&sqlite.Dialector{Conn: db}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create GORM instance: %v", err)
	}

	return gormDB, mock
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) model.User {
	t.Helper()

	user := model.User{Name: name, Email: email, PasswordDigest: "digest"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) model.Category {
	t.Helper()

	category := model.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedEvent(t *testing.T, db *gorm.DB, title string, status model.EventStatus, categoryID *uint) model.Event {
	t.Helper()

	event := model.Event{
		Title:      title,
		Date:       time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
		Status:     status,
		CategoryID: categoryID,
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}
