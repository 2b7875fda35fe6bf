package seed

import (
	"context"
	"testing"

	"fstt-events-backend/cmd/events-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
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

func TestRun_PopulatesEmptyStore(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(context.Background(), db, false))

	var categories []model.Category
	require.NoError(t, db.Order("id").Find(&categories).Error)
	require.Len(t, categories, 5)
	assert.Equal(t, "Conférence", categories[0].Name)
	assert.Equal(t, "Sport", categories[4].Name)

	var events []model.Event
	require.NoError(t, db.Preload("Category").Order("id").Find(&events).Error)
	require.Len(t, events, 4)
	assert.Equal(t, "Conférence IA et Data Science", events[0].Title)
	assert.Equal(t, model.StatusOngoing, events[0].Status)
	require.NotNil(t, events[3].Category)
	assert.Equal(t, "Sport", events[3].Category.Name)
}

func TestRun_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db, false))
	require.NoError(t, Run(ctx, db, false))

	var categories, events int64
	require.NoError(t, db.Model(&model.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&model.Event{}).Count(&events).Error)
	assert.EqualValues(t, 5, categories)
	assert.EqualValues(t, 4, events)
}

func TestRun_LeavesExistingDataAlone(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Category{Name: "Hackathon"}).Error)

	require.NoError(t, Run(ctx, db, false))

	// Categories were not empty, so no category fixtures were added; the
	// events table was, so events still seed.
	var categories, events int64
	require.NoError(t, db.Model(&model.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&model.Event{}).Count(&events).Error)
	assert.EqualValues(t, 1, categories)
	assert.EqualValues(t, 4, events)
}
