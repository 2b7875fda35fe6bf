package repository

import (
	"context"
	"testing"
	"time"

	"fstt-events-backend/cmd/events-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepo_Create_ForcesOngoingStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)

	event := model.Event{
		Title:  "Conférence IA",
		Date:   time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
		Status: model.StatusFinished, // caller input is ignored
	}
	err := repo.Create(context.Background(), &event)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusOngoing, event.Status)
	assert.NotZero(t, event.ID)
}

func TestEventRepo_Create_DanglingCategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)

	missing := uint(99)
	event := model.Event{
		Title:      "Atelier fantôme",
		Date:       time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
		CategoryID: &missing,
	}
	err := repo.Create(context.Background(), &event)

	assert.ErrorIs(t, err, ErrCategoryNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Event{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEventRepo_Create_LoadsCategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)

	category := seedCategory(t, db, "Conférence")

	event := model.Event{
		Title:      "Conférence IA",
		Date:       time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
		CategoryID: &category.ID,
	}
	require.NoError(t, repo.Create(context.Background(), &event))

	require.NotNil(t, event.Category)
	assert.Equal(t, "Conférence", event.Category.Name)
}

func TestEventRepo_Update_FullReplaceKeepsStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Formation")
	event := seedEvent(t, db, "Formation Python", model.StatusFull, &category.ID)

	newDate := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	updated, err := repo.Update(ctx, event.ID, model.EventCreateRequest{
		Title: "Formation Go",
		Date:  newDate,
		// description, location and category all replaced with nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "Formation Go", updated.Title)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.Location)
	assert.Nil(t, updated.CategoryID)
	assert.Nil(t, updated.Category)
	assert.True(t, updated.Date.Equal(newDate))
	// Update never touches the status.
	assert.Equal(t, model.StatusFull, updated.Status)
}

func TestEventRepo_Update_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)

	_, err := repo.Update(context.Background(), 123, model.EventCreateRequest{Title: "X"})

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepo_UpdateStatus_EnumClosure(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	event := seedEvent(t, db, "Tournoi", model.StatusOngoing, nil)

	for _, status := range []model.EventStatus{
		model.StatusOngoing, model.StatusFull, model.StatusCanceled, model.StatusFinished,
	} {
		assert.NoError(t, repo.UpdateStatus(ctx, event.ID, status))
	}

	err := repo.UpdateStatus(ctx, event.ID, model.EventStatus("reporte"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// The rejected value must leave the stored status unchanged.
	stored, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFinished, stored.Status)
}

func TestEventRepo_UpdateStatus_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)

	err := repo.UpdateStatus(context.Background(), 55, model.StatusFull)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepo_Delete_CascadesRegistrationsAndComments(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "Amina", "amina@uae.ac.ma")
	event := seedEvent(t, db, "Tournoi", model.StatusOngoing, nil)
	other := seedEvent(t, db, "Atelier", model.StatusOngoing, nil)

	require.NoError(t, db.Create(&model.Registration{
		UserID: user.ID, EventID: event.ID, RegisteredAt: time.Now().UTC(),
	}).Error)
	require.NoError(t, db.Create(&model.Registration{
		UserID: user.ID, EventID: other.ID, RegisteredAt: time.Now().UTC(),
	}).Error)
	require.NoError(t, db.Create(&model.Comment{
		Content: "On se voit là-bas", CreatedAt: time.Now().UTC(), UserID: user.ID, EventID: event.ID,
	}).Error)

	require.NoError(t, repo.Delete(ctx, event.ID))

	var registrations, comments int64
	require.NoError(t, db.Model(&model.Registration{}).Where("event_id = ?", event.ID).Count(&registrations).Error)
	require.NoError(t, db.Model(&model.Comment{}).Where("event_id = ?", event.ID).Count(&comments).Error)
	assert.Zero(t, registrations)
	assert.Zero(t, comments)

	// Rows belonging to other events survive.
	var surviving int64
	require.NoError(t, db.Model(&model.Registration{}).Where("event_id = ?", other.ID).Count(&surviving).Error)
	assert.EqualValues(t, 1, surviving)
}

func TestEventRepo_Delete_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)

	err := repo.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepo_List_PreloadsCategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepo(db)

	category := seedCategory(t, db, "Club")
	seedEvent(t, db, "Soirée Club Robotique", model.StatusOngoing, &category.ID)
	seedEvent(t, db, "Sans catégorie", model.StatusOngoing, nil)

	events, err := repo.List(context.Background())

	assert.NoError(t, err)
	require.Len(t, events, 2)
	require.NotNil(t, events[0].Category)
	assert.Equal(t, "Club", events[0].Category.Name)
	assert.Nil(t, events[1].Category)
}

func TestEventRepo_List_StoreError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	}()

	repo := NewEventRepo(gormDB)

	mock.ExpectQuery("SELECT \\* FROM `events`").
		WillReturnError(assert.AnError)

	events, err := repo.List(context.Background())

	assert.Error(t, err)
	assert.Nil(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}
