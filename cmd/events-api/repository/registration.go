package repository

import (
	"context"
	"errors"
	"time"

	"fstt-events-backend/cmd/events-api/model"

	"gorm.io/gorm"
)

type RegistrationRepo struct {
	db *gorm.DB
}

func NewRegistrationRepo(db *gorm.DB) *RegistrationRepo {
	return &RegistrationRepo{
		db: db,
	}
}

// Register creates a registration for the (event, user) pair. Both rows
// must exist and the pair must not already be registered. Event status is
// not consulted: complet and annule events still accept registrations.
func (r *RegistrationRepo) Register(ctx context.Context, eventID, userID uint) (model.Registration, error) {
	var registration model.Registration

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Event{}, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if err := tx.First(&model.User{}, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.Registration{}).
			Where("user_id = ? AND event_id = ?", userID, eventID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyRegistered
		}

		registration = model.Registration{
			UserID:       userID,
			EventID:      eventID,
			RegisteredAt: time.Now().UTC(),
		}
		if err := tx.Create(&registration).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyRegistered
			}
			return err
		}
		return nil
	})

	if err != nil {
		return model.Registration{}, err
	}
	return registration, nil
}

// IsRegistered never fails on absent rows; absence is a valid answer.
func (r *RegistrationRepo) IsRegistered(ctx context.Context, eventID, userID uint) (bool, error) {
	var count int64

	err := r.db.
		WithContext(ctx).
		Model(&model.Registration{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error

	return count > 0, err
}

// Cancel deletes the registration. There is no ownership check: any caller
// may cancel any registration.
func (r *RegistrationRepo) Cancel(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var registration model.Registration
		if err := tx.First(&registration, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationNotFound
			}
			return err
		}
		return tx.Delete(&model.Registration{}, id).Error
	})
}

func (r *RegistrationRepo) ListForUser(ctx context.Context, userID uint) ([]model.Registration, error) {
	var registrations []model.Registration

	result := r.db.
		WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Event").
		Preload("Event.Category").
		Find(&registrations)

	if result.Error != nil {
		return nil, result.Error
	}
	return registrations, nil
}

// ListForEvent returns the event's roster with each registering user
// loaded. Unlike ListForUser it fails when the event does not exist.
func (r *RegistrationRepo) ListForEvent(ctx context.Context, eventID uint) ([]model.Registration, error) {
	var registrations []model.Registration

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Event{}, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		return tx.
			Where("event_id = ?", eventID).
			Preload("User").
			Find(&registrations).Error
	})

	if err != nil {
		return nil, err
	}
	return registrations, nil
}

// History is ListForUser restricted to events whose status is termine.
func (r *RegistrationRepo) History(ctx context.Context, userID uint) ([]model.Registration, error) {
	var registrations []model.Registration

	result := r.db.
		WithContext(ctx).
		Joins("JOIN events ON events.id = registrations.event_id").
		Where("registrations.user_id = ? AND events.status = ?", userID, model.StatusFinished).
		Preload("Event").
		Preload("Event.Category").
		Find(&registrations)

	if result.Error != nil {
		return nil, result.Error
	}
	return registrations, nil
}

// CountByEvent aggregates registration counts for all events in one query.
func (r *RegistrationRepo) CountByEvent(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		EventID uint
		Total   int64
	}

	result := r.db.
		WithContext(ctx).
		Model(&model.Registration{}).
		Select("event_id, COUNT(*) AS total").
		Group("event_id").
		Scan(&rows)

	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.EventID] = row.Total
	}
	return counts, nil
}

func (r *RegistrationRepo) CountForEvent(ctx context.Context, eventID uint) (int64, error) {
	var count int64

	err := r.db.
		WithContext(ctx).
		Model(&model.Registration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error

	return count, err
}
