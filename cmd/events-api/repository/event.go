package repository

import (
	"context"
	"errors"

	"fstt-events-backend/cmd/events-api/model"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{
		db: db,
	}
}

func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event

	result := r.db.
		WithContext(ctx).
		Preload("Category").
		Order("id").
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepo) GetByID(ctx context.Context, id uint) (model.Event, error) {
	var event model.Event

	err := r.db.
		WithContext(ctx).
		Preload("Category").
		First(&event, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Event{}, ErrEventNotFound
	}
	return event, err
}

// Create inserts the event. The status is always forced to en_cours no
// matter what the caller set, and a non-nil category reference must point
// at an existing category.
func (r *EventRepo) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCategoryExists(tx, event.CategoryID); err != nil {
			return err
		}

		event.Status = model.StatusOngoing
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return tx.Preload("Category").First(event, event.ID).Error
	})
}

// Update replaces title, description, location, date and category in full.
// The status is deliberately untouched; only UpdateStatus changes it.
func (r *EventRepo) Update(ctx context.Context, id uint, req model.EventCreateRequest) (model.Event, error) {
	var event model.Event

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		if err := checkCategoryExists(tx, req.CategoryID); err != nil {
			return err
		}

		event.Title = req.Title
		event.Description = req.Description
		event.Location = req.Location
		event.Date = req.Date
		event.CategoryID = req.CategoryID
		event.Category = nil

		if err := tx.Save(&event).Error; err != nil {
			return err
		}
		return tx.Preload("Category").First(&event, id).Error
	})

	if err != nil {
		return model.Event{}, err
	}
	return event, nil
}

func (r *EventRepo) UpdateStatus(ctx context.Context, id uint, status model.EventStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		if !status.Valid() {
			return ErrInvalidStatus
		}

		return tx.Model(&event).Update("status", status).Error
	})
}

// Delete removes the event together with its registrations and comments.
// The store declares no cascade rule, so the dependent rows are deleted
// explicitly inside the same transaction.
func (r *EventRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&model.Registration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Event{}, id).Error
	})
}

func checkCategoryExists(tx *gorm.DB, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&model.Category{}).Where("id = ?", *categoryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
