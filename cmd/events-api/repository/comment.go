package repository

import (
	"context"
	"errors"
	"time"

	"fstt-events-backend/cmd/events-api/model"

	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{
		db: db,
	}
}

// Create inserts a comment stamped with the current time and returns it
// with the commenting user attached.
func (r *CommentRepo) Create(ctx context.Context, eventID, userID uint, content string) (model.Comment, error) {
	var comment model.Comment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Event{}, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		comment = model.Comment{
			Content:   content,
			CreatedAt: time.Now().UTC(),
			UserID:    userID,
			EventID:   eventID,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		comment.User = &user
		return nil
	})

	if err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

// ListForEvent returns the event's comments newest first. Equal timestamps
// keep insertion order via the id tie-break.
func (r *CommentRepo) ListForEvent(ctx context.Context, eventID uint) ([]model.Comment, error) {
	var comments []model.Comment

	result := r.db.
		WithContext(ctx).
		Where("event_id = ?", eventID).
		Preload("User").
		Order("created_at DESC, id ASC").
		Find(&comments)

	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

// Delete removes the comment. No ownership check, matching cancel.
func (r *CommentRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}
		return tx.Delete(&model.Comment{}, id).Error
	})
}
