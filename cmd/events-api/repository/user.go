package repository

import (
	"context"
	"errors"

	"fstt-events-backend/cmd/events-api/model"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

// Create inserts the user. The pre-check gives the friendly conflict error;
// the unique index on users.email closes the check-then-insert race.
func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User

	err := r.db.
		WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, ErrUserNotFound
	}
	return user, err
}

func (r *UserRepo) GetByID(ctx context.Context, id uint) (model.User, error) {
	var user model.User

	err := r.db.
		WithContext(ctx).
		First(&user, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, ErrUserNotFound
	}
	return user, err
}
