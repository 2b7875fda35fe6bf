package repository

import (
	"context"
	"errors"

	"fstt-events-backend/cmd/events-api/model"

	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{
		db: db,
	}
}

func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category

	result := r.db.
		WithContext(ctx).
		Order("id").
		Find(&categories)

	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (r *CategoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryNameTaken
		}

		if err := tx.Create(category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrCategoryNameTaken
			}
			return err
		}
		return nil
	})
}

// Update renames the category. The new name may collide only with the
// category itself, never with a different row.
func (r *CategoryRepo) Update(ctx context.Context, id uint, name string) (model.Category, error) {
	var category model.Category

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.Category{}).
			Where("name = ? AND id <> ?", name, id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryNameTaken
		}

		category.Name = name
		if err := tx.Save(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrCategoryNameTaken
			}
			return err
		}
		return nil
	})

	if err != nil {
		return model.Category{}, err
	}
	return category, nil
}

// Delete removes the category unless events still reference it. On
// ErrCategoryInUse the returned count is the number of blocking events.
func (r *CategoryRepo) Delete(ctx context.Context, id uint) (int64, error) {
	var blocking int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category model.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		if err := tx.Model(&model.Event{}).
			Where("category_id = ?", id).
			Count(&blocking).Error; err != nil {
			return err
		}
		if blocking > 0 {
			return ErrCategoryInUse
		}

		return tx.Delete(&model.Category{}, id).Error
	})

	return blocking, err
}
