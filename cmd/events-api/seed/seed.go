// Package seed loads the demo fixtures into an empty store. It runs once
// at process startup, never from a read path.
package seed

import (
	"context"
	"time"

	"fstt-events-backend/cmd/events-api/model"

	"github.com/goforj/godump"
	"gorm.io/gorm"
)

// Run inserts the default categories and events when their tables are
// empty. Calling it on every startup is safe.
func Run(ctx context.Context, db *gorm.DB, debug bool) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var categoryCount int64
		if err := tx.Model(&model.Category{}).Count(&categoryCount).Error; err != nil {
			return err
		}
		if categoryCount == 0 {
			categories := defaultCategories()
			if err := tx.Create(&categories).Error; err != nil {
				return err
			}
			if debug {
				godump.Dump(categories)
			}
		}

		var eventCount int64
		if err := tx.Model(&model.Event{}).Count(&eventCount).Error; err != nil {
			return err
		}
		if eventCount == 0 {
			events := defaultEvents()
			if err := tx.Create(&events).Error; err != nil {
				return err
			}
			if debug {
				godump.Dump(events)
			}
		}
		return nil
	})
}

func defaultCategories() []model.Category {
	return []model.Category{
		{Name: "Conférence"},
		{Name: "Formation"},
		{Name: "Atelier"},
		{Name: "Club"},
		{Name: "Sport"},
	}
}

// defaultEvents assumes the category fixtures were just inserted into an
// empty table, so their ids start at 1.
func defaultEvents() []model.Event {
	return []model.Event{
		{
			Title:       "Conférence IA et Data Science",
			Description: ptr("Découvrez les dernières avancées en Intelligence Artificielle"),
			Location:    ptr("Amphi A"),
			Date:        time.Date(2025, 1, 25, 14, 0, 0, 0, time.UTC),
			Status:      model.StatusOngoing,
			CategoryID:  ref(1),
		},
		{
			Title:       "Formation Python Avancé",
			Description: ptr("Apprenez les concepts avancés de Python"),
			Location:    ptr("Salle 101"),
			Date:        time.Date(2025, 1, 28, 9, 0, 0, 0, time.UTC),
			Status:      model.StatusOngoing,
			CategoryID:  ref(2),
		},
		{
			Title:       "Atelier Cloud Azure",
			Description: ptr("Hands-on sur les services Azure"),
			Location:    ptr("Labo Info"),
			Date:        time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
			Status:      model.StatusOngoing,
			CategoryID:  ref(3),
		},
		{
			Title:       "Tournoi de Football",
			Description: ptr("Tournoi inter-filières"),
			Location:    ptr("Terrain FSTT"),
			Date:        time.Date(2025, 2, 5, 15, 0, 0, 0, time.UTC),
			Status:      model.StatusOngoing,
			CategoryID:  ref(5),
		},
	}
}

func ptr(s string) *string { return &s }

func ref(id uint) *uint { return &id }
