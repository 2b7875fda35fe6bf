package model

import "time"

type EventStatus string

var (
	StatusOngoing  EventStatus = "en_cours"
	StatusFull     EventStatus = "complet"
	StatusCanceled EventStatus = "annule"
	StatusFinished EventStatus = "termine"
)

// Valid reports whether s is one of the four lifecycle statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusOngoing, StatusFull, StatusCanceled, StatusFinished:
		return true
	}
	return false
}

type Event struct {
	ID          uint        `gorm:"column:id;primaryKey" json:"id"`
	Title       string      `gorm:"column:title;not null" json:"title"`
	Description *string     `gorm:"column:description" json:"description"`
	Location    *string     `gorm:"column:location" json:"location"`
	Date        time.Time   `gorm:"column:date;not null" json:"date"`
	Status      EventStatus `gorm:"column:status;default:en_cours" json:"status"`
	CategoryID  *uint       `gorm:"column:category_id" json:"category_id,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (m *Event) TableName() string {
	return "events"
}
