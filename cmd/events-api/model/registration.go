package model

import "time"

// Registration links one user to one event. The composite unique index
// enforces one registration per (user, event) pair at the store level, so
// two concurrent registrations cannot both commit.
type Registration struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;uniqueIndex:idx_registrations_user_event" json:"user_id"`
	EventID      uint      `gorm:"column:event_id;not null;uniqueIndex:idx_registrations_user_event" json:"event_id"`
	RegisteredAt time.Time `gorm:"column:registered_at" json:"registered_at"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Event *Event `gorm:"foreignKey:EventID" json:"-"`
}

func (m *Registration) TableName() string {
	return "registrations"
}
