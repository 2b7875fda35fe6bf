package model

import "time"

// Comment is immutable once created: it can only be deleted, never edited.
type Comment struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Content   string    `gorm:"column:content;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	EventID   uint      `gorm:"column:event_id;not null" json:"event_id"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Event *Event `gorm:"foreignKey:EventID" json:"-"`
}

func (m *Comment) TableName() string {
	return "comments"
}
