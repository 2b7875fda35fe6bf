package model

type Category struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;uniqueIndex;not null" json:"name"`
}

func (m *Category) TableName() string {
	return "categories"
}
