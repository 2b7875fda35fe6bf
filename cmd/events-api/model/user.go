package model

// User is an account holder. The stored password digest never leaves
// this package through a view type; handlers respond with UserView.
type User struct {
	ID             uint   `gorm:"column:id;primaryKey" json:"id"`
	Name           string `gorm:"column:name;not null" json:"name"`
	Email          string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordDigest string `gorm:"column:password_hash;not null" json:"-"`
	IsAdmin        bool   `gorm:"column:is_admin;default:false" json:"is_admin"`
}

func (m *User) TableName() string {
	return "users"
}
