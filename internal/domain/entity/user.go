package entity

import (
	"time"
)

type User struct {
	ID           string `json:"id" gorm:"primaryKey;size:36"`
	Username     string `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email        string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`

	Bio       string     `json:"bio,omitempty" gorm:"size:500"`
	Location  string     `json:"location,omitempty" gorm:"size:100"`
	BirthDate *time.Time `json:"birth_date,omitempty"`

	Favorites []Location `json:"-" gorm:"many2many:user_favorites;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Admin is a privileged extension of a user account.
type Admin struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string `json:"user_id" gorm:"size:36;uniqueIndex;not null"`
	EmployeeID  string `json:"employee_id" gorm:"size:10;uniqueIndex;not null"`
	Department  string `json:"department" gorm:"size:100"`
	IsSuperadmin bool  `json:"is_superadmin"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
