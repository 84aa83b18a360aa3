package entity

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:10;not null;default:USER" json:"role"`
	CreatedAt time.Time `json:"-"`

	Reviews   []Review   `json:"-"`
	Favorites []Favorite `json:"-"`
}
