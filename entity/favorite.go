package entity

import "time"

type Favorite struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uq_favorites_user_restaurant" json:"user_id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:uq_favorites_user_restaurant" json:"restaurant_id"`
	CreatedAt    time.Time `json:"-"`
}
