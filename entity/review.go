package entity

import "time"

// The composite unique index is the storage-level backstop for the
// one-review-per-user-per-restaurant invariant; services pre-check but
// the index is the final arbiter under concurrent inserts.
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uq_reviews_user_restaurant" json:"user_id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:uq_reviews_user_restaurant" json:"restaurant_id"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comments     *string   `gorm:"size:5000" json:"comments"`
	CreatedAt    time.Time `json:"created_at"`
}
