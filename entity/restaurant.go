package entity

import "time"

// Restaurant's rating is derived from reviews at query time and never
// stored on the row.
type Restaurant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Neighborhood *string   `gorm:"size:100" json:"neighborhood"`
	CuisineType  *string   `gorm:"size:100" json:"cuisine_type"`
	Address      *string   `gorm:"size:500" json:"address"`
	Photograph   *string   `gorm:"size:1000" json:"photograph"`
	Image        *string   `gorm:"size:1000" json:"image"`
	Lat          *float64  `json:"lat"`
	Lng          *float64  `json:"lng"`
	CreatedAt    time.Time `json:"-"`

	Hours     []OperatingHours `gorm:"foreignKey:RestaurantID" json:"-"`
	Reviews   []Review         `json:"-"`
	Favorites []Favorite       `json:"-"`
}
