package entity

// OperatingHours rows are fully replaced on every restaurant update,
// never patched one by one.
type OperatingHours struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	RestaurantID uint   `gorm:"index;not null" json:"-"`
	Day          string `gorm:"size:20;not null" json:"day"`
	Hours        string `gorm:"size:100;not null" json:"hours"`
}

func (OperatingHours) TableName() string { return "operating_hours" }
