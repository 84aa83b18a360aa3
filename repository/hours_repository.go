package repository

import (
	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
)

type HoursRepository struct {
	DB *gorm.DB
}

func NewHoursRepository(db *gorm.DB) *HoursRepository { return &HoursRepository{DB: db} }

func (r *HoursRepository) WithTx(tx *gorm.DB) *HoursRepository {
	return &HoursRepository{DB: tx}
}

func (r *HoursRepository) InsertBatch(restaurantID uint, hours []entity.OperatingHours) error {
	if len(hours) == 0 {
		return nil
	}
	for i := range hours {
		hours[i].ID = 0
		hours[i].RestaurantID = restaurantID
	}
	return r.DB.Create(&hours).Error
}

func (r *HoursRepository) DeleteForRestaurant(restaurantID uint) error {
	return r.DB.Where("restaurant_id = ?", restaurantID).Delete(&entity.OperatingHours{}).Error
}

func (r *HoursRepository) ListByRestaurant(restaurantID uint) ([]entity.OperatingHours, error) {
	var hours []entity.OperatingHours
	if err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id ASC").Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}
