package repository

import (
	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
)

// FavoriteRestaurantRow is the full restaurant shape with derived rating,
// as returned by the favorites listing.
type FavoriteRestaurantRow struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Neighborhood *string  `json:"neighborhood"`
	CuisineType  *string  `json:"cuisine_type"`
	Rating       float64  `json:"rating"`
	Address      *string  `json:"address"`
	Photograph   *string  `json:"photograph"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	Image        *string  `json:"image"`
}

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository { return &FavoriteRepository{DB: db} }

func (r *FavoriteRepository) WithTx(tx *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: tx}
}

func (r *FavoriteRepository) Exists(userID, restaurantID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FavoriteRepository) Insert(userID, restaurantID uint) error {
	fav := entity.Favorite{UserID: userID, RestaurantID: restaurantID}
	if err := r.DB.Create(&fav).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *FavoriteRepository) Delete(userID, restaurantID uint) error {
	return r.DB.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&entity.Favorite{}).Error
}

func (r *FavoriteRepository) ListByUser(userID uint) ([]FavoriteRestaurantRow, error) {
	var rows []FavoriteRestaurantRow
	err := r.DB.Raw(`SELECT
			r.id,
			r.name,
			r.neighborhood,
			r.cuisine_type,
			COALESCE(ar.avg_rating, 0) AS rating,
			r.address,
			r.photograph,
			r.lat,
			r.lng,
			r.image
		FROM favorites f
		JOIN restaurants r ON r.id = f.restaurant_id
		LEFT JOIN (
			SELECT restaurant_id, AVG(rating) AS avg_rating
			FROM reviews
			GROUP BY restaurant_id
		) ar ON ar.restaurant_id = r.id
		WHERE f.user_id = ?`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []FavoriteRestaurantRow{}
	}
	return rows, nil
}

func (r *FavoriteRepository) DeleteForRestaurant(restaurantID uint) error {
	return r.DB.Where("restaurant_id = ?", restaurantID).Delete(&entity.Favorite{}).Error
}
