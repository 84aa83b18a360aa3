package repository

import (
	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
)

type TopRatedRow struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	CuisineType  *string  `json:"cuisine_type"`
	Neighborhood *string  `json:"neighborhood"`
	AvgRating    *float64 `json:"avg_rating"`
}

type MostReviewedRow struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	CuisineType *string `json:"cuisine_type"`
	Reviews     int64   `json:"reviews"`
}

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository { return &StatsRepository{DB: db} }

func (r *StatsRepository) CountUsers() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountRestaurants() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Restaurant{}).Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountReviews() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Review{}).Count(&n).Error
	return n, err
}

// TopRated returns the three best-rated restaurants. Ties break on id
// ascending to keep the listing deterministic.
func (r *StatsRepository) TopRated() ([]TopRatedRow, error) {
	var rows []TopRatedRow
	err := r.DB.Raw(`SELECT
			r.id,
			r.name,
			r.cuisine_type,
			r.neighborhood,
			AVG(rv.rating) AS avg_rating
		FROM restaurants r
		LEFT JOIN reviews rv ON rv.restaurant_id = r.id
		GROUP BY r.id
		ORDER BY avg_rating DESC, r.id ASC
		LIMIT 3`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []TopRatedRow{}
	}
	return rows, nil
}

func (r *StatsRepository) MostReviewed() ([]MostReviewedRow, error) {
	var rows []MostReviewedRow
	err := r.DB.Raw(`SELECT
			r.id,
			r.name,
			r.cuisine_type,
			COUNT(rv.id) AS reviews
		FROM restaurants r
		LEFT JOIN reviews rv ON rv.restaurant_id = r.id
		GROUP BY r.id
		ORDER BY reviews DESC, r.id ASC
		LIMIT 3`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []MostReviewedRow{}
	}
	return rows, nil
}
