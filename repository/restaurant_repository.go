package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
)

// ratingJoin folds the per-restaurant review average into every read.
// COALESCE applies the zero default inside the query so rating filters
// and sorts see the same value clients do.
const ratingJoin = `
	FROM restaurants r
	LEFT JOIN (
		SELECT restaurant_id, AVG(rating) AS avg_rating
		FROM reviews
		GROUP BY restaurant_id
	) ar ON ar.restaurant_id = r.id`

type RestaurantRow struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Neighborhood *string `json:"neighborhood"`
	CuisineType  *string `json:"cuisine_type"`
	Rating       float64 `json:"rating"`
	Image        *string `json:"image"`
}

type RestaurantDetail struct {
	ID           uint                    `json:"id"`
	Name         string                  `json:"name"`
	Neighborhood *string                 `json:"neighborhood"`
	CuisineType  *string                 `json:"cuisine_type"`
	Rating       float64                 `json:"rating"`
	Address      *string                 `json:"address"`
	Photograph   *string                 `json:"photograph"`
	Lat          *float64                `json:"lat"`
	Lng          *float64                `json:"lng"`
	Image        *string                 `json:"image"`
	Hours        []entity.OperatingHours `json:"operating_hours" gorm:"-"`
}

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) WithTx(tx *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: tx}
}

// List builds the filtered page in exactly two statements: one COUNT over
// the filtered join for pagination metadata, one bounded page query. The
// order expression arrives already whitelisted (dto.ListQuery.Order), so
// interpolating it is safe; every filter value stays a bound parameter.
func (r *RestaurantRepository) List(q dto.ListQuery) ([]RestaurantRow, int64, error) {
	where := ""
	params := []any{}

	appendClause := func(clause string, value any) {
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
		params = append(params, value)
	}

	if q.CuisineType != "" {
		appendClause("r.cuisine_type = ?", q.CuisineType)
	}
	if q.Neighborhood != "" {
		appendClause("r.neighborhood = ?", q.Neighborhood)
	}
	if q.Rating != nil {
		appendClause("COALESCE(ar.avg_rating, 0) >= ?", *q.Rating)
	}

	var total int64
	if err := r.DB.Raw("SELECT COUNT(*)"+ratingJoin+where, params...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	field, dir := q.Order()
	order := fmt.Sprintf(" ORDER BY %s %s", field, dir)

	var rows []RestaurantRow
	pageSQL := `SELECT
			r.id,
			r.name,
			r.neighborhood,
			r.cuisine_type,
			COALESCE(ar.avg_rating, 0) AS rating,
			r.image` +
		ratingJoin + where + order + " LIMIT ? OFFSET ?"
	params = append(params, q.Limit, (q.Page-1)*q.Limit)
	if err := r.DB.Raw(pageSQL, params...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	if rows == nil {
		rows = []RestaurantRow{}
	}
	return rows, total, nil
}

// FindByID returns the full detail with derived rating and hours ordered
// by insertion, or nil when the restaurant does not exist.
func (r *RestaurantRepository) FindByID(id uint) (*RestaurantDetail, error) {
	var detail RestaurantDetail
	res := r.DB.Raw(`SELECT
			r.id,
			r.name,
			r.neighborhood,
			r.cuisine_type,
			COALESCE(ar.avg_rating, 0) AS rating,
			r.address,
			r.photograph,
			r.lat,
			r.lng,
			r.image`+
		ratingJoin+" WHERE r.id = ?", id).Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var hours []entity.OperatingHours
	if err := r.DB.Where("restaurant_id = ?", id).Order("id ASC").Find(&hours).Error; err != nil {
		return nil, err
	}
	detail.Hours = hours
	return &detail, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RestaurantRepository) Insert(restaurant *entity.Restaurant) error {
	return r.DB.Create(restaurant).Error
}

// UpdateColumns applies the set-if-present column map; the caller decides
// which columns appear. Empty maps are a no-op, not an error.
func (r *RestaurantRepository) UpdateColumns(id uint, cols map[string]any) error {
	if len(cols) == 0 {
		return nil
	}
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(cols).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Restaurant{}, id).Error
}
