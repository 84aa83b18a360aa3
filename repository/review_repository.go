package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
)

type UserReviewRow struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	RestaurantID   uint      `json:"restaurant_id"`
	Rating         int       `json:"rating"`
	Comments       *string   `json:"comments"`
	CreatedAt      time.Time `json:"created_at"`
	RestaurantName string    `json:"restaurant_name"`
}

type RestaurantReviewRow struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	RestaurantID uint      `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	Comments     *string   `json:"comments"`
	CreatedAt    time.Time `json:"created_at"`
	UserEmail    string    `json:"user_email"`
}

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) WithTx(tx *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: tx}
}

func (r *ReviewRepository) UserHasReview(userID, restaurantID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert stores the review. A uniqueness violation on (user, restaurant)
// comes back as ErrDuplicate so a race between pre-check and insert maps
// to the same conflict as an ordinary duplicate.
func (r *ReviewRepository) Insert(review *entity.Review) error {
	if err := r.DB.Create(review).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *ReviewRepository) ListForRestaurant(restaurantID uint) ([]RestaurantReviewRow, error) {
	var rows []RestaurantReviewRow
	err := r.DB.Raw(`SELECT
			rv.id, rv.user_id, rv.restaurant_id, rv.rating, rv.comments, rv.created_at,
			u.email AS user_email
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.restaurant_id = ?
		ORDER BY rv.created_at DESC`, restaurantID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []RestaurantReviewRow{}
	}
	return rows, nil
}

func (r *ReviewRepository) ListByUser(userID uint) ([]UserReviewRow, error) {
	var rows []UserReviewRow
	err := r.DB.Raw(`SELECT
			rv.id, rv.user_id, rv.restaurant_id, rv.rating, rv.comments, rv.created_at,
			r.name AS restaurant_name
		FROM reviews rv
		JOIN restaurants r ON r.id = rv.restaurant_id
		WHERE rv.user_id = ?
		ORDER BY rv.created_at DESC`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []UserReviewRow{}
	}
	return rows, nil
}

// FindOwned scopes the lookup to the issuing user: a review that exists
// but belongs to someone else is reported as absent.
func (r *ReviewRepository) FindOwned(reviewID, userID uint) (*entity.Review, error) {
	var review entity.Review
	err := r.DB.Where("id = ? AND user_id = ?", reviewID, userID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Update(reviewID uint, rating int, comments *string, setComments bool) error {
	cols := map[string]any{"rating": rating}
	if setComments {
		cols["comments"] = comments
	}
	return r.DB.Model(&entity.Review{}).Where("id = ?", reviewID).Updates(cols).Error
}

func (r *ReviewRepository) Delete(reviewID uint) error {
	return r.DB.Delete(&entity.Review{}, reviewID).Error
}

func (r *ReviewRepository) DeleteForRestaurant(restaurantID uint) error {
	return r.DB.Where("restaurant_id = ?", restaurantID).Delete(&entity.Review{}).Error
}

// isUniqueViolation recognizes the storage backstop firing. gorm's error
// translation covers the common case; the string match catches drivers
// that return the raw sqlite message.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
