package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/configs"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
)

// newTestDB opens a private in-memory database per test; cache=shared
// keeps it alive across the pool's connections for the test's lifetime.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := configs.ConnectDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	user := &entity.User{Name: "Test", Email: email, Password: "x", Role: entity.RoleUser}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string, mutate ...func(*entity.Restaurant)) *entity.Restaurant {
	t.Helper()
	restaurant := &entity.Restaurant{Name: name}
	for _, m := range mutate {
		m(restaurant)
	}
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}

func seedReview(t *testing.T, db *gorm.DB, userID, restaurantID uint, rating int) *entity.Review {
	t.Helper()
	review := &entity.Review{UserID: userID, RestaurantID: restaurantID, Rating: rating}
	require.NoError(t, db.Create(review).Error)
	return review
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
