package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/repository"
)

func newAdminCatalogService(t *testing.T) (*RestaurantAdminService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewRestaurantAdminService(
		db,
		repository.NewRestaurantRepository(db),
		repository.NewHoursRepository(db),
		repository.NewReviewRepository(db),
		repository.NewFavoriteRepository(db),
	)
	return svc, db
}

func updateReq(t *testing.T, payload string) dto.UpdateRestaurantRequest {
	t.Helper()
	var req dto.UpdateRestaurantRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.NoError(t, req.Validate())
	return req
}

func countRows(t *testing.T, db *gorm.DB, model any, restaurantID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where("restaurant_id = ?", restaurantID).Count(&n).Error)
	return n
}

func TestAdminCreateWithHours(t *testing.T) {
	svc, db := newAdminCatalogService(t)

	id, err := svc.Create(dto.CreateRestaurantRequest{
		Name:        "Nuevo",
		CuisineType: strPtr("Spanish"),
		Hours: []dto.HoursInput{
			{Day: "Monday", Hours: "9:00-17:00"},
			{Day: "Tuesday", Hours: "9:00-17:00"},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	assert.Equal(t, int64(2), countRows(t, db, &entity.OperatingHours{}, id))
}

func TestAdminUpdatePartial(t *testing.T) {
	svc, db := newAdminCatalogService(t)
	restaurant := seedRestaurant(t, db, "Old", func(r *entity.Restaurant) {
		r.Neighborhood = strPtr("Centro")
		r.Address = strPtr("Calle Vieja 1")
	})

	err := svc.Update(restaurant.ID, updateReq(t, `{"name":"New","neighborhood":null}`))
	require.NoError(t, err)

	var stored entity.Restaurant
	require.NoError(t, db.First(&stored, restaurant.ID).Error)
	assert.Equal(t, "New", stored.Name)
	assert.Nil(t, stored.Neighborhood)
	// untouched columns survive the partial update
	require.NotNil(t, stored.Address)
	assert.Equal(t, "Calle Vieja 1", *stored.Address)
}

func TestAdminUpdateHoursSemantics(t *testing.T) {
	svc, db := newAdminCatalogService(t)
	id, err := svc.Create(dto.CreateRestaurantRequest{
		Name:  "Horario",
		Hours: []dto.HoursInput{{Day: "Monday", Hours: "9-17"}},
	})
	require.NoError(t, err)

	// absent hours field keeps the existing rows
	require.NoError(t, svc.Update(id, updateReq(t, `{"name":"Horario 2"}`)))
	assert.Equal(t, int64(1), countRows(t, db, &entity.OperatingHours{}, id))

	// supplied hours replace the whole set
	require.NoError(t, svc.Update(id, updateReq(t,
		`{"hours":[{"day":"Friday","hours":"10-22"},{"day":"Saturday","hours":"10-23"}]}`)))
	hours, err := repository.NewHoursRepository(db).ListByRestaurant(id)
	require.NoError(t, err)
	require.Len(t, hours, 2)
	assert.Equal(t, "Friday", hours[0].Day)

	// a present empty list clears every row
	require.NoError(t, svc.Update(id, updateReq(t, `{"hours":[]}`)))
	assert.Equal(t, int64(0), countRows(t, db, &entity.OperatingHours{}, id))
}

func TestAdminUpdateMissingRestaurant(t *testing.T) {
	svc, _ := newAdminCatalogService(t)

	err := svc.Update(9999, updateReq(t, `{"name":"X"}`))
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "RESTAURANT_NOT_FOUND", ae.Code)
}

func TestAdminDeleteCascades(t *testing.T) {
	svc, db := newAdminCatalogService(t)
	user := seedUser(t, db, "cascade@test.com")
	id, err := svc.Create(dto.CreateRestaurantRequest{
		Name:  "Doomed",
		Hours: []dto.HoursInput{{Day: "Monday", Hours: "9-17"}},
	})
	require.NoError(t, err)
	seedReview(t, db, user.ID, id, 4)
	require.NoError(t, db.Create(&entity.Favorite{UserID: user.ID, RestaurantID: id}).Error)

	require.NoError(t, svc.Delete(id))

	assert.Equal(t, int64(0), countRows(t, db, &entity.Review{}, id))
	assert.Equal(t, int64(0), countRows(t, db, &entity.Favorite{}, id))
	assert.Equal(t, int64(0), countRows(t, db, &entity.OperatingHours{}, id))
	var n int64
	require.NoError(t, db.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&n).Error)
	assert.Equal(t, int64(0), n)

	err = svc.Delete(id)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "RESTAURANT_NOT_FOUND", ae.Code)
}
