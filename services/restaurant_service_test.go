package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/repository"
)

func newRestaurantService(t *testing.T) (*RestaurantService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewRestaurantService(
		repository.NewRestaurantRepository(db),
		repository.NewReviewRepository(db),
	)
	return svc, db
}

func listQuery(t *testing.T, values url.Values) dto.ListQuery {
	t.Helper()
	q, err := dto.ParseListQuery(values)
	require.NoError(t, err)
	return q
}

func TestListPagination(t *testing.T) {
	svc, db := newRestaurantService(t)
	for _, name := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"} {
		seedRestaurant(t, db, name)
	}

	res, err := svc.List(listQuery(t, url.Values{"page": {"2"}, "limit": {"2"}}))
	require.NoError(t, err)
	// total reflects the whole filtered set, not the page
	assert.Equal(t, int64(5), res.Pagination.Total)
	assert.Equal(t, 2, res.Pagination.Page)
	assert.Equal(t, 2, res.Pagination.Limit)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Charlie", res.Data[0].Name)
	assert.Equal(t, "Delta", res.Data[1].Name)
}

func TestListPageBeyondEnd(t *testing.T) {
	svc, db := newRestaurantService(t)
	seedRestaurant(t, db, "Only")

	res, err := svc.List(listQuery(t, url.Values{"page": {"9"}}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Pagination.Total)
	assert.Empty(t, res.Data)
	assert.NotNil(t, res.Data)
}

func TestListRatingFilterTreatsUnreviewedAsZero(t *testing.T) {
	svc, db := newRestaurantService(t)
	user := seedUser(t, db, "rater@test.com")
	rated := seedRestaurant(t, db, "Rated")
	unrated := seedRestaurant(t, db, "Unrated")
	seedReview(t, db, user.ID, rated.ID, 4)

	res, err := svc.List(listQuery(t, url.Values{"rating": {"3"}}))
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, rated.ID, res.Data[0].ID)
	assert.InDelta(t, 4.0, res.Data[0].Rating, 0.001)

	// rating >= 0 matches everything, unreviewed rows included
	res, err = svc.List(listQuery(t, url.Values{"rating": {"0"}}))
	require.NoError(t, err)
	assert.Len(t, res.Data, 2)
	_ = unrated
}

func TestListFiltersAndSort(t *testing.T) {
	svc, db := newRestaurantService(t)
	user := seedUser(t, db, "sorter@test.com")
	a := seedRestaurant(t, db, "Asador", func(r *entity.Restaurant) {
		r.CuisineType = strPtr("Spanish")
		r.Neighborhood = strPtr("Centro")
	})
	b := seedRestaurant(t, db, "Bistro", func(r *entity.Restaurant) {
		r.CuisineType = strPtr("Spanish")
		r.Neighborhood = strPtr("Norte")
	})
	seedRestaurant(t, db, "Curry House", func(r *entity.Restaurant) {
		r.CuisineType = strPtr("Indian")
	})
	seedReview(t, db, user.ID, b.ID, 5)

	res, err := svc.List(listQuery(t, url.Values{"cuisine_type": {"Spanish"}}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Pagination.Total)

	res, err = svc.List(listQuery(t, url.Values{"cuisine_type": {"Spanish"}, "neighborhood": {"Centro"}}))
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, a.ID, res.Data[0].ID)

	res, err = svc.List(listQuery(t, url.Values{"sort": {"rating:desc"}}))
	require.NoError(t, err)
	require.NotEmpty(t, res.Data)
	assert.Equal(t, b.ID, res.Data[0].ID)
}

func TestGetByID(t *testing.T) {
	svc, db := newRestaurantService(t)
	user := seedUser(t, db, "d@test.com")
	restaurant := seedRestaurant(t, db, "Detail", func(r *entity.Restaurant) {
		r.Address = strPtr("Calle Mayor 1")
	})
	require.NoError(t, db.Create(&entity.OperatingHours{
		RestaurantID: restaurant.ID, Day: "Monday", Hours: "9:00-17:00",
	}).Error)
	seedReview(t, db, user.ID, restaurant.ID, 3)

	detail, err := svc.GetByID(restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Detail", detail.Name)
	assert.InDelta(t, 3.0, detail.Rating, 0.001)
	require.Len(t, detail.Hours, 1)
	assert.Equal(t, "Monday", detail.Hours[0].Day)

	_, err = svc.GetByID(9999)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "RESTAURANT_NOT_FOUND", ae.Code)
}

func TestCreateReview(t *testing.T) {
	svc, db := newRestaurantService(t)
	user := seedUser(t, db, "rev@test.com")
	restaurant := seedRestaurant(t, db, "Reviewed")

	id, err := svc.CreateReview(user.ID, restaurant.ID, dto.CreateReviewRequest{
		Rating: intPtr(5), Comments: strPtr("great"),
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	var ae *apperr.Error

	_, err = svc.CreateReview(user.ID, restaurant.ID, dto.CreateReviewRequest{Rating: intPtr(4)})
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "ALREADY_REVIEWED", ae.Code)

	_, err = svc.CreateReview(user.ID, 9999, dto.CreateReviewRequest{Rating: intPtr(4)})
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "RESTAURANT_NOT_FOUND", ae.Code)
}

func TestListReviews(t *testing.T) {
	svc, db := newRestaurantService(t)
	user := seedUser(t, db, "lr@test.com")
	restaurant := seedRestaurant(t, db, "Listed")
	seedReview(t, db, user.ID, restaurant.ID, 2)

	rows, err := svc.ListReviews(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "lr@test.com", rows[0].UserEmail)
	assert.Equal(t, 2, rows[0].Rating)

	_, err = svc.ListReviews(9999)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "RESTAURANT_NOT_FOUND", ae.Code)
}
