package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/repository"
)

func TestAdminStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(repository.NewStatsRepository(db))

	alice := seedUser(t, db, "alice@test.com")
	bob := seedUser(t, db, "bob@test.com")
	first := seedRestaurant(t, db, "First")
	second := seedRestaurant(t, db, "Second")
	third := seedRestaurant(t, db, "Third")
	fourth := seedRestaurant(t, db, "Fourth")

	seedReview(t, db, alice.ID, first.ID, 5)
	seedReview(t, db, alice.ID, second.ID, 3)
	seedReview(t, db, bob.ID, second.ID, 3)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.UsersCount)
	assert.Equal(t, int64(4), stats.RestaurantsCount)
	assert.Equal(t, int64(3), stats.ReviewsCount)

	require.Len(t, stats.TopRated, 3)
	assert.Equal(t, first.ID, stats.TopRated[0].ID)
	require.NotNil(t, stats.TopRated[0].AvgRating)
	assert.InDelta(t, 5.0, *stats.TopRated[0].AvgRating, 0.001)
	assert.Equal(t, second.ID, stats.TopRated[1].ID)
	// unreviewed rows rank below reviewed ones and tie on id ascending
	assert.Equal(t, third.ID, stats.TopRated[2].ID)
	assert.Nil(t, stats.TopRated[2].AvgRating)

	require.Len(t, stats.MostReviewed, 3)
	assert.Equal(t, second.ID, stats.MostReviewed[0].ID)
	assert.Equal(t, int64(2), stats.MostReviewed[0].Reviews)
	assert.Equal(t, first.ID, stats.MostReviewed[1].ID)
	_ = fourth
}
