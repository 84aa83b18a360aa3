package services

import (
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/repository"
)

type AdminStats struct {
	UsersCount       int64                        `json:"users_count"`
	ReviewsCount     int64                        `json:"reviews_count"`
	RestaurantsCount int64                        `json:"restaurants_count"`
	TopRated         []repository.TopRatedRow     `json:"top_rated"`
	MostReviewed     []repository.MostReviewedRow `json:"most_reviewed"`
}

type AdminService struct {
	statsRepo *repository.StatsRepository
}

func NewAdminService(statsRepo *repository.StatsRepository) *AdminService {
	return &AdminService{statsRepo: statsRepo}
}

// Stats aggregates the dashboard numbers. Any storage failure is wrapped
// as ADMIN_STATS_ERROR rather than a bare 500.
func (s *AdminService) Stats() (*AdminStats, error) {
	stats := &AdminStats{}
	var err error

	if stats.UsersCount, err = s.statsRepo.CountUsers(); err != nil {
		return nil, apperr.ErrAdminStats.Wrap(err)
	}
	if stats.ReviewsCount, err = s.statsRepo.CountReviews(); err != nil {
		return nil, apperr.ErrAdminStats.Wrap(err)
	}
	if stats.RestaurantsCount, err = s.statsRepo.CountRestaurants(); err != nil {
		return nil, apperr.ErrAdminStats.Wrap(err)
	}
	if stats.TopRated, err = s.statsRepo.TopRated(); err != nil {
		return nil, apperr.ErrAdminStats.Wrap(err)
	}
	if stats.MostReviewed, err = s.statsRepo.MostReviewed(); err != nil {
		return nil, apperr.ErrAdminStats.Wrap(err)
	}
	return stats, nil
}
