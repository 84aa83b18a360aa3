package services

import (
	"errors"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/repository"
)

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type RestaurantList struct {
	Data       []repository.RestaurantRow `json:"data"`
	Pagination Pagination                 `json:"pagination"`
}

type RestaurantService struct {
	restaurantRepo *repository.RestaurantRepository
	reviewRepo     *repository.ReviewRepository
}

func NewRestaurantService(restaurantRepo *repository.RestaurantRepository, reviewRepo *repository.ReviewRepository) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo, reviewRepo: reviewRepo}
}

func (s *RestaurantService) List(q dto.ListQuery) (*RestaurantList, error) {
	rows, total, err := s.restaurantRepo.List(q)
	if err != nil {
		return nil, err
	}
	return &RestaurantList{
		Data:       rows,
		Pagination: Pagination{Page: q.Page, Limit: q.Limit, Total: total},
	}, nil
}

func (s *RestaurantService) GetByID(id uint) (*repository.RestaurantDetail, error) {
	detail, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperr.ErrRestaurantNotFound
	}
	return detail, nil
}

func (s *RestaurantService) ListReviews(restaurantID uint) ([]repository.RestaurantReviewRow, error) {
	exists, err := s.restaurantRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.ErrRestaurantNotFound
	}
	return s.reviewRepo.ListForRestaurant(restaurantID)
}

// CreateReview enforces one review per user per restaurant twice: the
// pre-check gives the friendly fast path, and the unique index catches
// the race between check and insert. Both surface as ALREADY_REVIEWED.
func (s *RestaurantService) CreateReview(userID, restaurantID uint, req dto.CreateReviewRequest) (uint, error) {
	exists, err := s.restaurantRepo.Exists(restaurantID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperr.ErrRestaurantNotFound
	}

	has, err := s.reviewRepo.UserHasReview(userID, restaurantID)
	if err != nil {
		return 0, err
	}
	if has {
		return 0, apperr.ErrAlreadyReviewed
	}

	review := &entity.Review{
		UserID:       userID,
		RestaurantID: restaurantID,
		Rating:       *req.Rating,
		Comments:     req.Comments,
	}
	if err := s.reviewRepo.Insert(review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, apperr.ErrAlreadyReviewed
		}
		return 0, err
	}
	return review.ID, nil
}
