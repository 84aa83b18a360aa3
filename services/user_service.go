package services

import (
	"errors"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/repository"
)

// UserService covers the self-scoped surface: own profile, own reviews,
// own favorites. Ownership is enforced in the queries themselves, so a
// foreign review id behaves exactly like a missing one.
type UserService struct {
	userRepo       *repository.UserRepository
	reviewRepo     *repository.ReviewRepository
	favoriteRepo   *repository.FavoriteRepository
	restaurantRepo *repository.RestaurantRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	reviewRepo *repository.ReviewRepository,
	favoriteRepo *repository.FavoriteRepository,
	restaurantRepo *repository.RestaurantRepository,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		reviewRepo:     reviewRepo,
		favoriteRepo:   favoriteRepo,
		restaurantRepo: restaurantRepo,
	}
}

func (s *UserService) GetProfile(userID uint) (*AuthUser, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}
	return &AuthUser{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

func (s *UserService) ListReviews(userID uint) ([]repository.UserReviewRow, error) {
	return s.reviewRepo.ListByUser(userID)
}

func (s *UserService) UpdateReview(userID, reviewID uint, req dto.UpdateReviewRequest) error {
	review, err := s.reviewRepo.FindOwned(reviewID, userID)
	if err != nil {
		return err
	}
	if review == nil {
		return apperr.ErrReviewNotFound
	}
	return s.reviewRepo.Update(reviewID, *req.Rating, req.Comments.Ptr(), req.Comments.Set)
}

func (s *UserService) DeleteReview(userID, reviewID uint) error {
	review, err := s.reviewRepo.FindOwned(reviewID, userID)
	if err != nil {
		return err
	}
	if review == nil {
		return apperr.ErrReviewNotFound
	}
	return s.reviewRepo.Delete(reviewID)
}

// AddFavorite checks the restaurant first: when the target is missing AND
// the favorite already exists, RESTAURANT_NOT_FOUND wins.
func (s *UserService) AddFavorite(userID, restaurantID uint) error {
	exists, err := s.restaurantRepo.Exists(restaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrRestaurantNotFound
	}

	has, err := s.favoriteRepo.Exists(userID, restaurantID)
	if err != nil {
		return err
	}
	if has {
		return apperr.ErrAlreadyFavorite
	}

	if err := s.favoriteRepo.Insert(userID, restaurantID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperr.ErrAlreadyFavorite
		}
		return err
	}
	return nil
}

// RemoveFavorite is idempotent: removing an absent favorite succeeds.
func (s *UserService) RemoveFavorite(userID, restaurantID uint) error {
	return s.favoriteRepo.Delete(userID, restaurantID)
}

func (s *UserService) ListFavorites(userID uint) ([]repository.FavoriteRestaurantRow, error) {
	return s.favoriteRepo.ListByUser(userID)
}
