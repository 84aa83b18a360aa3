package services

import (
	"gorm.io/gorm"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/repository"
)

// RestaurantAdminService is the transactional write orchestrator for the
// catalog. Every multi-statement operation runs inside one database
// transaction; a failure anywhere rolls back the whole unit, so partial
// writes are never observable.
type RestaurantAdminService struct {
	db             *gorm.DB
	restaurantRepo *repository.RestaurantRepository
	hoursRepo      *repository.HoursRepository
	reviewRepo     *repository.ReviewRepository
	favoriteRepo   *repository.FavoriteRepository
}

func NewRestaurantAdminService(
	db *gorm.DB,
	restaurantRepo *repository.RestaurantRepository,
	hoursRepo *repository.HoursRepository,
	reviewRepo *repository.ReviewRepository,
	favoriteRepo *repository.FavoriteRepository,
) *RestaurantAdminService {
	return &RestaurantAdminService{
		db:             db,
		restaurantRepo: restaurantRepo,
		hoursRepo:      hoursRepo,
		reviewRepo:     reviewRepo,
		favoriteRepo:   favoriteRepo,
	}
}

func hoursFromInput(in []dto.HoursInput) []entity.OperatingHours {
	hours := make([]entity.OperatingHours, 0, len(in))
	for _, h := range in {
		hours = append(hours, entity.OperatingHours{Day: h.Day, Hours: h.Hours})
	}
	return hours
}

// Create inserts the restaurant row and its hours as one atomic unit and
// returns the new id.
func (s *RestaurantAdminService) Create(req dto.CreateRestaurantRequest) (uint, error) {
	restaurant := entity.Restaurant{
		Name:         req.Name,
		Neighborhood: req.Neighborhood,
		CuisineType:  req.CuisineType,
		Address:      req.Address,
		Photograph:   req.Photograph,
		Image:        req.Image,
		Lat:          req.Lat,
		Lng:          req.Lng,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.restaurantRepo.WithTx(tx).Insert(&restaurant); err != nil {
			return err
		}
		return s.hoursRepo.WithTx(tx).InsertBatch(restaurant.ID, hoursFromInput(req.Hours))
	})
	if err != nil {
		return 0, err
	}
	return restaurant.ID, nil
}

// Update applies the set-if-present column update and, when the hours
// field was supplied at all, replaces the full hours set. A supplied
// empty list clears every row; an absent field touches nothing.
func (s *RestaurantAdminService) Update(id uint, req dto.UpdateRestaurantRequest) error {
	exists, err := s.restaurantRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrRestaurantNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.restaurantRepo.WithTx(tx).UpdateColumns(id, req.Columns()); err != nil {
			return err
		}
		if !req.Hours.Set {
			return nil
		}
		hoursRepo := s.hoursRepo.WithTx(tx)
		if err := hoursRepo.DeleteForRestaurant(id); err != nil {
			return err
		}
		return hoursRepo.InsertBatch(id, hoursFromInput(req.Hours.Value))
	})
}

// Delete cascades in dependency order inside one transaction: reviews,
// favorites, hours, then the restaurant row. Storage is not assumed to
// cascade on its own.
func (s *RestaurantAdminService) Delete(id uint) error {
	exists, err := s.restaurantRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrRestaurantNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.WithTx(tx).DeleteForRestaurant(id); err != nil {
			return err
		}
		if err := s.favoriteRepo.WithTx(tx).DeleteForRestaurant(id); err != nil {
			return err
		}
		if err := s.hoursRepo.WithTx(tx).DeleteForRestaurant(id); err != nil {
			return err
		}
		return s.restaurantRepo.WithTx(tx).Delete(id)
	})
}
