package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/middlewares"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/resp"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/services"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/utils"
)

type RestaurantController struct {
	restaurants *services.RestaurantService
	cache       *middlewares.ResponseCache
}

func NewRestaurantController(restaurants *services.RestaurantService, cache *middlewares.ResponseCache) *RestaurantController {
	return &RestaurantController{restaurants: restaurants, cache: cache}
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	q, err := dto.ParseListQuery(c.Request.URL.Query())
	if err != nil {
		resp.Error(c, err)
		return
	}

	list, err := rc.restaurants.List(q)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, list)
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := dto.ParseID(c.Param("id"), "INVALID_RESTAURANT_ID")
	if err != nil {
		resp.Error(c, err)
		return
	}

	detail, err := rc.restaurants.GetByID(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /restaurants/:id/reviews
func (rc *RestaurantController) ListReviews(c *gin.Context) {
	id, err := dto.ParseID(c.Param("id"), "INVALID_RESTAURANT_ID")
	if err != nil {
		resp.Error(c, err)
		return
	}

	reviews, err := rc.restaurants.ListReviews(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, reviews)
}

// POST /restaurants/:id/reviews (authenticated)
func (rc *RestaurantController) CreateReview(c *gin.Context) {
	id, err := dto.ParseID(c.Param("id"), "INVALID_RESTAURANT_ID")
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req dto.CreateReviewRequest
	if err := dto.BindJSON(c, &req, false); err != nil {
		resp.Error(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		resp.Error(c, err)
		return
	}

	reviewID, err := rc.restaurants.CreateReview(utils.CurrentUserID(c), id, req)
	if err != nil {
		resp.Error(c, err)
		return
	}

	rc.cache.Flush()
	resp.Created(c, gin.H{"id": reviewID})
}
