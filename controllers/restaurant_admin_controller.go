package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/middlewares"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/resp"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/services"
)

// RestaurantAdminController owns catalog mutation; routes behind the
// ADMIN role.
type RestaurantAdminController struct {
	admin *services.RestaurantAdminService
	cache *middlewares.ResponseCache
}

func NewRestaurantAdminController(admin *services.RestaurantAdminService, cache *middlewares.ResponseCache) *RestaurantAdminController {
	return &RestaurantAdminController{admin: admin, cache: cache}
}

// POST /admin/restaurants
func (ac *RestaurantAdminController) Create(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := dto.BindJSON(c, &req, false); err != nil {
		resp.Error(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		resp.Error(c, err)
		return
	}

	id, err := ac.admin.Create(req)
	if err != nil {
		resp.Error(c, err)
		return
	}

	ac.cache.Flush()
	resp.Created(c, gin.H{"id": id})
}

// PUT /admin/restaurants/:id
func (ac *RestaurantAdminController) Update(c *gin.Context) {
	id, err := dto.ParseID(c.Param("id"), "INVALID_RESTAURANT_ID")
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req dto.UpdateRestaurantRequest
	if err := dto.BindJSON(c, &req, false); err != nil {
		resp.Error(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		resp.Error(c, err)
		return
	}

	if err := ac.admin.Update(id, req); err != nil {
		resp.Error(c, err)
		return
	}

	ac.cache.Flush()
	resp.OK(c, gin.H{"id": id})
}

// DELETE /admin/restaurants/:id
func (ac *RestaurantAdminController) Delete(c *gin.Context) {
	id, err := dto.ParseID(c.Param("id"), "INVALID_RESTAURANT_ID")
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := ac.admin.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}

	ac.cache.Flush()
	resp.NoContent(c)
}
