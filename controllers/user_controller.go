package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/middlewares"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/resp"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/services"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/utils"
)

// UserController serves the /me surface; every operation is scoped to
// the authenticated user.
type UserController struct {
	users *services.UserService
	cache *middlewares.ResponseCache
}

func NewUserController(users *services.UserService, cache *middlewares.ResponseCache) *UserController {
	return &UserController{users: users, cache: cache}
}

// GET /me
func (uc *UserController) Profile(c *gin.Context) {
	user, err := uc.users.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// GET /me/reviews
func (uc *UserController) ListReviews(c *gin.Context) {
	reviews, err := uc.users.ListReviews(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, reviews)
}

// PUT /me/reviews/:id
func (uc *UserController) UpdateReview(c *gin.Context) {
	id, err := dto.ParseID(c.Param("id"), "INVALID_REVIEW_ID")
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req dto.UpdateReviewRequest
	if err := dto.BindJSON(c, &req, false); err != nil {
		resp.Error(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		resp.Error(c, err)
		return
	}

	if err := uc.users.UpdateReview(utils.CurrentUserID(c), id, req); err != nil {
		resp.Error(c, err)
		return
	}

	uc.cache.Flush()
	resp.OK(c, gin.H{"id": id})
}

// DELETE /me/reviews/:id
func (uc *UserController) DeleteReview(c *gin.Context) {
	id, err := dto.ParseID(c.Param("id"), "INVALID_REVIEW_ID")
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := uc.users.DeleteReview(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}

	uc.cache.Flush()
	resp.NoContent(c)
}

// POST /me/favorites/:id
func (uc *UserController) AddFavorite(c *gin.Context) {
	id, err := dto.ParseID(c.Param("id"), "INVALID_RESTAURANT_ID")
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := uc.users.AddFavorite(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}

	uc.cache.Flush()
	resp.Created(c, gin.H{"restaurant_id": id})
}

// DELETE /me/favorites/:id
func (uc *UserController) RemoveFavorite(c *gin.Context) {
	id, err := dto.ParseID(c.Param("id"), "INVALID_RESTAURANT_ID")
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := uc.users.RemoveFavorite(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}

	uc.cache.Flush()
	resp.NoContent(c)
}

// GET /me/favorites
func (uc *UserController) ListFavorites(c *gin.Context) {
	favorites, err := uc.users.ListFavorites(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, favorites)
}
