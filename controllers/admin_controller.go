package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/resp"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/services"
)

type AdminController struct {
	admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{admin: admin}
}

// GET /admin/stats
func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.admin.Stats()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}
