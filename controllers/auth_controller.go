package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/resp"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	// the registration schema is strict: unknown fields are rejected
	if err := dto.BindJSON(c, &req, true); err != nil {
		resp.Error(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		resp.Error(c, err)
		return
	}

	result, err := a.auth.Register(req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, result)
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := dto.BindJSON(c, &req, false); err != nil {
		resp.Error(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		resp.Error(c, err)
		return
	}

	result, err := a.auth.Login(req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, result)
}
