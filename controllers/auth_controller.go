package controllers

import (
	"errors"
	"net/http"

	"github.com/jorge-trivilin/ecommerce-backend/entity"
	"github.com/jorge-trivilin/ecommerce-backend/pkg/resp"
	"github.com/jorge-trivilin/ecommerce-backend/services"
	"github.com/jorge-trivilin/ecommerce-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

func userJSON(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "username": u.Username, "email": u.Email, "isAdmin": u.IsAdmin}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, userJSON(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  userJSON(user),
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.Profile(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, userJSON(user))
}
