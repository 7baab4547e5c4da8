package controllers

import (
	"RestoFinder/models"
	"RestoFinder/services"
	"RestoFinder/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

func (h *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.Error(utils.ValidationFailed("Invalid request format"))
		return
	}

	user, err := h.AuthService.Signup(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.Error(utils.ValidationFailed("Invalid request format"))
		return
	}

	token, user, err := h.AuthService.SignIn(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token, "user": user})
}
