package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pitchside/cricket-slot-booking-backend/auth"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (auth.User, error)
	Login(ctx context.Context, username, password string) (string, auth.User, error)
	Authenticate(ctx context.Context, token string) (auth.User, error)
	Logout(ctx context.Context, token string) error
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/register", h.SignUp)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req registerRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "username already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create account",
		})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)

	if err != nil {
		c.Error(err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid username or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to log in",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := bearerToken(c)

	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		c.Error(err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "logged out"})
}
