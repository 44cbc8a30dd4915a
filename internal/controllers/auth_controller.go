package controllers

import (
	"errors"
	"net/http"
	"time"

	"booktracker-be/internal/middleware"
	"booktracker-be/internal/models"
	"booktracker-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CookieOptions controls the jwt cookie issued on login
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

type AuthController struct {
	authService service.AuthService
	cookie      CookieOptions
	log         logrus.FieldLogger
}

func NewAuthController(authService service.AuthService, cookie CookieOptions, log logrus.FieldLogger) *AuthController {
	return &AuthController{
		authService: authService,
		cookie:      cookie,
		log:         log,
	}
}

// Register handles POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists):
			respondMessage(c, http.StatusBadRequest, "User already exists")
			return
		case errors.Is(err, service.ErrPasswordTooLong):
			respondMessage(c, http.StatusBadRequest, "Password must be at most 72 bytes")
			return
		}
		ac.log.WithError(err).Error("Registration failed")
		respondMessage(c, http.StatusInternalServerError, "Error registering user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondMessage(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		ac.log.WithError(err).Error("Login failed")
		respondMessage(c, http.StatusInternalServerError, "Error logging in")
		return
	}

	ac.setTokenCookie(c, response.Token, int(ac.cookie.MaxAge.Seconds()))
	c.JSON(http.StatusOK, response)
}

// Logout handles POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	ac.setTokenCookie(c, "", -1)
	respondMessage(c, http.StatusOK, "Logged out successfully")
}

// GetProfile handles GET /api/auth/profile
func (ac *AuthController) GetProfile(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	user, err := ac.authService.GetProfile(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		ac.log.WithError(err).Error("Fetching profile failed")
		respondMessage(c, http.StatusInternalServerError, "Error fetching profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT and PATCH /api/auth/profile
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ac.authService.UpdateProfile(c.Request.Context(), identity.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondMessage(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrUserExists):
			respondMessage(c, http.StatusBadRequest, "User already exists")
		case errors.Is(err, service.ErrPasswordTooLong):
			respondMessage(c, http.StatusBadRequest, "Password must be at most 72 bytes")
		default:
			ac.log.WithError(err).Error("Updating profile failed")
			respondMessage(c, http.StatusInternalServerError, "Error updating profile")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// setTokenCookie writes the jwt cookie. SameSite=None requires Secure, so
// insecure development setups fall back to Lax.
func (ac *AuthController) setTokenCookie(c *gin.Context, token string, maxAge int) {
	if ac.cookie.Secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", ac.cookie.Secure, true)
}
