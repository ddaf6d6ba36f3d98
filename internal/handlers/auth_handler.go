package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	apperrors "hishab/internal/errors"
	"hishab/internal/middleware"
)

// AuthHandler handles the single-user login. The tracker has one owner;
// the configured password is hashed once at startup and compared with
// bcrypt on every login.
type AuthHandler struct {
	passwordHash []byte
}

// NewAuthHandler creates a new AuthHandler for the configured password.
func NewAuthHandler(password string) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{passwordHash: hash}, nil
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response with the session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles owner login
// @Summary     Log in
// @Description Authenticate with the owner password and receive a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Owner password"
// @Success     200 {object} LoginResponse "Token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid password"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		respondWithError(c, apperrors.ErrInvalidPassword)
		return
	}

	token, err := middleware.GenerateToken()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
