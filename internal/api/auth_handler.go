package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/middleware"
	"portfolio/internal/auth"
)

// AuthHandler serves login and token verification.
type AuthHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

// NewAuthHandler constructs the auth handler.
func NewAuthHandler(authService *auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Login checks credentials and returns a signed bearer token. Failures are
// reported as a bare 401 without detailing which part failed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	logger := middleware.LoggerFromContext(c).With(slog.String("username", req.Username))

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			logger.Info("login failed")
			Unauthorized(c)
			return
		}
		logger.Error("login query failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	logger.Info("login succeeded", slog.Uint64("user_id", uint64(user.ID)))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    userPayload{ID: user.ID, Username: user.Username},
	})
}

// Verify reports the claims of an already-validated token. The middleware has
// rejected the request before this point if the token was bad.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userPayload{ID: claims.UserID, Username: claims.Username},
	})
}
