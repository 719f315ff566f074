package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
	"github.com/pennywise-app/pennywise_backend/internal/middleware"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. Login is
// throttled per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	loginLimiter := middleware.RateLimitByIP(middleware.NewRateLimiter(cfg.LoginRateLimit))

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimiter, h.login)
	}
}

// registerLogoutRoute registers logout inside the authenticated group, since
// revocation needs the presented token.
func registerLogoutRoute(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	rg.POST("/auth/logout", h.logout)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a token carrying the ability snapshot.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:      dto.ToUserResponse(result.User),
		Token:     result.Token,
		Abilities: result.Abilities,
	})
}

// logout godoc
// @Summary Log out
// @Description Revokes the presented token. Other sessions stay valid.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	tokenID, ok := middleware.GetTokenIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), tokenID); err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User logged out", slog.String("token_id", tokenID))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
