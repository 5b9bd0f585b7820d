package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ddcrdc/content-api/internal/api/metrics"
	"github.com/ddcrdc/content-api/internal/core/domain"
	"github.com/ddcrdc/content-api/internal/core/ports"
	redisdb "github.com/ddcrdc/content-api/internal/infrastructure/db/redis"
)

// AuthHandler handles the single login endpoint. The limiter is optional;
// a nil limiter disables brute-force throttling.
type AuthHandler struct {
	authService ports.AuthService
	limiter     *redisdb.LoginLimiter
}

func NewAuthHandler(authService ports.AuthService, limiter *redisdb.LoginLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Login authenticates the admin principal and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requête invalide")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrMissingCredentials
	}

	ctx := c.Request().Context()

	if h.limiter != nil {
		ok, err := h.limiter.Allow(ctx, req.Username, c.RealIP())
		if err != nil {
			return err
		}
		if !ok {
			metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
			return domain.ErrTooManyAttempts
		}
	}

	token, user, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	if h.limiter != nil {
		_ = h.limiter.Reset(ctx, req.Username, c.RealIP())
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  userResponse{ID: user.ID, Username: user.Username},
	})
}
