package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/personal/inventory-api/internal/api/metrics"
	"github.com/personal/inventory-api/internal/core/domain"
	"github.com/personal/inventory-api/internal/core/ports"
)

// AuthHandler exposes the signin and signup endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignIn authenticates a user and returns a session token.
//
// @Summary      Authenticate a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Login credentials"
// @Success      200   {object}  signInResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: Invalid request body!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: " + err.Error()})
	}

	result, err := h.authService.SignIn(c.Request().Context(), ports.SignInInput{
		Username:   req.Username,
		Password:   req.Password,
		RemoteAddr: c.RealIP(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.SignInsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, messageResponse{Message: "Error: Too many attempts, try again later!"})
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
			// One generic failure for both unknown user and bad password.
			metrics.SignInsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Error: Invalid username or password!"})
		}
		return err
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, signInResponse{
		Token:    result.Token,
		ID:       result.ID,
		Username: result.Username,
		Email:    result.Email,
		Roles:    result.Authorities,
	})
}

// SignUp registers a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "User registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: Invalid request body!"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: " + err.Error()})
	}

	_, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Roles:      req.Roles,
		RemoteAddr: c.RealIP(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			metrics.SignUpsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: Username is already taken!"})
		case errors.Is(err, domain.ErrEmailInUse):
			metrics.SignUpsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: Email is already in use!"})
		}
		// Includes domain.ErrRoleNotSeeded: a missing seed role is a bootstrap
		// defect and must surface as a server error, not a silent default.
		metrics.SignUpsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.SignUpsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User registered successfully!"})
}
