package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/internal/service"
	"github.com/suteetoe/jobboard/pkg/logger"
	"go.uber.org/zap"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account and returns a token for it
func (h *Handler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	if h.metrics != nil {
		h.metrics.RegisterCounter.Inc()
	}

	var req registerRequest
	if err := bind(c, &req, service.MsgMissingFields); err != nil {
		h.recordAuthError("incomplete_registration")
		return h.respondError(c, err, "Invalid registration request")
	}

	session, err := h.auth.Register(c.Request().Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if apperror.Is(err, apperror.Conflict) {
			h.recordAuthError("email_already_exists")
		}
		return h.respondError(c, err, "Registration failed")
	}

	log.Info("User registered", zap.Uint("user_id", session.User.ID), zap.String("email", session.User.Email))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"token":   session.Token,
		"user":    session.User,
	})
}

// Login exchanges email and password for a token
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	if h.metrics != nil {
		h.metrics.LoginCounter.Inc()
	}

	var req loginRequest
	if err := bind(c, &req, service.MsgMissingCredentials); err != nil {
		h.recordAuthError("invalid_request")
		return h.respondError(c, err, "Invalid login request")
	}

	session, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if apperror.Is(err, apperror.Auth) {
			h.recordAuthError("invalid_credentials")
		}
		return h.respondError(c, err, "Login failed")
	}

	log.Info("User logged in", zap.Uint("user_id", session.User.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   session.Token,
		"user":    session.User,
	})
}

// Me returns the current state of the authenticated account
func (h *Handler) Me(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return h.respondError(c, err, "Missing identity")
	}

	user, err := h.auth.CurrentUser(c.Request().Context(), id.ID)
	if err != nil {
		return h.respondError(c, err, "Failed to load current user")
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// ListUsers returns every account (admin)
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.auth.ListUsers(c.Request().Context())
	if err != nil {
		return h.respondError(c, err, "Failed to list users")
	}

	return c.JSON(http.StatusOK, echo.Map{"users": users})
}
