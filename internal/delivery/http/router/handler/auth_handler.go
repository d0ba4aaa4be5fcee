// Package handler contains the HTTP handlers of the delivery layer.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"supermall/internal/delivery/http/response"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication-related handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for profile registration
type RegisterRequest struct {
	IDToken       string `json:"id_token" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Role          string `json:"role" validate:"required"`
	ContactNumber string `json:"contact_number"`
}

// RoleSelectionRequest represents the request body for completing a
// federated first sign-in
type RoleSelectionRequest struct {
	IDToken string `json:"id_token" validate:"required"`
	Name    string `json:"name"`
	Role    string `json:"role" validate:"required"`
}

// PasswordResetRequest represents the request body for a reset link
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required"`
}

// Register handles profile self-registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	out, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		IDToken:       req.IDToken,
		Name:          req.Name,
		Role:          req.Role,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, sessionPayload(out), "")
}

// Session resolves the current session from the bearer token
func (h *AuthHandler) Session(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing bearer token")
	}

	out, err := h.authUC.ResolveSession(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, sessionPayload(out), "")
}

// SelectRole completes a federated first sign-in
func (h *AuthHandler) SelectRole(c echo.Context) error {
	var req RoleSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role selection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	out, err := h.authUC.CompleteRoleSelection(c.Request().Context(), &usecase.CompleteRoleSelectionInput{
		IDToken: req.IDToken,
		Name:    req.Name,
		Role:    req.Role,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, sessionPayload(out), "")
}

// PasswordReset generates a reset link. The response is the same whether
// or not the email exists, so the endpoint cannot be used to probe
// registered addresses.
func (h *AuthHandler) PasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if _, err := h.authUC.SendPasswordReset(c.Request().Context(), req.Email); err != nil {
		h.logger.Warn("password reset request failed", slog.Any("error", err))
	}

	return response.Success(c, http.StatusAccepted, nil, "If the email is registered, a reset link has been sent")
}

func sessionPayload(out *usecase.SessionOutput) map[string]any {
	payload := map[string]any{
		"needs_role_selection": out.NeedsRoleSelection,
	}
	if out.Profile != nil {
		payload["profile"] = toProfilePayload(out.Profile)
	}

	return payload
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}
