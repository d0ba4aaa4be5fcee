package handler

import (
	"log/slog"
	"net/http"

	"supermall/internal/delivery/http/middleware"
	"supermall/internal/delivery/http/response"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for shopper-side profile handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest represents the request body for profile updates
type UpdateProfileRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactNumber string `json:"contact_number"`
}

// SelectMallRequest represents the request body for persisting the mall scope
type SelectMallRequest struct {
	MallID string `json:"mall_id" validate:"required"`
}

// GetProfile returns the caller's own profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUC.GetProfile(c.Request().Context(), middleware.IdentityUID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProfilePayload(profile), "")
}

// UpdateProfile updates the caller's self-service fields
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UID:           middleware.IdentityUID(c),
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProfilePayload(profile), "")
}

// ToggleSavedItem flips one product's membership in the saved set
func (h *ProfileHandler) ToggleSavedItem(c echo.Context) error {
	out, err := h.profileUC.ToggleSavedItem(c.Request().Context(), middleware.IdentityUID(c), c.Param("productId"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out, "")
}

// ListSavedItems resolves the saved set to products with active offers
func (h *ProfileHandler) ListSavedItems(c echo.Context) error {
	items, err := h.profileUC.ListSavedItems(c.Request().Context(), middleware.IdentityUID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, items, "")
}

// SelectMall persists the caller's mall scope
func (h *ProfileHandler) SelectMall(c echo.Context) error {
	var req SelectMallRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mall selection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.profileUC.SelectMall(c.Request().Context(), middleware.IdentityUID(c), req.MallID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Mall selected")
}

// ClearSelectedMall drops the caller's mall scope
func (h *ProfileHandler) ClearSelectedMall(c echo.Context) error {
	if err := h.profileUC.ClearSelectedMall(c.Request().Context(), middleware.IdentityUID(c)); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Mall selection cleared")
}
