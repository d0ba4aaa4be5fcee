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

// MerchantHandlerParams holds dependencies for MerchantHandler, injected by Fx.
type MerchantHandlerParams struct {
	fx.In

	MerchantUC usecase.MerchantUsecase
	Logger     *slog.Logger
}

// MerchantHandler holds dependencies for admin-side merchant handlers
type MerchantHandler struct {
	merchantUC usecase.MerchantUsecase
	logger     *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler
func NewMerchantHandler(params MerchantHandlerParams) *MerchantHandler {
	return &MerchantHandler{
		merchantUC: params.MerchantUC,
		logger:     params.Logger,
	}
}

// CreateMerchantRequest represents the request body for creating a merchant
type CreateMerchantRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contact_number"`
	MallID        string `json:"mall_id"`
}

// UpdateMerchantRequest represents the request body for updating a merchant.
// A null mall_id leaves the assignment untouched; an empty string unassigns.
type UpdateMerchantRequest struct {
	Name          string  `json:"name"`
	ContactNumber string  `json:"contact_number"`
	MallID        *string `json:"mall_id"`
}

// CreateMerchant handles merchant account creation
func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	var req CreateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	out, err := h.merchantUC.CreateMerchant(c.Request().Context(), &usecase.CreateMerchantInput{
		ActorUID:      middleware.IdentityUID(c),
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		ContactNumber: req.ContactNumber,
		MallID:        req.MallID,
	})
	if err != nil {
		return err
	}

	// The initial password appears in this response and nowhere else.
	return response.Success(c, http.StatusCreated, map[string]any{
		"profile":          toProfilePayload(out.Profile),
		"initial_password": out.InitialPassword,
	}, "")
}

// UpdateMerchant handles merchant updates including mall reassignment
func (h *MerchantHandler) UpdateMerchant(c echo.Context) error {
	var req UpdateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}

	out, err := h.merchantUC.UpdateMerchant(c.Request().Context(), &usecase.UpdateMerchantInput{
		ActorUID:      middleware.IdentityUID(c),
		UID:           c.Param("uid"),
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		MallID:        req.MallID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProfilePayload(out.Profile), "")
}

// DeleteMerchant handles merchant removal
func (h *MerchantHandler) DeleteMerchant(c echo.Context) error {
	if err := h.merchantUC.DeleteMerchant(c.Request().Context(), middleware.IdentityUID(c), c.Param("uid")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Merchant deleted")
}

// GetMerchant returns one merchant profile
func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	profile, err := h.merchantUC.GetMerchant(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProfilePayload(profile), "")
}

// ListMerchants returns every merchant profile
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	profiles, err := h.merchantUC.ListMerchants(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProfilePayloads(profiles), "")
}
