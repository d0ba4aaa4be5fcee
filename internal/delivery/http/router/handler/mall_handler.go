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

// MallHandlerParams holds dependencies for MallHandler, injected by Fx.
type MallHandlerParams struct {
	fx.In

	MallUC usecase.MallUsecase
	Logger *slog.Logger
}

// MallHandler holds dependencies for mall-related handlers
type MallHandler struct {
	mallUC usecase.MallUsecase
	logger *slog.Logger
}

// NewMallHandler is the constructor for MallHandler
func NewMallHandler(params MallHandlerParams) *MallHandler {
	return &MallHandler{
		mallUC: params.MallUC,
		logger: params.Logger,
	}
}

// MallRequest represents the request body for creating or updating a mall
type MallRequest struct {
	MallName     string `json:"mall_name"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	MaxMerchants int    `json:"max_merchants"`
}

// CreateMall handles mall creation
func (h *MallHandler) CreateMall(c echo.Context) error {
	var req MallRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mall input")
	}

	mall, err := h.mallUC.CreateMall(c.Request().Context(), &usecase.CreateMallInput{
		ActorUID:     middleware.IdentityUID(c),
		MallName:     req.MallName,
		Location:     req.Location,
		Description:  req.Description,
		MaxMerchants: req.MaxMerchants,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, mall, "")
}

// UpdateMall handles mall updates
func (h *MallHandler) UpdateMall(c echo.Context) error {
	var req MallRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mall input")
	}

	mall, err := h.mallUC.UpdateMall(c.Request().Context(), &usecase.UpdateMallInput{
		ActorUID:     middleware.IdentityUID(c),
		ID:           c.Param("id"),
		MallName:     req.MallName,
		Location:     req.Location,
		Description:  req.Description,
		MaxMerchants: req.MaxMerchants,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mall, "")
}

// DeleteMall handles mall removal
func (h *MallHandler) DeleteMall(c echo.Context) error {
	if err := h.mallUC.DeleteMall(c.Request().Context(), middleware.IdentityUID(c), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Mall deleted")
}

// GetMall returns one mall
func (h *MallHandler) GetMall(c echo.Context) error {
	mall, err := h.mallUC.GetMall(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mall, "")
}

// ListMalls returns the public mall directory
func (h *MallHandler) ListMalls(c echo.Context) error {
	malls, err := h.mallUC.ListMalls(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, malls, "")
}
