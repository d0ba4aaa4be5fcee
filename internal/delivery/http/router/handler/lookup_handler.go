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

// LookupHandlerParams holds dependencies for LookupHandler, injected by Fx.
type LookupHandlerParams struct {
	fx.In

	LookupUC usecase.LookupUsecase
	Logger   *slog.Logger
}

// LookupHandler holds dependencies for category and floor handlers
type LookupHandler struct {
	lookupUC usecase.LookupUsecase
	logger   *slog.Logger
}

// NewLookupHandler is the constructor for LookupHandler
func NewLookupHandler(params LookupHandlerParams) *LookupHandler {
	return &LookupHandler{
		lookupUC: params.LookupUC,
		logger:   params.Logger,
	}
}

// LookupRequest represents the request body for adding a lookup value
type LookupRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListCategories returns the category list for shop forms
func (h *LookupHandler) ListCategories(c echo.Context) error {
	categories, err := h.lookupUC.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// AddCategory adds a category
func (h *LookupHandler) AddCategory(c echo.Context) error {
	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	category, err := h.lookupUC.AddCategory(c.Request().Context(), middleware.IdentityUID(c), req.Name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, category, "")
}

// DeleteCategory removes a category
func (h *LookupHandler) DeleteCategory(c echo.Context) error {
	if err := h.lookupUC.DeleteCategory(c.Request().Context(), middleware.IdentityUID(c), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}

// ListFloors returns the floor list for shop forms
func (h *LookupHandler) ListFloors(c echo.Context) error {
	floors, err := h.lookupUC.ListFloors(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, floors, "")
}

// AddFloor adds a floor
func (h *LookupHandler) AddFloor(c echo.Context) error {
	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid floor input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	floor, err := h.lookupUC.AddFloor(c.Request().Context(), middleware.IdentityUID(c), req.Name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, floor, "")
}

// DeleteFloor removes a floor
func (h *LookupHandler) DeleteFloor(c echo.Context) error {
	if err := h.lookupUC.DeleteFloor(c.Request().Context(), middleware.IdentityUID(c), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Floor deleted")
}
