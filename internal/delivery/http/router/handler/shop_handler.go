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

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop-related handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// ShopRequest represents the request body for creating or updating a shop
type ShopRequest struct {
	ShopName      string `json:"shop_name"`
	Category      string `json:"category"`
	Floor         string `json:"floor"`
	Description   string `json:"description"`
	ContactNumber string `json:"contact_number"`
	ImageURL      string `json:"image_url"`
}

// CreateShop handles shop creation by the assigned merchant
func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), &usecase.CreateShopInput{
		ActorUID:      middleware.IdentityUID(c),
		OwnerUID:      middleware.IdentityUID(c),
		ShopName:      req.ShopName,
		Category:      req.Category,
		Floor:         req.Floor,
		Description:   req.Description,
		ContactNumber: req.ContactNumber,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, shop, "")
}

// UpdateShop handles shop updates
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), &usecase.UpdateShopInput{
		ActorUID:      middleware.IdentityUID(c),
		ID:            c.Param("id"),
		ShopName:      req.ShopName,
		Category:      req.Category,
		Floor:         req.Floor,
		Description:   req.Description,
		ContactNumber: req.ContactNumber,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, shop, "")
}

// DeleteShop handles the cascading shop removal
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	if err := h.shopUC.DeleteShop(c.Request().Context(), middleware.IdentityUID(c), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Shop deleted")
}

// AdminShopRequest represents the request body for creating a shop on
// behalf of a merchant
type AdminShopRequest struct {
	ShopRequest
	OwnerUID string `json:"owner_uid"`
}

// AdminCreateShop handles shop creation by an administrator on behalf
// of a merchant
func (h *ShopHandler) AdminCreateShop(c echo.Context) error {
	var req AdminShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), &usecase.CreateShopInput{
		ActorUID:      middleware.IdentityUID(c),
		OwnerUID:      req.OwnerUID,
		ShopName:      req.ShopName,
		Category:      req.Category,
		Floor:         req.Floor,
		Description:   req.Description,
		ContactNumber: req.ContactNumber,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, shop, "")
}

// AdminListShops returns every shop for the administration screens
func (h *ShopHandler) AdminListShops(c echo.Context) error {
	shops, err := h.shopUC.AdminListShops(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, shops, "")
}

// AdminUpdateShop handles shop updates by an administrator
func (h *ShopHandler) AdminUpdateShop(c echo.Context) error {
	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	shop, err := h.shopUC.AdminUpdateShop(c.Request().Context(), &usecase.UpdateShopInput{
		ActorUID:      middleware.IdentityUID(c),
		ID:            c.Param("id"),
		ShopName:      req.ShopName,
		Category:      req.Category,
		Floor:         req.Floor,
		Description:   req.Description,
		ContactNumber: req.ContactNumber,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, shop, "")
}

// AdminDeleteShop handles the cascading shop removal by an administrator
func (h *ShopHandler) AdminDeleteShop(c echo.Context) error {
	if err := h.shopUC.AdminDeleteShop(c.Request().Context(), middleware.IdentityUID(c), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Shop deleted")
}

// GetShop returns one shop for the public directory page
func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUC.GetShop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, shop, "")
}

// ListMyShops returns the caller's shops
func (h *ShopHandler) ListMyShops(c echo.Context) error {
	shops, err := h.shopUC.ListMyShops(c.Request().Context(), middleware.IdentityUID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, shops, "")
}

// ListMallShops returns a mall's shops for the public directory
func (h *ShopHandler) ListMallShops(c echo.Context) error {
	shops, err := h.shopUC.ListShopsByMall(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, shops, "")
}

// ShopQRCode streams the shop's QR code PNG
func (h *ShopHandler) ShopQRCode(c echo.Context) error {
	png, err := h.shopUC.ShopQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
