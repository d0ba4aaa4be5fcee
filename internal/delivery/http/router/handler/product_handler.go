package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"supermall/internal/delivery/http/middleware"
	"supermall/internal/delivery/http/response"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	ShopID   string   `json:"shop_id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
	ImageURL string   `json:"image_url"`
}

// CreateProduct handles product creation
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		OwnerUID: middleware.IdentityUID(c),
		ShopID:   req.ShopID,
		Name:     req.Name,
		Price:    req.Price,
		Features: req.Features,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, product, "")
}

// UpdateProduct handles product updates
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), &usecase.UpdateProductInput{
		OwnerUID: middleware.IdentityUID(c),
		ID:       c.Param("id"),
		Name:     req.Name,
		Price:    req.Price,
		Features: req.Features,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product, "")
}

// DeleteProduct handles product removal together with its offers
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUC.DeleteProduct(c.Request().Context(), middleware.IdentityUID(c), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// GetProduct returns one product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product, "")
}

// ListMyProducts returns the caller's products
func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	products, err := h.productUC.ListMyProducts(c.Request().Context(), middleware.IdentityUID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ListShopProducts returns one shop's products for its public page
func (h *ProductHandler) ListShopProducts(c echo.Context) error {
	products, err := h.productUC.ListShopProducts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products, "")
}

// BrowseProducts returns the filtered catalog of one mall
func (h *ProductHandler) BrowseProducts(c echo.Context) error {
	input := &usecase.BrowseProductsInput{
		MallID:          c.Param("id"),
		ShopID:          c.QueryParam("shop_id"),
		WithActiveOffer: c.QueryParam("with_offer") == "true",
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "min_price must be a number")
		}
		input.MinPrice = &v
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "max_price must be a number")
		}
		input.MaxPrice = &v
	}

	browsed, err := h.productUC.BrowseProducts(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, browsed, "")
}

// CompareProducts returns the requested products side by side
func (h *ProductHandler) CompareProducts(c echo.Context) error {
	raw := c.QueryParam("ids")
	if raw == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "ids query parameter is required")
	}

	ids := make([]string, 0)
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	browsed, err := h.productUC.CompareProducts(c.Request().Context(), ids)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, browsed, "")
}
