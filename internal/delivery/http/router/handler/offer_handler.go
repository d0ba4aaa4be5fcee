package handler

import (
	"log/slog"
	"net/http"
	"time"

	"supermall/internal/delivery/http/middleware"
	"supermall/internal/delivery/http/response"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer-related handlers
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// OfferRequest represents the request body for creating or updating an offer
type OfferRequest struct {
	ProductID   string    `json:"product_id"`
	Discount    float64   `json:"discount"`
	ValidTill   time.Time `json:"valid_till"`
	Description string    `json:"description"`
}

// CreateOffer handles offer creation
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), &usecase.CreateOfferInput{
		OwnerUID:    middleware.IdentityUID(c),
		ProductID:   req.ProductID,
		Discount:    req.Discount,
		ValidTill:   req.ValidTill,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, offer, "")
}

// UpdateOffer handles offer updates
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	offer, err := h.offerUC.UpdateOffer(c.Request().Context(), &usecase.UpdateOfferInput{
		OwnerUID:    middleware.IdentityUID(c),
		ID:          c.Param("id"),
		Discount:    req.Discount,
		ValidTill:   req.ValidTill,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, offer, "")
}

// DeleteOffer handles offer removal
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	if err := h.offerUC.DeleteOffer(c.Request().Context(), middleware.IdentityUID(c), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Offer deleted")
}

// GetOffer returns one offer
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offer, err := h.offerUC.GetOffer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, offer, "")
}

// ListMyOffers returns the caller's offers, expired ones included
func (h *OfferHandler) ListMyOffers(c echo.Context) error {
	offers, err := h.offerUC.ListMyOffers(c.Request().Context(), middleware.IdentityUID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, offers, "")
}

// ListProductOffers returns the active offers on one product
func (h *OfferHandler) ListProductOffers(c echo.Context) error {
	offers, err := h.offerUC.ListProductOffers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, offers, "")
}

// ListMallOffers returns the active offers across one mall's catalog
func (h *OfferHandler) ListMallOffers(c echo.Context) error {
	offers, err := h.offerUC.ListMallOffers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, offers, "")
}
