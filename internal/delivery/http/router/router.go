// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"supermall/internal/delivery/http/middleware"
	"supermall/internal/delivery/http/router/handler"
	"supermall/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MallHandler     *handler.MallHandler
	MerchantHandler *handler.MerchantHandler
	ShopHandler     *handler.ShopHandler
	ProductHandler  *handler.ProductHandler
	OfferHandler    *handler.OfferHandler
	ProfileHandler  *handler.ProfileHandler
	LookupHandler   *handler.LookupHandler
	UploadHandler   *handler.UploadHandler
	AuditHandler    *handler.AuditHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	mallHandler     *handler.MallHandler
	merchantHandler *handler.MerchantHandler
	shopHandler     *handler.ShopHandler
	productHandler  *handler.ProductHandler
	offerHandler    *handler.OfferHandler
	profileHandler  *handler.ProfileHandler
	lookupHandler   *handler.LookupHandler
	uploadHandler   *handler.UploadHandler
	auditHandler    *handler.AuditHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		mallHandler:     params.MallHandler,
		merchantHandler: params.MerchantHandler,
		shopHandler:     params.ShopHandler,
		productHandler:  params.ProductHandler,
		offerHandler:    params.OfferHandler,
		profileHandler:  params.ProfileHandler,
		lookupHandler:   params.LookupHandler,
		uploadHandler:   params.UploadHandler,
		auditHandler:    params.AuditHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.POST("/role", r.authHandler.SelectRole)
		authGroup.POST("/password-reset", r.authHandler.PasswordReset)
	}

	// Public browsing routes, no authentication required
	e.GET("/malls", r.mallHandler.ListMalls)
	e.GET("/malls/:id", r.mallHandler.GetMall)
	e.GET("/malls/:id/shops", r.shopHandler.ListMallShops)
	e.GET("/malls/:id/products", r.productHandler.BrowseProducts)
	e.GET("/malls/:id/offers", r.offerHandler.ListMallOffers)
	e.GET("/shops/:id", r.shopHandler.GetShop)
	e.GET("/shops/:id/products", r.productHandler.ListShopProducts)
	e.GET("/shops/:id/qrcode", r.shopHandler.ShopQRCode)
	e.GET("/products/compare", r.productHandler.CompareProducts)
	e.GET("/products/:id", r.productHandler.GetProduct)
	e.GET("/products/:id/offers", r.offerHandler.ListProductOffers)
	e.GET("/lookups/categories", r.lookupHandler.ListCategories)
	e.GET("/lookups/floors", r.lookupHandler.ListFloors)

	// Admin routes: mall, merchant and shop administration, lookups, action trail
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRoles(entity.RoleAdmin))
	{
		adminGroup.POST("/malls", r.mallHandler.CreateMall)
		adminGroup.PUT("/malls/:id", r.mallHandler.UpdateMall)
		adminGroup.DELETE("/malls/:id", r.mallHandler.DeleteMall)

		adminGroup.POST("/merchants", r.merchantHandler.CreateMerchant)
		adminGroup.GET("/merchants", r.merchantHandler.ListMerchants)
		adminGroup.GET("/merchants/:uid", r.merchantHandler.GetMerchant)
		adminGroup.PUT("/merchants/:uid", r.merchantHandler.UpdateMerchant)
		adminGroup.DELETE("/merchants/:uid", r.merchantHandler.DeleteMerchant)

		adminGroup.POST("/shops", r.shopHandler.AdminCreateShop)
		adminGroup.GET("/shops", r.shopHandler.AdminListShops)
		adminGroup.PUT("/shops/:id", r.shopHandler.AdminUpdateShop)
		adminGroup.DELETE("/shops/:id", r.shopHandler.AdminDeleteShop)

		adminGroup.POST("/lookups/categories", r.lookupHandler.AddCategory)
		adminGroup.DELETE("/lookups/categories/:id", r.lookupHandler.DeleteCategory)
		adminGroup.POST("/lookups/floors", r.lookupHandler.AddFloor)
		adminGroup.DELETE("/lookups/floors/:id", r.lookupHandler.DeleteFloor)

		adminGroup.GET("/logs", r.auditHandler.ListLogs)
	}

	// Merchant routes: own shops, products and offers
	merchantGroup := e.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.RequireRoles(entity.RoleMerchant))
	{
		merchantGroup.POST("/shops", r.shopHandler.CreateShop)
		merchantGroup.GET("/shops", r.shopHandler.ListMyShops)
		merchantGroup.PUT("/shops/:id", r.shopHandler.UpdateShop)
		merchantGroup.DELETE("/shops/:id", r.shopHandler.DeleteShop)

		merchantGroup.POST("/products", r.productHandler.CreateProduct)
		merchantGroup.GET("/products", r.productHandler.ListMyProducts)
		merchantGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		merchantGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)

		merchantGroup.POST("/offers", r.offerHandler.CreateOffer)
		merchantGroup.GET("/offers", r.offerHandler.ListMyOffers)
		merchantGroup.GET("/offers/:id", r.offerHandler.GetOffer)
		merchantGroup.PUT("/offers/:id", r.offerHandler.UpdateOffer)
		merchantGroup.DELETE("/offers/:id", r.offerHandler.DeleteOffer)
	}

	// Shopper routes: own profile, saved items and mall selection
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.RequireRoles(entity.RoleUser))
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PUT("/profile", r.profileHandler.UpdateProfile)
		userGroup.POST("/saved-items/:productId", r.profileHandler.ToggleSavedItem)
		userGroup.GET("/saved-items", r.profileHandler.ListSavedItems)
		userGroup.PUT("/mall", r.profileHandler.SelectMall)
		userGroup.DELETE("/mall", r.profileHandler.ClearSelectedMall)
	}

	// Uploads are open to any authenticated role
	uploadGroup := e.Group("/uploads")
	uploadGroup.Use(r.authMiddleware.RequireRoles())
	{
		uploadGroup.POST("/images", r.uploadHandler.UploadImage)
	}
}
