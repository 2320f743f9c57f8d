// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/catering-storefront/internal/config"
	"github.com/your-org/catering-storefront/internal/domain/cart"
	"github.com/your-org/catering-storefront/internal/domain/catalog"
	"github.com/your-org/catering-storefront/internal/domain/order"
	"github.com/your-org/catering-storefront/internal/domain/pricing"
	"github.com/your-org/catering-storefront/internal/domain/set"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
	"github.com/your-org/catering-storefront/internal/interfaces/http/handlers"
)

// SetupRoutes wires all API routes and the services behind them
func SetupRoutes(rg *gin.RouterGroup, store storage.Store, cat *catalog.Store, cfg *config.Config, log *logrus.Logger) {
	calc := pricing.NewCalculator(cat)
	cartService := cart.NewService(store, cat, nil, cfg.Order.StateTTL, log)
	setService := set.NewService(store, cat, calc, cartService, cfg.Order.EditSessionTTL, log)
	orderService := order.NewService(store, cat, cartService, cfg.Order, log)

	defaultLang := cfg.App.DefaultLang

	setupCatalogRoutes(rg, handlers.NewCatalogHandler(cat, calc, store, defaultLang))
	setupCartRoutes(rg, handlers.NewCartHandler(cartService, store, defaultLang))
	setupSetRoutes(rg, handlers.NewSetHandler(setService, store, defaultLang))
	setupOrderRoutes(rg, handlers.NewOrderHandler(orderService, store, defaultLang))
	setupLanguageRoutes(rg, handlers.NewLanguageHandler(store, defaultLang))
}

func setupCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET("/catalog", h.GetCatalog)
	rg.GET("/categories", h.GetCategories)

	products := rg.Group("/products")
	{
		products.GET("", h.GetProducts)
		products.GET("/:id", h.GetProduct)
	}

	sets := rg.Group("/sets")
	{
		sets.GET("", h.GetSets)
		sets.GET("/:id", h.GetSet)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, h *handlers.CartHandler) {
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", h.GetCart)
		cartGroup.POST("/items", h.AddToCart)
		cartGroup.PUT("/items/:id", h.UpdateCartItem)
		cartGroup.DELETE("/items/:id", h.RemoveFromCart)
		cartGroup.DELETE("", h.ClearCart)
	}
}

func setupSetRoutes(rg *gin.RouterGroup, h *handlers.SetHandler) {
	rg.POST("/sets/:id/session", h.BeginSession)

	sessions := rg.Group("/set-sessions")
	{
		sessions.GET("/:id", h.GetSession)
		sessions.PUT("/:id/persons", h.SetPersons)
		sessions.PUT("/:id/variant", h.SetVariant)
		sessions.PUT("/:id/items/:productId", h.BumpItem)
		sessions.POST("/:id/save", h.SaveSession)
		sessions.DELETE("/:id", h.AbandonSession)
	}
}

func setupOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orderGroup := rg.Group("/order")
	{
		orderGroup.GET("/review", h.Review)
		orderGroup.POST("/submit", h.Submit)
	}
}

func setupLanguageRoutes(rg *gin.RouterGroup, h *handlers.LanguageHandler) {
	rg.GET("/language", h.GetLanguage)
	rg.PUT("/language", h.SetLanguage)
}
