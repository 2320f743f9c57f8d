// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/catering-storefront/internal/domain/cart"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
	"github.com/your-org/catering-storefront/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	store       storage.Store
	defaultLang string
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, store storage.Store, defaultLang string) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		store:       store,
		defaultLang: defaultLang,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	cartResponse := h.cartService.Get(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"data": cartResponse,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	lang := resolveLang(c, h.store, h.defaultLang)

	var req cart.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse := h.cartService.AddProduct(c.Request.Context(), sessionID, lang, req.ProductID, req.Qty)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartResponse,
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	lineID := c.Param("id")

	var req cart.ChangeQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse, err := h.cartService.ChangeQty(c.Request.Context(), sessionID, lineID, req.Delta)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, cart.ErrLineNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartResponse,
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	cartResponse := h.cartService.RemoveLine(c.Request.Context(), sessionID, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartResponse,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	cartResponse := h.cartService.Clear(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    cartResponse,
	})
}
