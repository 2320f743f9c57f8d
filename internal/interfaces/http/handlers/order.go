// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/catering-storefront/internal/domain/order"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
	"github.com/your-org/catering-storefront/internal/interfaces/http/middleware"
)

// OrderHandler handles order review and submission
type OrderHandler struct {
	orderService *order.Service
	store        storage.Store
	defaultLang  string
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service, store storage.Store, defaultLang string) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		store:        store,
		defaultLang:  defaultLang,
	}
}

// Review handles GET /order/review
func (h *OrderHandler) Review(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	lang := resolveLang(c, h.store, h.defaultLang)

	payload, summary, whatsappURL := h.orderService.Review(c.Request.Context(), sessionID, lang)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"payload":     payload,
			"summary":     summary,
			"whatsappUrl": whatsappURL,
		},
	})
}

// Submit handles POST /order/submit
func (h *OrderHandler) Submit(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	lang := resolveLang(c, h.store, h.defaultLang)

	var details order.CustomerDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.orderService.Submit(c.Request.Context(), sessionID, lang, details)
	if err != nil {
		if errors.Is(err, order.ErrMissingContact) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to submit order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order submitted",
		"data":    result,
	})
}
