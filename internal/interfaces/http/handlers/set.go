// internal/interfaces/http/handlers/set.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/your-org/catering-storefront/internal/domain/set"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
	"github.com/your-org/catering-storefront/internal/interfaces/http/middleware"
)

// SetHandler handles set configuration edit sessions
type SetHandler struct {
	setService  *set.Service
	store       storage.Store
	defaultLang string
}

// NewSetHandler creates a new set handler
func NewSetHandler(setService *set.Service, store storage.Store, defaultLang string) *SetHandler {
	return &SetHandler{
		setService:  setService,
		store:       store,
		defaultLang: defaultLang,
	}
}

// BeginSessionRequest starts an edit session, optionally seeded from an
// existing cart line.
type BeginSessionRequest struct {
	EditLineID string `json:"edit_line_id"`
}

// BeginSession handles POST /sets/:id/session
func (h *SetHandler) BeginSession(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	lang := resolveLang(c, h.store, h.defaultLang)

	var req BeginSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request data",
				"details": err.Error(),
			})
			return
		}
	}

	view, err := h.setService.Begin(c.Request.Context(), sessionID, lang, c.Param("id"), req.EditLineID)
	if err != nil {
		c.JSON(h.statusFor(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Set configuration session started",
		"data":    view,
	})
}

// GetSession handles GET /set-sessions/:id
func (h *SetHandler) GetSession(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	view, err := h.setService.Get(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		c.JSON(h.statusFor(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": view,
	})
}

// SetPersonsRequest updates the session headcount
type SetPersonsRequest struct {
	Persons int `json:"persons" binding:"required"`
}

// SetPersons handles PUT /set-sessions/:id/persons
func (h *SetHandler) SetPersons(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req SetPersonsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.setService.SetPersons(c.Request.Context(), sessionID, c.Param("id"), req.Persons)
	if err != nil {
		c.JSON(h.statusFor(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Headcount updated",
		"data":    view,
	})
}

// SetVariantRequest switches the session variant
type SetVariantRequest struct {
	Variant string `json:"variant" binding:"required"`
}

// SetVariant handles PUT /set-sessions/:id/variant
func (h *SetHandler) SetVariant(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req SetVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.setService.SetVariant(c.Request.Context(), sessionID, c.Param("id"), req.Variant)
	if err != nil {
		c.JSON(h.statusFor(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Variant updated",
		"data":    view,
	})
}

// BumpItemRequest adjusts one per-person quantity by delta
type BumpItemRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// BumpItem handles PUT /set-sessions/:id/items/:productId
func (h *SetHandler) BumpItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req BumpItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.setService.BumpRow(c.Request.Context(), sessionID, c.Param("id"), c.Param("productId"), req.Delta)
	if err != nil {
		c.JSON(h.statusFor(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantity updated",
		"data":    view,
	})
}

// SaveSession handles POST /set-sessions/:id/save
func (h *SetHandler) SaveSession(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	cartResponse, err := h.setService.Save(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		c.JSON(h.statusFor(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Set saved to cart",
		"data":    cartResponse,
	})
}

// AbandonSession handles DELETE /set-sessions/:id
func (h *SetHandler) AbandonSession(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	h.setService.Abandon(c.Request.Context(), sessionID, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Set configuration discarded",
	})
}

func (h *SetHandler) statusFor(err error) int {
	switch {
	case errors.Is(err, set.ErrSetNotFound), errors.Is(err, set.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, set.ErrUnknownVariant):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
