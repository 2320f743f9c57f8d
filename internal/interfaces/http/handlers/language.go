// internal/interfaces/http/handlers/language.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
	"github.com/your-org/catering-storefront/internal/interfaces/http/middleware"
)

// LanguageHandler handles the persisted language preference
type LanguageHandler struct {
	store       storage.Store
	defaultLang string
}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler(store storage.Store, defaultLang string) *LanguageHandler {
	return &LanguageHandler{store: store, defaultLang: defaultLang}
}

// GetLanguage handles GET /language
func (h *LanguageHandler) GetLanguage(c *gin.Context) {
	lang := resolveLang(c, h.store, h.defaultLang)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"lang": lang},
	})
}

// SetLanguageRequest represents a language preference update
type SetLanguageRequest struct {
	Lang string `json:"lang" binding:"required"`
}

// SetLanguage handles PUT /language
func (h *LanguageHandler) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.store.Write(c.Request.Context(), storage.LangKey(middleware.SessionID(c)), req.Lang, 0)

	c.JSON(http.StatusOK, gin.H{
		"message": "Language preference saved",
		"data":    gin.H{"lang": req.Lang},
	})
}

// resolveLang picks the request language: explicit ?lang= wins, then the
// persisted preference, then the configured default.
func resolveLang(c *gin.Context, store storage.Store, defaultLang string) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}

	var lang string
	if store.Read(c.Request.Context(), storage.LangKey(middleware.SessionID(c)), &lang) && lang != "" {
		return lang
	}
	return defaultLang
}
