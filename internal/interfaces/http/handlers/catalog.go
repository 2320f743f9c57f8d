// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/catering-storefront/internal/domain/catalog"
	"github.com/your-org/catering-storefront/internal/domain/pricing"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
)

// CatalogHandler handles catalog browsing endpoints
type CatalogHandler struct {
	catalog     *catalog.Store
	calc        *pricing.Calculator
	store       storage.Store
	defaultLang string
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Store, calc *pricing.Calculator, store storage.Store, defaultLang string) *CatalogHandler {
	return &CatalogHandler{
		catalog:     cat,
		calc:        calc,
		store:       store,
		defaultLang: defaultLang,
	}
}

// ProductView is a product enriched with its resolved display name
type ProductView struct {
	catalog.Product
	Name string `json:"name"`
}

// GetCatalog handles GET /catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"currency":   h.catalog.Currency(),
			"categories": len(h.catalog.Categories()),
			"products":   len(h.catalog.Products()),
			"sets":       len(h.catalog.Sets()),
		},
	})
}

// GetProducts handles GET /products with optional category, popular and
// free-text filters.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	lang := resolveLang(c, h.store, h.defaultLang)
	category := c.Query("category")
	popularOnly := c.Query("popular") == "true"
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	products := h.catalog.Products()
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if popularOnly && !p.Popular {
			continue
		}
		name := h.catalog.ProductName(p.ID, lang)
		if query != "" && !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		views = append(views, ProductView{Product: p, Name: name})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products": views,
			"count":    len(views),
			"currency": h.catalog.Currency(),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	lang := resolveLang(c, h.store, h.defaultLang)

	p, ok := h.catalog.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ProductView{Product: *p, Name: h.catalog.ProductName(p.ID, lang)},
	})
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	lang := resolveLang(c, h.store, h.defaultLang)

	categories := h.catalog.Categories()
	type categoryView struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	views := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, categoryView{ID: cat.ID, Name: h.catalog.CategoryName(cat.ID, lang)})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"categories": views},
	})
}

// SetView is a set definition with its resolved label and default pricing
type SetView struct {
	catalog.SetDefinition
	Name           string               `json:"name"`
	PerPerson      []pricing.PortionRow `json:"perPerson"`
	PricePerPerson string               `json:"pricePerPerson"`
	DefaultTotal   string               `json:"defaultTotal"`
}

// GetSets handles GET /sets
func (h *CatalogHandler) GetSets(c *gin.Context) {
	lang := resolveLang(c, h.store, h.defaultLang)

	sets := h.catalog.Sets()
	views := make([]SetView, 0, len(sets))
	for i := range sets {
		views = append(views, h.setView(&sets[i], lang))
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"sets":     views,
			"currency": h.catalog.Currency(),
		},
	})
}

// GetSet handles GET /sets/:id
func (h *CatalogHandler) GetSet(c *gin.Context) {
	lang := resolveLang(c, h.store, h.defaultLang)

	def, ok := h.catalog.Set(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Set not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": h.setView(def, lang),
	})
}

func (h *CatalogHandler) setView(def *catalog.SetDefinition, lang string) SetView {
	rows := pricing.DeriveRows(def)
	variant := ""
	if len(def.Variants) > 0 {
		variant = def.Variants[0]
	}
	per := h.calc.SetPricePerPerson(rows, variant)
	return SetView{
		SetDefinition:  *def,
		Name:           h.catalog.SetLabel(def.ID, lang),
		PerPerson:      rows,
		PricePerPerson: per.StringFixed(2),
		DefaultTotal:   pricing.SetTotalPrice(per, def.DefaultPersons).StringFixed(2),
	}
}
