package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ameer12348/wacky-commerce-backend/catalog"
	"github.com/Ameer12348/wacky-commerce-backend/services"
)

type ProductHandler struct {
	catalog  *services.CatalogQueryService
	products *services.ProductService
}

func NewProductHandler(catalogSvc *services.CatalogQueryService, products *services.ProductService) *ProductHandler {
	return &ProductHandler{catalog: catalogSvc, products: products}
}

// List serves the product listing. The admin page gets the complete list
// with no filtering, sorting or pagination; the storefront goes through
// the parsed descriptor.
func (h *ProductHandler) List(c *gin.Context) {
	if c.Query("mode") == "admin" {
		products, err := h.catalog.ListAdmin(c.Query("include") == "variants")
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	descriptor := catalog.ParseQuery(c.Request.URL.RawQuery)
	products, err := h.catalog.ListProducts(descriptor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.products.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Search(c *gin.Context) {
	products, err := h.products.Search(c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.products.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.products.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.products.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
