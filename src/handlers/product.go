package handlers

import (
	"net/http"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product CRUD
type ProductHandler struct {
	repo repositories.ProductRepository
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo repositories.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// CreateProductRequest represents the request body for creating a product.
// Only name and icon_class are required; everything else is optional.
type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	IconClass    string  `json:"icon_class" binding:"required"`
	Category     *string `json:"category"`
	CategoryURL  *string `json:"category_url"`
	Theme        *string `json:"theme"`
	IsFeatured   bool    `json:"is_featured"`
	DisplayOrder *int    `json:"display_order"`
	LiveURL      *string `json:"live_url"`
	BadgeText    *string `json:"badge_text"`
}

// HandleList returns all products in display order.
func (ph *ProductHandler) HandleList(c *gin.Context) {
	products, err := ph.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// HandleCreate stores a new product.
func (ph *ProductHandler) HandleCreate(c *gin.Context) {
	var req CreateProductRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and icon_class are required"})
		return
	}

	product := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		IconClass:    req.IconClass,
		Category:     req.Category,
		CategoryURL:  req.CategoryURL,
		Theme:        req.Theme,
		IsFeatured:   req.IsFeatured,
		DisplayOrder: req.DisplayOrder,
		LiveURL:      req.LiveURL,
		BadgeText:    req.BadgeText,
	}
	if err := ph.repo.Create(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// HandleUpdate applies a partial update and returns the updated record.
// Absent fields are left untouched.
func (ph *ProductHandler) HandleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var upd models.ProductUpdate
	if err := c.BindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := ph.repo.Update(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// HandleDelete removes a product.
func (ph *ProductHandler) HandleDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ph.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
