package handlers

import (
	"net/http"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/gin-gonic/gin"
)

// TestimonialHandler handles testimonial CRUD
type TestimonialHandler struct {
	repo repositories.TestimonialRepository
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(repo repositories.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{repo: repo}
}

// CreateTestimonialRequest represents the request body for creating a
// testimonial. Only quote and client_name are required.
type CreateTestimonialRequest struct {
	Quote        string  `json:"quote" binding:"required"`
	ClientName   string  `json:"client_name" binding:"required"`
	ClientTitle  *string `json:"client_title"`
	ImageURL     *string `json:"image_url"`
	DisplayOrder *int    `json:"display_order"`
}

// HandleList returns all testimonials in display order.
func (th *TestimonialHandler) HandleList(c *gin.Context) {
	testimonials, err := th.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// HandleCreate stores a new testimonial.
func (th *TestimonialHandler) HandleCreate(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quote and client_name are required"})
		return
	}

	testimonial := &models.Testimonial{
		Quote:        req.Quote,
		ClientName:   req.ClientName,
		ClientTitle:  req.ClientTitle,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}
	if err := th.repo.Create(c.Request.Context(), testimonial); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

// HandleUpdate applies a partial update and returns the updated record.
func (th *TestimonialHandler) HandleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var upd models.TestimonialUpdate
	if err := c.BindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	testimonial, err := th.repo.Update(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

// HandleDelete removes a testimonial.
func (th *TestimonialHandler) HandleDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := th.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
