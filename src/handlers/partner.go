package handlers

import (
	"net/http"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/gin-gonic/gin"
)

// PartnerHandler handles partner CRUD
type PartnerHandler struct {
	repo repositories.PartnerRepository
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(repo repositories.PartnerRepository) *PartnerHandler {
	return &PartnerHandler{repo: repo}
}

// CreatePartnerRequest represents the request body for creating a partner
type CreatePartnerRequest struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logo_url" binding:"required"`
}

// HandleList returns all partners ordered by id.
func (ph *PartnerHandler) HandleList(c *gin.Context) {
	partners, err := ph.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

// HandleCreate stores a new partner.
func (ph *PartnerHandler) HandleCreate(c *gin.Context) {
	var req CreatePartnerRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and logo_url are required"})
		return
	}

	partner := &models.Partner{Name: req.Name, LogoURL: req.LogoURL}
	if err := ph.repo.Create(c.Request.Context(), partner); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, partner)
}

// HandleUpdate applies a partial update and returns the updated record.
func (ph *PartnerHandler) HandleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var upd models.PartnerUpdate
	if err := c.BindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	partner, err := ph.repo.Update(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// HandleDelete removes a partner.
func (ph *PartnerHandler) HandleDelete(c *gin.Context) {
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
