package handler

import (
	"errors"
	"log"
	"net/http"

	"spa_booking/internal/model"
	"spa_booking/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles service catalog requests
type CatalogHandler struct {
	service service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// ListServices is the refresh the list screens invoke on focus: always a fresh
// snapshot, never a cached one.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	listings, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		log.Printf("Error listing services: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req model.UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, err := h.service.CreateService(c.Request.Context(), req.ServiceName, req.Price, req.Creator)
	if err != nil {
		h.renderError(c, err, "Error creating service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id := c.Param("id")

	var req model.UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.service.UpdateService(c.Request.Context(), id, req.ServiceName, req.Price, req.Creator); err != nil {
		h.renderError(c, err, "Error updating service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully"})
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "Error deleting service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

func (h *CatalogHandler) renderError(c *gin.Context, err error, logPrefix string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", logPrefix, err)
		// Store failures are passed through verbatim, never retried.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// RegisterCatalogRoutes registers catalog routes. Listing is open to any
// authenticated user; mutations are admin only.
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	services := rg.Group("/services")
	services.Use(authMW)
	{
		services.GET("", h.ListServices)

		adminGroup := services.Group("")
		adminGroup.Use(adminMW)
		{
			adminGroup.POST("", h.CreateService)
			adminGroup.PUT("/:id", h.UpdateService)
			adminGroup.DELETE("/:id", h.DeleteService)
		}
	}
}
