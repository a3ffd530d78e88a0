package handler

import (
	"errors"
	"log"
	"net/http"

	"spa_booking/internal/model"
	"spa_booking/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles admin-side user directory requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("Error listing users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser adds an account from the management screen. No phone-uniqueness
// check on this path.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, err := h.service.UpsertUser(c.Request.Context(), "", req.Phone, req.Password, req.Role)
	if err != nil {
		h.renderError(c, err, "Error creating user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateUser edits an account in place, any field including the role flag
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req model.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := h.service.UpsertUser(c.Request.Context(), id, req.Phone, req.Password, req.Role); err != nil {
		h.renderError(c, err, "Error updating user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "Error deleting user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) renderError(c *gin.Context, err error, logPrefix string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", logPrefix, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// RegisterUserRoutes registers user directory routes, all admin only
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(authMW, adminMW)
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}
