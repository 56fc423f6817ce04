package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tiffin-marketplace-api/middleware"
	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/services"
)

type AdminHandler struct {
	svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
}

// Login authenticates an admin and returns a session token
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.Login(req.Identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Logout revokes the caller's session token
func (h *AdminHandler) Logout(c *gin.Context) {
	if token := c.GetHeader(middleware.TokenHeader); token != "" {
		h.svc.Logout(token)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListUsers returns all users, optionally filtered by role
func (h *AdminHandler) ListUsers(c *gin.Context) {
	role := models.UserRole(c.Query("role"))
	c.JSON(http.StatusOK, h.svc.Users(role))
}

type ManageUserRequest struct {
	ID       string `json:"id"`
	Role     string `json:"role" binding:"required,oneof=admin customer driver"`
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Verified *bool  `json:"verified"`
}

// CreateUser creates a user; customer-role users get a mirrored profile
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req ManageUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.svc.CreateUser(services.ManageUserInput{
		ID:       req.ID,
		Role:     models.UserRole(req.Role),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Verified: req.Verified,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type UpdateUserRequest struct {
	Role     *string `json:"role" binding:"omitempty,oneof=admin customer driver"`
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Verified *bool   `json:"verified"`
}

// UpdateUser merges provided fields into a user record
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := services.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Verified: req.Verified,
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		in.Role = &role
	}
	updated, err := h.svc.UpdateUser(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUser removes a user and runs its cascades
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	removed, err := h.svc.DeleteUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, removed)
}
