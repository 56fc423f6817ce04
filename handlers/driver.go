package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tiffin-marketplace-api/middleware"
	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/services"
)

type DriverHandler struct {
	svc *services.DriverService
}

func NewDriverHandler(svc *services.DriverService) *DriverHandler {
	return &DriverHandler{svc: svc}
}

func (h *DriverHandler) Login(c *gin.Context) {
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

// Assignments returns the driver's deliveries joined to their orders
func (h *DriverHandler) Assignments(c *gin.Context) {
	result, err := h.svc.Assignments(middleware.Token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type DriverUpdateDeliveryRequest struct {
	ID          string     `json:"id" binding:"required"`
	Status      string     `json:"status" binding:"required,oneof=scheduled enroute delivered"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

// UpdateDeliveryStatus moves one of the driver's deliveries through its
// lifecycle
func (h *DriverHandler) UpdateDeliveryStatus(c *gin.Context) {
	var req DriverUpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.svc.UpdateDeliveryStatus(middleware.Token(c), services.UpdateDeliveryInput{
		ID:          req.ID,
		Status:      models.DeliveryStatus(req.Status),
		DeliveredAt: req.DeliveredAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
