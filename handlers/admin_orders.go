package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tiffin-marketplace-api/models"
)

func (h *AdminHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Orders())
}

type UpdateOrderRequest struct {
	ID     string   `json:"id" binding:"required"`
	Status string   `json:"status" binding:"required,oneof=pending preparing ready out-for-delivery completed cancelled"`
	Total  *float64 `json:"total"`
}

// UpdateOrder is the admin override path: any enumerated status may be
// written at any time.
func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := models.OrderStatus(req.Status)
	updated := h.svc.UpdateOrder(models.OrderPatch{
		ID:     req.ID,
		Status: &status,
		Total:  req.Total,
	})
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) ListDeliveries(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Deliveries())
}

type UpdateDeliveryRequest struct {
	ID          string     `json:"id" binding:"required"`
	Status      string     `json:"status" binding:"required,oneof=scheduled enroute delivered"`
	DeliveredAt *time.Time `json:"deliveredAt"`
	DriverID    *string    `json:"driverId"`
}

func (h *AdminHandler) UpdateDelivery(c *gin.Context) {
	var req UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := models.DeliveryStatus(req.Status)
	updated := h.svc.UpdateDelivery(models.DeliveryPatch{
		ID:          req.ID,
		Status:      &status,
		DeliveredAt: req.DeliveredAt,
		DriverID:    req.DriverID,
	})
	c.JSON(http.StatusOK, updated)
}
