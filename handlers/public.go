package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tiffin-marketplace-api/services"
	"tiffin-marketplace-api/statemachine"
	"tiffin-marketplace-api/store"
)

// PublicHandler serves the unauthenticated storefront reads straight from the
// store.
type PublicHandler struct {
	store *store.Store
}

func NewPublicHandler(s *store.Store) *PublicHandler {
	return &PublicHandler{store: s}
}

func (h *PublicHandler) Tiffins(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Tiffins())
}

func (h *PublicHandler) WeeklyMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.WeeklyMenu())
}

func (h *PublicHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Plans())
}

func (h *PublicHandler) Promotions(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Promotions())
}

func (h *PublicHandler) Reviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Reviews())
}

func (h *PublicHandler) PaymentSettings(c *gin.Context) {
	c.JSON(http.StatusOK, services.PublicPaymentSettings(h.store))
}

func (h *PublicHandler) IntegrationSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.IntegrationSettings())
}

// StateMachine documents the order and delivery lifecycles
func (h *PublicHandler) StateMachine(c *gin.Context) {
	c.JSON(http.StatusOK, statemachine.Describe())
}
