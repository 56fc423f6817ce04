package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tiffin-marketplace-api/models"
)

func (h *AdminHandler) GetPaymentSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.PaymentSettings())
}

type UpdatePaymentSettingsRequest struct {
	AllowCashOnDelivery  *bool   `json:"allowCashOnDelivery"`
	AllowCreditCard      *bool   `json:"allowCreditCard"`
	AllowInterac         *bool   `json:"allowInterac"`
	CreditCardProcessor  *string `json:"creditCardProcessor"`
	ProcessorPublicKey   *string `json:"processorPublicKey"`
	ProcessorSecretKey   *string `json:"processorSecretKey"`
	InteracRecipientMail *string `json:"interacRecipientEmail" binding:"omitempty,email"`
	Notes                *string `json:"notes"`
}

// UpdatePaymentSettings merges provided fields into the singleton record
func (h *AdminHandler) UpdatePaymentSettings(c *gin.Context) {
	var req UpdatePaymentSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated := h.svc.UpdatePaymentSettings(models.PaymentSettingsPatch{
		AllowCashOnDelivery:  req.AllowCashOnDelivery,
		AllowCreditCard:      req.AllowCreditCard,
		AllowInterac:         req.AllowInterac,
		CreditCardProcessor:  req.CreditCardProcessor,
		ProcessorPublicKey:   req.ProcessorPublicKey,
		ProcessorSecretKey:   req.ProcessorSecretKey,
		InteracRecipientMail: req.InteracRecipientMail,
		Notes:                req.Notes,
	})
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) GetIntegrationSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.IntegrationSettings())
}

type UpdateIntegrationSettingsRequest struct {
	GoogleBusinessProfileURL *string `json:"googleBusinessProfileUrl" binding:"omitempty,url"`
	GooglePlaceID            *string `json:"googlePlaceId"`
	EnableReviewSync         *bool   `json:"enableReviewSync"`
}

func (h *AdminHandler) UpdateIntegrationSettings(c *gin.Context) {
	var req UpdateIntegrationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated := h.svc.UpdateIntegrationSettings(models.IntegrationSettingsPatch{
		GoogleBusinessProfileURL: req.GoogleBusinessProfileURL,
		GooglePlaceID:            req.GooglePlaceID,
		EnableReviewSync:         req.EnableReviewSync,
	})
	c.JSON(http.StatusOK, updated)
}
