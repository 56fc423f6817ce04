package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tiffin-marketplace-api/middleware"
	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/services"
)

type CustomerHandler struct {
	svc *services.CustomerService
}

func NewCustomerHandler(svc *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,min=7,max=15"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// SignUp creates or updates a customer account, issuing an OTP when a phone
// is supplied
func (h *CustomerHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.SignUp(services.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type VerifyOtpRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

func (h *CustomerHandler) VerifyOtp(c *gin.Context) {
	var req VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.VerifyOTP(req.Phone, req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type CustomerLoginRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *CustomerHandler) Login(c *gin.Context) {
	var req CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.Login(req.Email, req.Phone, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type AddressRequest struct {
	Label        string `json:"label" binding:"required,min=3"`
	Street       string `json:"street" binding:"required,min=5"`
	City         string `json:"city" binding:"required,min=2"`
	PostalCode   string `json:"postalCode" binding:"required,min=3"`
	Instructions string `json:"instructions"`
}

// AddAddress appends an address to the authenticated customer's profile
func (h *CustomerHandler) AddAddress(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	addr, err := h.svc.AddAddress(middleware.Token(c), services.AddressInput{
		Label:        req.Label,
		Street:       req.Street,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Instructions: req.Instructions,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addr)
}

type PlaceOrderRequest struct {
	CustomerID      string          `json:"customerId"`
	GuestEmail      string          `json:"guestEmail" binding:"omitempty,email"`
	GuestPhone      string          `json:"guestPhone"`
	TiffinID        string          `json:"tiffinId" binding:"required"`
	PlanID          string          `json:"planId"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required,oneof=cash credit-card interac"`
	Total           *float64        `json:"total" binding:"required"`
	DeliveryAddress *AddressRequest `json:"deliveryAddress"`
}

// PlaceOrder creates an order; a customer session token attributes the order
// regardless of the claimed identity in the body
func (h *CustomerHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := services.PlaceOrderInput{
		CustomerID:    req.CustomerID,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		TiffinID:      req.TiffinID,
		PlanID:        req.PlanID,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Total:         *req.Total,
	}
	if req.DeliveryAddress != nil {
		in.DeliveryAddress = &services.AddressInput{
			Label:        req.DeliveryAddress.Label,
			Street:       req.DeliveryAddress.Street,
			City:         req.DeliveryAddress.City,
			PostalCode:   req.DeliveryAddress.PostalCode,
			Instructions: req.DeliveryAddress.Instructions,
		}
	}
	created, err := h.svc.PlaceOrder(in, c.GetHeader(middleware.TokenHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Me returns the authenticated customer's profile
func (h *CustomerHandler) Me(c *gin.Context) {
	profile, err := h.svc.Profile(middleware.Token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// MyOrders returns the authenticated customer's order history
func (h *CustomerHandler) MyOrders(c *gin.Context) {
	orders, err := h.svc.Orders(middleware.Token(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// PublicData returns the aggregate the storefront renders from
func (h *CustomerHandler) PublicData(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GetPublicData())
}
