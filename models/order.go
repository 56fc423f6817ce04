package models

import "time"

// OrderStatus represents all possible states of a tiffin order
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderPreparing      OrderStatus = "preparing"
	OrderReady          OrderStatus = "ready"
	OrderOutForDelivery OrderStatus = "out-for-delivery"
	OrderCompleted      OrderStatus = "completed"
	OrderCancelled      OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PayCash       PaymentMethod = "cash"
	PayCreditCard PaymentMethod = "credit-card"
	PayInterac    PaymentMethod = "interac"
)

// Order belongs to exactly one customer (CustomerID set) or is a guest order
// (guest contact fields, no customer link). A cascade may later clear
// CustomerID; consumers treat the missing link as "guest", not corruption.
type Order struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customerId,omitempty"`
	GuestEmail      string        `json:"guestEmail,omitempty"`
	GuestPhone      string        `json:"guestPhone,omitempty"`
	Status          OrderStatus   `json:"status"`
	TiffinID        string        `json:"tiffinId"`
	PlanID          string        `json:"planId,omitempty"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Total           float64       `json:"total"`
	DeliveryAddress *Address      `json:"deliveryAddress,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type OrderPatch struct {
	ID              string
	CustomerID      *string
	GuestEmail      *string
	GuestPhone      *string
	Status          *OrderStatus
	TiffinID        *string
	PlanID          *string
	PaymentMethod   *PaymentMethod
	Total           *float64
	DeliveryAddress *Address
}

type DeliveryStatus string

const (
	DeliveryScheduled DeliveryStatus = "scheduled"
	DeliveryEnroute   DeliveryStatus = "enroute"
	DeliveryDelivered DeliveryStatus = "delivered"
)

// Delivery references exactly one order. DriverID is empty until an admin
// assigns a driver, and may become empty again if that driver is deleted.
type Delivery struct {
	ID           string         `json:"id"`
	OrderID      string         `json:"orderId"`
	Status       DeliveryStatus `json:"status"`
	ScheduledFor time.Time      `json:"scheduledFor"`
	DeliveredAt  *time.Time     `json:"deliveredAt,omitempty"`
	DriverID     string         `json:"driverId,omitempty"`
}

type DeliveryPatch struct {
	ID           string
	OrderID      *string
	Status       *DeliveryStatus
	ScheduledFor *time.Time
	DeliveredAt  *time.Time
	DriverID     *string
}
