package services

import (
	"time"

	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/statemachine"
	"tiffin-marketplace-api/store"
)

// DriverService exposes the driver's view: login, assigned deliveries joined
// to their orders, and delivery status updates.
type DriverService struct {
	store *store.Store
}

func NewDriverService(s *store.Store) *DriverService {
	return &DriverService{store: s}
}

// Login authenticates a driver by email or phone identifier.
func (s *DriverService) Login(identifier, password string) (LoginResult, error) {
	driver, ok := findByIdentifier(s.store.Users(models.RoleDriver), identifier)
	if !ok || !checkPassword(driver.PasswordHash, password) {
		return LoginResult{}, unauthorized("Invalid credentials")
	}
	session := s.store.CreateSession(driver.ID, models.RoleDriver)
	return LoginResult{
		Token: session.Token,
		Profile: map[string]interface{}{
			"id":    driver.ID,
			"name":  driver.Name,
			"email": driver.Email,
			"phone": driver.Phone,
		},
	}, nil
}

func (s *DriverService) requireDriver(token string) (models.User, error) {
	driver, ok := s.store.UserByToken(token, models.RoleDriver)
	if !ok {
		return models.User{}, unauthorized("Invalid session")
	}
	return driver, nil
}

type DriverSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type AssignmentsResult struct {
	Driver     DriverSummary     `json:"driver"`
	Deliveries []models.Delivery `json:"deliveries"`
	Orders     []models.Order    `json:"orders"`
}

// Assignments returns the authenticated driver's deliveries with their
// orders. Deliveries whose order is missing (orphaned by a cascade) are
// silently dropped.
func (s *DriverService) Assignments(token string) (AssignmentsResult, error) {
	driver, err := s.requireDriver(token)
	if err != nil {
		return AssignmentsResult{}, err
	}
	deliveries := s.store.DeliveriesForDriver(driver.ID)
	orders := make([]models.Order, 0, len(deliveries))
	kept := make([]models.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		order, ok := s.store.OrderByID(d.OrderID)
		if !ok {
			continue
		}
		kept = append(kept, d)
		orders = append(orders, order)
	}
	return AssignmentsResult{
		Driver: DriverSummary{
			ID:    driver.ID,
			Name:  driver.Name,
			Phone: driver.Phone,
		},
		Deliveries: kept,
		Orders:     orders,
	}, nil
}

type UpdateDeliveryInput struct {
	ID          string
	Status      models.DeliveryStatus
	DeliveredAt *time.Time
}

// UpdateDeliveryStatus moves one of the driver's own deliveries through its
// lifecycle. A delivery that is missing or assigned to someone else reports
// not-found either way, so drivers cannot probe other assignments. Marking
// delivered without a timestamp stamps now.
func (s *DriverService) UpdateDeliveryStatus(token string, in UpdateDeliveryInput) (models.Delivery, error) {
	driver, err := s.requireDriver(token)
	if err != nil {
		return models.Delivery{}, err
	}
	delivery, ok := s.store.DeliveryByID(in.ID)
	if !ok || delivery.DriverID != driver.ID {
		return models.Delivery{}, notFound("Delivery not found for driver")
	}
	if err := statemachine.CanTransitionDelivery(delivery.Status, in.Status); err != nil {
		return models.Delivery{}, badRequest(err.Error())
	}
	patch := models.DeliveryPatch{
		ID:     in.ID,
		Status: &in.Status,
	}
	if in.DeliveredAt != nil {
		patch.DeliveredAt = in.DeliveredAt
	} else if in.Status == models.DeliveryDelivered {
		now := time.Now()
		patch.DeliveredAt = &now
	}
	return s.store.SaveDelivery(patch), nil
}
