package store

import (
	"time"

	"github.com/google/uuid"

	"tiffin-marketplace-api/models"
)

func cloneOrder(o *models.Order) models.Order {
	out := *o
	if o.DeliveryAddress != nil {
		addr := *o.DeliveryAddress
		out.DeliveryAddress = &addr
	}
	return out
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.orders.all()
	out := make([]models.Order, 0, len(items))
	for _, o := range items {
		out = append(out, cloneOrder(o))
	}
	return out
}

func (s *Store) OrderByID(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders.get(id)
	if !ok {
		return models.Order{}, false
	}
	return cloneOrder(o), true
}

// OrdersForCustomer returns the orders attributed to a customer, in creation
// order.
func (s *Store) OrdersForCustomer(customerID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders.all() {
		if o.CustomerID == customerID {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

// SaveOrder upserts an order. New orders default to pending status, cash
// payment and a creation timestamp of now.
func (s *Store) SaveOrder(p models.OrderPatch) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID != "" {
		if existing, ok := s.orders.get(p.ID); ok {
			applyOrderPatch(existing, p)
			return cloneOrder(existing)
		}
	}
	created := &models.Order{
		ID:            uuid.NewString(),
		Status:        models.OrderPending,
		PaymentMethod: models.PayCash,
		CreatedAt:     time.Now(),
	}
	applyOrderPatch(created, p)
	s.orders.put(created.ID, created)
	return cloneOrder(created)
}

func applyOrderPatch(o *models.Order, p models.OrderPatch) {
	if p.CustomerID != nil {
		o.CustomerID = *p.CustomerID
	}
	if p.GuestEmail != nil {
		o.GuestEmail = *p.GuestEmail
	}
	if p.GuestPhone != nil {
		o.GuestPhone = *p.GuestPhone
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.TiffinID != nil {
		o.TiffinID = *p.TiffinID
	}
	if p.PlanID != nil {
		o.PlanID = *p.PlanID
	}
	if p.PaymentMethod != nil {
		o.PaymentMethod = *p.PaymentMethod
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
	if p.DeliveryAddress != nil {
		addr := *p.DeliveryAddress
		o.DeliveryAddress = &addr
	}
}

// clearCustomerFromOrders nulls the customer link on every order referencing
// the customer. Orders survive as orphaned history. Callers hold the lock.
func (s *Store) clearCustomerFromOrders(customerID string) {
	for _, o := range s.orders.all() {
		if o.CustomerID == customerID {
			o.CustomerID = ""
		}
	}
}

func cloneDelivery(d *models.Delivery) models.Delivery {
	out := *d
	if d.DeliveredAt != nil {
		at := *d.DeliveredAt
		out.DeliveredAt = &at
	}
	return out
}

func (s *Store) Deliveries() []models.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.deliveries.all()
	out := make([]models.Delivery, 0, len(items))
	for _, d := range items {
		out = append(out, cloneDelivery(d))
	}
	return out
}

func (s *Store) DeliveryByID(id string) (models.Delivery, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deliveries.get(id)
	if !ok {
		return models.Delivery{}, false
	}
	return cloneDelivery(d), true
}

func (s *Store) DeliveriesForDriver(driverID string) []models.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Delivery
	for _, d := range s.deliveries.all() {
		if d.DriverID == driverID {
			out = append(out, cloneDelivery(d))
		}
	}
	return out
}

// SaveDelivery upserts a delivery. New deliveries default to scheduled status
// with a schedule time of now.
func (s *Store) SaveDelivery(p models.DeliveryPatch) models.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID != "" {
		if existing, ok := s.deliveries.get(p.ID); ok {
			applyDeliveryPatch(existing, p)
			return cloneDelivery(existing)
		}
	}
	created := &models.Delivery{
		ID:           uuid.NewString(),
		Status:       models.DeliveryScheduled,
		ScheduledFor: time.Now(),
	}
	applyDeliveryPatch(created, p)
	s.deliveries.put(created.ID, created)
	return cloneDelivery(created)
}

func applyDeliveryPatch(d *models.Delivery, p models.DeliveryPatch) {
	if p.OrderID != nil {
		d.OrderID = *p.OrderID
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.ScheduledFor != nil {
		d.ScheduledFor = *p.ScheduledFor
	}
	if p.DeliveredAt != nil {
		at := *p.DeliveredAt
		d.DeliveredAt = &at
	}
	if p.DriverID != nil {
		d.DriverID = *p.DriverID
	}
}

// clearDriverFromDeliveries unassigns a driver from every delivery that
// referenced them. Deliveries survive. Callers hold the lock.
func (s *Store) clearDriverFromDeliveries(driverID string) {
	for _, d := range s.deliveries.all() {
		if d.DriverID == driverID {
			d.DriverID = ""
		}
	}
}
