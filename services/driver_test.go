package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/store"
)

func seedDriverWithSession(t *testing.T, s *store.Store) (models.User, models.Session) {
	t.Helper()
	driver := seedUser(t, s, models.RoleDriver, "Ravi", "ravi@example.com", "+14165550002", "secret12")
	return driver, s.CreateSession(driver.ID, models.RoleDriver)
}

func seedAssignedDelivery(s *store.Store, driverID string) (models.Order, models.Delivery) {
	tiffinID := "t1"
	order := s.SaveOrder(models.OrderPatch{TiffinID: &tiffinID})
	delivery := s.SaveDelivery(models.DeliveryPatch{
		OrderID:  &order.ID,
		DriverID: &driverID,
	})
	return order, delivery
}

func TestDriverLogin(t *testing.T) {
	s := store.New()
	svc := NewDriverService(s)
	seedUser(t, s, models.RoleDriver, "Ravi", "ravi@example.com", "", "secret12")

	result, err := svc.Login("ravi@example.com", "secret12")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Ravi", result.Profile["name"])

	_, err = svc.Login("ravi@example.com", "wrong")
	assert.Error(t, err)
}

func TestDriverEndpointsRejectCustomerToken(t *testing.T) {
	s := store.New()
	svc := NewDriverService(s)
	customer := seedUser(t, s, models.RoleCustomer, "Asha", "asha@example.com", "", "secret12")
	session := s.CreateSession(customer.ID, models.RoleCustomer)

	_, err := svc.Assignments(session.Token)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindUnauthorized, svcErr.Kind)
}

func TestAssignmentsReturnsOwnDeliveriesWithOrders(t *testing.T) {
	s := store.New()
	svc := NewDriverService(s)
	driver, session := seedDriverWithSession(t, s)

	order, delivery := seedAssignedDelivery(s, driver.ID)
	seedAssignedDelivery(s, "other-driver")

	result, err := svc.Assignments(session.Token)
	require.NoError(t, err)
	assert.Equal(t, driver.ID, result.Driver.ID)
	require.Len(t, result.Deliveries, 1)
	assert.Equal(t, delivery.ID, result.Deliveries[0].ID)
	require.Len(t, result.Orders, 1)
	assert.Equal(t, order.ID, result.Orders[0].ID)
}

func TestAssignmentsDropsOrphanedDeliveries(t *testing.T) {
	s := store.New()
	svc := NewDriverService(s)
	driver, session := seedDriverWithSession(t, s)

	missingOrder := "gone"
	s.SaveDelivery(models.DeliveryPatch{OrderID: &missingOrder, DriverID: &driver.ID})
	_, kept := seedAssignedDelivery(s, driver.ID)

	result, err := svc.Assignments(session.Token)
	require.NoError(t, err)
	require.Len(t, result.Deliveries, 1)
	assert.Equal(t, kept.ID, result.Deliveries[0].ID)
}

func TestUpdateDeliveryStatusTransitions(t *testing.T) {
	s := store.New()
	svc := NewDriverService(s)
	driver, session := seedDriverWithSession(t, s)
	_, delivery := seedAssignedDelivery(s, driver.ID)

	updated, err := svc.UpdateDeliveryStatus(session.Token, UpdateDeliveryInput{
		ID:     delivery.ID,
		Status: models.DeliveryEnroute,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryEnroute, updated.Status)

	updated, err = svc.UpdateDeliveryStatus(session.Token, UpdateDeliveryInput{
		ID:     delivery.ID,
		Status: models.DeliveryDelivered,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryDelivered, updated.Status)
	require.NotNil(t, updated.DeliveredAt) // stamped automatically
	assert.WithinDuration(t, time.Now(), *updated.DeliveredAt, time.Minute)
}

func TestUpdateDeliveryStatusHonoursExplicitTimestamp(t *testing.T) {
	s := store.New()
	svc := NewDriverService(s)
	driver, session := seedDriverWithSession(t, s)
	_, delivery := seedAssignedDelivery(s, driver.ID)

	at := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	updated, err := svc.UpdateDeliveryStatus(session.Token, UpdateDeliveryInput{
		ID:          delivery.ID,
		Status:      models.DeliveryEnroute,
		DeliveredAt: &at,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.DeliveredAt)
	assert.True(t, at.Equal(*updated.DeliveredAt))
}

func TestUpdateDeliveryStatusRejectsBackwardTransition(t *testing.T) {
	s := store.New()
	svc := NewDriverService(s)
	driver, session := seedDriverWithSession(t, s)
	_, delivery := seedAssignedDelivery(s, driver.ID)

	status := models.DeliveryDelivered
	s.SaveDelivery(models.DeliveryPatch{ID: delivery.ID, Status: &status})

	_, err := svc.UpdateDeliveryStatus(session.Token, UpdateDeliveryInput{
		ID:     delivery.ID,
		Status: models.DeliveryScheduled,
	})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindBadRequest, svcErr.Kind)
}

func TestUpdateDeliveryStatusHidesForeignDeliveries(t *testing.T) {
	s := store.New()
	svc := NewDriverService(s)
	_, session := seedDriverWithSession(t, s)
	_, foreign := seedAssignedDelivery(s, "other-driver")

	// a delivery owned by someone else and a missing one look the same
	for _, id := range []string{foreign.ID, "no-such-delivery"} {
		_, err := svc.UpdateDeliveryStatus(session.Token, UpdateDeliveryInput{
			ID:     id,
			Status: models.DeliveryEnroute,
		})
		var svcErr *Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, KindNotFound, svcErr.Kind)
	}
}
