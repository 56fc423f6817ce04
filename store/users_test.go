package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffin-marketplace-api/models"
)

func rolePtr(r models.UserRole) *models.UserRole { return &r }

func newCustomerUser(t *testing.T, s *Store, name, email string) models.User {
	t.Helper()
	user := s.SaveUser(models.UserPatch{
		Role:  rolePtr(models.RoleCustomer),
		Name:  &name,
		Email: &email,
	})
	s.SaveCustomer(models.CustomerPatch{
		ID:     user.ID,
		UserID: &user.ID,
		Name:   &name,
		Email:  &email,
	})
	return user
}

func TestSaveUserAssignsIDAndTimestamp(t *testing.T) {
	s := New()

	user := s.SaveUser(models.UserPatch{
		Role: rolePtr(models.RoleDriver),
		Name: strPtr("Ravi"),
	})
	require.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	updated := s.SaveUser(models.UserPatch{ID: user.ID, Name: strPtr("Ravi K")})
	assert.Equal(t, user.ID, updated.ID)
	assert.Equal(t, "Ravi K", updated.Name)
	assert.Equal(t, models.RoleDriver, updated.Role)
	assert.Len(t, s.Users(""), 1)
}

func TestUserLookups(t *testing.T) {
	s := New()
	newCustomerUser(t, s, "Asha", "Asha@Example.com")

	byEmail, ok := s.UserByEmail("asha@example.COM")
	require.True(t, ok)
	assert.Equal(t, "Asha", byEmail.Name)

	_, ok = s.UserByPhone("+14165550000")
	assert.False(t, ok)

	phone := "+14165550000"
	s.SaveUser(models.UserPatch{ID: byEmail.ID, Phone: &phone})
	byPhone, ok := s.UserByPhone("+14165550000")
	require.True(t, ok)
	assert.Equal(t, byEmail.ID, byPhone.ID)
}

func TestUsersFilterByRole(t *testing.T) {
	s := New()
	newCustomerUser(t, s, "Asha", "asha@example.com")
	s.SaveUser(models.UserPatch{Role: rolePtr(models.RoleDriver), Name: strPtr("Ravi")})

	assert.Len(t, s.Users(models.RoleCustomer), 1)
	assert.Len(t, s.Users(models.RoleDriver), 1)
	assert.Len(t, s.Users(""), 2)
}

func TestDeleteCustomerUserCascades(t *testing.T) {
	s := New()
	user := newCustomerUser(t, s, "Asha", "asha@example.com")

	order := s.SaveOrder(models.OrderPatch{
		CustomerID: &user.ID,
		TiffinID:   strPtr("t1"),
	})
	s.AddOrderToCustomer(user.ID, order.ID)

	removed, ok := s.DeleteUser(user.ID)
	require.True(t, ok)
	assert.Equal(t, "Asha", removed.Name)

	// profile removed, order survives orphaned
	_, ok = s.CustomerByUserID(user.ID)
	assert.False(t, ok)

	surviving, ok := s.OrderByID(order.ID)
	require.True(t, ok)
	assert.Empty(t, surviving.CustomerID)
}

func TestDeleteDriverUserUnassignsDeliveries(t *testing.T) {
	s := New()
	driver := s.SaveUser(models.UserPatch{
		Role: rolePtr(models.RoleDriver),
		Name: strPtr("Ravi"),
	})
	delivery := s.SaveDelivery(models.DeliveryPatch{
		OrderID:  strPtr("o1"),
		DriverID: &driver.ID,
	})

	_, ok := s.DeleteUser(driver.ID)
	require.True(t, ok)

	surviving, ok := s.DeliveryByID(delivery.ID)
	require.True(t, ok)
	assert.Empty(t, surviving.DriverID)
}

func TestDeleteUserRevokesSessions(t *testing.T) {
	s := New()
	user := newCustomerUser(t, s, "Asha", "asha@example.com")
	session := s.CreateSession(user.ID, models.RoleCustomer)

	_, ok := s.DeleteUser(user.ID)
	require.True(t, ok)

	_, ok = s.UserByToken(session.Token, models.RoleCustomer)
	assert.False(t, ok)
}

func TestDeleteUnknownUserIsNoOp(t *testing.T) {
	s := New()
	_, ok := s.DeleteUser("missing")
	assert.False(t, ok)
}

func TestSaveCustomerHonoursProvidedID(t *testing.T) {
	s := New()

	profile := s.SaveCustomer(models.CustomerPatch{
		ID:   "user-1",
		Name: strPtr("Asha"),
	})
	assert.Equal(t, "user-1", profile.ID)

	// legacy profiles resolve by id == userId
	found, ok := s.CustomerByUserID("user-1")
	require.True(t, ok)
	assert.Equal(t, "Asha", found.Name)
}

func TestSaveCustomerDefaults(t *testing.T) {
	s := New()

	profile := s.SaveCustomer(models.CustomerPatch{})
	require.NotEmpty(t, profile.ID)
	assert.Equal(t, "Guest", profile.Name)
	assert.Empty(t, profile.Addresses)
	assert.Empty(t, profile.OrderHistory)
}

func TestAddOrderToCustomerDeduplicates(t *testing.T) {
	s := New()
	user := newCustomerUser(t, s, "Asha", "asha@example.com")

	s.AddOrderToCustomer(user.ID, "o1")
	s.AddOrderToCustomer(user.ID, "o2")
	s.AddOrderToCustomer(user.ID, "o1")

	profile, ok := s.CustomerByUserID(user.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"o1", "o2"}, profile.OrderHistory)
}

func TestAddAddress(t *testing.T) {
	s := New()
	user := newCustomerUser(t, s, "Asha", "asha@example.com")

	ok := s.AddAddress(user.ID, models.Address{
		ID:     "a1",
		Label:  "Home",
		Street: "12 Main St",
		City:   "Toronto",
	})
	require.True(t, ok)

	profile, _ := s.CustomerByUserID(user.ID)
	require.Len(t, profile.Addresses, 1)
	assert.Equal(t, "Home", profile.Addresses[0].Label)

	assert.False(t, s.AddAddress("missing", models.Address{ID: "a2"}))
}
