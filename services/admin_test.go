package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/store"
)

func seedUser(t *testing.T, s *store.Store, role models.UserRole, name, email, phone, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	return s.SaveUser(models.UserPatch{
		Role:         &role,
		Name:         &name,
		Email:        &email,
		Phone:        &phone,
		PasswordHash: &hashStr,
	})
}

func TestAdminLogin(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)
	seedUser(t, s, models.RoleAdmin, "Admin", "admin@example.com", "", "sup3rsecret")

	result, err := svc.Login("ADMIN@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Admin", result.Profile["name"])

	_, authErr := svc.Authenticate(result.Token)
	assert.NoError(t, authErr)
}

func TestAdminLoginByPhone(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)
	seedUser(t, s, models.RoleAdmin, "Admin", "", "+14165550000", "sup3rsecret")

	_, err := svc.Login("+14165550000", "sup3rsecret")
	assert.NoError(t, err)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)
	seedUser(t, s, models.RoleAdmin, "Admin", "admin@example.com", "", "sup3rsecret")

	_, err := svc.Login("admin@example.com", "wrong")
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindUnauthorized, svcErr.Kind)

	// non-admin users never match, even with the right password
	seedUser(t, s, models.RoleCustomer, "Asha", "asha@example.com", "", "sup3rsecret")
	_, err = svc.Login("asha@example.com", "sup3rsecret")
	assert.Error(t, err)
}

func TestAdminLogoutRevokesToken(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)
	seedUser(t, s, models.RoleAdmin, "Admin", "admin@example.com", "", "sup3rsecret")

	result, err := svc.Login("admin@example.com", "sup3rsecret")
	require.NoError(t, err)

	svc.Logout(result.Token)
	_, err = svc.Authenticate(result.Token)
	assert.Error(t, err)
}

func TestCreateUserRequiresRole(t *testing.T) {
	svc := NewAdminService(store.New())

	_, err := svc.CreateUser(ManageUserInput{Name: "No Role"})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindBadRequest, svcErr.Kind)
}

func TestCreateCustomerUserMirrorsProfile(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)

	created, err := svc.CreateUser(ManageUserInput{
		Role:  models.RoleCustomer,
		Name:  "Asha",
		Email: "asha@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.PasswordHash) // random password synthesized

	profile, ok := s.CustomerByUserID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.ID, profile.ID)
	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, "asha@example.com", profile.Email)
}

func TestCreateDriverUserHasNoProfile(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)

	created, err := svc.CreateUser(ManageUserInput{
		Role: models.RoleDriver,
		Name: "Ravi",
	})
	require.NoError(t, err)

	_, ok := s.CustomerByUserID(created.ID)
	assert.False(t, ok)
}

func TestUpdateUserPropagatesToProfile(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)

	created, err := svc.CreateUser(ManageUserInput{
		Role:  models.RoleCustomer,
		Name:  "Asha",
		Email: "asha@example.com",
	})
	require.NoError(t, err)

	newName := "Asha Patel"
	updated, err := svc.UpdateUser(created.ID, UpdateUserInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Asha Patel", updated.Name)

	profile, ok := s.CustomerByUserID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Asha Patel", profile.Name)
	assert.Equal(t, "asha@example.com", profile.Email)
}

func TestUpdateUserUnknownIDIsNotFound(t *testing.T) {
	svc := NewAdminService(store.New())

	name := "Nobody"
	_, err := svc.UpdateUser("missing", UpdateUserInput{Name: &name})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
}

func TestPasswordChangeRevokesAllSessions(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)
	user := seedUser(t, s, models.RoleCustomer, "Asha", "asha@example.com", "", "oldpass1")

	first := s.CreateSession(user.ID, models.RoleCustomer)
	second := s.CreateSession(user.ID, models.RoleCustomer)

	newPass := "newpass1"
	_, err := svc.UpdateUser(user.ID, UpdateUserInput{Password: &newPass})
	require.NoError(t, err)

	_, ok := s.UserByToken(first.Token, models.RoleCustomer)
	assert.False(t, ok)
	_, ok = s.UserByToken(second.Token, models.RoleCustomer)
	assert.False(t, ok)

	// the new credential works
	updated, ok := s.UserByID(user.ID)
	require.True(t, ok)
	assert.True(t, checkPassword(updated.PasswordHash, "newpass1"))
	assert.False(t, checkPassword(updated.PasswordHash, "oldpass1"))
}

func TestUpdateWithoutPasswordKeepsSessions(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)
	user := seedUser(t, s, models.RoleCustomer, "Asha", "asha@example.com", "", "oldpass1")
	session := s.CreateSession(user.ID, models.RoleCustomer)

	name := "Asha Patel"
	_, err := svc.UpdateUser(user.ID, UpdateUserInput{Name: &name})
	require.NoError(t, err)

	_, ok := s.UserByToken(session.Token, models.RoleCustomer)
	assert.True(t, ok)
}

func TestDeleteUser(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)
	user := seedUser(t, s, models.RoleDriver, "Ravi", "ravi@example.com", "", "password")

	removed, err := svc.DeleteUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", removed.Name)

	_, err = svc.DeleteUser(user.ID)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
}

func TestAdminUpdateOrderAppendsHistory(t *testing.T) {
	s := store.New()
	svc := NewAdminService(s)
	user := seedUser(t, s, models.RoleCustomer, "Asha", "asha@example.com", "", "password")
	s.SaveCustomer(models.CustomerPatch{ID: user.ID, UserID: &user.ID})

	tiffinID := "t1"
	order := s.SaveOrder(models.OrderPatch{TiffinID: &tiffinID, CustomerID: &user.ID})

	status := models.OrderPreparing
	updated := svc.UpdateOrder(models.OrderPatch{ID: order.ID, Status: &status})
	assert.Equal(t, models.OrderPreparing, updated.Status)

	profile, ok := s.CustomerByUserID(user.ID)
	require.True(t, ok)
	assert.Equal(t, []string{order.ID}, profile.OrderHistory)
}
