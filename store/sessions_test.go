package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffin-marketplace-api/models"
)

func TestSessionResolvesUser(t *testing.T) {
	s := New()
	user := newCustomerUser(t, s, "Asha", "asha@example.com")

	session := s.CreateSession(user.ID, models.RoleCustomer)
	require.NotEmpty(t, session.Token)

	resolved, ok := s.UserByToken(session.Token, models.RoleCustomer)
	require.True(t, ok)
	assert.Equal(t, user.ID, resolved.ID)

	// empty expected role accepts any session
	resolved, ok = s.UserByToken(session.Token, "")
	require.True(t, ok)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestSessionRoleScoping(t *testing.T) {
	s := New()
	user := newCustomerUser(t, s, "Asha", "asha@example.com")

	session := s.CreateSession(user.ID, models.RoleCustomer)

	_, ok := s.UserByToken(session.Token, models.RoleDriver)
	assert.False(t, ok)

	_, ok = s.UserByToken(session.Token, models.RoleCustomer)
	assert.True(t, ok)
}

func TestSessionRoleFrozenAtCreation(t *testing.T) {
	s := New()
	user := newCustomerUser(t, s, "Asha", "asha@example.com")
	session := s.CreateSession(user.ID, models.RoleCustomer)

	// promoting the user later must not re-scope the old token
	role := models.RoleAdmin
	s.SaveUser(models.UserPatch{ID: user.ID, Role: &role})

	_, ok := s.UserByToken(session.Token, models.RoleAdmin)
	assert.False(t, ok)
	_, ok = s.UserByToken(session.Token, models.RoleCustomer)
	assert.True(t, ok)
}

func TestRevokeSessionIsIdempotent(t *testing.T) {
	s := New()
	user := newCustomerUser(t, s, "Asha", "asha@example.com")
	session := s.CreateSession(user.ID, models.RoleCustomer)

	s.RevokeSession(session.Token)
	_, ok := s.UserByToken(session.Token, models.RoleCustomer)
	assert.False(t, ok)

	// revoking again is a no-op
	s.RevokeSession(session.Token)
}

func TestRevokeSessionsForUser(t *testing.T) {
	s := New()
	user := newCustomerUser(t, s, "Asha", "asha@example.com")
	other := newCustomerUser(t, s, "Benoit", "benoit@example.com")

	first := s.CreateSession(user.ID, models.RoleCustomer)
	second := s.CreateSession(user.ID, models.RoleCustomer)
	kept := s.CreateSession(other.ID, models.RoleCustomer)

	s.RevokeSessionsForUser(user.ID)

	_, ok := s.UserByToken(first.Token, models.RoleCustomer)
	assert.False(t, ok)
	_, ok = s.UserByToken(second.Token, models.RoleCustomer)
	assert.False(t, ok)
	_, ok = s.UserByToken(kept.Token, models.RoleCustomer)
	assert.True(t, ok)
}

func TestOTPOverwrite(t *testing.T) {
	s := New()
	expires := time.Now().Add(5 * time.Minute)

	s.SetOTP("+14165550000", models.OtpEntry{Code: "111111", ExpiresAt: expires})
	s.SetOTP("+14165550000", models.OtpEntry{Code: "222222", ExpiresAt: expires})

	entry, ok := s.OTP("+14165550000")
	require.True(t, ok)
	assert.Equal(t, "222222", entry.Code)

	s.ClearOTP("+14165550000")
	_, ok = s.OTP("+14165550000")
	assert.False(t, ok)
}

func TestPaymentSettingsPartialMerge(t *testing.T) {
	s := New()

	initial := s.PaymentSettings()
	assert.True(t, initial.AllowCashOnDelivery)
	assert.Equal(t, "Stripe", initial.CreditCardProcessor)

	updated := s.UpdatePaymentSettings(models.PaymentSettingsPatch{
		AllowInterac: boolPtr(false),
	})
	assert.False(t, updated.AllowInterac)
	assert.True(t, updated.AllowCashOnDelivery)
	assert.Equal(t, "Stripe", updated.CreditCardProcessor)
}

func TestIntegrationSettingsPartialMerge(t *testing.T) {
	s := New()

	updated := s.UpdateIntegrationSettings(models.IntegrationSettingsPatch{
		GooglePlaceID: strPtr("place-123"),
	})
	assert.Equal(t, "place-123", updated.GooglePlaceID)
	assert.False(t, updated.EnableReviewSync)

	updated = s.UpdateIntegrationSettings(models.IntegrationSettingsPatch{
		EnableReviewSync: boolPtr(true),
	})
	assert.Equal(t, "place-123", updated.GooglePlaceID)
	assert.True(t, updated.EnableReviewSync)
}
