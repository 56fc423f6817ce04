package services

import (
	"time"

	"github.com/google/uuid"

	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/store"
)

const otpValidity = 5 * time.Minute

// CustomerService handles sign-up, OTP verification, login and ordering for
// the customer role, plus the aggregated public storefront data.
type CustomerService struct {
	store *store.Store
}

func NewCustomerService(s *store.Store) *CustomerService {
	return &CustomerService{store: s}
}

type SignUpInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type SignUpResult struct {
	User    models.User            `json:"user"`
	Profile models.CustomerProfile `json:"profile"`
	OtpSent bool                   `json:"otpSent"`
}

// SignUp creates or updates a customer account. An existing user is resolved
// by email first, then phone, so repeat sign-ups never duplicate accounts.
// When a phone is supplied a one-time code is issued; the caller only learns
// that one was sent, delivery is external.
func (s *CustomerService) SignUp(in SignUpInput) (SignUpResult, error) {
	existing, found := s.resolveExisting(in.Email, in.Phone)

	patch := models.UserPatch{Name: &in.Name}
	if in.Email != "" {
		patch.Email = &in.Email
	}
	if in.Phone != "" {
		patch.Phone = &in.Phone
	}
	if in.Password != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return SignUpResult{}, badRequest("Failed to process password")
		}
		patch.PasswordHash = &hash
	}

	if found {
		patch.ID = existing.ID
	} else {
		role := models.RoleCustomer
		patch.Role = &role
		verified := in.Phone != ""
		patch.Verified = &verified
		if patch.PasswordHash == nil {
			hash, err := hashPassword(randomPassword())
			if err != nil {
				return SignUpResult{}, badRequest("Failed to process password")
			}
			patch.PasswordHash = &hash
		}
	}

	saved := s.store.SaveUser(patch)
	profile := s.store.SaveCustomer(models.CustomerPatch{
		ID:       saved.ID,
		UserID:   &saved.ID,
		Name:     &saved.Name,
		Email:    &saved.Email,
		Phone:    &saved.Phone,
		Verified: &saved.Verified,
	})

	otpSent := false
	if in.Phone != "" {
		s.issueOTP(in.Phone)
		otpSent = true
	}
	return SignUpResult{User: saved, Profile: profile, OtpSent: otpSent}, nil
}

func (s *CustomerService) resolveExisting(email, phone string) (models.User, bool) {
	if email != "" {
		if user, ok := s.store.UserByEmail(email); ok {
			return user, true
		}
	}
	if phone != "" {
		if user, ok := s.store.UserByPhone(phone); ok {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *CustomerService) issueOTP(phone string) string {
	code := generateOTPCode()
	s.store.SetOTP(phone, models.OtpEntry{
		Code:      code,
		ExpiresAt: time.Now().Add(otpValidity),
	})
	return code
}

// VerifyOTP consumes the live code for a phone. On success the entry is
// cleared and the matching user (if any) is marked verified, profile included.
func (s *CustomerService) VerifyOTP(phone, code string) error {
	entry, ok := s.store.OTP(phone)
	if !ok || entry.Code != code || time.Now().After(entry.ExpiresAt) {
		return unauthorized("Invalid or expired OTP")
	}
	s.store.ClearOTP(phone)

	if user, ok := s.store.UserByPhone(phone); ok {
		verified := true
		s.store.SaveUser(models.UserPatch{ID: user.ID, Verified: &verified})
		s.store.SaveCustomer(models.CustomerPatch{
			ID:       user.ID,
			UserID:   &user.ID,
			Verified: &verified,
		})
	}
	return nil
}

// Login authenticates a customer by email or phone plus password and issues a
// customer-scoped session.
func (s *CustomerService) Login(email, phone, password string) (LoginResult, error) {
	var user models.User
	var ok bool
	if email != "" {
		user, ok = s.store.UserByEmail(email)
	}
	if !ok && phone != "" {
		user, ok = s.store.UserByPhone(phone)
	}
	if !ok || user.Role != models.RoleCustomer || !checkPassword(user.PasswordHash, password) {
		return LoginResult{}, unauthorized("Invalid credentials")
	}
	session := s.store.CreateSession(user.ID, models.RoleCustomer)
	profile := s.ensureProfile(user)
	return LoginResult{
		Token: session.Token,
		Profile: map[string]interface{}{
			"id":       profile.ID,
			"name":     profile.Name,
			"email":    profile.Email,
			"phone":    profile.Phone,
			"verified": profile.Verified,
		},
	}, nil
}

// ensureProfile guarantees a mirrored profile exists for a customer user.
func (s *CustomerService) ensureProfile(user models.User) models.CustomerProfile {
	if profile, ok := s.store.CustomerByUserID(user.ID); ok {
		return profile
	}
	return s.store.SaveCustomer(models.CustomerPatch{
		ID:       user.ID,
		UserID:   &user.ID,
		Name:     &user.Name,
		Email:    &user.Email,
		Phone:    &user.Phone,
		Verified: &user.Verified,
	})
}

func (s *CustomerService) requireCustomer(token string) (models.User, error) {
	user, ok := s.store.UserByToken(token, models.RoleCustomer)
	if !ok {
		return models.User{}, unauthorized("Invalid session")
	}
	return user, nil
}

type AddressInput struct {
	Label        string
	Street       string
	City         string
	PostalCode   string
	Instructions string
}

// AddAddress appends a new address to the authenticated customer's profile.
func (s *CustomerService) AddAddress(token string, in AddressInput) (models.Address, error) {
	user, err := s.requireCustomer(token)
	if err != nil {
		return models.Address{}, err
	}
	profile := s.ensureProfile(user)
	addr := models.Address{
		ID:           uuid.NewString(),
		Label:        in.Label,
		Street:       in.Street,
		City:         in.City,
		PostalCode:   in.PostalCode,
		Instructions: in.Instructions,
	}
	if !s.store.AddAddress(profile.ID, addr) {
		return models.Address{}, notFound("Customer not found")
	}
	return addr, nil
}

type PlaceOrderInput struct {
	CustomerID      string
	GuestEmail      string
	GuestPhone      string
	TiffinID        string
	PlanID          string
	PaymentMethod   models.PaymentMethod
	Total           float64
	DeliveryAddress *AddressInput
}

// PlaceOrder creates an order. A valid customer session overrides any claimed
// identity in the payload. A supplied delivery address is copied under a fresh
// id and schedules a delivery for the new order.
func (s *CustomerService) PlaceOrder(in PlaceOrderInput, token string) (models.Order, error) {
	if in.TiffinID == "" {
		return models.Order{}, badRequest("Tiffin is required")
	}

	customerID := in.CustomerID
	if token != "" {
		if user, ok := s.store.UserByToken(token, models.RoleCustomer); ok {
			customerID = user.ID
		}
	}

	patch := models.OrderPatch{
		TiffinID: &in.TiffinID,
	}
	if customerID != "" {
		patch.CustomerID = &customerID
	}
	if in.GuestEmail != "" {
		patch.GuestEmail = &in.GuestEmail
	}
	if in.GuestPhone != "" {
		patch.GuestPhone = &in.GuestPhone
	}
	if in.PlanID != "" {
		patch.PlanID = &in.PlanID
	}
	if in.PaymentMethod != "" {
		patch.PaymentMethod = &in.PaymentMethod
	}
	patch.Total = &in.Total
	if in.DeliveryAddress != nil {
		patch.DeliveryAddress = &models.Address{
			ID:           uuid.NewString(),
			Label:        in.DeliveryAddress.Label,
			Street:       in.DeliveryAddress.Street,
			City:         in.DeliveryAddress.City,
			PostalCode:   in.DeliveryAddress.PostalCode,
			Instructions: in.DeliveryAddress.Instructions,
		}
	}

	created := s.store.SaveOrder(patch)
	if created.CustomerID != "" {
		s.store.AddOrderToCustomer(created.CustomerID, created.ID)
	}
	if in.DeliveryAddress != nil {
		status := models.DeliveryScheduled
		now := time.Now()
		s.store.SaveDelivery(models.DeliveryPatch{
			OrderID:      &created.ID,
			Status:       &status,
			ScheduledFor: &now,
		})
	}
	return created, nil
}

// Orders lists the authenticated customer's order history.
func (s *CustomerService) Orders(token string) ([]models.Order, error) {
	user, err := s.requireCustomer(token)
	if err != nil {
		return nil, err
	}
	return s.store.OrdersForCustomer(user.ID), nil
}

// Profile returns the authenticated customer's profile, creating the mirror
// if it is missing.
func (s *CustomerService) Profile(token string) (models.CustomerProfile, error) {
	user, err := s.requireCustomer(token)
	if err != nil {
		return models.CustomerProfile{}, err
	}
	return s.ensureProfile(user), nil
}

// PublicData is the aggregate consumed by the storefront.
type PublicData struct {
	Tiffins         []models.TiffinMenuItem `json:"tiffins"`
	WeeklyMenu      []models.WeeklyMenuDay  `json:"weeklyMenu"`
	Plans           []models.MealPlan       `json:"plans"`
	Promotions      []models.Promotion      `json:"promotions"`
	Reviews         []models.Review         `json:"reviews"`
	PaymentSettings models.PaymentSettings  `json:"paymentSettings"`
}

// GetPublicData aggregates the storefront data. The payment settings secret
// key never leaves the admin surface.
func (s *CustomerService) GetPublicData() PublicData {
	return PublicData{
		Tiffins:         s.store.Tiffins(),
		WeeklyMenu:      s.store.WeeklyMenu(),
		Plans:           s.store.Plans(),
		Promotions:      s.store.Promotions(),
		Reviews:         s.store.Reviews(),
		PaymentSettings: PublicPaymentSettings(s.store),
	}
}

// PublicPaymentSettings returns the payment settings with the processor
// secret redacted for unauthenticated consumers.
func PublicPaymentSettings(s *store.Store) models.PaymentSettings {
	settings := s.PaymentSettings()
	settings.ProcessorSecretKey = ""
	return settings
}
