package services

import (
	"tiffin-marketplace-api/models"
	"tiffin-marketplace-api/store"
)

// AdminService wraps the store with admin-scoped orchestration. Catalog and
// order operations are pass-through; user management keeps the mirrored
// customer profile in sync.
type AdminService struct {
	store *store.Store
}

func NewAdminService(s *store.Store) *AdminService {
	return &AdminService{store: s}
}

// LoginResult is returned by every role's login.
type LoginResult struct {
	Token   string                 `json:"token"`
	Profile map[string]interface{} `json:"profile"`
}

// Login authenticates an admin by email or phone identifier and issues a
// session bound to the admin role.
func (s *AdminService) Login(identifier, password string) (LoginResult, error) {
	user, ok := findByIdentifier(s.store.Users(models.RoleAdmin), identifier)
	if !ok || !checkPassword(user.PasswordHash, password) {
		return LoginResult{}, unauthorized("Invalid credentials")
	}
	session := s.store.CreateSession(user.ID, models.RoleAdmin)
	return LoginResult{
		Token: session.Token,
		Profile: map[string]interface{}{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	}, nil
}

// Logout revokes the token; revoking an unknown token is a no-op.
func (s *AdminService) Logout(token string) {
	s.store.RevokeSession(token)
}

// Authenticate resolves a token to an admin user.
func (s *AdminService) Authenticate(token string) (models.User, error) {
	user, ok := s.store.UserByToken(token, models.RoleAdmin)
	if !ok {
		return models.User{}, unauthorized("Invalid or expired session token")
	}
	return user, nil
}

func (s *AdminService) Tiffins() []models.TiffinMenuItem {
	return s.store.Tiffins()
}

func (s *AdminService) UpsertTiffin(p models.TiffinPatch) models.TiffinMenuItem {
	return s.store.SaveTiffin(p)
}

func (s *AdminService) DeleteTiffin(id string) {
	s.store.DeleteTiffin(id)
}

func (s *AdminService) WeeklyMenu() []models.WeeklyMenuDay {
	return s.store.WeeklyMenu()
}

func (s *AdminService) SetWeeklyMenu(days []models.WeeklyMenuDay) []models.WeeklyMenuDay {
	return s.store.SetWeeklyMenu(days)
}

func (s *AdminService) Plans() []models.MealPlan {
	return s.store.Plans()
}

func (s *AdminService) UpsertPlan(p models.PlanPatch) models.MealPlan {
	return s.store.SavePlan(p)
}

func (s *AdminService) DeletePlan(id string) {
	s.store.DeletePlan(id)
}

func (s *AdminService) Promotions() []models.Promotion {
	return s.store.Promotions()
}

func (s *AdminService) UpsertPromotion(p models.PromotionPatch) models.Promotion {
	return s.store.SavePromotion(p)
}

func (s *AdminService) DeletePromotion(id string) {
	s.store.DeletePromotion(id)
}

func (s *AdminService) Reviews() []models.Review {
	return s.store.Reviews()
}

func (s *AdminService) UpsertReview(p models.ReviewPatch) models.Review {
	return s.store.SaveReview(p)
}

func (s *AdminService) DeleteReview(id string) {
	s.store.DeleteReview(id)
}

func (s *AdminService) Orders() []models.Order {
	return s.store.Orders()
}

// UpdateOrder applies an order patch and keeps the owning customer's history
// list consistent.
func (s *AdminService) UpdateOrder(p models.OrderPatch) models.Order {
	updated := s.store.SaveOrder(p)
	if updated.CustomerID != "" {
		s.store.AddOrderToCustomer(updated.CustomerID, updated.ID)
	}
	return updated
}

func (s *AdminService) Deliveries() []models.Delivery {
	return s.store.Deliveries()
}

func (s *AdminService) UpdateDelivery(p models.DeliveryPatch) models.Delivery {
	return s.store.SaveDelivery(p)
}

func (s *AdminService) PaymentSettings() models.PaymentSettings {
	return s.store.PaymentSettings()
}

func (s *AdminService) UpdatePaymentSettings(p models.PaymentSettingsPatch) models.PaymentSettings {
	return s.store.UpdatePaymentSettings(p)
}

func (s *AdminService) IntegrationSettings() models.IntegrationSettings {
	return s.store.IntegrationSettings()
}

func (s *AdminService) UpdateIntegrationSettings(p models.IntegrationSettingsPatch) models.IntegrationSettings {
	return s.store.UpdateIntegrationSettings(p)
}

func (s *AdminService) Users(role models.UserRole) []models.User {
	return s.store.Users(role)
}

// ManageUserInput is the admin user-creation payload.
type ManageUserInput struct {
	ID       string
	Role     models.UserRole
	Name     string
	Email    string
	Phone    string
	Password string
	Verified *bool
}

// CreateUser creates (or upserts) a user. Role is mandatory. When no password
// is supplied a random one is synthesized. Customer-role users get a mirrored
// profile; both writes happen under the caller's single logical operation.
func (s *AdminService) CreateUser(in ManageUserInput) (models.User, error) {
	if in.Role == "" {
		return models.User{}, badRequest("Role is required")
	}
	if !models.ValidRole(in.Role) {
		return models.User{}, badRequest("Invalid role. Must be: admin, customer, or driver")
	}
	password := in.Password
	if password == "" {
		password = randomPassword()
	}
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, badRequest("Failed to process password")
	}
	verified := false
	if in.Verified != nil {
		verified = *in.Verified
	}
	created := s.store.SaveUser(models.UserPatch{
		ID:           in.ID,
		Role:         &in.Role,
		Name:         &in.Name,
		Email:        &in.Email,
		Phone:        &in.Phone,
		PasswordHash: &hash,
		Verified:     &verified,
	})

	if created.Role == models.RoleCustomer {
		if _, ok := s.store.CustomerByUserID(created.ID); !ok {
			s.store.SaveCustomer(models.CustomerPatch{
				ID:       created.ID,
				UserID:   &created.ID,
				Name:     &created.Name,
				Email:    &created.Email,
				Phone:    &created.Phone,
				Verified: &created.Verified,
			})
		}
	}
	return created, nil
}

// UpdateUserInput carries a partial user update; nil fields are untouched.
type UpdateUserInput struct {
	Role     *models.UserRole
	Name     *string
	Email    *string
	Phone    *string
	Password *string
	Verified *bool
}

// UpdateUser merges the provided fields. Customer-role users have name, email,
// phone and verified propagated to the linked profile. A password change
// revokes every session of that user.
func (s *AdminService) UpdateUser(id string, in UpdateUserInput) (models.User, error) {
	if _, ok := s.store.UserByID(id); !ok {
		return models.User{}, notFound("User not found")
	}
	patch := models.UserPatch{
		ID:       id,
		Role:     in.Role,
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Verified: in.Verified,
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return models.User{}, badRequest("Failed to process password")
		}
		patch.PasswordHash = &hash
	}
	updated := s.store.SaveUser(patch)

	if updated.Role == models.RoleCustomer {
		if profile, ok := s.store.CustomerByUserID(updated.ID); ok {
			s.store.SaveCustomer(models.CustomerPatch{
				ID:       profile.ID,
				UserID:   &updated.ID,
				Name:     in.Name,
				Email:    in.Email,
				Phone:    in.Phone,
				Verified: in.Verified,
			})
		}
	}

	if in.Password != nil {
		s.store.RevokeSessionsForUser(updated.ID)
	}
	return updated, nil
}

// DeleteUser removes a user with its cascades; absent ids surface not-found.
func (s *AdminService) DeleteUser(id string) (models.User, error) {
	removed, ok := s.store.DeleteUser(id)
	if !ok {
		return models.User{}, notFound("User not found")
	}
	return removed, nil
}
