package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tiffin-marketplace-api/models"
)

// Users returns all users, optionally filtered by role (empty role means all).
func (s *Store) Users(role models.UserRole) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.User
	for _, u := range s.users.all() {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	return out
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users.get(id)
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

// UserByEmail resolves a user by case-insensitive email. First match wins;
// email uniqueness is a lookup convention, not a hard constraint.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users.all() {
		if u.Email != "" && strings.EqualFold(u.Email, email) {
			return *u, true
		}
	}
	return models.User{}, false
}

func (s *Store) UserByPhone(phone string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users.all() {
		if u.Phone != "" && u.Phone == phone {
			return *u, true
		}
	}
	return models.User{}, false
}

// SaveUser upserts a user record. New users get a fresh id and a creation
// timestamp of now; the caller is responsible for supplying a role and a
// password hash.
func (s *Store) SaveUser(p models.UserPatch) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID != "" {
		if existing, ok := s.users.get(p.ID); ok {
			applyUserPatch(existing, p)
			return *existing
		}
	}
	created := &models.User{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	applyUserPatch(created, p)
	s.users.put(created.ID, created)
	return *created
}

func applyUserPatch(u *models.User, p models.UserPatch) {
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Verified != nil {
		u.Verified = *p.Verified
	}
}

// DeleteUser removes the user and runs the role-specific cascades: customer
// profiles keyed by the user id are removed and their orders orphaned; a
// driver's deliveries are unassigned but kept. The user's sessions are always
// revoked.
func (s *Store) DeleteUser(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed, ok := s.users.remove(id)
	if !ok {
		return models.User{}, false
	}
	switch removed.Role {
	case models.RoleCustomer:
		for _, profile := range s.customers.all() {
			if profile.ID == id || profile.UserID == id {
				s.customers.remove(profile.ID)
			}
		}
		s.clearCustomerFromOrders(id)
	case models.RoleDriver:
		s.clearDriverFromDeliveries(id)
	}
	s.revokeSessionsForUserLocked(id)
	return *removed, true
}

func cloneCustomer(c *models.CustomerProfile) models.CustomerProfile {
	out := *c
	out.Addresses = make([]models.Address, len(c.Addresses))
	copy(out.Addresses, c.Addresses)
	out.OrderHistory = copyStrings(c.OrderHistory)
	return out
}

func (s *Store) Customers() []models.CustomerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.customers.all()
	out := make([]models.CustomerProfile, 0, len(items))
	for _, c := range items {
		out = append(out, cloneCustomer(c))
	}
	return out
}

// CustomerByUserID resolves the profile mirroring a user, accepting legacy
// profiles where the profile id doubles as the user id.
func (s *Store) CustomerByUserID(userID string) (models.CustomerProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customerByUserIDLocked(userID)
	if !ok {
		return models.CustomerProfile{}, false
	}
	return cloneCustomer(c), true
}

func (s *Store) customerByUserIDLocked(userID string) (*models.CustomerProfile, bool) {
	if c, ok := s.customers.get(userID); ok {
		return c, true
	}
	for _, c := range s.customers.all() {
		if c.UserID == userID {
			return c, true
		}
	}
	return nil, false
}

// SaveCustomer upserts a profile. A provided id is honoured on create so
// profiles can be keyed by their user id.
func (s *Store) SaveCustomer(p models.CustomerPatch) models.CustomerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID != "" {
		if existing, ok := s.customers.get(p.ID); ok {
			applyCustomerPatch(existing, p)
			return cloneCustomer(existing)
		}
	}
	created := &models.CustomerProfile{
		ID:           p.ID,
		Name:         "Guest",
		Addresses:    []models.Address{},
		OrderHistory: []string{},
	}
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	applyCustomerPatch(created, p)
	s.customers.put(created.ID, created)
	return cloneCustomer(created)
}

func applyCustomerPatch(c *models.CustomerProfile, p models.CustomerPatch) {
	if p.UserID != nil {
		c.UserID = *p.UserID
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Verified != nil {
		c.Verified = *p.Verified
	}
	if p.Addresses != nil {
		c.Addresses = make([]models.Address, len(*p.Addresses))
		copy(c.Addresses, *p.Addresses)
	}
	if p.OrderHistory != nil {
		c.OrderHistory = copyStrings(*p.OrderHistory)
	}
}

// AddAddress appends an address to a profile. Addresses are created here and
// never independently mutated afterwards.
func (s *Store) AddAddress(customerID string, addr models.Address) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customerByUserIDLocked(customerID)
	if !ok {
		return false
	}
	c.Addresses = append(c.Addresses, addr)
	return true
}

// AddOrderToCustomer appends an order id to the profile's history,
// de-duplicating on append. Unknown customers are a silent no-op.
func (s *Store) AddOrderToCustomer(customerID, orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customerByUserIDLocked(customerID)
	if !ok {
		return
	}
	for _, existing := range c.OrderHistory {
		if existing == orderID {
			return
		}
	}
	c.OrderHistory = append(c.OrderHistory, orderID)
}
