package store

import (
	"github.com/google/uuid"

	"tiffin-marketplace-api/models"
)

func cloneTiffin(t *models.TiffinMenuItem) models.TiffinMenuItem {
	out := *t
	out.ItemsIncluded = copyStrings(t.ItemsIncluded)
	return out
}

// Tiffins returns all tiffins in insertion order.
func (s *Store) Tiffins() []models.TiffinMenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.tiffins.all()
	out := make([]models.TiffinMenuItem, 0, len(items))
	for _, t := range items {
		out = append(out, cloneTiffin(t))
	}
	return out
}

func (s *Store) TiffinByID(id string) (models.TiffinMenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tiffins.get(id)
	if !ok {
		return models.TiffinMenuItem{}, false
	}
	return cloneTiffin(t), true
}

// SaveTiffin upserts: an existing id is merged field by field, otherwise a new
// record is created with a fresh id and documented defaults.
func (s *Store) SaveTiffin(p models.TiffinPatch) models.TiffinMenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID != "" {
		if existing, ok := s.tiffins.get(p.ID); ok {
			applyTiffinPatch(existing, p)
			return cloneTiffin(existing)
		}
	}
	created := &models.TiffinMenuItem{
		ID:            uuid.NewString(),
		Name:          "Untitled Tiffin",
		ItemsIncluded: []string{},
	}
	applyTiffinPatch(created, p)
	s.tiffins.put(created.ID, created)
	return cloneTiffin(created)
}

func applyTiffinPatch(t *models.TiffinMenuItem, p models.TiffinPatch) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.ImageURL != nil {
		t.ImageURL = *p.ImageURL
	}
	if p.ItemsIncluded != nil {
		t.ItemsIncluded = copyStrings(*p.ItemsIncluded)
	}
}

// DeleteTiffin removes the tiffin and every weekly menu entry referencing it.
// Deleting an unknown id is a no-op; the caller decides whether that matters.
func (s *Store) DeleteTiffin(id string) (models.TiffinMenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed, ok := s.tiffins.remove(id)
	if !ok {
		return models.TiffinMenuItem{}, false
	}
	kept := s.weeklyMenu[:0]
	for _, day := range s.weeklyMenu {
		if day.TiffinID != id {
			kept = append(kept, day)
		}
	}
	s.weeklyMenu = kept
	return cloneTiffin(removed), true
}

// WeeklyMenu returns a copy of the current weekly menu.
func (s *Store) WeeklyMenu() []models.WeeklyMenuDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WeeklyMenuDay, len(s.weeklyMenu))
	copy(out, s.weeklyMenu)
	return out
}

// SetWeeklyMenu replaces the menu wholesale; entries are never merged.
func (s *Store) SetWeeklyMenu(days []models.WeeklyMenuDay) []models.WeeklyMenuDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weeklyMenu = make([]models.WeeklyMenuDay, len(days))
	copy(s.weeklyMenu, days)
	out := make([]models.WeeklyMenuDay, len(s.weeklyMenu))
	copy(out, s.weeklyMenu)
	return out
}

func clonePlan(p *models.MealPlan) models.MealPlan {
	out := *p
	out.Perks = copyStrings(p.Perks)
	return out
}

func (s *Store) Plans() []models.MealPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.plans.all()
	out := make([]models.MealPlan, 0, len(items))
	for _, p := range items {
		out = append(out, clonePlan(p))
	}
	return out
}

func (s *Store) SavePlan(p models.PlanPatch) models.MealPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID != "" {
		if existing, ok := s.plans.get(p.ID); ok {
			applyPlanPatch(existing, p)
			return clonePlan(existing)
		}
	}
	created := &models.MealPlan{
		ID:           uuid.NewString(),
		Name:         "Custom Plan",
		BillingCycle: models.CycleMonthly,
		Perks:        []string{},
	}
	applyPlanPatch(created, p)
	s.plans.put(created.ID, created)
	return clonePlan(created)
}

func applyPlanPatch(plan *models.MealPlan, p models.PlanPatch) {
	if p.Name != nil {
		plan.Name = *p.Name
	}
	if p.BillingCycle != nil {
		plan.BillingCycle = *p.BillingCycle
	}
	if p.Price != nil {
		plan.Price = *p.Price
	}
	if p.Description != nil {
		plan.Description = *p.Description
	}
	if p.Perks != nil {
		plan.Perks = copyStrings(*p.Perks)
	}
}

func (s *Store) DeletePlan(id string) (models.MealPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed, ok := s.plans.remove(id)
	if !ok {
		return models.MealPlan{}, false
	}
	return clonePlan(removed), true
}

func (s *Store) Promotions() []models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.promotions.all()
	out := make([]models.Promotion, 0, len(items))
	for _, p := range items {
		out = append(out, *p)
	}
	return out
}

func (s *Store) SavePromotion(p models.PromotionPatch) models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID != "" {
		if existing, ok := s.promotions.get(p.ID); ok {
			applyPromotionPatch(existing, p)
			return *existing
		}
	}
	created := &models.Promotion{
		ID:     uuid.NewString(),
		Title:  "New Promotion",
		Active: true,
	}
	applyPromotionPatch(created, p)
	s.promotions.put(created.ID, created)
	return *created
}

func applyPromotionPatch(promo *models.Promotion, p models.PromotionPatch) {
	if p.Title != nil {
		promo.Title = *p.Title
	}
	if p.Description != nil {
		promo.Description = *p.Description
	}
	if p.DiscountPercent != nil {
		promo.DiscountPercent = *p.DiscountPercent
	}
	if p.ValidUntil != nil {
		promo.ValidUntil = *p.ValidUntil
	}
	if p.Active != nil {
		promo.Active = *p.Active
	}
}

func (s *Store) DeletePromotion(id string) (models.Promotion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed, ok := s.promotions.remove(id)
	if !ok {
		return models.Promotion{}, false
	}
	return *removed, true
}
