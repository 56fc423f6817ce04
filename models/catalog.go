package models

type TiffinMenuItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	ItemsIncluded []string `json:"itemsIncluded"`
}

type TiffinPatch struct {
	ID            string
	Name          *string
	Description   *string
	Price         *float64
	ImageURL      *string
	ItemsIncluded *[]string
}

// WeeklyMenuDay assigns one tiffin to one day of the week. The weekly menu is
// a set of these pairs, replaced wholesale on update.
type WeeklyMenuDay struct {
	Day      string `json:"day"`
	TiffinID string `json:"tiffinId"`
}

// BillingCycle is a meal plan's recurring cadence
type BillingCycle string

const (
	CycleDaily   BillingCycle = "daily"
	CycleWeekly  BillingCycle = "weekly"
	CycleMonthly BillingCycle = "monthly"
)

type MealPlan struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	BillingCycle BillingCycle `json:"billingCycle"`
	Price        float64      `json:"price"`
	Description  string       `json:"description"`
	Perks        []string     `json:"perks"`
}

type PlanPatch struct {
	ID           string
	Name         *string
	BillingCycle *BillingCycle
	Price        *float64
	Description  *string
	Perks        *[]string
}

type Promotion struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discountPercent"`
	ValidUntil      string  `json:"validUntil,omitempty"`
	Active          bool    `json:"active"`
}

type PromotionPatch struct {
	ID              string
	Title           *string
	Description     *string
	DiscountPercent *float64
	ValidUntil      *string
	Active          *bool
}
