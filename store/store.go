// Package store owns every entity collection and the singleton settings
// records. All mutation and lookup goes through Store methods; callers always
// receive copies, never references into live storage. A single mutex guards
// the whole store so multi-step cascades stay atomic under Gin's per-request
// goroutines.
package store

import (
	"sync"

	"tiffin-marketplace-api/models"
)

type Store struct {
	mu sync.Mutex

	users      *collection[models.User]
	customers  *collection[models.CustomerProfile]
	tiffins    *collection[models.TiffinMenuItem]
	plans      *collection[models.MealPlan]
	promotions *collection[models.Promotion]
	orders     *collection[models.Order]
	deliveries *collection[models.Delivery]
	reviews    *collection[models.Review]

	weeklyMenu []models.WeeklyMenuDay

	paymentSettings     models.PaymentSettings
	integrationSettings models.IntegrationSettings

	sessions map[string]*models.Session
	otps     map[string]models.OtpEntry
}

// New returns an empty store with default settings. The store's lifetime is
// the caller's concern: the process in production, a fixture in tests.
func New() *Store {
	return &Store{
		users:      newCollection[models.User](),
		customers:  newCollection[models.CustomerProfile](),
		tiffins:    newCollection[models.TiffinMenuItem](),
		plans:      newCollection[models.MealPlan](),
		promotions: newCollection[models.Promotion](),
		orders:     newCollection[models.Order](),
		deliveries: newCollection[models.Delivery](),
		reviews:    newCollection[models.Review](),
		paymentSettings: models.PaymentSettings{
			AllowCashOnDelivery: true,
			AllowCreditCard:     true,
			AllowInterac:        true,
			CreditCardProcessor: "Stripe",
			Notes:               "Configure payment processors from the admin settings panel.",
		},
		integrationSettings: models.IntegrationSettings{},
		sessions:            make(map[string]*models.Session),
		otps:                make(map[string]models.OtpEntry),
	}
}

// PaymentSettings returns a copy of the payment settings singleton.
func (s *Store) PaymentSettings() models.PaymentSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentSettings
}

// UpdatePaymentSettings merges the provided fields into the singleton; absent
// fields keep their stored values.
func (s *Store) UpdatePaymentSettings(p models.PaymentSettingsPatch) models.PaymentSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.AllowCashOnDelivery != nil {
		s.paymentSettings.AllowCashOnDelivery = *p.AllowCashOnDelivery
	}
	if p.AllowCreditCard != nil {
		s.paymentSettings.AllowCreditCard = *p.AllowCreditCard
	}
	if p.AllowInterac != nil {
		s.paymentSettings.AllowInterac = *p.AllowInterac
	}
	if p.CreditCardProcessor != nil {
		s.paymentSettings.CreditCardProcessor = *p.CreditCardProcessor
	}
	if p.ProcessorPublicKey != nil {
		s.paymentSettings.ProcessorPublicKey = *p.ProcessorPublicKey
	}
	if p.ProcessorSecretKey != nil {
		s.paymentSettings.ProcessorSecretKey = *p.ProcessorSecretKey
	}
	if p.InteracRecipientMail != nil {
		s.paymentSettings.InteracRecipientMail = *p.InteracRecipientMail
	}
	if p.Notes != nil {
		s.paymentSettings.Notes = *p.Notes
	}
	return s.paymentSettings
}

func (s *Store) IntegrationSettings() models.IntegrationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.integrationSettings
}

func (s *Store) UpdateIntegrationSettings(p models.IntegrationSettingsPatch) models.IntegrationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.GoogleBusinessProfileURL != nil {
		s.integrationSettings.GoogleBusinessProfileURL = *p.GoogleBusinessProfileURL
	}
	if p.GooglePlaceID != nil {
		s.integrationSettings.GooglePlaceID = *p.GooglePlaceID
	}
	if p.EnableReviewSync != nil {
		s.integrationSettings.EnableReviewSync = *p.EnableReviewSync
	}
	return s.integrationSettings
}

func copyStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
