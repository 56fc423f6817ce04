package models

// PaymentSettings is a singleton configuration record; updates are partial
// merges, never wholesale replacement.
type PaymentSettings struct {
	AllowCashOnDelivery  bool   `json:"allowCashOnDelivery"`
	AllowCreditCard      bool   `json:"allowCreditCard"`
	AllowInterac         bool   `json:"allowInterac"`
	CreditCardProcessor  string `json:"creditCardProcessor,omitempty"`
	ProcessorPublicKey   string `json:"processorPublicKey,omitempty"`
	ProcessorSecretKey   string `json:"processorSecretKey,omitempty"`
	InteracRecipientMail string `json:"interacRecipientEmail,omitempty"`
	Notes                string `json:"notes,omitempty"`
}

type PaymentSettingsPatch struct {
	AllowCashOnDelivery  *bool
	AllowCreditCard      *bool
	AllowInterac         *bool
	CreditCardProcessor  *string
	ProcessorPublicKey   *string
	ProcessorSecretKey   *string
	InteracRecipientMail *string
	Notes                *string
}

type IntegrationSettings struct {
	GoogleBusinessProfileURL string `json:"googleBusinessProfileUrl,omitempty"`
	GooglePlaceID            string `json:"googlePlaceId,omitempty"`
	EnableReviewSync         bool   `json:"enableReviewSync"`
}

type IntegrationSettingsPatch struct {
	GoogleBusinessProfileURL *string
	GooglePlaceID            *string
	EnableReviewSync         *bool
}
