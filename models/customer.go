package models

// Address is a sub-record owned by exactly one CustomerProfile. It gets its
// own id on append and is never independently mutated afterwards.
type Address struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Instructions string `json:"instructions,omitempty"`
}

// CustomerProfile mirrors a customer-role User. UserID is a back-reference,
// not an ownership link: legacy profiles exist where ID == UserID.
type CustomerProfile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Verified     bool      `json:"verified"`
	Addresses    []Address `json:"addresses"`
	OrderHistory []string  `json:"orderHistory"`
}

type CustomerPatch struct {
	ID           string
	UserID       *string
	Name         *string
	Email        *string
	Phone        *string
	Verified     *bool
	Addresses    *[]Address
	OrderHistory *[]string
}
