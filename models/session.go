package models

import "time"

// Session is a bearer capability: any holder of Token acts as UserID. Role is
// copied from the user at creation so a later role change never re-scopes an
// already-issued token. Sessions have no time expiry; they die on logout or
// password change.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// OtpEntry is a one-time code keyed by phone number. At most one live entry
// per phone; issuing a new code overwrites the prior one.
type OtpEntry struct {
	Code      string
	ExpiresAt time.Time
}
