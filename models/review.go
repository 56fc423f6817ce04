package models

import "time"

type ReviewSource string

const (
	SourceGoogle ReviewSource = "google"
	SourceInApp  ReviewSource = "in-app"
)

// Review is a standalone entity with no cascade relations.
type Review struct {
	ID        string       `json:"id"`
	Author    string       `json:"author"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"createdAt"`
	Source    ReviewSource `json:"source"`
}

type ReviewPatch struct {
	ID        string
	Author    *string
	Rating    *int
	Comment   *string
	CreatedAt *time.Time
	Source    *ReviewSource
}
