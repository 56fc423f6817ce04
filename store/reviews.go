package store

import (
	"time"

	"github.com/google/uuid"

	"tiffin-marketplace-api/models"
)

func (s *Store) Reviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.reviews.all()
	out := make([]models.Review, 0, len(items))
	for _, r := range items {
		out = append(out, *r)
	}
	return out
}

// SaveReview upserts a review. New reviews default to an anonymous five-star
// in-app entry stamped now.
func (s *Store) SaveReview(p models.ReviewPatch) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID != "" {
		if existing, ok := s.reviews.get(p.ID); ok {
			applyReviewPatch(existing, p)
			return *existing
		}
	}
	created := &models.Review{
		ID:        uuid.NewString(),
		Author:    "Anonymous",
		Rating:    5,
		Source:    models.SourceInApp,
		CreatedAt: time.Now(),
	}
	applyReviewPatch(created, p)
	s.reviews.put(created.ID, created)
	return *created
}

func applyReviewPatch(r *models.Review, p models.ReviewPatch) {
	if p.Author != nil {
		r.Author = *p.Author
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
	if p.CreatedAt != nil {
		r.CreatedAt = *p.CreatedAt
	}
	if p.Source != nil {
		r.Source = *p.Source
	}
}

func (s *Store) DeleteReview(id string) (models.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed, ok := s.reviews.remove(id)
	if !ok {
		return models.Review{}, false
	}
	return *removed, true
}
