package models

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/food-finder/api-go/types"
)

// PlaceEnrichment is one cached synthetic review set, keyed by the
// provider's place identifier so repeat enrichment of the same place is
// reproducible across searches.
type PlaceEnrichment struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	PlaceID     string         `json:"placeId" gorm:"uniqueIndex;not null"`
	Name        string         `json:"name"`
	Categories  pq.StringArray `json:"categories" gorm:"type:text[]"`
	Reviews     string         `json:"reviews" gorm:"type:text;not null"`
	ReviewCount int            `json:"reviewCount" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// EnrichmentStore implements the places.ReviewStore interface over the
// database. First-time enrichment of the same place by two callers may
// double-write; the upsert makes the last write win.
type EnrichmentStore struct {
	DB *gorm.DB
}

func NewEnrichmentStore(db *gorm.DB) *EnrichmentStore {
	return &EnrichmentStore{DB: db}
}

func (s *EnrichmentStore) GetReviews(ctx context.Context, placeID string) ([]types.Review, bool, error) {
	var record PlaceEnrichment
	err := s.DB.WithContext(ctx).Where("place_id = ?", placeID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var reviews []types.Review
	if err := json.Unmarshal([]byte(record.Reviews), &reviews); err != nil {
		return nil, false, err
	}
	return reviews, true, nil
}

func (s *EnrichmentStore) PutReviews(ctx context.Context, place types.Place, reviews []types.Review) error {
	payload, err := json.Marshal(reviews)
	if err != nil {
		return err
	}

	record := PlaceEnrichment{
		PlaceID:     place.ID,
		Name:        place.Name,
		Categories:  pq.StringArray(place.Categories),
		Reviews:     string(payload),
		ReviewCount: len(reviews),
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "place_id"}},
			UpdateAll: true,
		}).
		Create(&record).Error
}
