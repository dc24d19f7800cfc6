// Package itineraries provides database operations for student study plans.
//
// # Usage
//
//	repo := itineraries.NewRepository(db)
//	plans, err := repo.GetItinerariesForStudent(ctx, "s1")
package itineraries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/reforco/internal/database/dberrors"
	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/validation"
)

// Repository handles all itinerary database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new itineraries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetItinerariesForStudent returns a student's itineraries, most recent first.
func (r *Repository) GetItinerariesForStudent(ctx context.Context, studentID string) ([]entities.Itinerary, error) {
	itineraries := []entities.Itinerary{}
	err := r.db.WithContext(ctx).
		Where("studentId = ?", studentID).
		Order("createdDate DESC").
		Find(&itineraries).Error
	return itineraries, err
}

// GetItineraryByID retrieves an itinerary by ID.
func (r *Repository) GetItineraryByID(ctx context.Context, id string) (*entities.Itinerary, error) {
	var itinerary entities.Itinerary
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&itinerary).Error; err != nil {
		return nil, dberrors.Translate(err, "itinerary "+id)
	}
	return &itinerary, nil
}

// AddItinerary inserts a new itinerary. An existing ID yields dberrors.ErrDuplicateKey.
func (r *Repository) AddItinerary(ctx context.Context, itinerary *entities.Itinerary) error {
	if err := validation.Struct("itinerary", itinerary); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return fmt.Errorf("add itinerary: %w", dberrors.Translate(err, "itinerary "+itinerary.ID))
	}
	return nil
}

// UpdateItinerary rewrites title, instructions and attachment. StudentID and
// CreatedDate are never changed. It returns the number of rows matched.
func (r *Repository) UpdateItinerary(ctx context.Context, itinerary *entities.Itinerary) (int64, error) {
	if itinerary.ID == "" {
		return 0, validation.Field("itinerary", "id", "required")
	}

	result := r.db.WithContext(ctx).Model(&entities.Itinerary{}).
		Where("id = ?", itinerary.ID).
		Updates(map[string]any{
			"title":             itinerary.Title,
			"instructions":      itinerary.Instructions,
			"attachmentName":    itinerary.AttachmentName,
			"attachmentContent": itinerary.AttachmentContent,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("update itinerary %s: %w", itinerary.ID, result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteItinerary removes one itinerary and returns the number of rows removed.
func (r *Repository) DeleteItinerary(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Itinerary{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete itinerary %s: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}
