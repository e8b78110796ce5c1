package repository

import (
	"glass-connect-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OfferProfileRepository handles database operations for lab offer profiles
type OfferProfileRepository struct {
	db *gorm.DB
}

// Ensure OfferProfileRepository implements OfferProfileRepositoryInterface
var _ OfferProfileRepositoryInterface = (*OfferProfileRepository)(nil)

// NewOfferProfileRepository creates a new offer profile repository
func NewOfferProfileRepository(db *gorm.DB) *OfferProfileRepository {
	return &OfferProfileRepository{db: db}
}

// GetByLabID retrieves the offer profile of a lab
func (r *OfferProfileRepository) GetByLabID(labID int64) (*models.LabOfferProfile, error) {
	var profile models.LabOfferProfile
	err := r.db.First(&profile, "lab_id = ?", labID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert inserts the profile or replaces the stored one for the same lab.
// The stored created_at is kept.
func (r *OfferProfileRepository) Upsert(profile *models.LabOfferProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lab_id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

// Delete removes the offer profile of a lab
func (r *OfferProfileRepository) Delete(labID int64) error {
	result := r.db.Delete(&models.LabOfferProfile{}, "lab_id = ?", labID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
