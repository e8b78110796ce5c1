package repository

import (
	"glass-connect-backend/internal/database/models"

	"gorm.io/gorm"
)

// LabRepository handles database operations for labs
type LabRepository struct {
	db *gorm.DB
}

// Ensure LabRepository implements LabRepositoryInterface
var _ LabRepositoryInterface = (*LabRepository)(nil)

// NewLabRepository creates a new lab repository
func NewLabRepository(db *gorm.DB) *LabRepository {
	return &LabRepository{db: db}
}

// Create creates a new lab
func (r *LabRepository) Create(lab *models.Lab) error {
	return r.db.Omit("OfferProfile").Create(lab).Error
}

// GetByID retrieves a lab by ID
func (r *LabRepository) GetByID(id int64) (*models.Lab, error) {
	var lab models.Lab
	err := r.db.First(&lab, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lab, nil
}

// GetByIDs retrieves the labs with the given IDs, ordered by ID
func (r *LabRepository) GetByIDs(ids []int64) ([]models.Lab, error) {
	if len(ids) == 0 {
		return []models.Lab{}, nil
	}
	var labs []models.Lab
	if err := r.db.Where("id IN ?", ids).Order("id ASC").Find(&labs).Error; err != nil {
		return nil, err
	}
	return labs, nil
}

// List retrieves labs matching the filter with pagination
func (r *LabRepository) List(filter LabFilter, limit, offset int) ([]models.Lab, int64, error) {
	var labs []models.Lab
	var total int64

	query := r.db.Model(&models.Lab{})
	if filter.VisibleOnly {
		query = query.Where("is_visible = ?", true)
	}
	if filter.Query != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.Status != "" {
		query = query.Where("lab_status = ?", filter.Status)
	}
	if filter.ErcCode != "" {
		query = query.Where("? = ANY(erc_discipline_codes)", filter.ErcCode)
	}
	if filter.OwnerUserID != nil {
		query = query.Where("owner_user_id = ?", *filter.OwnerUserID)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("name ASC").Order("id ASC").Limit(limit).Offset(offset).Find(&labs).Error
	if err != nil {
		return nil, 0, err
	}

	return labs, total, nil
}

// Update replaces a lab record
func (r *LabRepository) Update(lab *models.Lab) error {
	return r.db.Omit("OfferProfile").Save(lab).Error
}

// Delete deletes a lab together with its offer profile and team links
func (r *LabRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.LabOfferProfile{}, "lab_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM team_labs WHERE lab_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Lab{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
