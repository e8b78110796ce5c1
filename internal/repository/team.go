package repository

import (
	"glass-connect-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team and links it to its labs. The labs themselves are
// never written.
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Omit("Labs.*").Create(team).Error
}

// GetByID retrieves a team by ID with its labs
func (r *TeamRepository) GetByID(id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Labs", orderLabs).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves teams matching the filter with pagination
func (r *TeamRepository) List(filter TeamFilter, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.Model(&models.Team{})
	if filter.VisibleOnly {
		query = query.Where("teams.is_visible = ?", true)
	}
	if filter.Query != "" {
		query = query.Where("teams.name ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.LabID > 0 {
		query = query.Where("EXISTS (SELECT 1 FROM team_labs tl WHERE tl.team_id = teams.id AND tl.lab_id = ?)", filter.LabID)
	}
	if filter.OwnerUserID != nil {
		query = query.Where("teams.owner_user_id = ?", *filter.OwnerUserID)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("Labs", orderLabs).
		Order("teams.name ASC").Order("teams.id ASC").
		Limit(limit).Offset(offset).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update replaces a team record and its lab links
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Labs").Save(team).Error; err != nil {
			return err
		}
		return tx.Model(team).Omit("Labs.*").Association("Labs").Replace(team.Labs)
	})
}

// Delete deletes a team and its lab links
func (r *TeamRepository) Delete(id int64) error {
	team := models.Team{BaseModel: models.BaseModel{ID: id}}
	result := r.db.Select("Labs").Delete(&team)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func orderLabs(db *gorm.DB) *gorm.DB {
	return db.Order("labs.id ASC")
}
