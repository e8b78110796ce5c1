package repository

import (
	"glass-connect-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaxonomyRepository handles database operations for reference vocabularies
type TaxonomyRepository struct {
	db *gorm.DB
}

// Ensure TaxonomyRepository implements TaxonomyRepositoryInterface
var _ TaxonomyRepositoryInterface = (*TaxonomyRepository)(nil)

// NewTaxonomyRepository creates a new taxonomy repository
func NewTaxonomyRepository(db *gorm.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// ListOfferOptions retrieves offer options ordered by group, sort order and code
func (r *TaxonomyRepository) ListOfferOptions(group string, activeOnly bool) ([]models.LabOfferTaxonomyOption, error) {
	var options []models.LabOfferTaxonomyOption
	query := r.db.Model(&models.LabOfferTaxonomyOption{})
	if group != "" {
		query = query.Where("option_group = ?", group)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("option_group ASC").Order("sort_order ASC").Order("code ASC").Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

// GetOfferOption retrieves one offer option by group and code
func (r *TaxonomyRepository) GetOfferOption(group, code string) (*models.LabOfferTaxonomyOption, error) {
	var option models.LabOfferTaxonomyOption
	err := r.db.First(&option, "option_group = ? AND code = ?", group, code).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

// UpsertOfferOption inserts an offer option or updates the one with the same
// group and code
func (r *TaxonomyRepository) UpsertOfferOption(option *models.LabOfferTaxonomyOption) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "option_group"}, {Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"label_en", "label_fr", "is_active", "sort_order", "updated_at"}),
	}).Create(option).Error
}

// ListErcDisciplines retrieves ERC panels in panel order, optionally for one domain
func (r *TaxonomyRepository) ListErcDisciplines(domain string) ([]models.ErcDisciplineOption, error) {
	var options []models.ErcDisciplineOption
	query := r.db.Model(&models.ErcDisciplineOption{})
	if domain != "" {
		query = query.Where("domain = ?", domain)
	}
	err := query.Order("domain ASC").Order("length(code) ASC").Order("code ASC").Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

// GetErcDiscipline retrieves an ERC panel by code
func (r *TaxonomyRepository) GetErcDiscipline(code string) (*models.ErcDisciplineOption, error) {
	var option models.ErcDisciplineOption
	err := r.db.First(&option, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}

// UpsertErcDiscipline inserts an ERC panel or replaces the one with the same code
func (r *TaxonomyRepository) UpsertErcDiscipline(option *models.ErcDisciplineOption) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		UpdateAll: true,
	}).Create(option).Error
}
