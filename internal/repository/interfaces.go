package repository

import (
	"glass-connect-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LabFilter narrows lab listings. Zero values disable a criterion.
type LabFilter struct {
	Query       string
	Status      string
	ErcCode     string
	OwnerUserID *uuid.UUID
	VisibleOnly bool
}

// TeamFilter narrows team listings. Zero values disable a criterion.
type TeamFilter struct {
	Query       string
	LabID       int64
	OwnerUserID *uuid.UUID
	VisibleOnly bool
}

// LabRepositoryInterface defines the interface for lab repository operations
type LabRepositoryInterface interface {
	Create(lab *models.Lab) error
	GetByID(id int64) (*models.Lab, error)
	GetByIDs(ids []int64) ([]models.Lab, error)
	List(filter LabFilter, limit, offset int) ([]models.Lab, int64, error)
	Update(lab *models.Lab) error
	Delete(id int64) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id int64) (*models.Team, error)
	List(filter TeamFilter, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id int64) error
}

// OfferProfileRepositoryInterface defines the interface for lab offer profile operations
type OfferProfileRepositoryInterface interface {
	GetByLabID(labID int64) (*models.LabOfferProfile, error)
	Upsert(profile *models.LabOfferProfile) error
	Delete(labID int64) error
}

// TaxonomyRepositoryInterface defines the interface for reference vocabulary operations
type TaxonomyRepositoryInterface interface {
	ListOfferOptions(group string, activeOnly bool) ([]models.LabOfferTaxonomyOption, error)
	GetOfferOption(group, code string) (*models.LabOfferTaxonomyOption, error)
	UpsertOfferOption(option *models.LabOfferTaxonomyOption) error
	ListErcDisciplines(domain string) ([]models.ErcDisciplineOption, error)
	GetErcDiscipline(code string) (*models.ErcDisciplineOption, error)
	UpsertErcDiscipline(option *models.ErcDisciplineOption) error
}
