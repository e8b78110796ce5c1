package testutils

import (
	"glass-connect-backend/internal/database/models"
	"glass-connect-backend/internal/schema"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// LabFactory provides methods to create test Lab data
type LabFactory struct{}

// NewLabFactory creates a new LabFactory
func NewLabFactory() *LabFactory {
	return &LabFactory{}
}

// Create creates a test Lab with default values
func (f *LabFactory) Create() *models.Lab {
	email := "contact@lab.example"
	city := "Lyon"
	country := "France"
	return &models.Lab{
		Name:               "Test Lab",
		ContactEmail:       &email,
		City:               &city,
		Country:            &country,
		LabStatus:          string(schema.LabStatusListed),
		IsVisible:          true,
		Equipment:          pq.StringArray{"Confocal microscope", "PCR"},
		PriorityEquipment:  pq.StringArray{"PCR"},
		Techniques:         datatypes.NewJSONSlice([]schema.Technique{{Name: "Imaging"}}),
		FocusAreas:         pq.StringArray{"Cell biology"},
		ErcDisciplineCodes: pq.StringArray{"LS3"},
		Offers:             pq.StringArray{string(schema.OfferMonthlyRent)},
		OffersLabSpace:     true,
	}
}

// WithName sets a custom name for the lab
func (f *LabFactory) WithName(name string) *models.Lab {
	lab := f.Create()
	lab.Name = name
	return lab
}

// WithOwner sets the owning auth user of the lab
func (f *LabFactory) WithOwner(owner uuid.UUID) *models.Lab {
	lab := f.Create()
	lab.OwnerUserID = &owner
	return lab
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		Name:      "Test Team",
		IsVisible: true,
		Members: datatypes.NewJSONSlice([]schema.TeamMember{
			{Name: "Ada Lovelace", Role: "PI", IsLead: true},
		}),
		Equipment: pq.StringArray{"Cryo-EM"},
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithLabs links the team to the given labs
func (f *TeamFactory) WithLabs(labs ...models.Lab) *models.Team {
	team := f.Create()
	team.Labs = labs
	return team
}

// OfferProfileFactory provides methods to create test LabOfferProfile data
type OfferProfileFactory struct{}

// NewOfferProfileFactory creates a new OfferProfileFactory
func NewOfferProfileFactory() *OfferProfileFactory {
	return &OfferProfileFactory{}
}

// Create creates a test LabOfferProfile for the given lab
func (f *OfferProfileFactory) Create(labID int64) *models.LabOfferProfile {
	from, to := 100.0, 250.0
	currency := "EUR"
	return &models.LabOfferProfile{
		LabID:               labID,
		SupportsBenchRental: true,
		RentableLabLevels:   pq.StringArray{string(schema.RentableL2)},
		OfferFormats:        pq.StringArray{string(schema.OfferFormatPlugAndPlay)},
		ApplicationModes:    pq.StringArray{string(schema.ApplicationRolling)},
		OperationalStatus:   string(schema.OperationalOpen),
		TechnicalServices:   pq.StringArray{},
		GeneralServices:     pq.StringArray{},
		PricingModel:        string(schema.PricingRange),
		PriceFrom:           &from,
		PriceTo:             &to,
		Currency:            &currency,
	}
}

// TaxonomyFactory provides methods to create test reference vocabulary data
type TaxonomyFactory struct{}

// NewTaxonomyFactory creates a new TaxonomyFactory
func NewTaxonomyFactory() *TaxonomyFactory {
	return &TaxonomyFactory{}
}

// OfferOption creates an active offer option with the default sort order
func (f *TaxonomyFactory) OfferOption(group schema.OptionGroup, code string) *models.LabOfferTaxonomyOption {
	return &models.LabOfferTaxonomyOption{
		OptionGroup: string(group),
		Code:        code,
		LabelEn:     code,
		LabelFr:     code,
		IsActive:    true,
		SortOrder:   schema.DefaultSortOrder,
	}
}

// ErcDiscipline creates an ERC panel entry with a domain derived from the code
func (f *TaxonomyFactory) ErcDiscipline(code, title string) *models.ErcDisciplineOption {
	domain, _ := schema.ErcDomainOf(code)
	return &models.ErcDisciplineOption{Code: code, Domain: string(domain), Title: title}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Lab          *LabFactory
	Team         *TeamFactory
	OfferProfile *OfferProfileFactory
	Taxonomy     *TaxonomyFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Lab:          NewLabFactory(),
		Team:         NewTeamFactory(),
		OfferProfile: NewOfferProfileFactory(),
		Taxonomy:     NewTaxonomyFactory(),
	}
}
