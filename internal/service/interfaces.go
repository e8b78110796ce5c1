package service

import (
	"context"

	"glass-connect-backend/internal/auth"
	"glass-connect-backend/internal/notify"
	"glass-connect-backend/internal/patents"
	"glass-connect-backend/internal/schema"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LabServiceInterface defines the interface for lab operations
type LabServiceInterface interface {
	Create(actor *auth.Principal, in *schema.LabInput) (*schema.Lab, error)
	GetByID(actor *auth.Principal, id int64) (*schema.Lab, error)
	List(actor *auth.Principal, params LabListParams) (*LabListResponse, error)
	Update(actor *auth.Principal, id int64, update *schema.LabUpdate) (*schema.Lab, error)
	Delete(actor *auth.Principal, id int64) error
}

// TeamServiceInterface defines the interface for team operations
type TeamServiceInterface interface {
	Create(actor *auth.Principal, in *schema.TeamInput) (*schema.Team, error)
	GetByID(actor *auth.Principal, id int64) (*schema.Team, error)
	List(actor *auth.Principal, params TeamListParams) (*TeamListResponse, error)
	Update(actor *auth.Principal, id int64, update *schema.TeamUpdate) (*schema.Team, error)
	Delete(actor *auth.Principal, id int64) error
}

// OfferProfileServiceInterface defines the interface for lab offer profile operations
type OfferProfileServiceInterface interface {
	Get(actor *auth.Principal, labID int64) (*schema.LabOfferProfile, error)
	Upsert(actor *auth.Principal, labID int64, in *schema.LabOfferProfileInput) (*schema.LabOfferProfile, error)
	Patch(actor *auth.Principal, labID int64, update *schema.LabOfferProfileUpdate) (*schema.LabOfferProfile, error)
	Delete(actor *auth.Principal, labID int64) error
}

// TaxonomyServiceInterface defines the interface for reference vocabulary operations
type TaxonomyServiceInterface interface {
	ListOfferOptions(group string, includeInactive bool) ([]schema.LabOfferTaxonomyOption, error)
	GetOfferOption(group, code string) (*schema.LabOfferTaxonomyOption, error)
	ListErcDisciplines(domain string) ([]schema.ErcDisciplineOption, error)
	GetErcDiscipline(code string) (*schema.ErcDisciplineOption, error)
	Import(options []schema.LabOfferTaxonomyOption, disciplines []schema.ErcDisciplineOption) (*ImportResult, error)
}

// ContactServiceInterface defines the interface for lab contact requests
type ContactServiceInterface interface {
	Send(ctx context.Context, actor *auth.Principal, labID int64, req *ContactRequest) error
}

// PatentServiceInterface defines the interface for patent lookups
type PatentServiceInterface interface {
	Search(ctx context.Context, query string, limit int) (*patents.SearchResult, error)
}

// Mailer delivers outbound email.
type Mailer interface {
	Send(ctx context.Context, msg notify.Message) error
}

// PatentSearcher queries the patent gateway.
type PatentSearcher interface {
	Search(ctx context.Context, query string, limit int) (*patents.SearchResult, error)
}
