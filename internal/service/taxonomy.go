package service

import (
	"fmt"

	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/logger"
	"glass-connect-backend/internal/repository"
	"glass-connect-backend/internal/schema"
)

// TaxonomyService serves the offer taxonomy and the ERC discipline panels
type TaxonomyService struct {
	repo repository.TaxonomyRepositoryInterface
}

// Ensure TaxonomyService implements TaxonomyServiceInterface
var _ TaxonomyServiceInterface = (*TaxonomyService)(nil)

// NewTaxonomyService creates a new TaxonomyService
func NewTaxonomyService(repo repository.TaxonomyRepositoryInterface) *TaxonomyService {
	return &TaxonomyService{repo: repo}
}

// ImportResult counts the records written by Import
type ImportResult struct {
	Options     int `json:"options"`
	Disciplines int `json:"disciplines"`
}

// ListOfferOptions returns the options of one group, or of every group when
// group is empty, ordered by group, sort order and code.
func (s *TaxonomyService) ListOfferOptions(group string, includeInactive bool) ([]schema.LabOfferTaxonomyOption, error) {
	if group != "" && !schema.OptionGroup(group).IsValid() {
		return nil, apperrors.NewValidationError("group", fmt.Sprintf("unknown option group %q", group))
	}
	rows, err := s.repo.ListOfferOptions(group, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxonomy options: %w", err)
	}
	out := make([]schema.LabOfferTaxonomyOption, len(rows))
	for i := range rows {
		out[i] = toTaxonomyOption(&rows[i])
	}
	return out, nil
}

func (s *TaxonomyService) GetOfferOption(group, code string) (*schema.LabOfferTaxonomyOption, error) {
	row, err := s.repo.GetOfferOption(group, code)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTaxonomyOptionNotFound, "get taxonomy option")
	}
	opt := toTaxonomyOption(row)
	return &opt, nil
}

// ListErcDisciplines returns the ERC panels, optionally limited to a domain
func (s *TaxonomyService) ListErcDisciplines(domain string) ([]schema.ErcDisciplineOption, error) {
	if domain != "" && !schema.ErcDomain(domain).IsValid() {
		return nil, apperrors.NewValidationError("domain", fmt.Sprintf("unknown ERC domain %q", domain))
	}
	rows, err := s.repo.ListErcDisciplines(domain)
	if err != nil {
		return nil, fmt.Errorf("failed to list ERC disciplines: %w", err)
	}
	out := make([]schema.ErcDisciplineOption, len(rows))
	for i := range rows {
		out[i] = toErcDiscipline(&rows[i])
	}
	return out, nil
}

func (s *TaxonomyService) GetErcDiscipline(code string) (*schema.ErcDisciplineOption, error) {
	row, err := s.repo.GetErcDiscipline(code)
	if err != nil {
		return nil, notFound(err, apperrors.ErrErcDisciplineNotFound, "get ERC discipline")
	}
	opt := toErcDiscipline(row)
	return &opt, nil
}

// Import validates every record first and writes nothing when any record
// is invalid. Existing rows are updated in place.
func (s *TaxonomyService) Import(options []schema.LabOfferTaxonomyOption, disciplines []schema.ErcDisciplineOption) (*ImportResult, error) {
	var issues schema.Issues
	for i := range options {
		issues = append(issues, prefixed(fmt.Sprintf("options[%d]", i), options[i].Prepare())...)
	}
	for i := range disciplines {
		issues = append(issues, prefixed(fmt.Sprintf("ercDisciplines[%d]", i), disciplines[i].Prepare())...)
	}
	if err := issues.Err(); err != nil {
		return nil, err
	}

	for i := range options {
		if err := s.repo.UpsertOfferOption(newTaxonomyOptionModel(&options[i])); err != nil {
			return nil, fmt.Errorf("failed to import taxonomy option %s/%s: %w", options[i].OptionGroup, options[i].Code, err)
		}
	}
	for i := range disciplines {
		if err := s.repo.UpsertErcDiscipline(newErcDisciplineModel(&disciplines[i])); err != nil {
			return nil, fmt.Errorf("failed to import ERC discipline %s: %w", disciplines[i].Code, err)
		}
	}

	logger.New().WithFields(map[string]interface{}{
		"options":     len(options),
		"disciplines": len(disciplines),
	}).Info("Taxonomy imported")
	return &ImportResult{Options: len(options), Disciplines: len(disciplines)}, nil
}

// prefixed nests issue paths under prefix.
func prefixed(prefix string, issues schema.Issues) schema.Issues {
	out := make(schema.Issues, len(issues))
	for i, issue := range issues {
		out[i] = issue
		if issue.Path == "" {
			out[i].Path = prefix
		} else {
			out[i].Path = prefix + "." + issue.Path
		}
	}
	return out
}
