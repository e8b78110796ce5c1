package service

import (
	"fmt"

	"glass-connect-backend/internal/auth"
	"glass-connect-backend/internal/database/models"
	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/logger"
	"glass-connect-backend/internal/repository"
	"glass-connect-backend/internal/schema"
)

// LabService provides lab-related business logic
type LabService struct {
	repo repository.LabRepositoryInterface
}

// Ensure LabService implements LabServiceInterface
var _ LabServiceInterface = (*LabService)(nil)

// NewLabService creates a new LabService
func NewLabService(repo repository.LabRepositoryInterface) *LabService {
	return &LabService{repo: repo}
}

// LabListParams are the query parameters of a lab listing
type LabListParams struct {
	Query    string
	Status   string
	ErcCode  string
	Mine     bool
	Page     int
	PageSize int
}

// LabListResponse represents a paginated list of labs
type LabListResponse struct {
	Labs     []schema.Lab `json:"labs"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

// Create validates and stores a new lab owned by the caller
func (s *LabService) Create(actor *auth.Principal, in *schema.LabInput) (*schema.Lab, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := in.Prepare().Err(); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && setsVerification(in) {
		return nil, apperrors.ErrRestrictedFieldWrite
	}
	owner, err := assignOwner(actor, in.OwnerUserID)
	if err != nil {
		return nil, err
	}
	in.OwnerUserID = owner

	lab := &models.Lab{}
	if err := applyLabInput(lab, in); err != nil {
		return nil, apperrors.NewValidationError("ownerUserId", err.Error())
	}
	if err := s.repo.Create(lab); err != nil {
		return nil, fmt.Errorf("failed to create lab: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"lab_id":  lab.ID,
		"user_id": actor.UserID.String(),
	}).Info("Lab created")
	return toLab(lab), nil
}

// GetByID returns a lab. Hidden labs are reported as missing to anyone but
// their owner and administrators.
func (s *LabService) GetByID(actor *auth.Principal, id int64) (*schema.Lab, error) {
	lab, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLabNotFound, "get lab")
	}
	if !canSee(actor, lab.IsVisible, lab.OwnerUserID) {
		return nil, apperrors.ErrLabNotFound
	}
	return toLab(lab), nil
}

// List returns a page of labs. Mine lists every lab of the caller, hidden
// ones included; otherwise only visible labs are listed to non-administrators.
func (s *LabService) List(actor *auth.Principal, params LabListParams) (*LabListResponse, error) {
	page, pageSize, offset := pagination(params.Page, params.PageSize)
	filter := repository.LabFilter{
		Query:       params.Query,
		Status:      params.Status,
		ErcCode:     params.ErcCode,
		VisibleOnly: !actor.IsAdmin(),
	}
	if params.Mine {
		if err := requireActor(actor); err != nil {
			return nil, err
		}
		filter.OwnerUserID = &actor.UserID
		filter.VisibleOnly = false
	}

	labs, total, err := s.repo.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list labs: %w", err)
	}

	out := make([]schema.Lab, len(labs))
	for i := range labs {
		out[i] = *toLab(&labs[i])
	}
	return &LabListResponse{
		Labs:     out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update merges a partial payload into the stored lab and re-validates the
// result as a whole before saving.
func (s *LabService) Update(actor *auth.Principal, id int64, update *schema.LabUpdate) (*schema.Lab, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := update.Prepare().Err(); err != nil {
		return nil, err
	}

	lab, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLabNotFound, "get lab")
	}
	if err := authorizeWrite(actor, lab.OwnerUserID); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && update.TouchesVerification() {
		return nil, apperrors.ErrRestrictedFieldWrite
	}
	if err := ownerChange(actor, lab.OwnerUserID, update.OwnerUserID); err != nil {
		return nil, err
	}

	merged := labInput(lab)
	update.ApplyTo(&merged)
	if err := merged.Prepare().Err(); err != nil {
		return nil, err
	}
	if err := applyLabInput(lab, &merged); err != nil {
		return nil, apperrors.NewValidationError("ownerUserId", err.Error())
	}
	if err := s.repo.Update(lab); err != nil {
		return nil, fmt.Errorf("failed to update lab: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"lab_id":  lab.ID,
		"user_id": actor.UserID.String(),
	}).Info("Lab updated")
	return toLab(lab), nil
}

// Delete removes a lab together with its offer profile and team links
func (s *LabService) Delete(actor *auth.Principal, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	lab, err := s.repo.GetByID(id)
	if err != nil {
		return notFound(err, apperrors.ErrLabNotFound, "get lab")
	}
	if err := authorizeWrite(actor, lab.OwnerUserID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return notFound(err, apperrors.ErrLabNotFound, "delete lab")
	}

	logger.New().WithFields(map[string]interface{}{
		"lab_id":  id,
		"user_id": actor.UserID.String(),
	}).Info("Lab deleted")
	return nil
}

// setsVerification reports whether a prepared insert payload departs from
// the unverified defaults.
func setsVerification(in *schema.LabInput) bool {
	return in.LabStatus != schema.LabStatusListed || in.AuditPassed || in.AuditPassedAt != nil
}
