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

// OfferProfileService manages the offer profile attached to each lab
type OfferProfileService struct {
	repo    repository.OfferProfileRepositoryInterface
	labRepo repository.LabRepositoryInterface
}

// Ensure OfferProfileService implements OfferProfileServiceInterface
var _ OfferProfileServiceInterface = (*OfferProfileService)(nil)

// NewOfferProfileService creates a new OfferProfileService
func NewOfferProfileService(repo repository.OfferProfileRepositoryInterface, labRepo repository.LabRepositoryInterface) *OfferProfileService {
	return &OfferProfileService{
		repo:    repo,
		labRepo: labRepo,
	}
}

// Get returns the offer profile of a lab readable by actor
func (s *OfferProfileService) Get(actor *auth.Principal, labID int64) (*schema.LabOfferProfile, error) {
	lab, err := s.labRepo.GetByID(labID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLabNotFound, "get lab")
	}
	if !canSee(actor, lab.IsVisible, lab.OwnerUserID) {
		return nil, apperrors.ErrLabNotFound
	}
	profile, err := s.repo.GetByLabID(labID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOfferProfileNotFound, "get offer profile")
	}
	return toOfferProfile(profile), nil
}

// Upsert replaces the offer profile of a lab with a full payload
func (s *OfferProfileService) Upsert(actor *auth.Principal, labID int64, in *schema.LabOfferProfileInput) (*schema.LabOfferProfile, error) {
	if err := s.authorize(actor, labID); err != nil {
		return nil, err
	}
	if err := in.Prepare().Err(); err != nil {
		return nil, err
	}
	return s.save(actor, newOfferProfileModel(labID, in))
}

// Patch merges a partial payload into the stored profile. The merged profile
// is validated as a whole, so cross-field rules also cover the members the
// payload leaves out.
func (s *OfferProfileService) Patch(actor *auth.Principal, labID int64, update *schema.LabOfferProfileUpdate) (*schema.LabOfferProfile, error) {
	if err := s.authorize(actor, labID); err != nil {
		return nil, err
	}
	if err := update.Prepare().Err(); err != nil {
		return nil, err
	}
	stored, err := s.repo.GetByLabID(labID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrOfferProfileNotFound, "get offer profile")
	}

	merged := offerProfileInput(stored)
	update.ApplyTo(&merged)
	if err := merged.Prepare().Err(); err != nil {
		return nil, err
	}
	return s.save(actor, newOfferProfileModel(labID, &merged))
}

// Delete removes the offer profile of a lab
func (s *OfferProfileService) Delete(actor *auth.Principal, labID int64) error {
	if err := s.authorize(actor, labID); err != nil {
		return err
	}
	if err := s.repo.Delete(labID); err != nil {
		return notFound(err, apperrors.ErrOfferProfileNotFound, "delete offer profile")
	}

	logger.New().WithFields(map[string]interface{}{
		"lab_id":  labID,
		"user_id": actor.UserID.String(),
	}).Info("Offer profile deleted")
	return nil
}

func (s *OfferProfileService) authorize(actor *auth.Principal, labID int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	lab, err := s.labRepo.GetByID(labID)
	if err != nil {
		return notFound(err, apperrors.ErrLabNotFound, "get lab")
	}
	return authorizeWrite(actor, lab.OwnerUserID)
}

// save upserts the row and reads it back so that timestamps reflect the
// stored record.
func (s *OfferProfileService) save(actor *auth.Principal, profile *models.LabOfferProfile) (*schema.LabOfferProfile, error) {
	if err := s.repo.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to save offer profile: %w", err)
	}
	stored, err := s.repo.GetByLabID(profile.LabID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload offer profile: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"lab_id":  profile.LabID,
		"user_id": actor.UserID.String(),
	}).Info("Offer profile saved")
	return toOfferProfile(stored), nil
}
