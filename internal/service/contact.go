package service

import (
	"context"
	"fmt"
	"strings"

	"glass-connect-backend/internal/auth"
	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/logger"
	"glass-connect-backend/internal/notify"
	"glass-connect-backend/internal/repository"
	"glass-connect-backend/internal/schema"

	"github.com/go-playground/validator/v10"
)

// Contact request kinds
const (
	ContactCollaboration = "collaboration"
	ContactDonation      = "donation"
	ContactInvestment    = "investment"
)

// ContactRequest is a message sent to a lab through the platform
type ContactRequest struct {
	Kind         string  `json:"kind" validate:"required,oneof=collaboration donation investment" example:"collaboration"`
	Name         string  `json:"name" validate:"required,notblank,max=200" example:"Ada Lovelace"`
	Email        string  `json:"email" validate:"required,email" example:"ada@example.org"`
	Organization *string `json:"organization,omitempty" validate:"omitempty,max=200"`
	Message      string  `json:"message" validate:"required,notblank,max=4000"`
}

// ContactService relays contact requests to the lab contact address
type ContactService struct {
	labRepo   repository.LabRepositoryInterface
	mailer    Mailer
	validator *validator.Validate
}

// Ensure ContactService implements ContactServiceInterface
var _ ContactServiceInterface = (*ContactService)(nil)

// NewContactService creates a new ContactService. A nil mailer disables
// delivery.
func NewContactService(labRepo repository.LabRepositoryInterface, mailer Mailer, validator *validator.Validate) *ContactService {
	return &ContactService{
		labRepo:   labRepo,
		mailer:    mailer,
		validator: validator,
	}
}

// Send validates the request and emails the lab contact
func (s *ContactService) Send(ctx context.Context, actor *auth.Principal, labID int64, req *ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return schema.IssuesFromError(err).Err()
	}
	if s.mailer == nil {
		return apperrors.ErrMailerNotConfigured
	}

	lab, err := s.labRepo.GetByID(labID)
	if err != nil {
		return notFound(err, apperrors.ErrLabNotFound, "get lab")
	}
	if !canSee(actor, lab.IsVisible, lab.OwnerUserID) {
		return apperrors.ErrLabNotFound
	}
	if lab.ContactEmail == nil || *lab.ContactEmail == "" {
		return apperrors.ErrLabContactEmailNotDefined
	}

	msg := notify.Message{
		To:      []string{*lab.ContactEmail},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New %s request for %s", req.Kind, lab.Name),
		Text:    contactBody(lab.Name, req),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.WithContext(ctx).WithError(err).Warnf("Failed to deliver %s request for lab %d", req.Kind, labID)
		return fmt.Errorf("failed to send contact request: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"lab_id": labID,
		"kind":   req.Kind,
	}).Info("Contact request sent")
	return nil
}

func contactBody(labName string, req *ContactRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", req.Name, req.Email)
	if req.Organization != nil && *req.Organization != "" {
		fmt.Fprintf(&b, " from %s", *req.Organization)
	}
	fmt.Fprintf(&b, " sent a %s request to %s:\n\n%s\n", req.Kind, labName, req.Message)
	return b.String()
}
