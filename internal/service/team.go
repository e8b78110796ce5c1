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

// TeamService provides team-related business logic
type TeamService struct {
	repo    repository.TeamRepositoryInterface
	labRepo repository.LabRepositoryInterface
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new TeamService
func NewTeamService(repo repository.TeamRepositoryInterface, labRepo repository.LabRepositoryInterface) *TeamService {
	return &TeamService{
		repo:    repo,
		labRepo: labRepo,
	}
}

// TeamListParams are the query parameters of a team listing
type TeamListParams struct {
	Query    string
	LabID    int64
	Mine     bool
	Page     int
	PageSize int
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []schema.Team `json:"teams"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// Create validates and stores a new team owned by the caller
func (s *TeamService) Create(actor *auth.Principal, in *schema.TeamInput) (*schema.Team, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := in.Prepare().Err(); err != nil {
		return nil, err
	}
	owner, err := assignOwner(actor, in.OwnerUserID)
	if err != nil {
		return nil, err
	}
	in.OwnerUserID = owner

	labs, err := s.resolveLabs(in.LabIDs)
	if err != nil {
		return nil, err
	}
	team := &models.Team{}
	if err := applyTeamInput(team, in, labs); err != nil {
		return nil, apperrors.NewValidationError("ownerUserId", err.Error())
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"team_id": team.ID,
		"labs":    len(labs),
		"user_id": actor.UserID.String(),
	}).Info("Team created")
	return toTeam(team), nil
}

// GetByID returns a team with its lab summaries
func (s *TeamService) GetByID(actor *auth.Principal, id int64) (*schema.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}
	if !canSee(actor, team.IsVisible, team.OwnerUserID) {
		return nil, apperrors.ErrTeamNotFound
	}
	return toTeam(team), nil
}

// List returns a page of teams
func (s *TeamService) List(actor *auth.Principal, params TeamListParams) (*TeamListResponse, error) {
	page, pageSize, offset := pagination(params.Page, params.PageSize)
	filter := repository.TeamFilter{
		Query:       params.Query,
		LabID:       params.LabID,
		VisibleOnly: !actor.IsAdmin(),
	}
	if params.Mine {
		if err := requireActor(actor); err != nil {
			return nil, err
		}
		filter.OwnerUserID = &actor.UserID
		filter.VisibleOnly = false
	}

	teams, total, err := s.repo.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	out := make([]schema.Team, len(teams))
	for i := range teams {
		out[i] = *toTeam(&teams[i])
	}
	return &TeamListResponse{
		Teams:    out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update merges a partial payload into the stored team, re-validates the
// result and replaces the lab links when labIds is present.
func (s *TeamService) Update(actor *auth.Principal, id int64, update *schema.TeamUpdate) (*schema.Team, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := update.Prepare().Err(); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}
	if err := authorizeWrite(actor, team.OwnerUserID); err != nil {
		return nil, err
	}
	if err := ownerChange(actor, team.OwnerUserID, update.OwnerUserID); err != nil {
		return nil, err
	}

	merged := teamInput(team)
	update.ApplyTo(&merged)
	if err := merged.Prepare().Err(); err != nil {
		return nil, err
	}

	labs := team.Labs
	if update.LabIDs != nil {
		if labs, err = s.resolveLabs(merged.LabIDs); err != nil {
			return nil, err
		}
	}
	if err := applyTeamInput(team, &merged, labs); err != nil {
		return nil, apperrors.NewValidationError("ownerUserId", err.Error())
	}
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"team_id": team.ID,
		"user_id": actor.UserID.String(),
	}).Info("Team updated")
	return toTeam(team), nil
}

// Delete removes a team and its lab links. Linked labs are kept.
func (s *TeamService) Delete(actor *auth.Principal, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	team, err := s.repo.GetByID(id)
	if err != nil {
		return notFound(err, apperrors.ErrTeamNotFound, "get team")
	}
	if err := authorizeWrite(actor, team.OwnerUserID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return notFound(err, apperrors.ErrTeamNotFound, "delete team")
	}

	logger.New().WithFields(map[string]interface{}{
		"team_id": id,
		"user_id": actor.UserID.String(),
	}).Info("Team deleted")
	return nil
}

// resolveLabs loads the labs referenced by ids in the given order. Unknown
// ids are reported as issues on labIds.
func (s *TeamService) resolveLabs(ids []int64) ([]models.Lab, error) {
	if len(ids) == 0 {
		return []models.Lab{}, nil
	}
	found, err := s.labRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load labs: %w", err)
	}
	byID := make(map[int64]models.Lab, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}

	labs := make([]models.Lab, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	var issues schema.Issues
	for i, id := range ids {
		lab, ok := byID[id]
		if !ok {
			issues = append(issues, schema.Issue{Path: fmt.Sprintf("labIds[%d]", i), Message: fmt.Sprintf("lab %d does not exist", id)})
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		labs = append(labs, lab)
	}
	if err := issues.Err(); err != nil {
		return nil, err
	}
	return labs, nil
}
