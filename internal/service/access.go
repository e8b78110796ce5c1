package service

import (
	"errors"
	"fmt"

	"glass-connect-backend/internal/auth"
	apperrors "glass-connect-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pagination clamps page and pageSize and returns the matching offset.
func pagination(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

func requireActor(actor *auth.Principal) error {
	if actor == nil {
		return apperrors.ErrMissingCredentials
	}
	return nil
}

// authorizeWrite allows the owner of a record or an administrator.
func authorizeWrite(actor *auth.Principal, owner *uuid.UUID) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if actor.IsAdmin() || actor.Owns(owner) {
		return nil
	}
	return apperrors.ErrNotOwner
}

// canSee reports whether a record with the given visibility is readable by
// actor. Hidden records are readable by their owner and administrators.
func canSee(actor *auth.Principal, visible bool, owner *uuid.UUID) bool {
	return visible || actor.IsAdmin() || actor.Owns(owner)
}

// assignOwner resolves the owner of a new record. Only administrators may
// create records on behalf of another user.
func assignOwner(actor *auth.Principal, requested *string) (*string, error) {
	self := actor.UserID.String()
	if requested == nil {
		return &self, nil
	}
	if *requested != self && !actor.IsAdmin() {
		return nil, apperrors.ErrNotOwner
	}
	return requested, nil
}

// ownerChange rejects an ownership transfer by a non-administrator.
func ownerChange(actor *auth.Principal, current *uuid.UUID, requested *string) error {
	if requested == nil || actor.IsAdmin() {
		return nil
	}
	if current != nil && *requested == current.String() {
		return nil
	}
	return apperrors.ErrNotOwner
}

func notFound(err error, typed error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return typed
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
