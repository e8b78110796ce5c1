package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel provides common fields for all models with integer primary keys
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Owned marks records whose writes are restricted to the owning auth user.
type Owned struct {
	OwnerUserID *uuid.UUID `json:"owner_user_id,omitempty" gorm:"type:uuid;index"`
}
