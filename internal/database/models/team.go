package models

import (
	"glass-connect-backend/internal/schema"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Team represents a research team, optionally attached to labs
type Team struct {
	BaseModel
	Owned
	Name              string                                 `json:"name" gorm:"not null;size:255;index"`
	DescriptionShort  *string                                `json:"description_short" gorm:"size:350"`
	DescriptionLong   *string                                `json:"description_long" gorm:"type:text"`
	Field             *string                                `json:"field" gorm:"size:255"`
	LogoURL           *string                                `json:"logo_url" gorm:"column:logo_url;size:500"`
	Website           *string                                `json:"website" gorm:"size:500"`
	Linkedin          *string                                `json:"linkedin" gorm:"size:500"`
	Photos            datatypes.JSONSlice[schema.MediaAsset] `json:"photos" gorm:"type:jsonb"`
	IsVisible         bool                                   `json:"is_visible" gorm:"not null;index"`
	Equipment         pq.StringArray                         `json:"team_equipment" gorm:"column:team_equipment;type:text[]"`
	PriorityEquipment pq.StringArray                         `json:"priority_equipment" gorm:"type:text[]"`
	Techniques        datatypes.JSONSlice[schema.Technique]  `json:"techniques" gorm:"type:jsonb"`
	FocusAreas        pq.StringArray                         `json:"focus_areas" gorm:"type:text[]"`
	Members           datatypes.JSONSlice[schema.TeamMember] `json:"members" gorm:"type:jsonb"`

	// Relationships
	Labs []Lab `json:"labs,omitempty" gorm:"many2many:team_labs;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
