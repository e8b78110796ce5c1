package models

import (
	"time"

	"glass-connect-backend/internal/schema"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Lab represents a research lab listing
type Lab struct {
	BaseModel
	Owned
	Name             string  `json:"name" gorm:"not null;size:255;index"`
	LabManager       *string `json:"lab_manager" gorm:"size:255"`
	ContactEmail     *string `json:"contact_email" gorm:"size:255"`
	DescriptionShort *string `json:"description_short" gorm:"size:350"`
	DescriptionLong  *string `json:"description_long" gorm:"type:text"`
	OrgRole          *string `json:"org_role" gorm:"type:varchar(50)"`

	AddressLine1 *string `json:"address_line1" gorm:"column:address_line1;size:255"`
	AddressLine2 *string `json:"address_line2" gorm:"column:address_line2;size:255"`
	City         *string `json:"city" gorm:"size:120;index"`
	State        *string `json:"state" gorm:"size:120"`
	PostalCode   *string `json:"postal_code" gorm:"size:20"`
	Country      *string `json:"country" gorm:"size:120;index"`

	LogoURL      *string                                 `json:"logo_url" gorm:"column:logo_url;size:500"`
	Photos       datatypes.JSONSlice[schema.MediaAsset]  `json:"photos" gorm:"type:jsonb"`
	PartnerLogos datatypes.JSONSlice[schema.PartnerLogo] `json:"partner_logos" gorm:"type:jsonb"`
	Website      *string                                 `json:"website" gorm:"size:500"`
	Linkedin     *string                                 `json:"linkedin" gorm:"size:500"`

	Compliance     pq.StringArray                         `json:"compliance" gorm:"type:text[]"`
	ComplianceDocs datatypes.JSONSlice[schema.MediaAsset] `json:"compliance_docs" gorm:"type:jsonb"`
	AuditPassed    bool                                   `json:"audit_passed" gorm:"not null"`
	AuditPassedAt  *time.Time                             `json:"audit_passed_at"`

	LabStatus string `json:"lab_status" gorm:"type:varchar(32);not null;index"`
	IsVisible bool   `json:"is_visible" gorm:"not null;index"`

	Equipment         pq.StringArray                        `json:"lab_equipment" gorm:"column:lab_equipment;type:text[]"`
	PriorityEquipment pq.StringArray                        `json:"priority_equipment" gorm:"type:text[]"`
	Techniques        datatypes.JSONSlice[schema.Technique] `json:"techniques" gorm:"type:jsonb"`
	FocusAreas        pq.StringArray                        `json:"focus_areas" gorm:"type:text[]"`

	ErcDisciplineCodes       pq.StringArray                                  `json:"erc_discipline_codes" gorm:"type:text[]"`
	PrimaryErcDisciplineCode *string                                         `json:"primary_erc_discipline_code" gorm:"type:varchar(8)"`
	ErcDisciplines           datatypes.JSONSlice[schema.ErcDisciplineOption] `json:"erc_disciplines" gorm:"type:jsonb"`

	OffersLabSpace bool           `json:"offers_lab_space" gorm:"not null"`
	Offers         pq.StringArray `json:"offers" gorm:"type:text[]"`

	TeamMembers datatypes.JSONSlice[schema.LabTeamMember] `json:"team_members" gorm:"type:jsonb"`

	SiretNumber    *string `json:"siret_number" gorm:"size:20"`
	HalStructureID *string `json:"hal_structure_id" gorm:"size:64"`
	HalPersonID    *string `json:"hal_person_id" gorm:"size:64"`

	AlternateNames pq.StringArray `json:"alternate_names" gorm:"type:text[]"`
	Tags           pq.StringArray `json:"tags" gorm:"type:text[]"`
	Field          *string        `json:"field" gorm:"size:255"`
	Public         *bool          `json:"public"`

	// Relationships
	OfferProfile *LabOfferProfile `json:"offer_profile,omitempty" gorm:"foreignKey:LabID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Lab
func (Lab) TableName() string {
	return "labs"
}
