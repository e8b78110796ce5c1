package models

import (
	"time"

	"github.com/lib/pq"
)

// LabOfferProfile holds the rental offer of a lab. There is at most one
// profile per lab, keyed by the lab id.
type LabOfferProfile struct {
	LabID                   int64          `json:"lab_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
	SupportsBenchRental     bool           `json:"supports_bench_rental" gorm:"not null"`
	SupportsEquipmentAccess bool           `json:"supports_equipment_access" gorm:"not null"`
	RentableLabLevels       pq.StringArray `json:"rentable_lab_levels" gorm:"type:text[]"`
	OfferFormats            pq.StringArray `json:"offer_formats" gorm:"type:text[]"`
	ApplicationModes        pq.StringArray `json:"application_modes" gorm:"type:text[]"`
	OperationalStatus       string         `json:"operational_status" gorm:"type:varchar(32);not null"`
	ExpectedOpeningYear     *int           `json:"expected_opening_year"`
	TechnicalServices       pq.StringArray `json:"technical_services" gorm:"type:text[]"`
	GeneralServices         pq.StringArray `json:"general_services" gorm:"type:text[]"`
	PricingModel            string         `json:"pricing_model" gorm:"type:varchar(32);not null"`
	PriceFrom               *float64       `json:"price_from"`
	PriceTo                 *float64       `json:"price_to"`
	Currency                *string        `json:"currency" gorm:"type:char(3)"`
	PricingNotes            *string        `json:"pricing_notes" gorm:"type:text"`
	AdditionalInfo          *string        `json:"additional_info" gorm:"type:text"`
	TotalAreaM2             *float64       `json:"total_area_m2" gorm:"column:total_area_m2"`
	MinRentAreaM2           *float64       `json:"min_rent_area_m2" gorm:"column:min_rent_area_m2"`
	MaxRentAreaM2           *float64       `json:"max_rent_area_m2" gorm:"column:max_rent_area_m2"`
}

// TableName returns the table name for LabOfferProfile
func (LabOfferProfile) TableName() string {
	return "lab_offer_profiles"
}
