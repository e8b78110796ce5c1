package schema

import "regexp"

// LabStatus is the verification tier of a lab listing.
type LabStatus string

const (
	LabStatusListed          LabStatus = "listed"
	LabStatusConfirmed       LabStatus = "confirmed"
	LabStatusVerifiedPassive LabStatus = "verified_passive"
	LabStatusVerifiedActive  LabStatus = "verified_active"
	LabStatusPremier         LabStatus = "premier"
)

// LabStatusOptions lists every LabStatus in display order.
func LabStatusOptions() []LabStatus {
	return []LabStatus{LabStatusListed, LabStatusConfirmed, LabStatusVerifiedPassive, LabStatusVerifiedActive, LabStatusPremier}
}

// IsValid checks if the lab status is valid
func (s LabStatus) IsValid() bool {
	return contains(LabStatusOptions(), s)
}

// OrgRole describes what kind of organisation runs a lab.
type OrgRole string

const (
	OrgRoleResearchLab    OrgRole = "Research Lab"
	OrgRoleAcademicLab    OrgRole = "Academic Lab"
	OrgRoleCoreFacility   OrgRole = "Core Facility"
	OrgRoleCRO            OrgRole = "CRO"
	OrgRoleBiotechCompany OrgRole = "Biotech Company"
	OrgRolePharmaCompany  OrgRole = "Pharma Company"
	OrgRoleHospitalLab    OrgRole = "Hospital Lab"
	OrgRoleIncubator      OrgRole = "Incubator"
	OrgRoleNonProfit      OrgRole = "Non-profit"
	OrgRoleOther          OrgRole = "Other"
)

func OrgRoleOptions() []OrgRole {
	return []OrgRole{
		OrgRoleResearchLab, OrgRoleAcademicLab, OrgRoleCoreFacility, OrgRoleCRO, OrgRoleBiotechCompany,
		OrgRolePharmaCompany, OrgRoleHospitalLab, OrgRoleIncubator, OrgRoleNonProfit, OrgRoleOther,
	}
}

// IsValid checks if the org role is valid
func (r OrgRole) IsValid() bool {
	return contains(OrgRoleOptions(), r)
}

// OfferOption is a legacy pricing label stored on the lab record.
type OfferOption string

const (
	OfferMonthlyRent      OfferOption = "Monthly rent"
	OfferHourlyRate       OfferOption = "Hourly rate"
	OfferEquipmentUseRate OfferOption = "Equipment use rate"
	OfferDayRate          OfferOption = "Day rate"
)

func OfferOptions() []OfferOption {
	return []OfferOption{OfferMonthlyRent, OfferHourlyRate, OfferEquipmentUseRate, OfferDayRate}
}

// IsValid checks if the offer option is valid
func (o OfferOption) IsValid() bool {
	return contains(OfferOptions(), o)
}

// RentableLabLevel is a biosafety or facility level a lab can rent out.
type RentableLabLevel string

const (
	RentableL1                RentableLabLevel = "l1"
	RentableL2                RentableLabLevel = "l2"
	RentableL3Possible        RentableLabLevel = "l3_possible"
	RentableCleanroomPossible RentableLabLevel = "cleanroom_possible"
	RentableAnimalFacility    RentableLabLevel = "animal_facility"
	RentableNA                RentableLabLevel = "na"
)

func RentableLabLevelOptions() []RentableLabLevel {
	return []RentableLabLevel{RentableL1, RentableL2, RentableL3Possible, RentableCleanroomPossible, RentableAnimalFacility, RentableNA}
}

// IsValid checks if the rentable lab level is valid
func (l RentableLabLevel) IsValid() bool {
	return contains(RentableLabLevelOptions(), l)
}

type OfferFormat string

const (
	OfferFormatShellSpace  OfferFormat = "shell_space"
	OfferFormatMixedOffer  OfferFormat = "mixed_offer"
	OfferFormatPlugAndPlay OfferFormat = "plug_and_play"
	OfferFormatNA          OfferFormat = "na"
)

func OfferFormatOptions() []OfferFormat {
	return []OfferFormat{OfferFormatShellSpace, OfferFormatMixedOffer, OfferFormatPlugAndPlay, OfferFormatNA}
}

// IsValid checks if the offer format is valid
func (f OfferFormat) IsValid() bool {
	return contains(OfferFormatOptions(), f)
}

type ApplicationMode string

const (
	ApplicationRolling       ApplicationMode = "rolling"
	ApplicationPeriodicCalls ApplicationMode = "periodic_calls"
	ApplicationInviteOnly    ApplicationMode = "invite_only"
	ApplicationNA            ApplicationMode = "na"
)

func ApplicationModeOptions() []ApplicationMode {
	return []ApplicationMode{ApplicationRolling, ApplicationPeriodicCalls, ApplicationInviteOnly, ApplicationNA}
}

// IsValid checks if the application mode is valid
func (m ApplicationMode) IsValid() bool {
	return contains(ApplicationModeOptions(), m)
}

type OperationalStatus string

const (
	OperationalOpen               OperationalStatus = "open"
	OperationalOpeningFuture      OperationalStatus = "opening_future"
	OperationalRenovationOrClosed OperationalStatus = "renovation_or_closed"
)

func OperationalStatusOptions() []OperationalStatus {
	return []OperationalStatus{OperationalOpen, OperationalOpeningFuture, OperationalRenovationOrClosed}
}

// IsValid checks if the operational status is valid
func (s OperationalStatus) IsValid() bool {
	return contains(OperationalStatusOptions(), s)
}

type PricingModel string

const (
	PricingRequestQuote PricingModel = "request_quote"
	PricingPriceFrom    PricingModel = "price_from"
	PricingFixedPrice   PricingModel = "fixed_price"
	PricingRange        PricingModel = "range"
)

func PricingModelOptions() []PricingModel {
	return []PricingModel{PricingRequestQuote, PricingPriceFrom, PricingFixedPrice, PricingRange}
}

// IsValid checks if the pricing model is valid
func (m PricingModel) IsValid() bool {
	return contains(PricingModelOptions(), m)
}

// OptionGroup partitions the lab offer taxonomy.
type OptionGroup string

const (
	GroupRentableLabLevel OptionGroup = "rentable_lab_level"
	GroupOfferFormat      OptionGroup = "offer_format"
	GroupApplicationMode  OptionGroup = "application_mode"
	GroupPricingModel     OptionGroup = "pricing_model"
	GroupTechnicalService OptionGroup = "technical_service"
	GroupGeneralService   OptionGroup = "general_service"
)

func OptionGroupOptions() []OptionGroup {
	return []OptionGroup{
		GroupRentableLabLevel, GroupOfferFormat, GroupApplicationMode,
		GroupPricingModel, GroupTechnicalService, GroupGeneralService,
	}
}

// IsValid checks if the option group is valid
func (g OptionGroup) IsValid() bool {
	return contains(OptionGroupOptions(), g)
}

// ErcDomain is one of the three ERC research domains.
type ErcDomain string

const (
	ErcPhysicalSciences ErcDomain = "PE"
	ErcLifeSciences     ErcDomain = "LS"
	ErcSocialSciences   ErcDomain = "SH"
)

func ErcDomainOptions() []ErcDomain {
	return []ErcDomain{ErcPhysicalSciences, ErcLifeSciences, ErcSocialSciences}
}

// IsValid checks if the ERC domain is valid
func (d ErcDomain) IsValid() bool {
	return contains(ErcDomainOptions(), d)
}

// PE1-PE11, LS1-LS9, SH1-SH8
var ercCodePattern = regexp.MustCompile(`^(PE([1-9]|1[01])|LS[1-9]|SH[1-8])$`)

// IsErcCode reports whether code is a panel code of the ERC classification.
func IsErcCode(code string) bool {
	return ercCodePattern.MatchString(code)
}

// ErcDomainOf returns the domain prefix of a valid ERC code.
func ErcDomainOf(code string) (ErcDomain, bool) {
	if !IsErcCode(code) {
		return "", false
	}
	return ErcDomain(code[:2]), true
}

func contains[T comparable](options []T, v T) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
