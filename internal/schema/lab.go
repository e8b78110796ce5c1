package schema

import (
	"strings"
	"time"
)

// MediaAsset is a named link to an uploaded file.
type MediaAsset struct {
	Name string `json:"name"`
	URL  string `json:"url" validate:"required,url"`
}

type PartnerLogo struct {
	Name    string  `json:"name"`
	URL     string  `json:"url" validate:"required,url"`
	Website *string `json:"website,omitempty" validate:"omitempty,url"`
}

type Technique struct {
	Name        string  `json:"name" validate:"required,notblank"`
	Description *string `json:"description,omitempty"`
}

// LabTeamMember is a person listed on a lab page.
type LabTeamMember struct {
	Name     string  `json:"name" validate:"required,notblank"`
	Title    string  `json:"title"`
	Linkedin *string `json:"linkedin,omitempty" validate:"omitempty,url"`
	Website  *string `json:"website,omitempty" validate:"omitempty,url"`
	TeamName *string `json:"teamName,omitempty"`
	RoleRank *int    `json:"roleRank,omitempty" validate:"omitempty,gte=1,lte=99"`
	IsLead   bool    `json:"isLead"`
}

// LabInput is the insert shape of a lab.
type LabInput struct {
	Name                     string                `json:"name" validate:"required,notblank"`
	LabManager               *string               `json:"labManager"`
	ContactEmail             *string               `json:"contactEmail" validate:"omitempty,email"`
	OwnerUserID              *string               `json:"ownerUserId,omitempty" validate:"omitempty,uuid"`
	DescriptionShort         *string               `json:"descriptionShort,omitempty" validate:"omitempty,max=350"`
	DescriptionLong          *string               `json:"descriptionLong,omitempty" validate:"omitempty,max=8000"`
	OrgRole                  *OrgRole              `json:"orgRole" validate:"omitempty,org_role"`
	AddressLine1             *string               `json:"addressLine1,omitempty"`
	AddressLine2             *string               `json:"addressLine2,omitempty"`
	City                     *string               `json:"city,omitempty"`
	State                    *string               `json:"state,omitempty"`
	PostalCode               *string               `json:"postalCode,omitempty"`
	Country                  *string               `json:"country,omitempty"`
	LogoURL                  *string               `json:"logoUrl,omitempty" validate:"omitempty,url"`
	Photos                   []MediaAsset          `json:"photos" validate:"dive"`
	PartnerLogos             []PartnerLogo         `json:"partnerLogos" validate:"dive"`
	Website                  *string               `json:"website,omitempty" validate:"omitempty,url"`
	Linkedin                 *string               `json:"linkedin,omitempty" validate:"omitempty,url"`
	Compliance               []string              `json:"compliance"`
	ComplianceDocs           []MediaAsset          `json:"complianceDocs" validate:"dive"`
	AuditPassed              bool                  `json:"auditPassed"`
	AuditPassedAt            *string               `json:"auditPassedAt,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	LabStatus                LabStatus             `json:"labStatus" validate:"lab_status"`
	IsVisible                *bool                 `json:"isVisible"`
	Equipment                []string              `json:"equipment"`
	PriorityEquipment        []string              `json:"priorityEquipment" validate:"max=3"`
	Techniques               []Technique           `json:"techniques" validate:"dive"`
	FocusAreas               []string              `json:"focusAreas"`
	ErcDisciplineCodes       []string              `json:"ercDisciplineCodes" validate:"dive,erc_code"`
	PrimaryErcDisciplineCode *string               `json:"primaryErcDisciplineCode" validate:"omitempty,erc_code"`
	ErcDisciplines           []ErcDisciplineOption `json:"ercDisciplines" validate:"dive"`
	OffersLabSpace           bool                  `json:"offersLabSpace"`
	Offers                   []OfferOption         `json:"offers" validate:"dive,offer_option"`
	TeamMembers              []LabTeamMember       `json:"teamMembers" validate:"dive"`
	SiretNumber              *string               `json:"siretNumber,omitempty"`
	HalStructureID           *string               `json:"halStructureId,omitempty"`
	HalPersonID              *string               `json:"halPersonId,omitempty"`
	AlternateNames           []string              `json:"alternateNames"`
	Tags                     []string              `json:"tags"`
	Field                    *string               `json:"field,omitempty"`
	Public                   *bool                 `json:"public,omitempty"`
}

// Normalize applies the preprocessing steps of the lab schema.
func (in *LabInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.LabManager = BlankToNull(in.LabManager)
	in.ContactEmail = BlankToNull(in.ContactEmail)
	in.OrgRole = blankEnum(in.OrgRole)
	in.PrimaryErcDisciplineCode = BlankToNull(in.PrimaryErcDisciplineCode)
	in.Website = normalizeURLPtr(in.Website)
}

// ApplyDefaults fills the members that have an insert-time default.
func (in *LabInput) ApplyDefaults() {
	if in.LabStatus == "" {
		in.LabStatus = LabStatusListed
	}
	if in.IsVisible == nil {
		visible := true
		in.IsVisible = &visible
	}
}

func (in *LabInput) Validate() Issues {
	return check(in)
}

// Prepare normalizes, defaults and validates an insert payload.
func (in *LabInput) Prepare() Issues {
	in.Normalize()
	in.ApplyDefaults()
	return in.Validate()
}

// Lab is the stored lab record.
type Lab struct {
	ID int64 `json:"id"`
	LabInput
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (l *Lab) Validate() Issues {
	issues := l.LabInput.Validate()
	if l.ID <= 0 {
		issues = append(issues, Issue{Path: "id", Message: "number must be greater than 0"})
	}
	return issues
}

// LabUpdate is the partial shape of a lab. Nullable members use Nullable.
type LabUpdate struct {
	Name                     *string               `json:"name,omitempty" validate:"omitempty,notblank"`
	LabManager               Nullable[string]      `json:"labManager"`
	ContactEmail             Nullable[string]      `json:"contactEmail" validate:"omitempty,email"`
	OwnerUserID              *string               `json:"ownerUserId,omitempty" validate:"omitempty,uuid"`
	DescriptionShort         *string               `json:"descriptionShort,omitempty" validate:"omitempty,max=350"`
	DescriptionLong          *string               `json:"descriptionLong,omitempty" validate:"omitempty,max=8000"`
	OrgRole                  Nullable[string]      `json:"orgRole" validate:"omitempty,org_role"`
	AddressLine1             *string               `json:"addressLine1,omitempty"`
	AddressLine2             *string               `json:"addressLine2,omitempty"`
	City                     *string               `json:"city,omitempty"`
	State                    *string               `json:"state,omitempty"`
	PostalCode               *string               `json:"postalCode,omitempty"`
	Country                  *string               `json:"country,omitempty"`
	LogoURL                  *string               `json:"logoUrl,omitempty" validate:"omitempty,url"`
	Photos                   []MediaAsset          `json:"photos,omitempty" validate:"omitempty,dive"`
	PartnerLogos             []PartnerLogo         `json:"partnerLogos,omitempty" validate:"omitempty,dive"`
	Website                  Nullable[string]      `json:"website" validate:"omitempty,url"`
	Linkedin                 *string               `json:"linkedin,omitempty" validate:"omitempty,url"`
	Compliance               []string              `json:"compliance,omitempty"`
	ComplianceDocs           []MediaAsset          `json:"complianceDocs,omitempty" validate:"omitempty,dive"`
	AuditPassed              *bool                 `json:"auditPassed,omitempty"`
	AuditPassedAt            *string               `json:"auditPassedAt,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	LabStatus                *LabStatus            `json:"labStatus,omitempty" validate:"omitempty,lab_status"`
	IsVisible                *bool                 `json:"isVisible,omitempty"`
	Equipment                []string              `json:"equipment,omitempty"`
	PriorityEquipment        []string              `json:"priorityEquipment,omitempty" validate:"omitempty,max=3"`
	Techniques               []Technique           `json:"techniques,omitempty" validate:"omitempty,dive"`
	FocusAreas               []string              `json:"focusAreas,omitempty"`
	ErcDisciplineCodes       []string              `json:"ercDisciplineCodes,omitempty" validate:"omitempty,dive,erc_code"`
	PrimaryErcDisciplineCode Nullable[string]      `json:"primaryErcDisciplineCode" validate:"omitempty,erc_code"`
	ErcDisciplines           []ErcDisciplineOption `json:"ercDisciplines,omitempty" validate:"omitempty,dive"`
	OffersLabSpace           *bool                 `json:"offersLabSpace,omitempty"`
	Offers                   []OfferOption         `json:"offers,omitempty" validate:"omitempty,dive,offer_option"`
	TeamMembers              []LabTeamMember       `json:"teamMembers,omitempty" validate:"omitempty,dive"`
	SiretNumber              *string               `json:"siretNumber,omitempty"`
	HalStructureID           *string               `json:"halStructureId,omitempty"`
	HalPersonID              *string               `json:"halPersonId,omitempty"`
	AlternateNames           []string              `json:"alternateNames,omitempty"`
	Tags                     []string              `json:"tags,omitempty"`
	Field                    *string               `json:"field,omitempty"`
	Public                   *bool                 `json:"public,omitempty"`
}

func (u *LabUpdate) Normalize() {
	u.Name = trimPtr(u.Name)
	blankNullable(&u.LabManager)
	blankNullable(&u.ContactEmail)
	blankNullable(&u.OrgRole)
	blankNullable(&u.PrimaryErcDisciplineCode)
	normalizeURLNullable(&u.Website)
}

// IsEmpty reports whether the payload carries no member at all.
func (u *LabUpdate) IsEmpty() bool {
	return countPresent(u) == 0
}

func (u *LabUpdate) Validate() Issues {
	if u.IsEmpty() {
		return Issues{emptyUpdateIssue}
	}
	return check(u)
}

func (u *LabUpdate) Prepare() Issues {
	u.Normalize()
	return u.Validate()
}

// TouchesVerification reports whether the payload changes a field that only
// administrators may set.
func (u *LabUpdate) TouchesVerification() bool {
	return u.LabStatus != nil || u.AuditPassed != nil || u.AuditPassedAt != nil
}

// ApplyTo merges the present members of u into in.
func (u *LabUpdate) ApplyTo(in *LabInput) {
	setIf(&in.Name, u.Name)
	mergeNullable(&in.LabManager, u.LabManager)
	mergeNullable(&in.ContactEmail, u.ContactEmail)
	setPtrIf(&in.OwnerUserID, u.OwnerUserID)
	setPtrIf(&in.DescriptionShort, u.DescriptionShort)
	setPtrIf(&in.DescriptionLong, u.DescriptionLong)
	if u.OrgRole.Present {
		in.OrgRole = nil
		if u.OrgRole.Valid {
			role := OrgRole(u.OrgRole.Value)
			in.OrgRole = &role
		}
	}
	setPtrIf(&in.AddressLine1, u.AddressLine1)
	setPtrIf(&in.AddressLine2, u.AddressLine2)
	setPtrIf(&in.City, u.City)
	setPtrIf(&in.State, u.State)
	setPtrIf(&in.PostalCode, u.PostalCode)
	setPtrIf(&in.Country, u.Country)
	setPtrIf(&in.LogoURL, u.LogoURL)
	setSliceIf(&in.Photos, u.Photos)
	setSliceIf(&in.PartnerLogos, u.PartnerLogos)
	mergeNullable(&in.Website, u.Website)
	setPtrIf(&in.Linkedin, u.Linkedin)
	setSliceIf(&in.Compliance, u.Compliance)
	setSliceIf(&in.ComplianceDocs, u.ComplianceDocs)
	setIf(&in.AuditPassed, u.AuditPassed)
	setPtrIf(&in.AuditPassedAt, u.AuditPassedAt)
	setIf(&in.LabStatus, u.LabStatus)
	setPtrIf(&in.IsVisible, u.IsVisible)
	setSliceIf(&in.Equipment, u.Equipment)
	setSliceIf(&in.PriorityEquipment, u.PriorityEquipment)
	setSliceIf(&in.Techniques, u.Techniques)
	setSliceIf(&in.FocusAreas, u.FocusAreas)
	setSliceIf(&in.ErcDisciplineCodes, u.ErcDisciplineCodes)
	mergeNullable(&in.PrimaryErcDisciplineCode, u.PrimaryErcDisciplineCode)
	setSliceIf(&in.ErcDisciplines, u.ErcDisciplines)
	setIf(&in.OffersLabSpace, u.OffersLabSpace)
	setSliceIf(&in.Offers, u.Offers)
	setSliceIf(&in.TeamMembers, u.TeamMembers)
	setPtrIf(&in.SiretNumber, u.SiretNumber)
	setPtrIf(&in.HalStructureID, u.HalStructureID)
	setPtrIf(&in.HalPersonID, u.HalPersonID)
	setSliceIf(&in.AlternateNames, u.AlternateNames)
	setSliceIf(&in.Tags, u.Tags)
	setPtrIf(&in.Field, u.Field)
	setPtrIf(&in.Public, u.Public)
}

func blankEnum[T ~string](v *T) *T {
	if v == nil || strings.TrimSpace(string(*v)) == "" {
		return nil
	}
	return v
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setPtrIf[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func setSliceIf[T any](dst *[]T, src []T) {
	if src != nil {
		*dst = append([]T{}, src...)
	}
}

func mergeNullable[T any](dst **T, src Nullable[T]) {
	if src.Present {
		*dst = src.Ptr()
	}
}
