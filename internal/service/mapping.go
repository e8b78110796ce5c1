package service

import (
	"fmt"
	"time"

	"glass-connect-backend/internal/database/models"
	"glass-connect-backend/internal/schema"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Models store list columns as text[] and composite lists as jsonb. The
// helpers below convert in both directions and never return nil slices, so
// read views always carry [] for empty lists.

func stringArray[T ~string](values []T) pq.StringArray {
	out := make(pq.StringArray, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func fromStringArray[T ~string](values pq.StringArray) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, T(v))
	}
	return out
}

func jsonSlice[T any](values []T) datatypes.JSONSlice[T] {
	if values == nil {
		return datatypes.JSONSlice[T]{}
	}
	return datatypes.JSONSlice[T](values)
}

func fromJSONSlice[T any](values datatypes.JSONSlice[T]) []T {
	if values == nil {
		return []T{}
	}
	return []T(values)
}

func parseOwner(id *string) (*uuid.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return nil, fmt.Errorf("invalid owner user id: %w", err)
	}
	return &parsed, nil
}

func formatOwner(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func parseTimestamp(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", *value, err)
	}
	return &t, nil
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func boolPtr(b bool) *bool {
	return &b
}

// labInput rebuilds the insert shape of a stored lab.
func labInput(m *models.Lab) schema.LabInput {
	in := schema.LabInput{
		Name:                     m.Name,
		LabManager:               m.LabManager,
		ContactEmail:             m.ContactEmail,
		OwnerUserID:              formatOwner(m.OwnerUserID),
		DescriptionShort:         m.DescriptionShort,
		DescriptionLong:          m.DescriptionLong,
		AddressLine1:             m.AddressLine1,
		AddressLine2:             m.AddressLine2,
		City:                     m.City,
		State:                    m.State,
		PostalCode:               m.PostalCode,
		Country:                  m.Country,
		LogoURL:                  m.LogoURL,
		Photos:                   fromJSONSlice(m.Photos),
		PartnerLogos:             fromJSONSlice(m.PartnerLogos),
		Website:                  m.Website,
		Linkedin:                 m.Linkedin,
		Compliance:               fromStringArray[string](m.Compliance),
		ComplianceDocs:           fromJSONSlice(m.ComplianceDocs),
		AuditPassed:              m.AuditPassed,
		AuditPassedAt:            formatTimestamp(m.AuditPassedAt),
		LabStatus:                schema.LabStatus(m.LabStatus),
		IsVisible:                boolPtr(m.IsVisible),
		Equipment:                fromStringArray[string](m.Equipment),
		PriorityEquipment:        fromStringArray[string](m.PriorityEquipment),
		Techniques:               fromJSONSlice(m.Techniques),
		FocusAreas:               fromStringArray[string](m.FocusAreas),
		ErcDisciplineCodes:       fromStringArray[string](m.ErcDisciplineCodes),
		PrimaryErcDisciplineCode: m.PrimaryErcDisciplineCode,
		ErcDisciplines:           fromJSONSlice(m.ErcDisciplines),
		OffersLabSpace:           m.OffersLabSpace,
		Offers:                   fromStringArray[schema.OfferOption](m.Offers),
		TeamMembers:              fromJSONSlice(m.TeamMembers),
		SiretNumber:              m.SiretNumber,
		HalStructureID:           m.HalStructureID,
		HalPersonID:              m.HalPersonID,
		AlternateNames:           fromStringArray[string](m.AlternateNames),
		Tags:                     fromStringArray[string](m.Tags),
		Field:                    m.Field,
		Public:                   m.Public,
	}
	if m.OrgRole != nil {
		role := schema.OrgRole(*m.OrgRole)
		in.OrgRole = &role
	}
	return in
}

// toLab maps a stored lab to its read view.
func toLab(m *models.Lab) *schema.Lab {
	return &schema.Lab{
		ID:        m.ID,
		LabInput:  labInput(m),
		CreatedAt: timePtr(m.CreatedAt),
		UpdatedAt: timePtr(m.UpdatedAt),
	}
}

// applyLabInput writes a validated lab payload onto the model. The ID and
// timestamps are left untouched.
func applyLabInput(m *models.Lab, in *schema.LabInput) error {
	owner, err := parseOwner(in.OwnerUserID)
	if err != nil {
		return err
	}
	auditPassedAt, err := parseTimestamp(in.AuditPassedAt)
	if err != nil {
		return err
	}

	m.OwnerUserID = owner
	m.Name = in.Name
	m.LabManager = in.LabManager
	m.ContactEmail = in.ContactEmail
	m.DescriptionShort = in.DescriptionShort
	m.DescriptionLong = in.DescriptionLong
	m.OrgRole = nil
	if in.OrgRole != nil {
		role := string(*in.OrgRole)
		m.OrgRole = &role
	}
	m.AddressLine1 = in.AddressLine1
	m.AddressLine2 = in.AddressLine2
	m.City = in.City
	m.State = in.State
	m.PostalCode = in.PostalCode
	m.Country = in.Country
	m.LogoURL = in.LogoURL
	m.Photos = jsonSlice(in.Photos)
	m.PartnerLogos = jsonSlice(in.PartnerLogos)
	m.Website = in.Website
	m.Linkedin = in.Linkedin
	m.Compliance = stringArray(in.Compliance)
	m.ComplianceDocs = jsonSlice(in.ComplianceDocs)
	m.AuditPassed = in.AuditPassed
	m.AuditPassedAt = auditPassedAt
	m.LabStatus = string(in.LabStatus)
	m.IsVisible = in.IsVisible == nil || *in.IsVisible
	m.Equipment = stringArray(in.Equipment)
	m.PriorityEquipment = stringArray(in.PriorityEquipment)
	m.Techniques = jsonSlice(in.Techniques)
	m.FocusAreas = stringArray(in.FocusAreas)
	m.ErcDisciplineCodes = stringArray(in.ErcDisciplineCodes)
	m.PrimaryErcDisciplineCode = in.PrimaryErcDisciplineCode
	m.ErcDisciplines = jsonSlice(in.ErcDisciplines)
	m.OffersLabSpace = in.OffersLabSpace
	m.Offers = stringArray(in.Offers)
	m.TeamMembers = jsonSlice(in.TeamMembers)
	m.SiretNumber = in.SiretNumber
	m.HalStructureID = in.HalStructureID
	m.HalPersonID = in.HalPersonID
	m.AlternateNames = stringArray(in.AlternateNames)
	m.Tags = stringArray(in.Tags)
	m.Field = in.Field
	m.Public = in.Public
	return nil
}

// teamInput rebuilds the insert shape of a stored team.
func teamInput(m *models.Team) schema.TeamInput {
	labIDs := make([]int64, 0, len(m.Labs))
	for _, l := range m.Labs {
		labIDs = append(labIDs, l.ID)
	}
	return schema.TeamInput{
		Name:              m.Name,
		DescriptionShort:  m.DescriptionShort,
		DescriptionLong:   m.DescriptionLong,
		Field:             m.Field,
		LogoURL:           m.LogoURL,
		Website:           m.Website,
		Linkedin:          m.Linkedin,
		Photos:            fromJSONSlice(m.Photos),
		IsVisible:         boolPtr(m.IsVisible),
		Equipment:         fromStringArray[string](m.Equipment),
		PriorityEquipment: fromStringArray[string](m.PriorityEquipment),
		Techniques:        fromJSONSlice(m.Techniques),
		FocusAreas:        fromStringArray[string](m.FocusAreas),
		Members:           fromJSONSlice(m.Members),
		LabIDs:            labIDs,
		OwnerUserID:       formatOwner(m.OwnerUserID),
	}
}

// toTeamLab maps a linked lab to the summary embedded in team views. The
// subscription tier is the lab status.
func toTeamLab(l *models.Lab) schema.TeamLab {
	tier := schema.LabStatus(l.LabStatus)
	return schema.TeamLab{
		ID:               l.ID,
		Name:             l.Name,
		City:             l.City,
		Country:          l.Country,
		LogoURL:          l.LogoURL,
		SubscriptionTier: &tier,
	}
}

// toTeam maps a stored team with preloaded labs to its read view.
func toTeam(m *models.Team) *schema.Team {
	labs := make([]schema.TeamLab, 0, len(m.Labs))
	for i := range m.Labs {
		labs = append(labs, toTeamLab(&m.Labs[i]))
	}
	return &schema.Team{
		ID:        m.ID,
		TeamInput: teamInput(m),
		Labs:      labs,
		CreatedAt: timePtr(m.CreatedAt),
		UpdatedAt: timePtr(m.UpdatedAt),
	}
}

// applyTeamInput writes a validated team payload onto the model. Labs are
// resolved by the caller.
func applyTeamInput(m *models.Team, in *schema.TeamInput, labs []models.Lab) error {
	owner, err := parseOwner(in.OwnerUserID)
	if err != nil {
		return err
	}
	m.OwnerUserID = owner
	m.Name = in.Name
	m.DescriptionShort = in.DescriptionShort
	m.DescriptionLong = in.DescriptionLong
	m.Field = in.Field
	m.LogoURL = in.LogoURL
	m.Website = in.Website
	m.Linkedin = in.Linkedin
	m.Photos = jsonSlice(in.Photos)
	m.IsVisible = in.IsVisible == nil || *in.IsVisible
	m.Equipment = stringArray(in.Equipment)
	m.PriorityEquipment = stringArray(in.PriorityEquipment)
	m.Techniques = jsonSlice(in.Techniques)
	m.FocusAreas = stringArray(in.FocusAreas)
	m.Members = jsonSlice(in.Members)
	m.Labs = labs
	return nil
}

// offerProfileInput rebuilds the insert shape of a stored offer profile.
func offerProfileInput(m *models.LabOfferProfile) schema.LabOfferProfileInput {
	return schema.LabOfferProfileInput{
		SupportsBenchRental:     m.SupportsBenchRental,
		SupportsEquipmentAccess: m.SupportsEquipmentAccess,
		RentableLabLevels:       fromStringArray[schema.RentableLabLevel](m.RentableLabLevels),
		OfferFormats:            fromStringArray[schema.OfferFormat](m.OfferFormats),
		ApplicationModes:        fromStringArray[schema.ApplicationMode](m.ApplicationModes),
		OperationalStatus:       schema.OperationalStatus(m.OperationalStatus),
		ExpectedOpeningYear:     m.ExpectedOpeningYear,
		TechnicalServices:       fromStringArray[string](m.TechnicalServices),
		GeneralServices:         fromStringArray[string](m.GeneralServices),
		PricingModel:            schema.PricingModel(m.PricingModel),
		PriceFrom:               m.PriceFrom,
		PriceTo:                 m.PriceTo,
		Currency:                m.Currency,
		PricingNotes:            m.PricingNotes,
		AdditionalInfo:          m.AdditionalInfo,
		TotalAreaM2:             m.TotalAreaM2,
		MinRentAreaM2:           m.MinRentAreaM2,
		MaxRentAreaM2:           m.MaxRentAreaM2,
	}
}

// toOfferProfile maps a stored offer profile to its read view.
func toOfferProfile(m *models.LabOfferProfile) *schema.LabOfferProfile {
	return &schema.LabOfferProfile{
		LabID:                m.LabID,
		LabOfferProfileInput: offerProfileInput(m),
		CreatedAt:            timePtr(m.CreatedAt),
		UpdatedAt:            timePtr(m.UpdatedAt),
	}
}

// newOfferProfileModel builds the row for a validated offer profile payload.
func newOfferProfileModel(labID int64, in *schema.LabOfferProfileInput) *models.LabOfferProfile {
	return &models.LabOfferProfile{
		LabID:                   labID,
		SupportsBenchRental:     in.SupportsBenchRental,
		SupportsEquipmentAccess: in.SupportsEquipmentAccess,
		RentableLabLevels:       stringArray(in.RentableLabLevels),
		OfferFormats:            stringArray(in.OfferFormats),
		ApplicationModes:        stringArray(in.ApplicationModes),
		OperationalStatus:       string(in.OperationalStatus),
		ExpectedOpeningYear:     in.ExpectedOpeningYear,
		TechnicalServices:       stringArray(in.TechnicalServices),
		GeneralServices:         stringArray(in.GeneralServices),
		PricingModel:            string(in.PricingModel),
		PriceFrom:               in.PriceFrom,
		PriceTo:                 in.PriceTo,
		Currency:                in.Currency,
		PricingNotes:            in.PricingNotes,
		AdditionalInfo:          in.AdditionalInfo,
		TotalAreaM2:             in.TotalAreaM2,
		MinRentAreaM2:           in.MinRentAreaM2,
		MaxRentAreaM2:           in.MaxRentAreaM2,
	}
}

func toTaxonomyOption(m *models.LabOfferTaxonomyOption) schema.LabOfferTaxonomyOption {
	return schema.LabOfferTaxonomyOption{
		OptionGroup: schema.OptionGroup(m.OptionGroup),
		Code:        m.Code,
		LabelEn:     m.LabelEn,
		LabelFr:     m.LabelFr,
		IsActive:    m.IsActive,
		SortOrder:   m.SortOrder,
	}
}

func newTaxonomyOptionModel(o *schema.LabOfferTaxonomyOption) *models.LabOfferTaxonomyOption {
	return &models.LabOfferTaxonomyOption{
		OptionGroup: string(o.OptionGroup),
		Code:        o.Code,
		LabelEn:     o.LabelEn,
		LabelFr:     o.LabelFr,
		IsActive:    o.IsActive,
		SortOrder:   o.SortOrder,
	}
}

func toErcDiscipline(m *models.ErcDisciplineOption) schema.ErcDisciplineOption {
	return schema.ErcDisciplineOption{
		Code:   m.Code,
		Domain: schema.ErcDomain(m.Domain),
		Title:  m.Title,
	}
}

func newErcDisciplineModel(o *schema.ErcDisciplineOption) *models.ErcDisciplineOption {
	return &models.ErcDisciplineOption{
		Code:   o.Code,
		Domain: string(o.Domain),
		Title:  o.Title,
	}
}
