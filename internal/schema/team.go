package schema

import (
	"strings"
	"time"
)

type TeamMember struct {
	ID       *int64  `json:"id,omitempty" validate:"omitempty,gt=0"`
	Name     string  `json:"name" validate:"required,notblank"`
	Role     string  `json:"role" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Linkedin *string `json:"linkedin,omitempty" validate:"omitempty,url"`
	Website  *string `json:"website,omitempty" validate:"omitempty,url"`
	IsLead   bool    `json:"isLead"`
}

// TeamLab is the lab summary embedded in a team read view.
type TeamLab struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	City             *string    `json:"city,omitempty"`
	Country          *string    `json:"country,omitempty"`
	LogoURL          *string    `json:"logoUrl,omitempty"`
	SubscriptionTier *LabStatus `json:"subscriptionTier,omitempty"`
}

type TeamInput struct {
	Name              string       `json:"name" validate:"required,notblank"`
	DescriptionShort  *string      `json:"descriptionShort,omitempty" validate:"omitempty,max=350"`
	DescriptionLong   *string      `json:"descriptionLong,omitempty" validate:"omitempty,max=8000"`
	Field             *string      `json:"field,omitempty"`
	LogoURL           *string      `json:"logoUrl,omitempty" validate:"omitempty,url"`
	Website           *string      `json:"website,omitempty" validate:"omitempty,url"`
	Linkedin          *string      `json:"linkedin,omitempty" validate:"omitempty,url"`
	Photos            []MediaAsset `json:"photos" validate:"max=2,dive"`
	IsVisible         *bool        `json:"isVisible"`
	Equipment         []string     `json:"equipment"`
	PriorityEquipment []string     `json:"priorityEquipment" validate:"max=3"`
	Techniques        []Technique  `json:"techniques" validate:"dive"`
	FocusAreas        []string     `json:"focusAreas"`
	Members           []TeamMember `json:"members" validate:"dive"`
	LabIDs            []int64      `json:"labIds" validate:"dive,gt=0"`
	OwnerUserID       *string      `json:"ownerUserId,omitempty" validate:"omitempty,uuid"`
}

func (in *TeamInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Website = normalizeURLPtr(in.Website)
}

func (in *TeamInput) ApplyDefaults() {
	if in.IsVisible == nil {
		visible := true
		in.IsVisible = &visible
	}
}

func (in *TeamInput) Validate() Issues {
	return check(in)
}

func (in *TeamInput) Prepare() Issues {
	in.Normalize()
	in.ApplyDefaults()
	return in.Validate()
}

// Team is the stored team together with its lab summaries.
type Team struct {
	ID int64 `json:"id"`
	TeamInput
	Labs      []TeamLab  `json:"labs"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (t *Team) Validate() Issues {
	issues := t.TeamInput.Validate()
	if t.ID <= 0 {
		issues = append(issues, Issue{Path: "id", Message: "number must be greater than 0"})
	}
	return issues
}

type TeamUpdate struct {
	Name              *string          `json:"name,omitempty" validate:"omitempty,notblank"`
	DescriptionShort  *string          `json:"descriptionShort,omitempty" validate:"omitempty,max=350"`
	DescriptionLong   *string          `json:"descriptionLong,omitempty" validate:"omitempty,max=8000"`
	Field             *string          `json:"field,omitempty"`
	LogoURL           *string          `json:"logoUrl,omitempty" validate:"omitempty,url"`
	Website           Nullable[string] `json:"website" validate:"omitempty,url"`
	Linkedin          *string          `json:"linkedin,omitempty" validate:"omitempty,url"`
	Photos            []MediaAsset     `json:"photos,omitempty" validate:"omitempty,max=2,dive"`
	IsVisible         *bool            `json:"isVisible,omitempty"`
	Equipment         []string         `json:"equipment,omitempty"`
	PriorityEquipment []string         `json:"priorityEquipment,omitempty" validate:"omitempty,max=3"`
	Techniques        []Technique      `json:"techniques,omitempty" validate:"omitempty,dive"`
	FocusAreas        []string         `json:"focusAreas,omitempty"`
	Members           []TeamMember     `json:"members,omitempty" validate:"omitempty,dive"`
	LabIDs            []int64          `json:"labIds,omitempty" validate:"omitempty,dive,gt=0"`
	OwnerUserID       *string          `json:"ownerUserId,omitempty" validate:"omitempty,uuid"`
}

func (u *TeamUpdate) Normalize() {
	u.Name = trimPtr(u.Name)
	normalizeURLNullable(&u.Website)
}

func (u *TeamUpdate) IsEmpty() bool {
	return countPresent(u) == 0
}

func (u *TeamUpdate) Validate() Issues {
	if u.IsEmpty() {
		return Issues{emptyUpdateIssue}
	}
	return check(u)
}

func (u *TeamUpdate) Prepare() Issues {
	u.Normalize()
	return u.Validate()
}

func (u *TeamUpdate) ApplyTo(in *TeamInput) {
	setIf(&in.Name, u.Name)
	setPtrIf(&in.DescriptionShort, u.DescriptionShort)
	setPtrIf(&in.DescriptionLong, u.DescriptionLong)
	setPtrIf(&in.Field, u.Field)
	setPtrIf(&in.LogoURL, u.LogoURL)
	mergeNullable(&in.Website, u.Website)
	setPtrIf(&in.Linkedin, u.Linkedin)
	setSliceIf(&in.Photos, u.Photos)
	setPtrIf(&in.IsVisible, u.IsVisible)
	setSliceIf(&in.Equipment, u.Equipment)
	setSliceIf(&in.PriorityEquipment, u.PriorityEquipment)
	setSliceIf(&in.Techniques, u.Techniques)
	setSliceIf(&in.FocusAreas, u.FocusAreas)
	setSliceIf(&in.Members, u.Members)
	setSliceIf(&in.LabIDs, u.LabIDs)
	setPtrIf(&in.OwnerUserID, u.OwnerUserID)
}
