package schema

import (
	"encoding/json"
	"strings"
)

// DefaultSortOrder is the display rank of options that do not set one.
const DefaultSortOrder = 100

// LabOfferTaxonomyOption is a selectable value in one option group.
type LabOfferTaxonomyOption struct {
	OptionGroup OptionGroup `json:"optionGroup" validate:"required,option_group"`
	Code        string      `json:"code" validate:"required,notblank"`
	LabelEn     string      `json:"labelEn" validate:"required,notblank"`
	LabelFr     string      `json:"labelFr" validate:"required,notblank"`
	IsActive    bool        `json:"isActive"`
	SortOrder   int         `json:"sortOrder"`
}

// NewTaxonomyOption returns an option carrying the schema defaults.
func NewTaxonomyOption(group OptionGroup, code, labelEn, labelFr string) LabOfferTaxonomyOption {
	return LabOfferTaxonomyOption{
		OptionGroup: group,
		Code:        code,
		LabelEn:     labelEn,
		LabelFr:     labelFr,
		IsActive:    true,
		SortOrder:   DefaultSortOrder,
	}
}

// UnmarshalJSON applies the isActive and sortOrder defaults to absent keys.
func (o *LabOfferTaxonomyOption) UnmarshalJSON(data []byte) error {
	type plain LabOfferTaxonomyOption
	aux := plain{IsActive: true, SortOrder: DefaultSortOrder}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*o = LabOfferTaxonomyOption(aux)
	return nil
}

func (o *LabOfferTaxonomyOption) Normalize() {
	o.Code = strings.TrimSpace(o.Code)
	o.LabelEn = strings.TrimSpace(o.LabelEn)
	o.LabelFr = strings.TrimSpace(o.LabelFr)
}

func (o *LabOfferTaxonomyOption) Validate() Issues {
	return check(o)
}

func (o *LabOfferTaxonomyOption) Prepare() Issues {
	o.Normalize()
	return o.Validate()
}

// ErcDisciplineOption is an ERC panel. The domain must match the code prefix.
type ErcDisciplineOption struct {
	Code   string    `json:"code" validate:"required,erc_code"`
	Domain ErcDomain `json:"domain" validate:"required,erc_domain"`
	Title  string    `json:"title" validate:"required,notblank"`
}

func (o *ErcDisciplineOption) Normalize() {
	o.Title = strings.TrimSpace(o.Title)
}

func (o *ErcDisciplineOption) Validate() Issues {
	return check(o)
}

func (o *ErcDisciplineOption) Prepare() Issues {
	o.Normalize()
	return o.Validate()
}
