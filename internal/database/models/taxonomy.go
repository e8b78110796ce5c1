package models

// LabOfferTaxonomyOption is a selectable value for one offer option group
type LabOfferTaxonomyOption struct {
	BaseModel
	OptionGroup string `json:"option_group" gorm:"type:varchar(40);not null;uniqueIndex:idx_taxonomy_group_code,priority:1"`
	Code        string `json:"code" gorm:"type:varchar(80);not null;uniqueIndex:idx_taxonomy_group_code,priority:2"`
	LabelEn     string `json:"label_en" gorm:"size:255;not null"`
	LabelFr     string `json:"label_fr" gorm:"size:255;not null"`
	IsActive    bool   `json:"is_active" gorm:"not null"`
	SortOrder   int    `json:"sort_order" gorm:"not null"`
}

// TableName returns the table name for LabOfferTaxonomyOption
func (LabOfferTaxonomyOption) TableName() string {
	return "lab_offer_taxonomy_options"
}

// ErcDisciplineOption is an ERC panel reference entry
type ErcDisciplineOption struct {
	Code   string `json:"code" gorm:"type:varchar(8);primaryKey"`
	Domain string `json:"domain" gorm:"type:varchar(2);not null;index"`
	Title  string `json:"title" gorm:"size:255;not null"`
}

// TableName returns the table name for ErcDisciplineOption
func (ErcDisciplineOption) TableName() string {
	return "erc_discipline_options"
}
