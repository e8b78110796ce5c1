package schema

import (
	"encoding/json"
	"time"
)

// LabOfferProfileInput is the insert shape of a lab offer profile.
type LabOfferProfileInput struct {
	SupportsBenchRental     bool               `json:"supportsBenchRental"`
	SupportsEquipmentAccess bool               `json:"supportsEquipmentAccess"`
	RentableLabLevels       []RentableLabLevel `json:"rentableLabLevels" validate:"dive,rentable_level"`
	OfferFormats            []OfferFormat      `json:"offerFormats" validate:"dive,offer_format"`
	ApplicationModes        []ApplicationMode  `json:"applicationModes" validate:"dive,application_mode"`
	OperationalStatus       OperationalStatus  `json:"operationalStatus" validate:"operational_status"`
	ExpectedOpeningYear     *int               `json:"expectedOpeningYear" validate:"omitempty,gte=2024,lte=2100"`
	TechnicalServices       []string           `json:"technicalServices"`
	GeneralServices         []string           `json:"generalServices"`
	PricingModel            PricingModel       `json:"pricingModel" validate:"pricing_model"`
	PriceFrom               *float64           `json:"priceFrom" validate:"omitempty,gte=0"`
	PriceTo                 *float64           `json:"priceTo" validate:"omitempty,gte=0"`
	Currency                *string            `json:"currency" validate:"omitempty,currency3"`
	PricingNotes            *string            `json:"pricingNotes" validate:"omitempty,max=4000"`
	AdditionalInfo          *string            `json:"additionalInfo" validate:"omitempty,max=8000"`
	TotalAreaM2             *float64           `json:"totalAreaM2" validate:"omitempty,gte=0"`
	MinRentAreaM2           *float64           `json:"minRentAreaM2" validate:"omitempty,gte=0"`
	MaxRentAreaM2           *float64           `json:"maxRentAreaM2" validate:"omitempty,gte=0"`
}

// amountMembers holds the raw amount members of an offer payload. The
// outer decode struct declares them at depth zero so they shadow the typed
// fields of the embedded payload.
type amountMembers struct {
	PriceFrom     json.RawMessage
	PriceTo       json.RawMessage
	TotalAreaM2   json.RawMessage
	MinRentAreaM2 json.RawMessage
	MaxRentAreaM2 json.RawMessage
}

func (a amountMembers) decode(visit func(path string, n Nullable[float64])) error {
	members := []struct {
		path string
		raw  json.RawMessage
	}{
		{"priceFrom", a.PriceFrom},
		{"priceTo", a.PriceTo},
		{"totalAreaM2", a.TotalAreaM2},
		{"minRentAreaM2", a.MinRentAreaM2},
		{"maxRentAreaM2", a.MaxRentAreaM2},
	}
	for _, m := range members {
		n, err := decodeAmount(m.path, m.raw)
		if err != nil {
			return err
		}
		visit(m.path, n)
	}
	return nil
}

// UnmarshalJSON accepts amounts as numbers, numeric strings, "" or null.
func (p *LabOfferProfileInput) UnmarshalJSON(data []byte) error {
	type plain LabOfferProfileInput
	aux := struct {
		*plain
		PriceFrom     json.RawMessage `json:"priceFrom"`
		PriceTo       json.RawMessage `json:"priceTo"`
		TotalAreaM2   json.RawMessage `json:"totalAreaM2"`
		MinRentAreaM2 json.RawMessage `json:"minRentAreaM2"`
		MaxRentAreaM2 json.RawMessage `json:"maxRentAreaM2"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	amounts := amountMembers{aux.PriceFrom, aux.PriceTo, aux.TotalAreaM2, aux.MinRentAreaM2, aux.MaxRentAreaM2}
	return amounts.decode(func(path string, n Nullable[float64]) {
		*p.amount(path) = n.Ptr()
	})
}

func (p *LabOfferProfileInput) amount(path string) **float64 {
	switch path {
	case "priceFrom":
		return &p.PriceFrom
	case "priceTo":
		return &p.PriceTo
	case "totalAreaM2":
		return &p.TotalAreaM2
	case "minRentAreaM2":
		return &p.MinRentAreaM2
	default:
		return &p.MaxRentAreaM2
	}
}

func (p *LabOfferProfileInput) Normalize() {
	if c, ok := UppercaseCurrency(derefOr(p.Currency)).(string); ok {
		p.Currency = &c
	} else {
		p.Currency = nil
	}
	p.PricingNotes = BlankToNull(p.PricingNotes)
	p.AdditionalInfo = BlankToNull(p.AdditionalInfo)
}

func (p *LabOfferProfileInput) ApplyDefaults() {
	if p.OperationalStatus == "" {
		p.OperationalStatus = OperationalOpen
	}
	if p.PricingModel == "" {
		p.PricingModel = PricingRequestQuote
	}
	p.RentableLabLevels = nonNil(p.RentableLabLevels)
	p.OfferFormats = nonNil(p.OfferFormats)
	p.ApplicationModes = nonNil(p.ApplicationModes)
	p.TechnicalServices = nonNil(p.TechnicalServices)
	p.GeneralServices = nonNil(p.GeneralServices)
}

// Validate runs field rules and then the cross-field rules in order: price
// ordering, area ordering, opening year. Every failure is reported.
func (p *LabOfferProfileInput) Validate() Issues {
	return check(p)
}

func (p *LabOfferProfileInput) Prepare() Issues {
	p.Normalize()
	p.ApplyDefaults()
	return p.Validate()
}

// LabOfferProfile is the stored offer profile, one per lab.
type LabOfferProfile struct {
	LabID int64 `json:"labId"`
	LabOfferProfileInput
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (p *LabOfferProfile) UnmarshalJSON(data []byte) error {
	var meta struct {
		LabID     int64      `json:"labId"`
		CreatedAt *time.Time `json:"createdAt"`
		UpdatedAt *time.Time `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return err
	}
	if err := p.LabOfferProfileInput.UnmarshalJSON(data); err != nil {
		return err
	}
	p.LabID, p.CreatedAt, p.UpdatedAt = meta.LabID, meta.CreatedAt, meta.UpdatedAt
	return nil
}

func (p *LabOfferProfile) Validate() Issues {
	issues := p.LabOfferProfileInput.Validate()
	if p.LabID <= 0 {
		issues = append(issues, Issue{Path: "labId", Message: "number must be greater than 0"})
	}
	return issues
}

// LabOfferProfileUpdate is the partial shape of an offer profile. Its
// cross-field rules only see the members present in the payload; callers
// that hold the stored record should merge with ApplyTo and validate the
// result again.
type LabOfferProfileUpdate struct {
	SupportsBenchRental     *bool              `json:"supportsBenchRental,omitempty"`
	SupportsEquipmentAccess *bool              `json:"supportsEquipmentAccess,omitempty"`
	RentableLabLevels       []RentableLabLevel `json:"rentableLabLevels,omitempty" validate:"omitempty,dive,rentable_level"`
	OfferFormats            []OfferFormat      `json:"offerFormats,omitempty" validate:"omitempty,dive,offer_format"`
	ApplicationModes        []ApplicationMode  `json:"applicationModes,omitempty" validate:"omitempty,dive,application_mode"`
	OperationalStatus       *OperationalStatus `json:"operationalStatus,omitempty" validate:"omitempty,operational_status"`
	ExpectedOpeningYear     Nullable[int]      `json:"expectedOpeningYear" validate:"omitempty,gte=2024,lte=2100"`
	TechnicalServices       []string           `json:"technicalServices,omitempty"`
	GeneralServices         []string           `json:"generalServices,omitempty"`
	PricingModel            *PricingModel      `json:"pricingModel,omitempty" validate:"omitempty,pricing_model"`
	PriceFrom               Nullable[float64]  `json:"priceFrom" validate:"omitempty,gte=0"`
	PriceTo                 Nullable[float64]  `json:"priceTo" validate:"omitempty,gte=0"`
	Currency                Nullable[string]   `json:"currency" validate:"omitempty,currency3"`
	PricingNotes            Nullable[string]   `json:"pricingNotes" validate:"omitempty,max=4000"`
	AdditionalInfo          Nullable[string]   `json:"additionalInfo" validate:"omitempty,max=8000"`
	TotalAreaM2             Nullable[float64]  `json:"totalAreaM2" validate:"omitempty,gte=0"`
	MinRentAreaM2           Nullable[float64]  `json:"minRentAreaM2" validate:"omitempty,gte=0"`
	MaxRentAreaM2           Nullable[float64]  `json:"maxRentAreaM2" validate:"omitempty,gte=0"`
}

func (u *LabOfferProfileUpdate) UnmarshalJSON(data []byte) error {
	type plain LabOfferProfileUpdate
	aux := struct {
		*plain
		PriceFrom     json.RawMessage `json:"priceFrom"`
		PriceTo       json.RawMessage `json:"priceTo"`
		TotalAreaM2   json.RawMessage `json:"totalAreaM2"`
		MinRentAreaM2 json.RawMessage `json:"minRentAreaM2"`
		MaxRentAreaM2 json.RawMessage `json:"maxRentAreaM2"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	amounts := amountMembers{aux.PriceFrom, aux.PriceTo, aux.TotalAreaM2, aux.MinRentAreaM2, aux.MaxRentAreaM2}
	return amounts.decode(func(path string, n Nullable[float64]) {
		if n.Present {
			*u.amount(path) = n
		}
	})
}

func (u *LabOfferProfileUpdate) amount(path string) *Nullable[float64] {
	switch path {
	case "priceFrom":
		return &u.PriceFrom
	case "priceTo":
		return &u.PriceTo
	case "totalAreaM2":
		return &u.TotalAreaM2
	case "minRentAreaM2":
		return &u.MinRentAreaM2
	default:
		return &u.MaxRentAreaM2
	}
}

func (u *LabOfferProfileUpdate) Normalize() {
	if u.Currency.Valid {
		if c, ok := UppercaseCurrency(u.Currency.Value).(string); ok {
			u.Currency = Value(c)
		} else {
			u.Currency = Null[string]()
		}
	}
	blankNullable(&u.PricingNotes)
	blankNullable(&u.AdditionalInfo)
}

func (u *LabOfferProfileUpdate) IsEmpty() bool {
	return countPresent(u) == 0
}

func (u *LabOfferProfileUpdate) Validate() Issues {
	if u.IsEmpty() {
		return Issues{emptyUpdateIssue}
	}
	return check(u)
}

func (u *LabOfferProfileUpdate) Prepare() Issues {
	u.Normalize()
	return u.Validate()
}

// ApplyTo merges the present members of u into p.
func (u *LabOfferProfileUpdate) ApplyTo(p *LabOfferProfileInput) {
	setIf(&p.SupportsBenchRental, u.SupportsBenchRental)
	setIf(&p.SupportsEquipmentAccess, u.SupportsEquipmentAccess)
	setSliceIf(&p.RentableLabLevels, u.RentableLabLevels)
	setSliceIf(&p.OfferFormats, u.OfferFormats)
	setSliceIf(&p.ApplicationModes, u.ApplicationModes)
	setIf(&p.OperationalStatus, u.OperationalStatus)
	mergeNullable(&p.ExpectedOpeningYear, u.ExpectedOpeningYear)
	setSliceIf(&p.TechnicalServices, u.TechnicalServices)
	setSliceIf(&p.GeneralServices, u.GeneralServices)
	setIf(&p.PricingModel, u.PricingModel)
	mergeNullable(&p.PriceFrom, u.PriceFrom)
	mergeNullable(&p.PriceTo, u.PriceTo)
	mergeNullable(&p.Currency, u.Currency)
	mergeNullable(&p.PricingNotes, u.PricingNotes)
	mergeNullable(&p.AdditionalInfo, u.AdditionalInfo)
	mergeNullable(&p.TotalAreaM2, u.TotalAreaM2)
	mergeNullable(&p.MinRentAreaM2, u.MinRentAreaM2)
	mergeNullable(&p.MaxRentAreaM2, u.MaxRentAreaM2)
}

func derefOr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
