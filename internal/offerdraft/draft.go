// Package offerdraft converts between stored lab offer profiles and the
// string-backed drafts edited in forms.
package offerdraft

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"glass-connect-backend/internal/schema"
)

// Draft is the editable form state of an offer profile. Numeric members are
// kept as the text typed by the user.
type Draft struct {
	SupportsBenchRental     bool                      `json:"supportsBenchRental"`
	SupportsEquipmentAccess bool                      `json:"supportsEquipmentAccess"`
	RentableLabLevels       []schema.RentableLabLevel `json:"rentableLabLevels"`
	OfferFormats            []schema.OfferFormat      `json:"offerFormats"`
	ApplicationModes        []schema.ApplicationMode  `json:"applicationModes"`
	OperationalStatus       schema.OperationalStatus  `json:"operationalStatus"`
	ExpectedOpeningYear     string                    `json:"expectedOpeningYear"`
	TechnicalServices       []string                  `json:"technicalServices"`
	GeneralServices         []string                  `json:"generalServices"`
	PricingModel            schema.PricingModel       `json:"pricingModel"`
	PriceFrom               string                    `json:"priceFrom"`
	PriceTo                 string                    `json:"priceTo"`
	Currency                string                    `json:"currency"`
	PricingNotes            string                    `json:"pricingNotes"`
	AdditionalInfo          string                    `json:"additionalInfo"`
	TotalAreaM2             string                    `json:"totalAreaM2"`
	MinRentAreaM2           string                    `json:"minRentAreaM2"`
	MaxRentAreaM2           string                    `json:"maxRentAreaM2"`
}

// LegacyFallback carries the pre-profile offer flags of a lab record. They
// seed the rental toggles when a lab has no offer profile yet.
type LegacyFallback struct {
	OffersLabSpace bool
	Offers         []schema.OfferOption
}

// PayloadOptions overrides the rental toggles when building a payload.
type PayloadOptions struct {
	SupportsBenchRental     *bool
	SupportsEquipmentAccess *bool
}

// FromProfile builds a draft from a stored profile. A nil profile yields the
// default draft, seeded from fallback when given.
func FromProfile(profile *schema.LabOfferProfile, fallback *LegacyFallback) Draft {
	if profile == nil {
		return Default(fallback)
	}
	p := profile.LabOfferProfileInput
	d := Draft{
		SupportsBenchRental:     p.SupportsBenchRental,
		SupportsEquipmentAccess: p.SupportsEquipmentAccess,
		RentableLabLevels:       dedupe(p.RentableLabLevels),
		OfferFormats:            dedupe(p.OfferFormats),
		ApplicationModes:        dedupe(p.ApplicationModes),
		OperationalStatus:       p.OperationalStatus,
		TechnicalServices:       cleanList(p.TechnicalServices),
		GeneralServices:         cleanList(p.GeneralServices),
		PricingModel:            p.PricingModel,
		PriceFrom:               formatNumber(p.PriceFrom),
		PriceTo:                 formatNumber(p.PriceTo),
		Currency:                deref(p.Currency),
		PricingNotes:            deref(p.PricingNotes),
		AdditionalInfo:          deref(p.AdditionalInfo),
		TotalAreaM2:             formatNumber(p.TotalAreaM2),
		MinRentAreaM2:           formatNumber(p.MinRentAreaM2),
		MaxRentAreaM2:           formatNumber(p.MaxRentAreaM2),
	}
	if p.ExpectedOpeningYear != nil {
		d.ExpectedOpeningYear = strconv.Itoa(*p.ExpectedOpeningYear)
	}
	if d.OperationalStatus == "" {
		d.OperationalStatus = schema.OperationalOpen
	}
	if d.PricingModel == "" {
		d.PricingModel = schema.PricingRequestQuote
	}
	return d
}

// Default returns an empty draft with schema defaults.
func Default(fallback *LegacyFallback) Draft {
	d := Draft{
		RentableLabLevels: []schema.RentableLabLevel{},
		OfferFormats:      []schema.OfferFormat{},
		ApplicationModes:  []schema.ApplicationMode{},
		OperationalStatus: schema.OperationalOpen,
		TechnicalServices: []string{},
		GeneralServices:   []string{},
		PricingModel:      schema.PricingRequestQuote,
	}
	if fallback != nil {
		d.SupportsBenchRental = fallback.OffersLabSpace || hasAny(fallback.Offers,
			schema.OfferMonthlyRent, schema.OfferHourlyRate, schema.OfferDayRate)
		d.SupportsEquipmentAccess = hasAny(fallback.Offers, schema.OfferEquipmentUseRate)
	}
	return d
}

// ToProfilePayload converts a draft into an insert payload. It never fails;
// the payload is validated separately.
func ToProfilePayload(d Draft, opts *PayloadOptions) schema.LabOfferProfileInput {
	p := schema.LabOfferProfileInput{
		SupportsBenchRental:     d.SupportsBenchRental,
		SupportsEquipmentAccess: d.SupportsEquipmentAccess,
		RentableLabLevels:       dedupe(d.RentableLabLevels),
		OfferFormats:            dedupe(d.OfferFormats),
		ApplicationModes:        dedupe(d.ApplicationModes),
		OperationalStatus:       d.OperationalStatus,
		ExpectedOpeningYear:     parseYear(d.ExpectedOpeningYear),
		TechnicalServices:       cleanList(d.TechnicalServices),
		GeneralServices:         cleanList(d.GeneralServices),
		PricingModel:            d.PricingModel,
		PriceFrom:               parseNumber(d.PriceFrom),
		PriceTo:                 parseNumber(d.PriceTo),
		Currency:                currency(d.Currency),
		PricingNotes:            nonBlank(d.PricingNotes),
		AdditionalInfo:          nonBlank(d.AdditionalInfo),
		TotalAreaM2:             parseNumber(d.TotalAreaM2),
		MinRentAreaM2:           parseNumber(d.MinRentAreaM2),
		MaxRentAreaM2:           parseNumber(d.MaxRentAreaM2),
	}
	if opts != nil {
		if opts.SupportsBenchRental != nil {
			p.SupportsBenchRental = *opts.SupportsBenchRental
		}
		if opts.SupportsEquipmentAccess != nil {
			p.SupportsEquipmentAccess = *opts.SupportsEquipmentAccess
		}
	}
	return p
}

// ToLegacyOffers derives the legacy offer labels from the rental toggles.
func ToLegacyOffers(d Draft) []schema.OfferOption {
	offers := []schema.OfferOption{}
	if d.SupportsBenchRental {
		offers = append(offers, schema.OfferMonthlyRent)
	}
	if d.SupportsEquipmentAccess {
		offers = append(offers, schema.OfferEquipmentUseRate)
	}
	return offers
}

// ToggleSelection adds or removes value with set semantics. A nil next flips
// the current membership. The result has no duplicates and is sorted.
func ToggleSelection[T ~string](items []T, value T, next *bool) []T {
	set := make(map[T]struct{}, len(items)+1)
	for _, item := range items {
		set[item] = struct{}{}
	}
	_, present := set[value]
	include := !present
	if next != nil {
		include = *next
	}
	if include {
		set[value] = struct{}{}
	} else {
		delete(set, value)
	}

	out := make([]T, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseCSVList splits comma-separated input, dropping blank entries.
func ParseCSVList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ListToCSV joins a list for a single-line text input.
func ListToCSV(values []string) string {
	return strings.Join(values, ", ")
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func dedupe[T ~string](values []T) []T {
	out := make([]T, 0, len(values))
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func hasAny(offers []schema.OfferOption, wanted ...schema.OfferOption) bool {
	for _, o := range offers {
		for _, w := range wanted {
			if o == w {
				return true
			}
		}
	}
	return false
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// parseNumber returns nil for blank or non-numeric text. Negative values are
// kept so that validation can report them.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// parseYear accepts integral numbers only; anything else is treated as blank.
func parseYear(s string) *int {
	f := parseNumber(s)
	if f == nil || *f != math.Trunc(*f) || math.Abs(*f) > math.MaxInt32 {
		return nil
	}
	year := int(*f)
	return &year
}

func currency(s string) *string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	return &s
}

func nonBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
