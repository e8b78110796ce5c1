package schema

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// enumTags maps each vocabulary tag to its allowed values, for messages.
var enumTags = map[string][]string{
	"lab_status":         stringsOf(LabStatusOptions()),
	"org_role":           stringsOf(OrgRoleOptions()),
	"offer_option":       stringsOf(OfferOptions()),
	"rentable_level":     stringsOf(RentableLabLevelOptions()),
	"offer_format":       stringsOf(OfferFormatOptions()),
	"application_mode":   stringsOf(ApplicationModeOptions()),
	"operational_status": stringsOf(OperationalStatusOptions()),
	"pricing_model":      stringsOf(PricingModelOptions()),
	"option_group":       stringsOf(OptionGroupOptions()),
	"erc_domain":         stringsOf(ErcDomainOptions()),
}

var validate = NewValidator()

// NewValidator returns a validator with every schema rule registered.
// Validators are safe for concurrent use once built.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, options := range enumTags {
		allowed := options
		mustRegister(v, tag, func(fl validator.FieldLevel) bool {
			return contains(allowed, fl.Field().String())
		})
	}
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "erc_code", func(fl validator.FieldLevel) bool {
		return IsErcCode(fl.Field().String())
	})
	mustRegister(v, "currency3", func(fl validator.FieldLevel) bool {
		return currencyPattern.MatchString(fl.Field().String())
	})

	v.RegisterCustomTypeFunc(nullableValue, Nullable[string]{}, Nullable[int]{}, Nullable[float64]{})

	v.RegisterStructValidation(offerProfileInputRules, LabOfferProfileInput{})
	v.RegisterStructValidation(offerProfileUpdateRules, LabOfferProfileUpdate{})
	v.RegisterStructValidation(ercDisciplineRules, ErcDisciplineOption{})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// check runs field rules and then struct-level rules over payload.
func check(payload any) Issues {
	return IssuesFromError(validate.Struct(payload))
}

func offerProfileInputRules(sl validator.StructLevel) {
	p := sl.Current().Interface().(LabOfferProfileInput)
	reportRange(sl, p.PriceFrom, p.PriceTo, "priceFrom", "PriceFrom", "priceTo", "PriceTo")
	reportRange(sl, p.MinRentAreaM2, p.MaxRentAreaM2, "minRentAreaM2", "MinRentAreaM2", "maxRentAreaM2", "MaxRentAreaM2")
	if p.OperationalStatus == OperationalOpeningFuture && p.ExpectedOpeningYear == nil {
		sl.ReportError(nil, "expectedOpeningYear", "ExpectedOpeningYear", "required_when_opening_future", "")
	}
}

// offerProfileUpdateRules only sees the members present in the payload.
func offerProfileUpdateRules(sl validator.StructLevel) {
	u := sl.Current().Interface().(LabOfferProfileUpdate)
	reportRange(sl, u.PriceFrom.Ptr(), u.PriceTo.Ptr(), "priceFrom", "PriceFrom", "priceTo", "PriceTo")
	reportRange(sl, u.MinRentAreaM2.Ptr(), u.MaxRentAreaM2.Ptr(), "minRentAreaM2", "MinRentAreaM2", "maxRentAreaM2", "MaxRentAreaM2")
	if u.OperationalStatus != nil && *u.OperationalStatus == OperationalOpeningFuture && !u.ExpectedOpeningYear.Valid {
		sl.ReportError(nil, "expectedOpeningYear", "ExpectedOpeningYear", "required_when_opening_future", "")
	}
}

// reportRange flags both ends of an inverted range.
func reportRange(sl validator.StructLevel, low, high *float64, lowName, lowField, highName, highField string) {
	if low == nil || high == nil || *high >= *low {
		return
	}
	sl.ReportError(*low, lowName, lowField, "range_start", highName)
	sl.ReportError(*high, highName, highField, "range_end", lowName)
}

func ercDisciplineRules(sl validator.StructLevel) {
	o := sl.Current().Interface().(ErcDisciplineOption)
	expected, ok := ErcDomainOf(o.Code)
	if !ok || !o.Domain.IsValid() || o.Domain == expected {
		return
	}
	sl.ReportError(string(o.Domain), "domain", "Domain", "erc_domain_match", string(expected))
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
