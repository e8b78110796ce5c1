package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func validOfferInput() LabOfferProfileInput {
	return LabOfferProfileInput{
		SupportsBenchRental: true,
		RentableLabLevels:   []RentableLabLevel{RentableL1, RentableL2},
		OfferFormats:        []OfferFormat{OfferFormatPlugAndPlay},
		ApplicationModes:    []ApplicationMode{ApplicationRolling},
		OperationalStatus:   OperationalOpen,
		PricingModel:        PricingRange,
		PriceFrom:           ptr(100.0),
		PriceTo:             ptr(250.0),
		Currency:            ptr("eur"),
		MinRentAreaM2:       ptr(10.0),
		MaxRentAreaM2:       ptr(40.0),
	}
}

func TestLabOfferProfileInput_Defaults(t *testing.T) {
	in := LabOfferProfileInput{}
	issues := in.Prepare()

	assert.Empty(t, issues)
	assert.Equal(t, OperationalOpen, in.OperationalStatus)
	assert.Equal(t, PricingRequestQuote, in.PricingModel)
	assert.False(t, in.SupportsBenchRental)
	assert.NotNil(t, in.RentableLabLevels)
	assert.NotNil(t, in.TechnicalServices)
}

func TestLabOfferProfileInput_Valid(t *testing.T) {
	in := validOfferInput()
	issues := in.Prepare()

	assert.Empty(t, issues)
	assert.Equal(t, "EUR", *in.Currency)
}

func TestLabOfferProfileInput_PriceOrdering(t *testing.T) {
	tests := []struct {
		name    string
		from    *float64
		to      *float64
		wantErr bool
	}{
		{name: "inverted", from: ptr(100.0), to: ptr(50.0), wantErr: true},
		{name: "equal", from: ptr(50.0), to: ptr(50.0)},
		{name: "ascending", from: ptr(0.0), to: ptr(1.0)},
		{name: "from only", from: ptr(100.0)},
		{name: "to only", to: ptr(5.0)},
		{name: "neither"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := LabOfferProfileInput{PriceFrom: tt.from, PriceTo: tt.to}
			issues := in.Prepare()
			if tt.wantErr {
				assert.Equal(t, []string{"priceFrom", "priceTo"}, issues.Paths())
				return
			}
			assert.Empty(t, issues)
		})
	}
}

func TestLabOfferProfileInput_AreaOrdering(t *testing.T) {
	in := LabOfferProfileInput{MinRentAreaM2: ptr(40.0), MaxRentAreaM2: ptr(10.0)}
	issues := in.Prepare()
	assert.Equal(t, []string{"minRentAreaM2", "maxRentAreaM2"}, issues.Paths())

	in = LabOfferProfileInput{MinRentAreaM2: ptr(10.0), MaxRentAreaM2: ptr(10.0)}
	assert.Empty(t, in.Prepare())

	in = LabOfferProfileInput{MaxRentAreaM2: ptr(10.0)}
	assert.Empty(t, in.Prepare())
}

func TestLabOfferProfileInput_OpeningYear(t *testing.T) {
	t.Run("required when opening in the future", func(t *testing.T) {
		in := LabOfferProfileInput{OperationalStatus: OperationalOpeningFuture}
		issues := in.Prepare()
		require.Len(t, issues, 1)
		assert.Equal(t, "expectedOpeningYear", issues[0].Path)
		assert.Equal(t, "required when operationalStatus is opening_future", issues[0].Message)
	})

	t.Run("present when opening in the future", func(t *testing.T) {
		in := LabOfferProfileInput{OperationalStatus: OperationalOpeningFuture, ExpectedOpeningYear: ptr(2027)}
		assert.Empty(t, in.Prepare())
	})

	t.Run("not required for other statuses", func(t *testing.T) {
		for _, status := range []OperationalStatus{OperationalOpen, OperationalRenovationOrClosed} {
			in := LabOfferProfileInput{OperationalStatus: status}
			assert.Empty(t, in.Prepare())
		}
	})

	t.Run("bounds", func(t *testing.T) {
		in := LabOfferProfileInput{ExpectedOpeningYear: ptr(2023)}
		assert.True(t, in.Prepare().Has("expectedOpeningYear"))
		in = LabOfferProfileInput{ExpectedOpeningYear: ptr(2101)}
		assert.True(t, in.Prepare().Has("expectedOpeningYear"))
		in = LabOfferProfileInput{ExpectedOpeningYear: ptr(2100)}
		assert.Empty(t, in.Prepare())
	})
}

func TestLabOfferProfileInput_AllRulesReported(t *testing.T) {
	in := LabOfferProfileInput{
		OperationalStatus: OperationalOpeningFuture,
		PriceFrom:         ptr(10.0),
		PriceTo:           ptr(5.0),
		MinRentAreaM2:     ptr(3.0),
		MaxRentAreaM2:     ptr(1.0),
	}
	issues := in.Prepare()
	assert.Equal(t, []string{"priceFrom", "priceTo", "minRentAreaM2", "maxRentAreaM2", "expectedOpeningYear"}, issues.Paths())
}

func TestLabOfferProfileInput_EndToEndScenario(t *testing.T) {
	var in LabOfferProfileInput
	payload := `{"operationalStatus":"opening_future","expectedOpeningYear":2025,"priceFrom":100,"priceTo":50}`
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	issues := in.Prepare()

	require.Len(t, issues, 2)
	assert.Equal(t, Issue{Path: "priceFrom", Message: "must be less than or equal to priceTo"}, issues[0])
	assert.Equal(t, Issue{Path: "priceTo", Message: "must be greater than or equal to priceFrom"}, issues[1])
}

func TestLabOfferProfileInput_EnumClosure(t *testing.T) {
	in := LabOfferProfileInput{RentableLabLevels: []RentableLabLevel{"l1", "l4"}}
	issues := in.Prepare()

	require.Len(t, issues, 1)
	assert.Equal(t, "rentableLabLevels[1]", issues[0].Path)
	assert.Contains(t, issues[0].Message, "value not in enumeration")

	in = LabOfferProfileInput{OfferFormats: []OfferFormat{"Shell_Space"}, ApplicationModes: []ApplicationMode{"weekly"}}
	assert.Equal(t, []string{"offerFormats[0]", "applicationModes[0]"}, in.Prepare().Paths())
}

func TestLabOfferProfileInput_Currency(t *testing.T) {
	tests := []struct {
		in      string
		want    *string
		wantErr bool
	}{
		{in: "usd", want: ptr("USD")},
		{in: " chf ", want: ptr("CHF")},
		{in: "   ", want: nil},
		{in: "us", want: ptr("US"), wantErr: true},
		{in: "usdt", want: ptr("USDT"), wantErr: true},
		{in: "u$d", want: ptr("U$D"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			in := LabOfferProfileInput{Currency: ptr(tt.in)}
			issues := in.Prepare()
			assert.Equal(t, tt.want, in.Currency)
			assert.Equal(t, tt.wantErr, issues.Has("currency"))
		})
	}
}

func TestLabOfferProfileInput_NegativeAmounts(t *testing.T) {
	in := LabOfferProfileInput{PriceFrom: ptr(-1.0), TotalAreaM2: ptr(-5.0)}
	assert.Equal(t, []string{"priceFrom", "totalAreaM2"}, in.Prepare().Paths())
}

func TestLabOfferProfileInput_BlankText(t *testing.T) {
	in := LabOfferProfileInput{PricingNotes: ptr("  "), AdditionalInfo: ptr("\n")}
	assert.Empty(t, in.Prepare())
	assert.Nil(t, in.PricingNotes)
	assert.Nil(t, in.AdditionalInfo)
}

func TestLabOfferProfileInput_UnmarshalAmounts(t *testing.T) {
	t.Run("numbers, strings, blanks and nulls", func(t *testing.T) {
		var in LabOfferProfileInput
		payload := `{"priceFrom":"12.5","priceTo":40,"totalAreaM2":"","minRentAreaM2":null,"pricingModel":"range"}`
		require.NoError(t, json.Unmarshal([]byte(payload), &in))

		assert.Equal(t, 12.5, *in.PriceFrom)
		assert.Equal(t, 40.0, *in.PriceTo)
		assert.Nil(t, in.TotalAreaM2)
		assert.Nil(t, in.MinRentAreaM2)
		assert.Nil(t, in.MaxRentAreaM2)
		assert.Equal(t, PricingRange, in.PricingModel)
	})

	t.Run("non-numeric string", func(t *testing.T) {
		var in LabOfferProfileInput
		err := json.Unmarshal([]byte(`{"priceTo":"cheap"}`), &in)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "priceTo", decodeErr.Path)
	})
}

func TestLabOfferProfile_UnmarshalKeepsMeta(t *testing.T) {
	var p LabOfferProfile
	payload := `{"labId":7,"priceFrom":"5","createdAt":"2025-01-02T03:04:05Z","operationalStatus":"open","pricingModel":"price_from"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &p))

	assert.Equal(t, int64(7), p.LabID)
	assert.Equal(t, 5.0, *p.PriceFrom)
	require.NotNil(t, p.CreatedAt)
	assert.Equal(t, 2025, p.CreatedAt.Year())
	assert.Empty(t, p.Validate())

	p.LabID = 0
	assert.True(t, p.Validate().Has("labId"))
}

func TestLabOfferProfileUpdate_Empty(t *testing.T) {
	var u LabOfferProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"unknown":1}`), &u))

	issues := u.Prepare()
	require.Len(t, issues, 1)
	assert.Equal(t, "", issues[0].Path)
	assert.Equal(t, "at least one field must be provided", issues[0].Message)
}

func TestLabOfferProfileUpdate_PayloadRules(t *testing.T) {
	t.Run("inverted price in payload", func(t *testing.T) {
		u := LabOfferProfileUpdate{PriceFrom: Value(10.0), PriceTo: Value(5.0)}
		assert.Equal(t, []string{"priceFrom", "priceTo"}, u.Prepare().Paths())
	})

	t.Run("single end passes without stored record", func(t *testing.T) {
		u := LabOfferProfileUpdate{PriceTo: Value(5.0)}
		assert.Empty(t, u.Prepare())
	})

	t.Run("status without year", func(t *testing.T) {
		status := OperationalOpeningFuture
		u := LabOfferProfileUpdate{OperationalStatus: &status}
		assert.Equal(t, []string{"expectedOpeningYear"}, u.Prepare().Paths())

		u.ExpectedOpeningYear = Value(2030)
		assert.Empty(t, u.Prepare())
	})

	t.Run("year bounds apply to present values", func(t *testing.T) {
		u := LabOfferProfileUpdate{ExpectedOpeningYear: Value(0)}
		assert.True(t, u.Prepare().Has("expectedOpeningYear"))

		u = LabOfferProfileUpdate{ExpectedOpeningYear: Null[int]()}
		assert.Empty(t, u.Prepare())
	})

	t.Run("currency normalized", func(t *testing.T) {
		u := LabOfferProfileUpdate{Currency: Value(" gbp")}
		assert.Empty(t, u.Prepare())
		assert.Equal(t, Value("GBP"), u.Currency)

		u = LabOfferProfileUpdate{Currency: Value("gb")}
		assert.True(t, u.Prepare().Has("currency"))
	})
}

func TestLabOfferProfileUpdate_MergeThenValidate(t *testing.T) {
	stored := validOfferInput()
	require.Empty(t, stored.Prepare())

	var u LabOfferProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"priceTo":5,"pricingNotes":null}`), &u))
	require.Empty(t, u.Prepare())

	merged := stored
	u.ApplyTo(&merged)

	assert.Equal(t, 5.0, *merged.PriceTo)
	assert.Equal(t, 100.0, *merged.PriceFrom)
	assert.Equal(t, []string{"priceFrom", "priceTo"}, merged.Validate().Paths())
	assert.Equal(t, 250.0, *stored.PriceTo)
}

func TestLabOfferProfileUpdate_ClearField(t *testing.T) {
	stored := validOfferInput()
	require.Empty(t, stored.Prepare())

	var u LabOfferProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"priceFrom":null,"currency":""}`), &u))
	require.Empty(t, u.Prepare())

	u.ApplyTo(&stored)
	assert.Nil(t, stored.PriceFrom)
	assert.Nil(t, stored.Currency)
	assert.Equal(t, 250.0, *stored.PriceTo)
}
