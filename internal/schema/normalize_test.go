package schema

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "bare host gets https", in: "example.com", want: "https://example.com"},
		{name: "http kept", in: "http://x", want: "http://x"},
		{name: "https kept", in: "https://glass.example/labs", want: "https://glass.example/labs"},
		{name: "scheme is case-insensitive", in: "HTTPS://Example.com", want: "HTTPS://Example.com"},
		{name: "surrounding space trimmed", in: "  example.com/path ", want: "https://example.com/path"},
		{name: "blank becomes absent", in: "   ", want: nil},
		{name: "empty becomes absent", in: "", want: nil},
		{name: "non-string passes through", in: 42, want: 42},
		{name: "nil passes through", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.in))
		})
	}
}

func TestUppercaseCurrency(t *testing.T) {
	assert.Equal(t, "EUR", UppercaseCurrency(" eur "))
	assert.Equal(t, "USD", UppercaseCurrency("usd"))
	assert.Nil(t, UppercaseCurrency("  "))
	assert.Equal(t, 12, UppercaseCurrency(12))
}

func TestNullableNumber(t *testing.T) {
	t.Run("absent values", func(t *testing.T) {
		for _, in := range []any{nil, "", "   "} {
			n, err := NullableNumber(in)
			require.NoError(t, err)
			assert.Nil(t, n)
		}
	})

	t.Run("numbers and numeric strings", func(t *testing.T) {
		for in, want := range map[any]float64{"12.5": 12.5, 0.0: 0, 7: 7, json.Number("3"): 3, " 40 ": 40} {
			n, err := NullableNumber(in)
			require.NoError(t, err)
			require.NotNil(t, n)
			assert.Equal(t, want, *n)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		for _, in := range []any{-1, "-0.5", "abc", math.Inf(1), math.NaN(), true} {
			n, err := NullableNumber(in)
			assert.Error(t, err, "input %v", in)
			assert.Nil(t, n)
		}
	})
}

func TestBlankToNull(t *testing.T) {
	blank := "   "
	value := " lab manager "
	assert.Nil(t, BlankToNull(nil))
	assert.Nil(t, BlankToNull(&blank))
	assert.Equal(t, &value, BlankToNull(&value))
}

func TestNullable_JSON(t *testing.T) {
	var payload struct {
		A Nullable[string] `json:"a"`
		B Nullable[string] `json:"b"`
		C Nullable[string] `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"x","b":null}`), &payload))

	assert.Equal(t, Value("x"), payload.A)
	assert.Equal(t, Null[string](), payload.B)
	assert.False(t, payload.C.Present)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null,"c":null}`, string(out))
}
