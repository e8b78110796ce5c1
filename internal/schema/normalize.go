package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	errNotANumber = errors.New("expected a number")
	errNotFinite  = errors.New("number must be finite")
	errNegative   = errors.New("number must be greater than or equal to 0")
)

// NormalizeURL trims a string and prefixes https:// when it carries no
// http(s) scheme. Blank strings become nil and non-strings pass through.
func NormalizeURL(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}
	return "https://" + s
}

// UppercaseCurrency trims and uppercases a currency code. Blank strings
// become nil and non-strings pass through.
func UppercaseCurrency(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	return s
}

// NullableNumber coerces a form or JSON value into an optional non-negative
// number. nil and "" yield nil.
func NullableNumber(v any) (*float64, error) {
	n, err := coerceNumber(v)
	if err != nil || n == nil {
		return nil, err
	}
	if *n < 0 {
		return nil, errNegative
	}
	return n, nil
}

func coerceNumber(v any) (*float64, error) {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errNotANumber
		}
		f = parsed
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil, errNotANumber
		}
		f = parsed
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	default:
		return nil, errNotANumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errNotFinite
	}
	return &f, nil
}

// BlankToNull treats a whitespace-only string as absent.
func BlankToNull(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func blankNullable(n *Nullable[string]) {
	if n.Valid && strings.TrimSpace(n.Value) == "" {
		n.Valid = false
		n.Value = ""
	}
}

// normalizeURLNullable normalizes a present URL. A blank value becomes an
// explicit null so that it clears the stored URL.
func normalizeURLNullable(n *Nullable[string]) {
	if !n.Valid {
		return
	}
	if out, ok := NormalizeURL(n.Value).(string); ok {
		*n = Value(out)
		return
	}
	*n = Null[string]()
}

func normalizeURLPtr(s *string) *string {
	if s == nil {
		return nil
	}
	if out, ok := NormalizeURL(*s).(string); ok {
		return &out
	}
	return nil
}

func uppercaseCurrencyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	if out, ok := UppercaseCurrency(*s).(string); ok {
		return &out
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := strings.TrimSpace(*s)
	return &out
}

// decodeAmount reads a raw JSON member that may hold a number, a numeric
// string, "" or null. A nil raw message means the key was absent.
func decodeAmount(path string, raw json.RawMessage) (Nullable[float64], error) {
	if raw == nil {
		return Nullable[float64]{}, nil
	}
	var v any
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return Nullable[float64]{}, &DecodeError{Path: path, Message: errNotANumber.Error()}
	}
	n, err := coerceNumber(v)
	if err != nil {
		return Nullable[float64]{}, &DecodeError{Path: path, Message: err.Error()}
	}
	if n == nil {
		return Null[float64](), nil
	}
	return Value(*n), nil
}

// DecodeError reports a payload member that could not be coerced into its
// field type while decoding.
type DecodeError struct {
	Path    string
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Issue converts the decode failure into a schema issue.
func (e *DecodeError) Issue() Issue {
	return Issue{Path: e.Path, Message: e.Message}
}
