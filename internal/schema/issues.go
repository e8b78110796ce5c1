package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "glass-connect-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Issue is a single violation addressed by its JSON path.
type Issue = apperrors.FieldIssue

// Issues collects every violation found in one payload.
type Issues []Issue

var emptyUpdateIssue = Issue{Path: "", Message: "at least one field must be provided"}

// Err wraps non-empty issues into a *errors.ValidationError.
func (is Issues) Err() error {
	if len(is) == 0 {
		return nil
	}
	return apperrors.NewIssuesError("validation failed", []apperrors.FieldIssue(is))
}

// Paths returns the path of every issue in report order.
func (is Issues) Paths() []string {
	paths := make([]string, len(is))
	for i, issue := range is {
		paths[i] = issue.Path
	}
	return paths
}

// Has reports whether an issue was raised for path.
func (is Issues) Has(path string) bool {
	for _, issue := range is {
		if issue.Path == path {
			return true
		}
	}
	return false
}

// IssuesFromError converts validator and decode failures into issues. Other
// errors become a single issue on the payload root.
func IssuesFromError(err error) Issues {
	if err == nil {
		return nil
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return Issues{decodeErr.Issue()}
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Issues{{Message: err.Error()}}
	}
	out := make(Issues, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Issue{Path: issuePath(fe.Namespace()), Message: issueMessage(fe)})
	}
	return out
}

// DecodeIssues reports members that could not be decoded into their
// declared type. ok is false for syntax errors and other failures.
func DecodeIssues(err error) (Issues, bool) {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return Issues{decodeErr.Issue()}, true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Issues{{Path: decodePath(typeErr.Field), Message: fmt.Sprintf("expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value)}}, true
	}
	return nil, false
}

// aliasField is the name of the embedded alias the custom unmarshallers
// decode through. It never names a JSON member.
const aliasField = "plain"

// decodePath drops alias segments from a decoder field path.
func decodePath(field string) string {
	segments := strings.Split(field, ".")
	kept := segments[:0]
	for _, s := range segments {
		if s != aliasField {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ".")
}

// jsonKind names the JSON kind a Go type decodes from.
func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "value"
	}
}

// issuePath drops the root struct name from a validator namespace.
func issuePath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func issueMessage(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required", "notblank":
		return "required"
	case "email":
		return "invalid email"
	case "url":
		return "invalid url"
	case "uuid":
		return "invalid uuid"
	case "datetime":
		return "invalid datetime, expected RFC 3339"
	case "max":
		return sizeMessage(fe.Kind(), "at most", param)
	case "min":
		return sizeMessage(fe.Kind(), "at least", param)
	case "gte":
		return "number must be greater than or equal to " + param
	case "lte":
		return "number must be less than or equal to " + param
	case "gt":
		return "number must be greater than " + param
	case "currency3":
		return "currency must be a 3-letter code"
	case "erc_code":
		return "invalid ERC discipline code"
	case "erc_domain_match":
		return fmt.Sprintf("domain does not match code, expected %s", param)
	case "range_start":
		return fmt.Sprintf("must be less than or equal to %s", param)
	case "range_end":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "required_when_opening_future":
		return "required when operationalStatus is opening_future"
	}
	if options, ok := enumTags[fe.Tag()]; ok {
		return fmt.Sprintf("value not in enumeration: expected one of %s, received %q",
			strings.Join(options, " | "), fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("failed on the %q rule", fe.Tag())
}

func sizeMessage(kind reflect.Kind, bound, param string) string {
	switch kind {
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain %s %s element(s)", bound, param)
	case reflect.String:
		return fmt.Sprintf("must contain %s %s character(s)", bound, param)
	default:
		return fmt.Sprintf("must be %s %s", bound, param)
	}
}
