package schema

import (
	"encoding/json"
	"fmt"
)

// Kind names a payload shape that can be checked without a store.
type Kind string

const (
	KindLab             Kind = "lab"
	KindTeam            Kind = "team"
	KindLabOfferProfile Kind = "lab-offer-profile"
	KindTaxonomyOption  Kind = "lab-offer-taxonomy-option"
	KindErcDiscipline   Kind = "erc-discipline"
)

func Kinds() []Kind {
	return []Kind{KindLab, KindTeam, KindLabOfferProfile, KindTaxonomyOption, KindErcDiscipline}
}

// IsValid checks if the kind is known
func (k Kind) IsValid() bool {
	return contains(Kinds(), k)
}

// SupportsPartial reports whether kind has an update shape.
func (k Kind) SupportsPartial() bool {
	return k == KindLab || k == KindTeam || k == KindLabOfferProfile
}

type preparer interface {
	Prepare() Issues
}

func newPayload(kind Kind, partial bool) (preparer, error) {
	if partial && !kind.SupportsPartial() {
		return nil, fmt.Errorf("kind %q has no partial shape", kind)
	}
	switch kind {
	case KindLab:
		if partial {
			return &LabUpdate{}, nil
		}
		return &LabInput{}, nil
	case KindTeam:
		if partial {
			return &TeamUpdate{}, nil
		}
		return &TeamInput{}, nil
	case KindLabOfferProfile:
		if partial {
			return &LabOfferProfileUpdate{}, nil
		}
		return &LabOfferProfileInput{}, nil
	case KindTaxonomyOption:
		return &LabOfferTaxonomyOption{}, nil
	case KindErcDiscipline:
		return &ErcDisciplineOption{}, nil
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}

// CheckJSON decodes data into the insert or update shape of kind and
// returns every issue found. Malformed JSON is returned as an error;
// members that cannot be coerced are reported as issues.
func CheckJSON(kind Kind, partial bool, data []byte) (Issues, error) {
	payload, err := newPayload(kind, partial)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, payload); err != nil {
		if issues, ok := DecodeIssues(err); ok {
			return issues, nil
		}
		return nil, err
	}
	return payload.Prepare(), nil
}
