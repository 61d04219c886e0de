package domain

// Metadata aggregates the four independent sub-records attached to a list.
// Each sub-record is mutated through its own accessors; the aggregate itself
// is plain composition.
type Metadata struct {
	Provenance             Provenance             `json:"provenance"`
	CategorisationAndUsage CategorisationAndUsage `json:"categorisation_and_usage"`
	PurposeAndContext      PurposeAndContext      `json:"purpose_and_context"`
	ValidationAndReview    ValidationAndReview    `json:"validation_and_review"`
}

// NewMetadata assembles an aggregate from its parts.
func NewMetadata(p Provenance, c CategorisationAndUsage, pc PurposeAndContext, vr ValidationAndReview) Metadata {
	return Metadata{
		Provenance:             p,
		CategorisationAndUsage: c,
		PurposeAndContext:      pc,
		ValidationAndReview:    vr,
	}
}

// DefaultMetadata returns an aggregate with fresh provenance for the given
// source and every optional field unset.
func DefaultMetadata(source Source) Metadata {
	return Metadata{Provenance: NewProvenance(source, nil)}
}

func addScalar(slot **string, value, field string) error {
	if *slot != nil {
		return FieldAlreadySetError{Field: field}
	}
	*slot = &value
	return nil
}

func cloneScalar(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
