package domain

// Source records where a codelist originally came from.
type Source string

// Provenance sources. The string forms are stable and round-trip through
// serialized metadata, so they must not change.
const (
	SourceLoadedFromFile  Source = "Loaded from file"
	SourceMappedFromList  Source = "Mapped from another codelist"
	SourceManuallyCreated Source = "Manually created"
)

// ParseSource converts the serialized form back into a Source.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceLoadedFromFile, SourceMappedFromList, SourceManuallyCreated:
		return Source(s), nil
	default:
		return "", InvalidSourceError{Value: s}
	}
}

func (s Source) String() string { return string(s) }
