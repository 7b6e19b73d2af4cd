// Package requirements loads per-requirement scoring metadata from the
// requirements directory.
package requirements

import "errors"

const (
	DefaultValue  = "Med"
	DefaultEffort = "M"
)

// ErrUnknownTier is returned under FallbackStrict when a metadata file names a
// tier the weight tables do not know.
var ErrUnknownTier = errors.New("unknown tier")

// Meta is the scoring metadata of one requirement.
type Meta struct {
	ID          string
	Value       string
	Effort      string
	PerfEnabled bool
}

// NewMeta returns the metadata used for a requirement with no metadata file.
func NewMeta(id string) Meta {
	return Meta{ID: id, Value: DefaultValue, Effort: DefaultEffort}
}

// TierFallback decides what happens to tier text the weight tables don't know.
type TierFallback int

const (
	// FallbackLenient keeps the text; weight lookup then uses the Med/M weights.
	FallbackLenient TierFallback = iota
	// FallbackStrict fails the load with ErrUnknownTier.
	FallbackStrict
)

func (f TierFallback) String() string {
	switch f {
	case FallbackStrict:
		return "strict"
	default:
		return "lenient"
	}
}

// TierSet reports which tier names have a weight.
type TierSet interface {
	HasValue(tier string) bool
	HasEffort(tier string) bool
}

// ParseResult is the outcome of parsing one metadata file.
type ParseResult struct {
	Meta Meta
	// UnknownKeys lists keys that were present but not recognised.
	UnknownKeys []string
	// Malformed lists non-blank lines without a key:value shape.
	Malformed []string
}
