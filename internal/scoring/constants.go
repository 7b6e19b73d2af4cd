package scoring

import (
	"maps"

	"github.com/tensorplex-labs/koth/internal/requirements"
)

const (
	DefaultTau              = 0.5
	DefaultServiceThreshold = 0.8

	// TauFloor keeps the softmax temperature strictly positive.
	TauFloor = 1e-8

	MaxRequirementWeight = 1.5
	MaxRequirementScore  = 2.0
	MaxServiceShare      = 0.2

	MaxCountedLints = 10
)

// Component weights of the requirement score.
const (
	SpecWeight    = 0.50
	QualityWeight = 0.20
	TestWeight    = 0.20
	PerfWeight    = 0.10
)

// WeightTables holds the value and effort tier weights. A WeightTables value is
// never mutated after construction; accessors hand out copies.
type WeightTables struct {
	value     map[string]float64
	effort    map[string]float64
	maxWeight float64
}

// DefaultWeightTables returns the production tier weights.
func DefaultWeightTables() WeightTables {
	return NewWeightTables(
		map[string]float64{"Low": 0.60, "Med": 0.80, "High": 0.95, "Critical": 1.00},
		map[string]float64{"XS": 0.70, "S": 0.85, "M": 1.00, "L": 1.20, "XL": 1.50},
		MaxRequirementWeight,
	)
}

// NewWeightTables copies the given tables. The default tiers
// requirements.DefaultValue and requirements.DefaultEffort must be present.
func NewWeightTables(value, effort map[string]float64, maxWeight float64) WeightTables {
	return WeightTables{
		value:     maps.Clone(value),
		effort:    maps.Clone(effort),
		maxWeight: maxWeight,
	}
}

func (t WeightTables) ValueWeights() map[string]float64 {
	return maps.Clone(t.value)
}

func (t WeightTables) EffortWeights() map[string]float64 {
	return maps.Clone(t.effort)
}

func (t WeightTables) HasValue(tier string) bool {
	_, ok := t.value[tier]
	return ok
}

func (t WeightTables) HasEffort(tier string) bool {
	_, ok := t.effort[tier]
	return ok
}

// ValueWeight returns the weight of a value tier. Unknown tiers get the
// requirements.DefaultValue weight and fellBack is true.
func (t WeightTables) ValueWeight(tier string) (w float64, fellBack bool) {
	if w, ok := t.value[tier]; ok {
		return w, false
	}
	return t.value[requirements.DefaultValue], true
}

// EffortWeight returns the weight of an effort tier. Unknown tiers get the
// requirements.DefaultEffort weight and fellBack is true.
func (t WeightTables) EffortWeight(tier string) (w float64, fellBack bool) {
	if w, ok := t.effort[tier]; ok {
		return w, false
	}
	return t.effort[requirements.DefaultEffort], true
}

// RequirementWeight is value weight times effort weight, capped.
func (t WeightTables) RequirementWeight(meta requirements.Meta) float64 {
	v, _ := t.ValueWeight(meta.Value)
	e, _ := t.EffortWeight(meta.Effort)
	return min(t.maxWeight, v*e)
}
