// Package scoring turns epoch scorecards into miner weights: per-requirement
// scores, per-hotkey totals, softmax normalisation and the service carve-out.
package scoring

import (
	"math"

	"github.com/tensorplex-labs/koth/internal/requirements"
	"github.com/tensorplex-labs/koth/internal/scorecard"
)

func clamp(x, lo, hi float64) float64 {
	return max(lo, min(hi, x))
}

func clamp01(x float64) float64 {
	return clamp(x, 0, 1)
}

// SpecScore is the pass rate of the spec checks. Counts are truncated toward
// zero and a total below 1 counts as 1.
func SpecScore(s scorecard.SpecChecks) float64 {
	total := max(1, math.Trunc(s.Total))
	passed := math.Trunc(s.Passed)
	return clamp01(passed / total)
}

// TestScore maps the coverage delta around a neutral 0.6: +0.2 coverage
// saturates at 1, -0.3 bottoms out at 0.
func TestScore(c scorecard.Coverage) float64 {
	return clamp01(0.6 + 2.0*c.Delta)
}

// QualityScore starts from 0.85. Complexity and duplication improvements earn
// 0.25 per unit, regressions cost 0.5 per unit, and each lint costs 0.05 up to
// MaxCountedLints.
func QualityScore(q scorecard.Quality) float64 {
	c := q.ComplexityDelta
	d := q.DupDelta
	// Negative lint counts are floored at 0 and earn no bonus.
	lints := min(max(math.Trunc(q.Lints), 0), MaxCountedLints)

	score := 0.85 +
		0.25*max(-c, 0) + 0.25*max(-d, 0) -
		0.5*max(c, 0) - 0.5*max(d, 0) -
		0.05*lints
	return clamp01(score)
}

// PerfScore is 0 unless the requirement enables performance scoring.
func PerfScore(p scorecard.Perf, enabled bool) float64 {
	if !enabled {
		return 0.0
	}
	score := 0.5 - p.LatencyMsDelta/100.0 + 0.5*p.ThroughputDelta
	return clamp01(score)
}

// RequirementScore weights the blended sub-scores by the requirement weight.
// The result may exceed 1 for high value, high effort requirements and is
// clamped to [0, MaxRequirementScore].
func RequirementScore(card scorecard.ScoreCard, meta requirements.Meta, tables WeightTables) float64 {
	wr := tables.RequirementWeight(meta)
	s := SpecWeight*SpecScore(card.SpecChecks) +
		QualityWeight*QualityScore(card.Quality) +
		TestWeight*TestScore(card.Coverage) +
		PerfWeight*PerfScore(card.Perf, meta.PerfEnabled)
	return clamp(wr*s, 0, MaxRequirementScore)
}
