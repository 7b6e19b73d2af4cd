package scoring

import (
	"maps"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

func L1Normalize(arr []float64) []float64 {
	result := make([]float64, len(arr))
	copy(result, arr)

	sum := floats.Sum(result)
	if sum > 0 {
		floats.Scale(1.0/sum, result)
	}

	return result
}

// sortedKeys fixes the iteration order so floating point sums are
// reproducible across runs.
func sortedKeys(m map[string]float64) []string {
	return slices.Sorted(maps.Keys(m))
}

func valuesOf(m map[string]float64, keys []string) []float64 {
	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}
	return vals
}

func zip(keys []string, vals []float64) map[string]float64 {
	out := make(map[string]float64, len(keys))
	for i, k := range keys {
		out[k] = vals[i]
	}
	return out
}

// NormalizeWeights L1-normalises a weight map so its values sum to 1. A map
// whose values sum to zero or less is returned unchanged.
func NormalizeWeights(weights map[string]float64) map[string]float64 {
	keys := sortedKeys(weights)
	return zip(keys, L1Normalize(valuesOf(weights, keys)))
}

// Softmax converts raw totals into a probability distribution with
// temperature tau. The maximum is subtracted before exponentiating. tau is
// floored at TauFloor.
func Softmax(scores map[string]float64, tau float64) map[string]float64 {
	if len(scores) == 0 {
		return map[string]float64{}
	}

	keys := sortedKeys(scores)
	vals := valuesOf(scores, keys)
	t := max(tau, TauFloor)
	m := floats.Max(vals)

	exps := make([]float64, len(vals))
	for i, v := range vals {
		exps[i] = math.Exp((v - m) / t)
	}

	s := floats.Sum(exps)
	if s == 0 {
		s = 1.0
	}
	floats.Scale(1.0/s, exps)

	return zip(keys, exps)
}
