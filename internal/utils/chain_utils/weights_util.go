// Package chainutils holds helpers for chain-facing values: hotkey address
// checks and u16 weight quantisation.
package chainutils

import (
	"fmt"
	"math"
)

const (
	U16MAX = 65535
)

// ConvertWeightsForEmit scales weights so the largest becomes U16MAX, the
// representation subtensor expects for set_weights.
func ConvertWeightsForEmit(weights []float64) ([]int, error) {
	if len(weights) == 0 {
		return []int{}, nil
	}

	maxWeight := 0.0
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("weights cannot be negative: %v", weights)
		}
		if w > maxWeight {
			maxWeight = w
		}
	}

	out := make([]int, len(weights))
	if maxWeight == 0 {
		return out, nil
	}

	for i, w := range weights {
		out[i] = int(math.Round((w / maxWeight) * float64(U16MAX)))
	}

	return out, nil
}
