package scoring

import (
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/koth/internal/sla"
)

// ServiceShare computes the service operator's carve-out. The share is
// budget*score clamped to [0, MaxServiceShare] when the score meets threshold
// and a hotkey is named; otherwise it is 0.
func ServiceShare(rec *sla.Record, threshold float64) ServiceAllocation {
	if rec == nil {
		return ServiceAllocation{}
	}

	alloc := ServiceAllocation{Hotkey: rec.Hotkey}
	if rec.ServiceScore >= threshold && rec.Hotkey != "" {
		alloc.Share = clamp(rec.Budget*rec.ServiceScore, 0, MaxServiceShare)
	}

	log.Debug().Str("hotkey", rec.Hotkey).Float64("budget", rec.Budget).
		Float64("serviceScore", rec.ServiceScore).Float64("threshold", threshold).
		Float64("share", alloc.Share).Msg("service allocation")
	return alloc
}
