package scoring

// ComposeFinalWeights scales the miner distribution by (1 - share), adds the
// share onto the service hotkey and renormalises. A service hotkey that is
// also a miner receives both contributions.
func ComposeFinalWeights(minerWeights map[string]float64, svc ServiceAllocation) map[string]float64 {
	final := make(map[string]float64, len(minerWeights)+1)

	scale := 1.0 - svc.Share
	for hk, w := range minerWeights {
		final[hk] = w * scale
	}
	if svc.Share > 0 && svc.Hotkey != "" {
		final[svc.Hotkey] += svc.Share
	}

	return NormalizeWeights(final)
}
