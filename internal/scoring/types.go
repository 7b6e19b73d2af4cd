package scoring

// ScoredSubmission is the audit record of one scored scorecard.
type ScoredSubmission struct {
	File   string
	Rid    string
	Github string
	Hotkey string
	Score  float64
}

// ServiceAllocation is the service operator's carve-out for an epoch. Hotkey
// is recorded even when Share is 0.
type ServiceAllocation struct {
	Hotkey string
	Share  float64
}

// HotkeyResolver maps a GitHub handle to a registered hotkey.
type HotkeyResolver interface {
	Lookup(handle string) (string, bool)
}

// Outcome is everything one epoch run computes.
type Outcome struct {
	Tau          float64
	MinerScores  map[string]float64 // raw per-hotkey totals
	Submissions  []ScoredSubmission
	MinerWeights map[string]float64 // softmax of MinerScores
	Service      ServiceAllocation
	Final        map[string]float64
}
