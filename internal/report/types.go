// Package report builds and persists the per-epoch weight report.
package report

// EpochReport is the terminal artifact of one epoch run. Field order is the
// on-disk key order.
type EpochReport struct {
	Epoch         string             `json:"epoch"`
	Tau           float64            `json:"tau"`
	ValueWeights  map[string]float64 `json:"value_weights"`
	EffortWeights map[string]float64 `json:"effort_weights"`
	Service       Service            `json:"service"`
	Miners        []Miner            `json:"miners"`
	Scorecards    []Scorecard        `json:"scorecards"`
}

type Service struct {
	AppliedShare float64 `json:"applied_share"`
	Hotkey       string  `json:"hotkey"`
}

type Miner struct {
	Hotkey   string  `json:"hotkey"`
	Weight   float64 `json:"weight"`
	RawScore float64 `json:"raw_score"`
}

type Scorecard struct {
	Rid    string  `json:"rid"`
	Github string  `json:"github"`
	Hotkey string  `json:"hotkey"`
	Score  float64 `json:"score"`
}
