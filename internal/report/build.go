package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tensorplex-labs/koth/internal/scoring"
)

const (
	weightPlaces = 10
	scorePlaces  = 6
)

func round(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// Build assembles the report of an epoch outcome. Miners are ordered by final
// weight, heaviest first, with ties broken by hotkey.
func Build(epoch string, out scoring.Outcome, tables scoring.WeightTables) EpochReport {
	miners := make([]Miner, 0, len(out.Final))
	for hk, w := range out.Final {
		miners = append(miners, Miner{Hotkey: hk, Weight: w, RawScore: out.MinerScores[hk]})
	}
	sort.Slice(miners, func(i, j int) bool {
		if miners[i].Weight != miners[j].Weight {
			return miners[i].Weight > miners[j].Weight
		}
		return miners[i].Hotkey < miners[j].Hotkey
	})
	for i := range miners {
		miners[i].Weight = round(miners[i].Weight, weightPlaces)
		miners[i].RawScore = round(miners[i].RawScore, scorePlaces)
	}

	scorecards := make([]Scorecard, 0, len(out.Submissions))
	for _, s := range out.Submissions {
		scorecards = append(scorecards, Scorecard{
			Rid:    s.Rid,
			Github: s.Github,
			Hotkey: s.Hotkey,
			Score:  round(s.Score, scorePlaces),
		})
	}

	return EpochReport{
		Epoch:         epoch,
		Tau:           out.Tau,
		ValueWeights:  tables.ValueWeights(),
		EffortWeights: tables.EffortWeights(),
		Service: Service{
			AppliedShare: out.Service.Share,
			Hotkey:       out.Service.Hotkey,
		},
		Miners:     miners,
		Scorecards: scorecards,
	}
}

// WeightSum is the sum of the reported miner weights.
func (r EpochReport) WeightSum() float64 {
	var s float64
	for _, m := range r.Miners {
		s += m.Weight
	}
	return s
}
