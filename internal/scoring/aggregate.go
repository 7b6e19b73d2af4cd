package scoring

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/koth/internal/registry"
	"github.com/tensorplex-labs/koth/internal/requirements"
	"github.com/tensorplex-labs/koth/internal/scorecard"
)

// ResolveHotkey returns the card's explicit hotkey override or, failing that,
// the registered hotkey of its GitHub handle.
func ResolveHotkey(card scorecard.ScoreCard, resolver HotkeyResolver) string {
	if hk := strings.TrimSpace(card.Hotkey); hk != "" {
		return hk
	}
	if resolver == nil {
		return ""
	}
	hk, _ := resolver.Lookup(card.MinerGithub)
	return hk
}

// AggregateMinerScores sums requirement scores per hotkey. Scorecards that
// failed to parse, lack a requirement id, or resolve to no hotkey are skipped
// with a warning. Requirements without metadata score with defaults.
func AggregateMinerScores(
	results []scorecard.Result,
	metas map[string]requirements.Meta,
	resolver HotkeyResolver,
	tables WeightTables,
) (map[string]float64, []ScoredSubmission) {
	minerScores := make(map[string]float64)
	submissions := make([]ScoredSubmission, 0, len(results))

	for _, res := range results {
		if !res.OK() {
			log.Warn().Err(res.Err).Str("file", res.File).Msg("skip scorecard: unreadable")
			continue
		}

		card := res.Card
		rid := strings.TrimSpace(card.Requirement)
		gh := registry.NormalizeHandle(card.MinerGithub)
		hotkey := ResolveHotkey(card, resolver)
		if rid == "" || hotkey == "" {
			log.Warn().Str("file", res.File).Str("github", gh).Str("requirement", rid).
				Msg("skip scorecard: rid/hotkey missing")
			continue
		}

		meta, ok := metas[rid]
		if !ok {
			meta = requirements.NewMeta(rid)
		}

		rs := RequirementScore(card, meta, tables)
		minerScores[hotkey] += rs
		submissions = append(submissions, ScoredSubmission{
			File:   res.File,
			Rid:    rid,
			Github: gh,
			Hotkey: hotkey,
			Score:  rs,
		})
		log.Debug().Str("file", res.File).Str("hotkey", hotkey).Str("requirement", rid).
			Float64("score", rs).Msgf("hotkey %s scored %f for %s", hotkey, rs, rid)
	}

	return minerScores, submissions
}
