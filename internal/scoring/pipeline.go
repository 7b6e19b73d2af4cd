package scoring

import (
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/koth/internal/requirements"
	"github.com/tensorplex-labs/koth/internal/scorecard"
	"github.com/tensorplex-labs/koth/internal/sla"
)

type ScoringPipeline struct {
	Tau              float64
	ServiceThreshold float64
	Tables           WeightTables
	TierFallback     requirements.TierFallback
}

type ScoringPipelineOption func(*ScoringPipeline)

func WithTau(tau float64) ScoringPipelineOption {
	return func(p *ScoringPipeline) {
		p.Tau = tau
	}
}

func WithServiceThreshold(threshold float64) ScoringPipelineOption {
	return func(p *ScoringPipeline) {
		p.ServiceThreshold = threshold
	}
}

func WithWeightTables(tables WeightTables) ScoringPipelineOption {
	return func(p *ScoringPipeline) {
		p.Tables = tables
	}
}

func WithTierFallback(fallback requirements.TierFallback) ScoringPipelineOption {
	return func(p *ScoringPipeline) {
		p.TierFallback = fallback
	}
}

func NewScoringPipeline(opts ...ScoringPipelineOption) *ScoringPipeline {
	p := &ScoringPipeline{
		Tau:              DefaultTau,
		ServiceThreshold: DefaultServiceThreshold,
		Tables:           DefaultWeightTables(),
		TierFallback:     requirements.FallbackLenient,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Inputs is the loaded snapshot of one epoch.
type Inputs struct {
	Requirements map[string]requirements.Meta
	Registry     HotkeyResolver
	Scorecards   []scorecard.Result
	SLA          *sla.Record
}

// Process scores, aggregates, normalises and composes the final weights.
func (p *ScoringPipeline) Process(in Inputs) Outcome {
	log.Info().Float64("tau", p.Tau).Float64("serviceThreshold", p.ServiceThreshold).
		Str("tierFallback", p.TierFallback.String()).Int("scorecards", len(in.Scorecards)).
		Msg("Processing epoch scorecards")

	minerScores, submissions := AggregateMinerScores(in.Scorecards, in.Requirements, in.Registry, p.Tables)
	minerWeights := Softmax(minerScores, p.Tau)
	svc := ServiceShare(in.SLA, p.ServiceThreshold)
	final := ComposeFinalWeights(minerWeights, svc)

	log.Info().Int("miners", len(minerScores)).Int("scored", len(submissions)).
		Int("skipped", len(in.Scorecards)-len(submissions)).Float64("serviceShare", svc.Share).
		Msg("Computed epoch weights")

	return Outcome{
		Tau:          p.Tau,
		MinerScores:  minerScores,
		Submissions:  submissions,
		MinerWeights: minerWeights,
		Service:      svc,
		Final:        final,
	}
}
