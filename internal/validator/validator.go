package validator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/koth/internal/config"
	"github.com/tensorplex-labs/koth/internal/registry"
	"github.com/tensorplex-labs/koth/internal/report"
	"github.com/tensorplex-labs/koth/internal/requirements"
	"github.com/tensorplex-labs/koth/internal/scorecard"
	"github.com/tensorplex-labs/koth/internal/scoring"
	"github.com/tensorplex-labs/koth/internal/sla"
)

// Validator scores epochs from the directory tree described by Paths.
type Validator struct {
	Paths    config.PathEnvConfig
	Pipeline *scoring.ScoringPipeline
	Archive  bool
}

// NewValidator builds a Validator from the app config. Extra options are
// applied after the configured tunables.
func NewValidator(cfg *config.AppConfig, opts ...scoring.ScoringPipelineOption) *Validator {
	fallback := requirements.FallbackLenient
	if cfg.StrictTiers {
		fallback = requirements.FallbackStrict
	}

	base := []scoring.ScoringPipelineOption{
		scoring.WithTau(cfg.Tau),
		scoring.WithServiceThreshold(cfg.ServiceThreshold),
		scoring.WithTierFallback(fallback),
	}

	return &Validator{
		Paths:    cfg.PathEnvConfig,
		Pipeline: scoring.NewScoringPipeline(append(base, opts...)...),
		Archive:  cfg.ArchiveReports,
	}
}

// ValidateEpoch rejects names that would escape the per-epoch directories.
func ValidateEpoch(epoch string) error {
	if epoch == "" || epoch == "." || epoch == ".." ||
		strings.ContainsAny(epoch, `/\`) || filepath.Base(epoch) != epoch {
		return fmt.Errorf("%w: %q", ErrInvalidEpoch, epoch)
	}
	return nil
}

// RunEpoch scores epoch and writes its report. An epoch without a snapshot
// directory is logged and returns (nil, nil) with nothing written.
func (v *Validator) RunEpoch(epoch string) (*EpochResult, error) {
	if err := ValidateEpoch(epoch); err != nil {
		return nil, err
	}

	in, err := v.loadInputs(epoch)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			log.Info().Str("epoch", epoch).Msgf("No snapshot dir %s", filepath.Join(v.Paths.Snapshots(), epoch))
			return nil, nil
		}
		return nil, err
	}

	outcome := v.Pipeline.Process(in)
	rep := report.Build(epoch, outcome, v.Pipeline.Tables)

	path, err := report.Write(v.Paths.Weights(), rep, v.Archive)
	if err != nil {
		return nil, fmt.Errorf("write report for epoch %s: %w", epoch, err)
	}
	log.Info().Str("epoch", epoch).Int("miners", len(rep.Miners)).Msgf("Wrote %s", path)

	return &EpochResult{Outcome: outcome, Report: rep, ReportPath: path}, nil
}

func (v *Validator) loadInputs(epoch string) (scoring.Inputs, error) {
	snapDir := filepath.Join(v.Paths.Snapshots(), epoch)
	info, err := os.Stat(snapDir)
	if err != nil {
		if os.IsNotExist(err) {
			return scoring.Inputs{}, ErrNoSnapshot
		}
		return scoring.Inputs{}, fmt.Errorf("stat snapshot dir: %w", err)
	}
	if !info.IsDir() {
		return scoring.Inputs{}, ErrNoSnapshot
	}

	reg, err := registry.Load(v.Paths.Registry())
	if err != nil {
		return scoring.Inputs{}, err
	}

	metas, err := requirements.Load(v.Paths.Requirements(), v.Pipeline.Tables, v.Pipeline.TierFallback)
	if err != nil {
		return scoring.Inputs{}, err
	}

	cards, err := scorecard.LoadEpoch(snapDir)
	if err != nil {
		return scoring.Inputs{}, err
	}

	rec, err := sla.Load(sla.Path(v.Paths.ServiceSLA(), epoch))
	if err != nil {
		var pe *sla.ParseError
		if !errors.As(err, &pe) {
			return scoring.Inputs{}, err
		}
		log.Warn().Err(err).Str("epoch", epoch).Msg("unreadable SLA record, no service share this epoch")
		rec = nil
	}

	return scoring.Inputs{
		Requirements: metas,
		Registry:     reg,
		Scorecards:   cards,
		SLA:          rec,
	}, nil
}
