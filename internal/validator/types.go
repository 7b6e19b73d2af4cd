// Package validator runs one epoch end to end: load the snapshot, score it,
// and persist the weight report.
package validator

import (
	"errors"

	"github.com/tensorplex-labs/koth/internal/report"
	"github.com/tensorplex-labs/koth/internal/scoring"
)

var (
	// ErrNoSnapshot marks an epoch without a snapshot directory. RunEpoch
	// treats it as a no-op rather than a failure.
	ErrNoSnapshot = errors.New("no snapshot for epoch")
	// ErrInvalidEpoch rejects epoch names that are not a single path element.
	ErrInvalidEpoch = errors.New("invalid epoch")
)

// EpochResult is what a completed run produced.
type EpochResult struct {
	Outcome    scoring.Outcome
	Report     report.EpochReport
	ReportPath string
}
