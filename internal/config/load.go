// Package config defines environment configuration structs and loaders.
package config

import (
	"context"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	PathEnvConfig
	ScoringEnvConfig
	OutputEnvConfig

	Environment string `env:"ENVIRONMENT, default=prod"`
}

func LoadConfig() (*AppConfig, error) {
	return LoadConfigFrom(context.Background(), nil)
}

// LoadConfigFrom processes the environment through an optional lookuper, which
// lets tests inject a fixed map instead of the process environment.
func LoadConfigFrom(ctx context.Context, lookuper envconfig.Lookuper) (*AppConfig, error) {
	cfg := &AppConfig{}
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PathEnvConfig locates the input and output trees. Empty directory fields are
// resolved relative to Root.
type PathEnvConfig struct {
	Root            string `env:"KOTH_ROOT, default=."`
	RequirementsDir string `env:"KOTH_REQUIREMENTS_DIR"`
	RegistryDir     string `env:"KOTH_REGISTRY_DIR"`
	SnapshotsDir    string `env:"KOTH_SNAPSHOTS_DIR"`
	ServiceSLADir   string `env:"KOTH_SERVICE_SLA_DIR"`
	WeightsDir      string `env:"KOTH_WEIGHTS_DIR"`
}

// ScoringEnvConfig holds the scoring tunables.
type ScoringEnvConfig struct {
	Tau              float64 `env:"KOTH_TAU, default=0.5"`
	ServiceThreshold float64 `env:"KOTH_SERVICE_THRESHOLD, default=0.8"`
	StrictTiers      bool    `env:"KOTH_STRICT_TIERS, default=false"`
}

// OutputEnvConfig controls report emission.
type OutputEnvConfig struct {
	ArchiveReports bool `env:"KOTH_ARCHIVE_REPORTS, default=false"`
}

func (p PathEnvConfig) resolve(dir string, parts ...string) string {
	if dir != "" {
		return dir
	}
	return filepath.Join(append([]string{p.Root}, parts...)...)
}

func (p PathEnvConfig) Requirements() string {
	return p.resolve(p.RequirementsDir, "requirements")
}

func (p PathEnvConfig) Registry() string {
	return p.resolve(p.RegistryDir, "registry", "miners")
}

func (p PathEnvConfig) Snapshots() string {
	return p.resolve(p.SnapshotsDir, "snapshots")
}

func (p PathEnvConfig) ServiceSLA() string {
	return p.resolve(p.ServiceSLADir, "service_sla")
}

func (p PathEnvConfig) Weights() string {
	return p.resolve(p.WeightsDir, "weights")
}
