package requirements

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

const filePattern = "R-*.yaml"

// Load reads every R-*.yaml file in dir in lexicographic order. A missing
// directory yields an empty set.
func Load(dir string, tiers TierSet, fallback TierFallback) (map[string]Meta, error) {
	paths, err := filepath.Glob(filepath.Join(dir, filePattern))
	if err != nil {
		return nil, fmt.Errorf("glob requirements: %w", err)
	}
	sort.Strings(paths)

	out := make(map[string]Meta, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read requirement %s: %w", p, err)
		}

		id := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		res := ParseFile(id, string(data))
		if len(res.UnknownKeys) > 0 || len(res.Malformed) > 0 {
			log.Trace().Str("requirement", id).Strs("unknownKeys", res.UnknownKeys).
				Int("malformedLines", len(res.Malformed)).Msg("ignored metadata lines")
		}

		if err := checkTiers(res.Meta, tiers, fallback); err != nil {
			return nil, err
		}
		out[id] = res.Meta
	}

	log.Debug().Int("count", len(out)).Str("dir", dir).Msg("loaded requirement metadata")
	return out, nil
}

func checkTiers(m Meta, tiers TierSet, fallback TierFallback) error {
	if tiers == nil {
		return nil
	}

	if !tiers.HasValue(m.Value) {
		if fallback == FallbackStrict {
			return fmt.Errorf("requirement %s: value %q: %w", m.ID, m.Value, ErrUnknownTier)
		}
		log.Warn().Str("requirement", m.ID).Str("value", m.Value).
			Msgf("unknown value tier, scoring as %s", DefaultValue)
	}
	if !tiers.HasEffort(m.Effort) {
		if fallback == FallbackStrict {
			return fmt.Errorf("requirement %s: effort %q: %w", m.ID, m.Effort, ErrUnknownTier)
		}
		log.Warn().Str("requirement", m.ID).Str("effort", m.Effort).
			Msgf("unknown effort tier, scoring as %s", DefaultEffort)
	}
	return nil
}
