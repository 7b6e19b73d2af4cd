package scorecard

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

const filePattern = "pr-*.json"

// Decode parses one scorecard document.
func Decode(file string, data []byte) Result {
	var card ScoreCard
	if err := sonic.Unmarshal(data, &card); err != nil {
		return Result{File: file, Err: &ParseError{File: file, Err: err}}
	}
	return Result{File: file, Card: card}
}

// LoadEpoch reads every pr-*.json file in dir in lexicographic order. Files
// that fail to decode are returned as results carrying a ParseError; only I/O
// failures abort the load.
func LoadEpoch(dir string) ([]Result, error) {
	paths, err := filepath.Glob(filepath.Join(dir, filePattern))
	if err != nil {
		return nil, fmt.Errorf("glob scorecards: %w", err)
	}
	sort.Strings(paths)

	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read scorecard %s: %w", p, err)
		}
		results = append(results, Decode(filepath.Base(p), data))
	}

	log.Debug().Int("count", len(results)).Str("dir", dir).Msg("loaded scorecards")
	return results, nil
}
