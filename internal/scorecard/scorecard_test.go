package scorecard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullCard = `{
  "requirement": "R-001",
  "miner_github": "@alice",
  "hotkey": "hk-override",
  "spec_checks": {"total": 10, "passed": 9.0},
  "coverage": {"delta": 0.05, "new_total": 0.81},
  "quality": {"complexity_delta": -0.2, "dup_delta": 0.0, "lints": 3},
  "perf": {"latency_ms_delta": -12.5, "throughput_delta": 0.1}
}`

func TestDecode(t *testing.T) {
	res := Decode("pr-1.json", []byte(fullCard))
	require.True(t, res.OK())

	assert.Equal(t, ScoreCard{
		Requirement: "R-001",
		MinerGithub: "@alice",
		Hotkey:      "hk-override",
		SpecChecks:  SpecChecks{Total: 10, Passed: 9},
		Coverage:    Coverage{Delta: 0.05},
		Quality:     Quality{ComplexityDelta: -0.2, Lints: 3},
		Perf:        Perf{LatencyMsDelta: -12.5, ThroughputDelta: 0.1},
	}, res.Card)
}

func TestDecodeSparse(t *testing.T) {
	res := Decode("pr-2.json", []byte(`{"requirement":"R-2","miner_github":"bob","hotkey":null}`))
	require.True(t, res.OK())
	assert.Empty(t, res.Card.Hotkey)
	assert.Zero(t, res.Card.SpecChecks.Total)
}

func TestDecodeMalformed(t *testing.T) {
	res := Decode("pr-3.json", []byte(`{"requirement": `))
	require.False(t, res.OK())
	assert.Equal(t, "pr-3.json", res.Err.File)

	var pe *ParseError
	var err error = res.Err
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), "pr-3.json")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestLoadEpoch(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("pr-20.json", `{"requirement":"R-2","miner_github":"b"}`)
	write("pr-10.json", `{"requirement":"R-1","miner_github":"a"}`)
	write("pr-15.json", `not json`)
	write("summary.json", `{"requirement":"R-9"}`)

	results, err := LoadEpoch(dir)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "pr-10.json", results[0].File)
	assert.Equal(t, "pr-15.json", results[1].File)
	assert.Equal(t, "pr-20.json", results[2].File)
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.Equal(t, "R-2", results[2].Card.Requirement)
}
