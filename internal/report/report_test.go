package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/koth/internal/scoring"
)

func sampleOutcome() scoring.Outcome {
	return scoring.Outcome{
		Tau:         0.5,
		MinerScores: map[string]float64{"hk-A": 1.2150000000000003, "hk-B": 0.21},
		Submissions: []scoring.ScoredSubmission{
			{File: "pr-1.json", Rid: "R-A", Github: "alice", Hotkey: "hk-A", Score: 1.2150000000000003},
			{File: "pr-2.json", Rid: "R-B", Github: "bob", Hotkey: "hk-B", Score: 0.21},
		},
		Service: scoring.ServiceAllocation{Hotkey: "hk-C", Share: 0.09000000000000001},
		Final:   map[string]float64{"hk-A": 0.80248, "hk-B": 0.10752, "hk-C": 0.09},
	}
}

func TestBuild(t *testing.T) {
	r := Build("2025-07", sampleOutcome(), scoring.DefaultWeightTables())

	assert.Equal(t, "2025-07", r.Epoch)
	assert.Equal(t, 0.5, r.Tau)
	assert.Equal(t, 1.5, r.EffortWeights["XL"])
	assert.Equal(t, 0.6, r.ValueWeights["Low"])
	assert.Equal(t, Service{AppliedShare: 0.09000000000000001, Hotkey: "hk-C"}, r.Service)

	require.Len(t, r.Miners, 3)
	assert.Equal(t, Miner{Hotkey: "hk-A", Weight: 0.80248, RawScore: 1.215}, r.Miners[0])
	assert.Equal(t, Miner{Hotkey: "hk-B", Weight: 0.10752, RawScore: 0.21}, r.Miners[1])
	assert.Equal(t, Miner{Hotkey: "hk-C", Weight: 0.09, RawScore: 0}, r.Miners[2], "service-only hotkey has no raw score")

	require.Len(t, r.Scorecards, 2)
	assert.Equal(t, Scorecard{Rid: "R-A", Github: "alice", Hotkey: "hk-A", Score: 1.215}, r.Scorecards[0])
	assert.InDelta(t, 1.0, r.WeightSum(), 1e-9)
}

func TestBuildTieBreak(t *testing.T) {
	out := scoring.Outcome{Final: map[string]float64{"hk-z": 0.25, "hk-a": 0.25, "hk-m": 0.5}}
	r := Build("e", out, scoring.DefaultWeightTables())
	assert.Equal(t, []string{"hk-m", "hk-a", "hk-z"}, []string{r.Miners[0].Hotkey, r.Miners[1].Hotkey, r.Miners[2].Hotkey})
}

func TestBuildEmpty(t *testing.T) {
	r := Build("e", scoring.Outcome{Tau: 0.5}, scoring.DefaultWeightTables())

	data, err := Encode(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"miners": []`)
	assert.Contains(t, string(data), `"scorecards": []`)
}

func TestEncodeIsDeterministic(t *testing.T) {
	first, err := Encode(Build("2025-07", sampleOutcome(), scoring.DefaultWeightTables()))
	require.NoError(t, err)

	for range 25 {
		again, err := Encode(Build("2025-07", sampleOutcome(), scoring.DefaultWeightTables()))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	var decoded map[string]any
	require.NoError(t, sonic.Unmarshal(first, &decoded))
	assert.Equal(t, "2025-07", decoded["epoch"])
	assert.Contains(t, string(first), `"value_weights": {`+"\n"+`    "Critical": 1,`)
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "weights")
	r := Build("2025-07", sampleOutcome(), scoring.DefaultWeightTables())

	path, err := Write(dir, r, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2025-07.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := Encode(r)
	require.NoError(t, err)
	assert.Equal(t, want, data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
	assert.NoFileExists(t, path+archiveExt)
}

func TestWriteArchive(t *testing.T) {
	dir := t.TempDir()
	r := Build("2025-08", sampleOutcome(), scoring.DefaultWeightTables())

	path, err := Write(dir, r, true)
	require.NoError(t, err)

	plain, err := os.ReadFile(path)
	require.NoError(t, err)
	compressed, err := os.ReadFile(path + archiveExt)
	require.NoError(t, err)

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()

	restored, err := dec.DecodeAll(compressed, nil)
	require.NoError(t, err)
	assert.Equal(t, plain, restored)
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir, "e"), []byte("stale"), 0o644))

	path, err := Write(dir, Build("e", scoring.Outcome{}, scoring.DefaultWeightTables()), false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}
