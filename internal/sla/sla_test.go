package sla

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir, "e1"), []byte(`{"hotkey":"hk-svc","budget":0.075,"service_score":0.93}`), 0o644))

	rec, err := Load(Path(dir, "e1"))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, Record{Hotkey: "hk-svc", Budget: 0.075, ServiceScore: 0.93}, *rec)
}

func TestLoadMissing(t *testing.T) {
	rec, err := Load(Path(t.TempDir(), "e404"))
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir, "bad"), []byte(`{"hotkey":`), 0o644))

	rec, err := Load(Path(dir, "bad"))
	assert.Nil(t, rec)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "bad.json", pe.File)
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("service_sla", "2025-07.json"), Path("service_sla", "2025-07"))
}
