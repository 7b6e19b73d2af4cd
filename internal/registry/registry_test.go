package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliceHotkey = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"

func TestParseFile(t *testing.T) {
	e, ok := ParseFile("github: @alice\nhotkey_ss58: " + aliceHotkey + "\nnonce: ab12\nsignature_b64: xyz==\n")
	require.True(t, ok)
	assert.Equal(t, Entry{Github: "alice", Hotkey: aliceHotkey}, e)

	_, ok = ParseFile("github: bob\n")
	assert.False(t, ok, "missing hotkey")

	_, ok = ParseFile("hotkey_ss58: " + aliceHotkey + "\n")
	assert.False(t, ok, "missing github")

	_, ok = ParseFile("  github: carol\n  hotkey_ss58: hk\n")
	assert.False(t, ok, "keys must start the line")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("a-alice.yaml", "github: alice\nhotkey_ss58: hk-old\n")
	write("b-alice.yaml", "github: @alice\nhotkey_ss58: "+aliceHotkey+"\n")
	write("bob.yaml", "github: bob\nhotkey_ss58: hk-bob\n")
	write("broken.yaml", "github: nobody\n")
	write("readme.txt", "github: txt\nhotkey_ss58: hk-txt\n")

	reg, err := Load(dir)
	require.NoError(t, err)

	assert.Len(t, reg, 2)
	hk, ok := reg.Lookup("alice")
	require.True(t, ok)
	assert.Equal(t, aliceHotkey, hk, "later file wins for duplicate handle")

	hk, ok = reg.Lookup("@bob")
	require.True(t, ok)
	assert.Equal(t, "hk-bob", hk)

	_, ok = reg.Lookup("nobody")
	assert.False(t, ok)
	_, ok = reg.Lookup("txt")
	assert.False(t, ok)
}

func TestLoadMissingDir(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, reg)
}
