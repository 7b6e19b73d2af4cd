// Package registry maps GitHub handles to the hotkeys miners registered with.
package registry

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	chainutils "github.com/tensorplex-labs/koth/internal/utils/chain_utils"
)

const filePattern = "*.yaml"

// Entry is the part of a registry file the scorer reads. The nonce and
// signature written by the registration tool are ignored.
type Entry struct {
	Github string
	Hotkey string
}

// Registry resolves a GitHub handle to a hotkey.
type Registry map[string]string

// Lookup returns the hotkey for handle, ignoring a leading '@'.
func (r Registry) Lookup(handle string) (string, bool) {
	hk, ok := r[NormalizeHandle(handle)]
	return hk, ok && hk != ""
}

// NormalizeHandle strips leading '@' characters from a GitHub handle.
func NormalizeHandle(handle string) string {
	return strings.TrimLeft(handle, "@")
}

// ParseFile reads the github and hotkey_ss58 lines of one registry file. ok is
// false when either is missing.
func ParseFile(content string) (Entry, bool) {
	var e Entry
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "github:"):
			e.Github = NormalizeHandle(strings.TrimSpace(strings.TrimPrefix(line, "github:")))
		case strings.HasPrefix(line, "hotkey_ss58:"):
			e.Hotkey = strings.TrimSpace(strings.TrimPrefix(line, "hotkey_ss58:"))
		}
	}
	return e, e.Github != "" && e.Hotkey != ""
}

// Load reads every registry file in dir. Files are applied in lexicographic
// order, so a later file wins when two name the same handle. A missing
// directory yields an empty registry.
func Load(dir string) (Registry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, filePattern))
	if err != nil {
		return nil, fmt.Errorf("glob registry: %w", err)
	}
	sort.Strings(paths)

	reg := make(Registry, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read registry entry %s: %w", p, err)
		}

		e, ok := ParseFile(string(data))
		if !ok {
			log.Debug().Str("file", filepath.Base(p)).Msg("registry entry lacks github or hotkey_ss58, ignoring")
			continue
		}
		if !chainutils.IsSS58Address(e.Hotkey) {
			log.Warn().Str("file", filepath.Base(p)).Str("hotkey", e.Hotkey).Msg("registry hotkey is not a valid SS58 address")
		}
		if prev, dup := reg[e.Github]; dup && prev != e.Hotkey {
			log.Warn().Str("github", e.Github).Str("previous", prev).Str("hotkey", e.Hotkey).
				Str("file", filepath.Base(p)).Msg("duplicate registry handle, later file wins")
		}
		reg[e.Github] = e.Hotkey
	}

	log.Debug().Int("count", len(reg)).Str("dir", dir).Msg("loaded miner registry")
	return reg, nil
}
