package chainutils

import (
	"github.com/vedhavyas/go-subkey"
)

// IsSS58Address reports whether addr decodes as an SS58 address carrying a
// 32-byte public key.
func IsSS58Address(addr string) bool {
	if addr == "" {
		return false
	}
	_, pub, err := subkey.SS58Decode(addr)
	if err != nil {
		return false
	}
	return len(pub) == 32
}
