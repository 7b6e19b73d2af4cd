package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		flags       Flags
		want        zerolog.Level
	}{
		{"prod default", "prod", Flags{}, zerolog.InfoLevel},
		{"empty env", "", Flags{}, zerolog.InfoLevel},
		{"dev traces", "dev", Flags{}, zerolog.TraceLevel},
		{"test traces", "TEST", Flags{}, zerolog.TraceLevel},
		{"unknown env", "staging", Flags{}, zerolog.InfoLevel},
		{"debug flag wins", "prod", Flags{Debug: true}, zerolog.DebugLevel},
		{"debug beats trace", "prod", Flags{Debug: true, Trace: true}, zerolog.DebugLevel},
		{"trace flag", "prod", Flags{Trace: true}, zerolog.TraceLevel},
		{"info flag quietens dev", "dev", Flags{Info: true}, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.environment, tt.flags))
		})
	}
}
