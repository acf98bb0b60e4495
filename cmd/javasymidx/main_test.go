package main

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevel(t *testing.T) {
	defer func() { verboseFlag = false }()

	for name, tc := range map[string]struct {
		verbose bool
		want    zerolog.Level
	}{
		"default": {false, zerolog.InfoLevel},
		"verbose": {true, zerolog.DebugLevel},
	} {
		t.Run(name, func(t *testing.T) {
			verboseFlag = tc.verbose
			logger := newLogger()
			if got := logger.GetLevel(); got != tc.want {
				t.Errorf("GetLevel(): want %v, got %v", tc.want, got)
			}
		})
	}
}
