package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name        string
		level       string
		format      string
		enabled     zapcore.Level
		disabled    zapcore.Level
		checkOff    bool
		expectError bool
	}{
		{name: "Console debug", level: "debug", format: "console", enabled: zapcore.DebugLevel},
		{name: "Json warn", level: "warn", format: "json", enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel, checkOff: true},
		{name: "Empty level defaults to info", level: "", format: "", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel, checkOff: true},
		{name: "Bad level", level: "loud", format: "json", expectError: true},
		{name: "Bad format", level: "info", format: "xml", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := NewLogger(tc.level, tc.format)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, log.Core().Enabled(tc.enabled))
			if tc.checkOff {
				assert.False(t, log.Core().Enabled(tc.disabled))
			}
		})
	}
}
