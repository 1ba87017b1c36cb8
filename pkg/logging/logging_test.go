package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		level     string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{level: "debug", wantLevel: zapcore.DebugLevel},
		{level: "info", wantLevel: zapcore.InfoLevel},
		{level: "warn", wantLevel: zapcore.WarnLevel},
		{level: "error", wantLevel: zapcore.ErrorLevel},
		{level: "verbose", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			haveLevel, err := ParseLevel(tc.level)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantLevel, haveLevel)
		})
	}

	// every flag value must be accepted
	for _, lvl := range Levels {
		_, err := ParseLevel(lvl)
		require.NoError(t, err)
	}
}

func TestNewLogger(t *testing.T) {
	logger := New(zapcore.WarnLevel)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	require.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
