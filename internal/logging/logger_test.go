package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWithFile_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dumbtop.log")

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.DebugLevel, Format: "console"},
		FileConfig{Enabled: true, Path: path, MaxSizeMB: 1, MaxBackups: 1},
	)
	require.NoError(t, err)

	logger.Info().Str("window_id", "w1").Msg("window opened")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"window_id":"w1"`)
	assert.Contains(t, string(data), `"message":"window opened"`)
}

func TestNewWithFile_NoOutputsIsDisabled(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithContext(context.Background(), base)
	ctx = WithComponent(ctx, "store")
	ctx = WithWindowID(ctx, "abc")

	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"store"`)
	assert.Contains(t, buf.String(), `"window_id":"abc"`)
}

func TestFromContext_WithoutLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}
