package logs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"shiptrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shiptrack.log")

	cfg := &config.Config{}
	cfg.Env.Log.Level = "info"
	cfg.Env.Log.File = config.LogFile{Path: path, MaxSizeMB: 1}

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)

	logger.Info("shipment created", slog.String("tracking_code", "TKS-AB12CD34"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TKS-AB12CD34")
}
