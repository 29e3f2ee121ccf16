package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqpattern/internal/logger"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, "debug", "json")
	require.NoError(t, err)
	log.Debug("merged", "node", "_*_0")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "merged", rec["msg"])
	require.Equal(t, "_*_0", rec["node"])
}

func TestNewLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, "warn", "text")
	require.NoError(t, err)
	log.Info("hidden")
	require.Empty(t, buf.String())
	log.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestNewErrors(t *testing.T) {
	_, err := logger.New(&bytes.Buffer{}, "loud", "text")
	require.Error(t, err)
	_, err = logger.New(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
}
