package logging_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/on-the-ground/immutable_ive_go/shared/logging"
)

func TestNewDevelopment_EnablesDebug(t *testing.T) {
	logger := logging.NewDevelopment()
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewConsole_RespectsLevel(t *testing.T) {
	buf := &zaptest.Buffer{}
	logger := logging.NewConsole(buf, zap.InfoLevel)

	logger.Debug("hidden")
	logger.Info("shown", zap.String("type", "main.point"))

	lines := buf.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "shown")
	assert.Contains(t, lines[0], "main.point")
}

func TestNewJSON_WritesObjects(t *testing.T) {
	buf := &zaptest.Buffer{}
	logger := logging.NewJSON(buf, zap.DebugLevel)

	logger.Warn("failed to build generated operation", zap.String("kind", "clone"))

	lines := buf.Lines()
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "clone", entry["kind"])
	assert.Equal(t, "failed to build generated operation", entry["msg"])
}
