package logger

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muhammadchandra19/orderbook/pkg/errors"
	"github.com/muhammadchandra19/orderbook/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func newFileLogger(t *testing.T, opts ...Options) (*Logger, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.log")
	log, err := NewLogger(append(opts, WithOutputPaths([]string{path}))...)
	require.NoError(t, err)
	return log, path
}

func TestLogger_InfoContext(t *testing.T) {
	log, path := newFileLogger(t)

	ctx := util.WithOffset(util.WithRequestID(context.Background(), "req-1"), 7)
	log.InfoContext(ctx, "order accepted", NewField("orderID", "001"))
	require.NoError(t, log.Sync())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "order accepted", entries[0]["message"])
	assert.Equal(t, "001", entries[0]["orderID"])
	assert.Equal(t, "req-1", entries[0]["request_id"])
	assert.Equal(t, float64(7), entries[0]["offset"])
}

func TestLogger_Level(t *testing.T) {
	log, path := newFileLogger(t, WithLoggingLevel(WarnLevel))

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")
	require.NoError(t, log.Sync())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])
}

func TestLogger_ErrorWithTracer(t *testing.T) {
	log, path := newFileLogger(t)

	err := errors.NewTracer("snapshot_store_error").Wrap(stderrors.New("connection refused"))
	log.Error(err, NewField("pair", "BTC-USD"))
	require.NoError(t, log.Sync())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "snapshot_store_error", entries[0]["message"])
	assert.Equal(t, "BTC-USD", entries[0]["pair"])
	assert.Contains(t, entries[0]["stacktrace"], "TestLogger_ErrorWithTracer")
}

func TestLogger_WithFields(t *testing.T) {
	log, path := newFileLogger(t)

	log.WithFields(NewField("pair", "ETH-USD")).Info("child")
	require.NoError(t, log.Sync())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "ETH-USD", entries[0]["pair"])
}

func TestLevel_getZapLevel(t *testing.T) {
	assert.Equal(t, "debug", DebugLevel.getZapLevel().String())
	assert.Equal(t, "error", ErrorLevel.getZapLevel().String())
	assert.Equal(t, "info", Level("verbose").getZapLevel().String())
}
