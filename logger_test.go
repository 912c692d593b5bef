package kmeans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("Fields", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
			WithRunID("abc").
			WithK(3).
			WithDimension(2).
			WithCount(10)

		l.LogConverged(ctx, 4, 0.5)

		entries := decodeLogLines(t, &buf)
		require.Len(t, entries, 1)
		e := entries[0]
		assert.Equal(t, "run converged", e["msg"])
		assert.Equal(t, "INFO", e["level"])
		assert.Equal(t, "abc", e["run_id"])
		assert.Equal(t, 3.0, e["k"])
		assert.Equal(t, 2.0, e["dimension"])
		assert.Equal(t, 10.0, e["count"])
		assert.Equal(t, 4.0, e["iterations"])
		assert.Equal(t, 0.5, e["oscillation"])
	})

	t.Run("RunFailed", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, nil))

		l.LogRunFailed(ctx, 2, errors.New("boom"))

		entries := decodeLogLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "ERROR", entries[0]["level"])
		assert.Equal(t, "boom", entries[0]["error"])
		assert.Equal(t, 2.0, entries[0]["iteration"])
	})

	t.Run("DebugFilteredAtInfo", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

		l.LogIteration(ctx, 1, 1.0, NewClusterSet(NewCluster(NewVector(1))))
		l.LogSeed(ctx, NewClusterSet(NewCluster(NewVector(1))), 0.1)

		assert.Empty(t, buf.String())
	})

	t.Run("Constructors", func(t *testing.T) {
		assert.NotNil(t, NewLogger(nil))
		assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
		assert.NotNil(t, NewTextLogger(slog.LevelDebug))

		noop := NoopLogger()
		assert.NotPanics(t, func() { noop.LogConverged(ctx, 1, 0) })
	})
}

func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Fit(context.Background(), diagonalDataSet(t, 9), 2, 0.02, WithLogger(logger))
	require.NoError(t, err)

	entries := decodeLogLines(t, &buf)
	var passes int
	runIDs := map[any]struct{}{}
	for _, e := range entries {
		runIDs[e["run_id"]] = struct{}{}
		if e["msg"] == "pass completed" {
			passes++
		}
	}

	assert.Equal(t, 4, passes)
	assert.Equal(t, "clusters seeded", entries[0]["msg"])
	assert.Equal(t, "run converged", entries[len(entries)-1]["msg"])
	assert.Len(t, runIDs, 1)
	assert.NotContains(t, runIDs, nil)
}
