package metrics_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resourcemetrics/internal/metrics"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) lines() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err == nil {
			out = append(out, m)
		}
	}
	return out
}

func TestReporter_Report(t *testing.T) {
	var buf syncBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	backend := metrics.NewMemoryBackend()
	c, err := backend.Counter("widgets./widgets GET 200 counter", nil)
	require.NoError(t, err)
	c.Inc()
	tm, err := backend.Timer("http.server.requests", metrics.TagsOf("method", "GET"))
	require.NoError(t, err)
	tm.Record(3 * time.Millisecond)

	r := metrics.NewReporter(time.Minute, logger)
	r.Add("backend", func() []any { return []any{slog.Int64("created", backend.Created())} })
	r.WithMeters(backend.Snapshot)
	r.Report(context.Background())

	lines := buf.lines()
	require.Len(t, lines, 3)

	assert.Equal(t, "metrics report", lines[0]["msg"])
	group, ok := lines[0]["backend"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 2, group["created"], 0)

	assert.Equal(t, "meter", lines[1]["msg"])
	assert.Equal(t, "counter", lines[1]["kind"])
	assert.Equal(t, "timer", lines[2]["kind"])
	assert.Equal(t, "method=GET", lines[2]["tags"])
}

func TestReporter_NoMetersAboveDebug(t *testing.T) {
	var buf syncBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	backend := metrics.NewMemoryBackend()
	_, err := backend.Counter("c", nil)
	require.NoError(t, err)

	r := metrics.NewReporter(time.Minute, logger)
	r.WithMeters(backend.Snapshot)
	r.Report(context.Background())

	assert.Len(t, buf.lines(), 1)
}

func TestReporter_StartClose(t *testing.T) {
	var buf syncBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := metrics.NewReporter(5*time.Millisecond, logger)
	r.Add("static", func() []any { return []any{slog.String("k", "v")} })
	r.Start(context.Background())

	assert.Eventually(t, func() bool {
		reports := 0
		for _, l := range buf.lines() {
			if l["msg"] == "metrics report" {
				reports++
			}
		}
		return reports >= 2
	}, time.Second, 5*time.Millisecond)

	r.Close()
	r.Close()
}

func TestReporter_Disabled(t *testing.T) {
	var buf syncBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := metrics.NewReporter(0, logger)
	r.Start(context.Background())
	r.Close()

	lines := buf.lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "metrics reporting disabled", lines[0]["msg"])
}

func TestReporter_GatherSource(t *testing.T) {
	var buf syncBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	reg := prom.NewRegistry()
	backend := metrics.NewPrometheusBackend(reg)
	c, err := backend.Counter("widgets./widgets GET 200 counter", nil)
	require.NoError(t, err)
	c.Inc()
	for _, status := range []string{"200", "404"} {
		tm, err := backend.Timer("http.server.requests", metrics.TagsOf("status", status))
		require.NoError(t, err)
		tm.Record(time.Millisecond)
	}

	r := metrics.NewReporter(time.Minute, logger)
	r.Add("backend", metrics.GatherSource(reg))
	r.Report(context.Background())

	lines := buf.lines()
	require.Len(t, lines, 1)
	group, ok := lines[0]["backend"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 2, group["families"], 0)
	assert.InDelta(t, 3, group["series"], 0)
	assert.NotContains(t, group, "error")
}
