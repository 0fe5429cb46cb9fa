package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Source contributes attributes to a periodic report.
type Source func() []any

// GatherSource reports how many metric families and series g currently
// holds. Gather failures are reported as an attribute, not dropped.
func GatherSource(g prom.Gatherer) Source {
	return func() []any {
		mfs, err := g.Gather()
		series := 0
		for _, mf := range mfs {
			series += len(mf.GetMetric())
		}
		attrs := []any{slog.Int("families", len(mfs)), slog.Int("series", series)}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		return attrs
	}
}

// Reporter periodically logs an inventory of live metrics and of the
// supporting infrastructure. Nothing is exported.
type Reporter struct {
	logger       *slog.Logger
	interval     time.Duration
	names        []string
	sources      []Source
	meters       func() []MeterSnapshot
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewReporter(interval time.Duration, logger *slog.Logger) *Reporter {
	return &Reporter{
		logger:     logger,
		interval:   interval,
		shutdownCh: make(chan struct{}),
	}
}

// Add registers a named source. Not safe to call after Start.
func (r *Reporter) Add(name string, src Source) {
	r.names = append(r.names, name)
	r.sources = append(r.sources, src)
}

// WithMeters makes every report also log each meter at debug level.
func (r *Reporter) WithMeters(snapshot func() []MeterSnapshot) {
	r.meters = snapshot
}

func (r *Reporter) Start(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Info("metrics reporting disabled")
		return
	}

	r.wg.Add(1)
	go r.loop(ctx)

	r.logger.Info("metrics reporter started", slog.Duration("interval", r.interval))
}

func (r *Reporter) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func (r *Reporter) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Report(context.Background())
			return
		case <-r.shutdownCh:
			r.Report(context.Background())
			return
		case <-ticker.C:
			r.Report(ctx)
		}
	}
}

// Report logs one inventory immediately.
func (r *Reporter) Report(ctx context.Context) {
	attrs := make([]any, 0, len(r.sources))
	for i, src := range r.sources {
		attrs = append(attrs, slog.Group(r.names[i], src()...))
	}
	r.logger.InfoContext(ctx, "metrics report", attrs...)

	if r.meters == nil || !r.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	for _, m := range r.meters() {
		args := []any{
			slog.String("kind", string(m.Identity.Kind)),
			slog.String("name", m.Identity.Name),
			slog.String("tags", m.Identity.Tags.String()),
			slog.Int64("count", m.Count),
		}
		if m.Identity.Kind == KindTimer {
			args = append(args, slog.Duration("total", m.Total), slog.Duration("max", m.Max))
		}
		r.logger.DebugContext(ctx, "meter", args...)
	}
}
