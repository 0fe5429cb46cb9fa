package metrics

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	prom "github.com/prometheus/client_golang/prometheus"
)

const (
	counterHelp = "Resource method status code counter"
	timerHelp   = "Resource method dispatch duration in seconds"
)

// PrometheusBackend registers one collector per name and tags. Names are
// escaped into the Prometheus charset and tags become const labels.
// Registering an existing series returns the collector already registered.
type PrometheusBackend struct {
	reg     prom.Registerer
	buckets []float64
}

type PrometheusOption func(*PrometheusBackend)

func WithBuckets(buckets []float64) PrometheusOption {
	return func(b *PrometheusBackend) { b.buckets = buckets }
}

func NewPrometheusBackend(reg prom.Registerer, opts ...PrometheusOption) *PrometheusBackend {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	b := &PrometheusBackend{reg: reg, buckets: prom.DefBuckets}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *PrometheusBackend) Counter(name string, tags Tags) (Counter, error) {
	c := prom.NewCounter(prom.CounterOpts{
		Name:        SanitizeName(name),
		Help:        counterHelp,
		ConstLabels: tags.Map(),
	})
	registered, err := b.register(c)
	if err != nil {
		return nil, fmt.Errorf("counter %q: %w", name, err)
	}
	counter, ok := registered.(prom.Counter)
	if !ok {
		return nil, fmt.Errorf("counter %q: registered as %T: %w", name, registered, ErrInvalidName)
	}
	return counter, nil
}

func (b *PrometheusBackend) Timer(name string, tags Tags) (Timer, error) {
	h := prom.NewHistogram(prom.HistogramOpts{
		Name:        SanitizeName(name),
		Help:        timerHelp,
		ConstLabels: tags.Map(),
		Buckets:     b.buckets,
	})
	registered, err := b.register(h)
	if err != nil {
		return nil, fmt.Errorf("timer %q: %w", name, err)
	}
	observer, ok := registered.(prom.Observer)
	if !ok {
		return nil, fmt.Errorf("timer %q: registered as %T: %w", name, registered, ErrInvalidName)
	}
	return promTimer{observer: observer}, nil
}

func (b *PrometheusBackend) register(c prom.Collector) (prom.Collector, error) {
	if err := b.reg.Register(c); err != nil {
		var are prom.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector, nil
		}
		return nil, err
	}
	return c, nil
}

type promTimer struct {
	observer prom.Observer
}

func (t promTimer) Record(d time.Duration) {
	t.observer.Observe(d.Seconds())
}

// SanitizeName maps name onto [a-zA-Z_:][a-zA-Z0-9_:]* one-to-one, so two
// distinct names never share a collector. '.' becomes ':', '_' is doubled and
// every other rune (including ':' and a leading digit) is written as _x<hex>_.
// Bytes that are not valid UTF-8 are written as _b<hex>_. An empty name stays
// empty so that registration rejects it.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 8)
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&b, "_b%02x_", name[i])
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9' && i > 0:
			b.WriteRune(r)
		case r == '_':
			b.WriteString("__")
		case r == '.':
			b.WriteByte(':')
		default:
			fmt.Fprintf(&b, "_x%x_", r)
		}
		i += size
	}
	return b.String()
}
