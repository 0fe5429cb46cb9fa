package middleware

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resourcemetrics/internal/enablement"
	"resourcemetrics/internal/metrics"
	"resourcemetrics/internal/naming"
	"resourcemetrics/internal/resource"
)

// StatusResolver maps an error returned by a handler to the HTTP status the
// error handler will respond with. ok is false for unmapped errors.
type StatusResolver func(err error) (status int, ok bool)

// HTTPErrorStatus resolves *echo.HTTPError to its code.
func HTTPErrorStatus(err error) (int, bool) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, true
	}
	return 0, false
}

// Binding is the bind-time decision for one route.
type Binding struct {
	Route          naming.Route
	Timing         bool
	StatusCounting bool
}

func (b Binding) Wrapped() bool {
	return b.Timing || b.StatusCounting
}

// Instrumentor wraps resource methods with timing and status counting.
// Enablement is resolved once per route in Bind; per request only the
// identity caches are consulted.
type Instrumentor struct {
	backend        metrics.Backend
	policy         enablement.Policy
	resolver       *enablement.Resolver
	namer          naming.Namer
	statusResolver StatusResolver
	logger         *slog.Logger
	now            func() time.Time

	timers   *metrics.IdentityCache[metrics.Timer]
	counters *metrics.IdentityCache[metrics.Counter]
}

type Option func(*Instrumentor)

func WithResolver(r *enablement.Resolver) Option {
	return func(i *Instrumentor) { i.resolver = r }
}

func WithNamer(n naming.Namer) Option {
	return func(i *Instrumentor) { i.namer = n }
}

// WithStatusResolver consults r after the *echo.HTTPError mapping.
func WithStatusResolver(r StatusResolver) Option {
	return func(i *Instrumentor) {
		i.statusResolver = func(err error) (int, bool) {
			if status, ok := HTTPErrorStatus(err); ok {
				return status, true
			}
			return r(err)
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(i *Instrumentor) { i.now = now }
}

func NewInstrumentor(backend metrics.Backend, policy enablement.Policy, logger *slog.Logger, opts ...Option) *Instrumentor {
	i := &Instrumentor{
		backend:        backend,
		policy:         policy,
		resolver:       enablement.NewResolver(),
		namer:          naming.DefaultNamer(),
		statusResolver: HTTPErrorStatus,
		logger:         logger,
		now:            time.Now,
		timers:         metrics.NewIdentityCache[metrics.Timer](),
		counters:       metrics.NewIdentityCache[metrics.Counter](),
	}
	for _, o := range opts {
		if o != nil {
			o(i)
		}
	}
	return i
}

// Bind resolves which capabilities apply to rm.
func (i *Instrumentor) Bind(rm resource.RouteMethod) (Binding, error) {
	timing, err := i.resolver.Resolve(rm, enablement.Timing, i.policy)
	if err != nil {
		return Binding{}, fmt.Errorf("failed to resolve timing: %w", err)
	}
	counting, err := i.resolver.Resolve(rm, enablement.StatusCounting, i.policy)
	if err != nil {
		return Binding{}, fmt.Errorf("failed to resolve status counting: %w", err)
	}
	return Binding{
		Route:          i.namer.Route(rm),
		Timing:         timing,
		StatusCounting: counting,
	}, nil
}

// Middleware returns the wrapper for b, or nil when b is not wrapped.
func (i *Instrumentor) Middleware(b Binding) echo.MiddlewareFunc {
	if !b.Wrapped() {
		return nil
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := i.now()
			completed := false
			defer func() {
				if !completed {
					// next panicked; the panic keeps unwinding after this.
					i.observe(b, start, naming.UnknownStatus, false)
				}
			}()

			err := next(c)
			completed = true

			status, ok := i.status(c, err)
			i.observe(b, start, status, ok)
			return err
		}
	}
}

func (i *Instrumentor) status(c echo.Context, err error) (string, bool) {
	resp := c.Response()
	if err == nil || resp.Committed {
		return naming.Status(cmp.Or(resp.Status, http.StatusOK)), true
	}
	if code, ok := i.statusResolver(err); ok {
		return naming.Status(code), true
	}
	return naming.UnknownStatus, false
}

func (i *Instrumentor) observe(b Binding, start time.Time, status string, resolved bool) {
	if b.Timing {
		elapsed := i.now().Sub(start)
		timer, err := i.timers.GetOrCreate(i.namer.TimerIdentity(b.Route, status), i.newTimer)
		if err != nil {
			i.logFailure("timer", b, status, err)
		} else {
			timer.Record(elapsed)
		}
	}

	if b.StatusCounting && resolved {
		counter, err := i.counters.GetOrCreate(i.namer.CounterIdentity(b.Route, status), i.newCounter)
		if err != nil {
			i.logFailure("counter", b, status, err)
		} else {
			counter.Inc()
		}
	}
}

func (i *Instrumentor) newTimer(id metrics.Identity) (metrics.Timer, error) {
	return i.backend.Timer(id.Name, id.Tags)
}

func (i *Instrumentor) newCounter(id metrics.Identity) (metrics.Counter, error) {
	return i.backend.Counter(id.Name, id.Tags)
}

func (i *Instrumentor) logFailure(kind string, b Binding, status string, err error) {
	i.logger.Error("failed to record resource metric",
		slog.String("kind", kind),
		slog.String("route", b.Route.BaseName),
		slog.String("status", status),
		slog.String("error", err.Error()),
	)
}

// Stats reports how many timers and counters are cached.
func (i *Instrumentor) Stats() (timers, counters int) {
	return i.timers.Len(), i.counters.Len()
}
