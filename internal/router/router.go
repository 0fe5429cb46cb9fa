package router

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"resourcemetrics/internal/middleware"
	"resourcemetrics/internal/resource"
)

// Router registers declared resources with echo, deciding per route at
// registration time whether the instrumentation wrapper is installed.
type Router struct {
	e            *echo.Echo
	instrumentor *middleware.Instrumentor
	logger       *slog.Logger
	bindings     []middleware.Binding
}

func New(e *echo.Echo, instrumentor *middleware.Instrumentor, logger *slog.Logger) *Router {
	return &Router{e: e, instrumentor: instrumentor, logger: logger}
}

// Register binds every method of every resource. It stops at the first
// route whose enablement cannot be resolved.
func (r *Router) Register(resources ...*resource.Resource) error {
	for _, res := range resources {
		for _, rm := range res.Routes() {
			if err := r.bind(rm); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Router) bind(rm resource.RouteMethod) error {
	if rm.Method.Handler == nil {
		return fmt.Errorf("%s %s: no handler", rm.Verb(), rm.EchoPath())
	}

	b, err := r.instrumentor.Bind(rm)
	if err != nil {
		return fmt.Errorf("failed to bind %s %s: %w", rm.Verb(), rm.EchoPath(), err)
	}

	mws := rm.Middleware()
	if mw := r.instrumentor.Middleware(b); mw != nil {
		mws = append(mws, mw)
	}
	r.e.Add(rm.Verb(), rm.EchoPath(), rm.Method.Handler, mws...)
	r.bindings = append(r.bindings, b)

	r.logger.Debug("route bound",
		slog.String("route", b.Route.BaseName),
		slog.Bool("timing", b.Timing),
		slog.Bool("status_counting", b.StatusCounting),
	)
	return nil
}

// Bindings returns the decisions made so far, in registration order.
func (r *Router) Bindings() []middleware.Binding {
	return append([]middleware.Binding(nil), r.bindings...)
}
