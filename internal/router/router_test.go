package router_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resourcemetrics/internal/enablement"
	"resourcemetrics/internal/metrics"
	"resourcemetrics/internal/middleware"
	"resourcemetrics/internal/resource"
	"resourcemetrics/internal/router"
)

func setup(t *testing.T, defaults enablement.Defaults) (*echo.Echo, *router.Router, *metrics.MemoryBackend) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	backend := metrics.NewMemoryBackend()
	inst := middleware.NewInstrumentor(backend, defaults, logger)
	e := echo.New()
	return e, router.New(e, inst, logger), backend
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

var allOn = enablement.Defaults{enablement.Timing: true, enablement.StatusCounting: true}

func TestRegister_ResourceDisabled(t *testing.T) {
	e, r, backend := setup(t, allOn)

	res := &resource.Resource{
		Name:    "debug",
		Path:    "/debug",
		Metrics: resource.Enabled(false),
		Methods: []resource.Method{
			{Verb: http.MethodGet, Handler: noContent},
			{Verb: http.MethodGet, Path: "/vars", Handler: noContent},
		},
	}
	require.NoError(t, r.Register(res))

	for range 100 {
		assert.Equal(t, http.StatusNoContent, get(e, "/debug").Code)
		assert.Equal(t, http.StatusNoContent, get(e, "/debug/vars").Code)
	}
	assert.Zero(t, backend.Created())
}

func TestRegister_MethodOverridesResource(t *testing.T) {
	e, r, backend := setup(t, allOn)

	res := &resource.Resource{
		Name:    "debug",
		Path:    "/debug",
		Metrics: resource.Enabled(false),
		Methods: []resource.Method{
			{Verb: http.MethodGet, Handler: noContent},
			{Verb: http.MethodGet, Path: "/vars", Handler: noContent, Metrics: resource.Metrics()},
		},
	}
	require.NoError(t, r.Register(res))

	get(e, "/debug")
	get(e, "/debug/vars")

	_, found := backend.FindCounter("debug./debug/vars GET 204 counter", nil)
	assert.True(t, found)
	_, found = backend.FindCounter("debug./debug GET 204 counter", nil)
	assert.False(t, found)
	assert.Equal(t, int64(2), backend.Created())
}

func TestRegister_ResourceEnablesDespiteDefaultsOff(t *testing.T) {
	off := enablement.Defaults{enablement.Timing: false, enablement.StatusCounting: false}
	e, r, backend := setup(t, off)

	require.NoError(t, r.Register(
		&resource.Resource{Name: "plain", Path: "/plain", Methods: []resource.Method{{Verb: http.MethodGet, Handler: noContent}}},
		&resource.Resource{Name: "orders", Path: "/orders", Metrics: resource.Metrics(), Methods: []resource.Method{{Verb: http.MethodGet, Path: "{id}", Handler: noContent}}},
	))

	get(e, "/plain")
	assert.Zero(t, backend.Created())

	// braced placeholders are not echo parameters, so the literal path is served
	assert.Equal(t, http.StatusNoContent, get(e, "/orders/{id}").Code)
	_, found := backend.FindCounter("orders./orders/{id} GET 204 counter", nil)
	assert.True(t, found)
}

func TestRegister_Unresolved(t *testing.T) {
	_, r, _ := setup(t, enablement.Defaults{})

	err := r.Register(&resource.Resource{
		Path:    "/widgets",
		Methods: []resource.Method{{Verb: http.MethodGet, Handler: noContent}},
	})
	require.ErrorIs(t, err, enablement.ErrUnresolved)
	assert.Contains(t, err.Error(), "GET /widgets")
	assert.Empty(t, r.Bindings())
}

func TestRegister_NilHandler(t *testing.T) {
	_, r, _ := setup(t, allOn)

	err := r.Register(&resource.Resource{
		Path:    "/widgets",
		Methods: []resource.Method{{Verb: http.MethodGet}},
	})
	require.Error(t, err)
}

func TestRegister_MiddlewareOrder(t *testing.T) {
	e, r, backend := setup(t, allOn)

	var order []string
	tag := func(name string) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}
	reject := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.QueryParam("deny") != "" {
				return echo.NewHTTPError(http.StatusForbidden)
			}
			return next(c)
		}
	}

	require.NoError(t, r.Register(&resource.Resource{
		Name:       "widgets",
		Path:       "/widgets",
		Middleware: []echo.MiddlewareFunc{tag("resource"), reject},
		Methods: []resource.Method{{
			Verb:       http.MethodGet,
			Handler:    noContent,
			Middleware: []echo.MiddlewareFunc{tag("method")},
		}},
	}))

	get(e, "/widgets")
	assert.Equal(t, []string{"resource", "method"}, order)

	// rejected before reaching the instrumented handler
	assert.Equal(t, http.StatusForbidden, get(e, "/widgets?deny=1").Code)
	_, found := backend.FindCounter("widgets./widgets GET 403 counter", nil)
	assert.False(t, found)
}

func TestRouter_Bindings(t *testing.T) {
	_, r, _ := setup(t, allOn)

	require.NoError(t, r.Register(&resource.Resource{
		Name: "widgets",
		Path: "/widgets",
		Methods: []resource.Method{
			{Verb: http.MethodGet, Handler: noContent},
			{Verb: http.MethodPost, Handler: noContent, Metrics: resource.Metrics(resource.WithTimer(false))},
		},
	}))

	bindings := r.Bindings()
	require.Len(t, bindings, 2)
	assert.Equal(t, "/widgets GET", bindings[0].Route.BaseName)
	assert.True(t, bindings[0].Timing)
	assert.True(t, bindings[0].StatusCounting)
	assert.Equal(t, "/widgets POST", bindings[1].Route.BaseName)
	assert.False(t, bindings[1].Timing)
	assert.True(t, bindings[1].StatusCounting)

	bindings[0].Timing = false
	assert.True(t, r.Bindings()[0].Timing)
}
