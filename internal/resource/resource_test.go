package resource_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resourcemetrics/internal/resource"
)

func TestMetrics_DefaultsToAllEnabled(t *testing.T) {
	a := resource.Metrics()
	assert.True(t, a.Timer)
	assert.True(t, a.StatusCodeCounter)
}

func TestMetrics_Options(t *testing.T) {
	a := resource.Metrics(resource.WithTimer(false), nil)
	assert.False(t, a.Timer)
	assert.True(t, a.StatusCodeCounter)

	a = resource.Metrics(resource.WithStatusCodeCounter(false))
	assert.True(t, a.Timer)
	assert.False(t, a.StatusCodeCounter)
}

func TestEnabled_SetsEveryCapability(t *testing.T) {
	assert.Equal(t, &resource.Annotation{Timer: true, StatusCodeCounter: true}, resource.Enabled(true))
	assert.Equal(t, &resource.Annotation{}, resource.Enabled(false))
}

func TestRoutes_ExposeBothAnnotationSites(t *testing.T) {
	res := &resource.Resource{
		Name:    "orders",
		Path:    "/orders/",
		Metrics: resource.Enabled(false),
		Methods: []resource.Method{
			{Verb: http.MethodGet},
			{Verb: http.MethodGet, Path: "{id}", Metrics: resource.Metrics()},
		},
	}

	routes := res.Routes()
	require.Len(t, routes, 2)

	assert.Equal(t, "orders", routes[0].ResourceName())
	assert.Equal(t, "/orders/", routes[0].ResourcePath())
	assert.Empty(t, routes[0].MethodPath())
	assert.Nil(t, routes[0].MethodAnnotation())
	assert.Same(t, res.Metrics, routes[0].ResourceAnnotation())

	assert.Equal(t, "{id}", routes[1].MethodPath())
	assert.Same(t, res.Methods[1].Metrics, routes[1].MethodAnnotation())
}

func TestEchoPath(t *testing.T) {
	tests := []struct {
		name         string
		resourcePath string
		methodPath   string
		expected     string
	}{
		{name: "resource only", resourcePath: "/widgets", expected: "/widgets"},
		{name: "resource and method", resourcePath: "widgets/", methodPath: "/:code", expected: "/widgets/:code"},
		{name: "method only", methodPath: "health", expected: "/health"},
		{name: "root", expected: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := resource.RouteMethod{
				Resource: &resource.Resource{Path: tt.resourcePath},
				Method:   &resource.Method{Path: tt.methodPath},
			}
			assert.Equal(t, tt.expected, rm.EchoPath())
		})
	}
}

func TestRouteMethod_NilSites(t *testing.T) {
	var rm resource.RouteMethod
	assert.Empty(t, rm.ResourceName())
	assert.Empty(t, rm.Verb())
	assert.Nil(t, rm.MethodAnnotation())
	assert.Nil(t, rm.ResourceAnnotation())
	assert.Empty(t, rm.Middleware())
}

func TestRouteMethod_MiddlewareOrder(t *testing.T) {
	var calls []string
	mw := func(name string) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				calls = append(calls, name)
				return next(c)
			}
		}
	}

	res := &resource.Resource{
		Middleware: []echo.MiddlewareFunc{mw("resource")},
		Methods:    []resource.Method{{Middleware: []echo.MiddlewareFunc{mw("method")}}},
	}

	mws := res.Routes()[0].Middleware()
	require.Len(t, mws, 2)

	h := func(echo.Context) error { return nil }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	require.NoError(t, h(nil))
	assert.Equal(t, []string{"resource", "method"}, calls)
}
