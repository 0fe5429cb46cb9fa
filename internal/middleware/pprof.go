package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"

	"resourcemetrics/internal/resource"
)

const pprofAuthHeader = "X-Pprof-Secret"

var errPprofUnauthorized = map[string]string{"error": "unauthorized"}

func PprofAuth(secret string) echo.MiddlewareFunc {
	secretBytes := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return next(c)
			}
			provided := c.Request().Header.Get(pprofAuthHeader)
			if subtle.ConstantTimeCompare([]byte(provided), secretBytes) != 1 {
				return c.JSON(http.StatusUnauthorized, errPprofUnauthorized)
			}
			return next(c)
		}
	}
}

// PprofResource serves net/http/pprof under /debug/pprof. Profiling traffic
// is never instrumented; the resource-level annotation switches metrics off
// for every route regardless of the global defaults.
func PprofResource(secret string) *resource.Resource {
	get := func(path string, h http.Handler) resource.Method {
		return resource.Method{Verb: http.MethodGet, Path: path, Handler: echo.WrapHandler(h)}
	}
	profile := func(name string) resource.Method {
		return get("/"+name, pprof.Handler(name))
	}

	return &resource.Resource{
		Name:       "pprof",
		Path:       "/debug/pprof",
		Metrics:    resource.Enabled(false),
		Middleware: []echo.MiddlewareFunc{PprofAuth(secret)},
		Methods: []resource.Method{
			get("", http.HandlerFunc(pprof.Index)),
			get("/cmdline", http.HandlerFunc(pprof.Cmdline)),
			get("/profile", http.HandlerFunc(pprof.Profile)),
			get("/symbol", http.HandlerFunc(pprof.Symbol)),
			{Verb: http.MethodPost, Path: "/symbol", Handler: echo.WrapHandler(http.HandlerFunc(pprof.Symbol))},
			get("/trace", http.HandlerFunc(pprof.Trace)),
			profile("allocs"),
			profile("block"),
			profile("goroutine"),
			profile("heap"),
			profile("mutex"),
			profile("threadcreate"),
		},
	}
}
