package resource

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// Resource is the class-level declaration of a group of handler methods
// sharing a path prefix and, optionally, a metrics annotation.
type Resource struct {
	// Name qualifies metric names produced for the resource's methods.
	Name       string
	Path       string
	Metrics    *Annotation
	Methods    []Method
	Middleware []echo.MiddlewareFunc
}

// Method is one handler method declared on a Resource.
type Method struct {
	Verb       string
	Path       string
	Handler    echo.HandlerFunc
	Metrics    *Annotation
	Middleware []echo.MiddlewareFunc
}

// RouteMethod is the read-only view of a declared method together with its
// owning resource. It is what route binding inspects.
type RouteMethod struct {
	Resource *Resource
	Method   *Method
}

// Routes returns one RouteMethod per declared method, in declaration order.
func (r *Resource) Routes() []RouteMethod {
	routes := make([]RouteMethod, len(r.Methods))
	for i := range r.Methods {
		routes[i] = RouteMethod{Resource: r, Method: &r.Methods[i]}
	}
	return routes
}

func (rm RouteMethod) ResourceName() string {
	if rm.Resource == nil {
		return ""
	}
	return rm.Resource.Name
}

func (rm RouteMethod) ResourcePath() string {
	if rm.Resource == nil {
		return ""
	}
	return rm.Resource.Path
}

func (rm RouteMethod) MethodPath() string {
	if rm.Method == nil {
		return ""
	}
	return rm.Method.Path
}

func (rm RouteMethod) Verb() string {
	if rm.Method == nil {
		return ""
	}
	return rm.Method.Verb
}

// MethodAnnotation returns the method-level annotation, or nil.
func (rm RouteMethod) MethodAnnotation() *Annotation {
	if rm.Method == nil {
		return nil
	}
	return rm.Method.Metrics
}

// ResourceAnnotation returns the resource-level annotation, or nil.
func (rm RouteMethod) ResourceAnnotation() *Annotation {
	if rm.Resource == nil {
		return nil
	}
	return rm.Resource.Metrics
}

// EchoPath is the path the method is registered under in the router.
func (rm RouteMethod) EchoPath() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{rm.ResourcePath(), rm.MethodPath()} {
		if p = strings.Trim(p, "/"); p != "" {
			parts = append(parts, p)
		}
	}
	return "/" + strings.Join(parts, "/")
}

// Middleware returns the resource middleware followed by the method middleware.
func (rm RouteMethod) Middleware() []echo.MiddlewareFunc {
	var mws []echo.MiddlewareFunc
	if rm.Resource != nil {
		mws = append(mws, rm.Resource.Middleware...)
	}
	if rm.Method != nil {
		mws = append(mws, rm.Method.Middleware...)
	}
	return mws
}
