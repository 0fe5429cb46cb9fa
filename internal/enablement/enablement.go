package enablement

import (
	"errors"
	"fmt"

	"resourcemetrics/internal/resource"
)

var ErrUnresolved = errors.New("no enablement signal for capability")

type Capability int

const (
	Timing Capability = iota + 1
	StatusCounting
)

// Capabilities lists every capability in resolution order.
func Capabilities() []Capability {
	return []Capability{Timing, StatusCounting}
}

func (c Capability) String() string {
	switch c {
	case Timing:
		return "timing"
	case StatusCounting:
		return "status_counting"
	default:
		return fmt.Sprintf("capability(%d)", int(c))
	}
}

type State int

const (
	Unspecified State = iota
	On
	Off
)

func (s State) String() string {
	switch s {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "unspecified"
	}
}

func stateOf(enabled bool) State {
	if enabled {
		return On
	}
	return Off
}

// Provider inspects one metadata site of a route for one capability.
type Provider interface {
	State(rm resource.RouteMethod, c Capability) State
}

type ProviderFunc func(rm resource.RouteMethod, c Capability) State

func (f ProviderFunc) State(rm resource.RouteMethod, c Capability) State {
	return f(rm, c)
}

var (
	// MethodAnnotation reads the annotation declared on the method.
	MethodAnnotation Provider = annotationProvider(resource.RouteMethod.MethodAnnotation)
	// ResourceAnnotation reads the annotation declared on the owning resource.
	ResourceAnnotation Provider = annotationProvider(resource.RouteMethod.ResourceAnnotation)
)

type annotationProvider func(resource.RouteMethod) *resource.Annotation

func (site annotationProvider) State(rm resource.RouteMethod, c Capability) State {
	ann := site(rm)
	if ann == nil {
		return Unspecified
	}
	switch c {
	case Timing:
		return stateOf(ann.Timer)
	case StatusCounting:
		return stateOf(ann.StatusCodeCounter)
	default:
		return Unspecified
	}
}

// Policy supplies the configured default for a capability. ok is false when
// no default is configured.
type Policy interface {
	EnabledByDefault(c Capability) (enabled, ok bool)
}

type Defaults map[Capability]bool

func (d Defaults) EnabledByDefault(c Capability) (bool, bool) {
	enabled, ok := d[c]
	return enabled, ok
}

// Resolver consults its providers in priority order. The first provider
// with an opinion wins.
type Resolver struct {
	providers []Provider
}

// NewResolver builds a resolver over providers; with none it checks the
// method annotation, then the resource annotation.
func NewResolver(providers ...Provider) *Resolver {
	if len(providers) == 0 {
		providers = []Provider{MethodAnnotation, ResourceAnnotation}
	}
	return &Resolver{providers: providers}
}

func (r *Resolver) State(rm resource.RouteMethod, c Capability) State {
	for _, p := range r.providers {
		if s := p.State(rm, c); s != Unspecified {
			return s
		}
	}
	return Unspecified
}

func (r *Resolver) Resolve(rm resource.RouteMethod, c Capability, policy Policy) (bool, error) {
	switch r.State(rm, c) {
	case On:
		return true, nil
	case Off:
		return false, nil
	}

	if policy != nil {
		if enabled, ok := policy.EnabledByDefault(c); ok {
			return enabled, nil
		}
	}
	return false, fmt.Errorf("%s %s: %s: %w", rm.Verb(), rm.EchoPath(), c, ErrUnresolved)
}
