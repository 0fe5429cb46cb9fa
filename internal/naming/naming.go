// Package naming derives metric names and tags for resource methods.
//
// Names depend only on the declared route (resource path, method path and
// verb), never on request values, so a route keeps one name for its whole
// lifetime.
package naming

import (
	"fmt"
	"strconv"
	"strings"

	"resourcemetrics/internal/metrics"
	"resourcemetrics/internal/resource"
)

const (
	// NoPath stands in for routes declared without any path.
	NoPath = "_no path_"
	// UnknownStatus tags dispatches whose response status cannot be resolved.
	UnknownStatus = "unknown"
	// DefaultTimerName matches the server request timer of common frameworks
	// so dashboards work across applications.
	DefaultTimerName = "http.server.requests"

	TagMethod = "method"
	TagURI    = "uri"
	TagStatus = "status"
)

// StripSlashes removes leading and trailing path separators.
func StripSlashes(segment string) string {
	return strings.Trim(segment, "/")
}

// URI joins the resource and method path segments.
func URI(resourcePath, methodPath string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{resourcePath, methodPath} {
		if p = StripSlashes(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return NoPath
	}
	return "/" + strings.Join(parts, "/")
}

// BaseName is the URI suffixed with the HTTP verb.
func BaseName(resourcePath, methodPath, verb string) string {
	return URI(resourcePath, methodPath) + " " + verb
}

func Status(code int) string {
	return strconv.Itoa(code)
}

// Placement selects whether a value is embedded in the metric name or
// carried as a tag.
type Placement int

const (
	InName Placement = iota
	AsTag
)

func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return InName, nil
	case "tag":
		return AsTag, nil
	default:
		return InName, fmt.Errorf("unknown placement %q", s)
	}
}

func (p Placement) String() string {
	if p == AsTag {
		return "tag"
	}
	return "name"
}

// Route is the bind-time naming state of one route.
type Route struct {
	Resource string
	URI      string
	Verb     string
	BaseName string
}

// Namer builds metric identities for routes.
//
// Timers are named TimerName and tagged with method, uri and, when
// TimerStatusTag is set, status. Counters are named after the resource and
// route; StatusPlacement and VerbPlacement choose whether status and verb
// go into the counter name or into tags.
type Namer struct {
	TimerName       string
	TimerStatusTag  bool
	StatusPlacement Placement
	VerbPlacement   Placement
}

func DefaultNamer() Namer {
	return Namer{
		TimerName:       DefaultTimerName,
		TimerStatusTag:  true,
		StatusPlacement: InName,
		VerbPlacement:   InName,
	}
}

func (n Namer) Route(rm resource.RouteMethod) Route {
	return Route{
		Resource: rm.ResourceName(),
		URI:      URI(rm.ResourcePath(), rm.MethodPath()),
		Verb:     rm.Verb(),
		BaseName: BaseName(rm.ResourcePath(), rm.MethodPath(), rm.Verb()),
	}
}

func (n Namer) TimerIdentity(r Route, status string) metrics.Identity {
	name := n.TimerName
	if name == "" {
		name = DefaultTimerName
	}
	tags := metrics.TagsOf(TagMethod, r.Verb, TagURI, r.URI)
	if n.TimerStatusTag {
		tags = tags.And(TagStatus, status)
	}
	return metrics.Identity{Kind: metrics.KindTimer, Name: name, Tags: tags}
}

func (n Namer) CounterIdentity(r Route, status string) metrics.Identity {
	var tags metrics.Tags

	base := r.BaseName
	if n.VerbPlacement == AsTag {
		base = r.URI
		tags = tags.And(TagMethod, r.Verb)
	}

	name := base
	if r.Resource != "" {
		name = r.Resource + "." + base
	}

	if n.StatusPlacement == AsTag {
		tags = tags.And(TagStatus, status)
	} else {
		name += " " + status
	}

	return metrics.Identity{Kind: metrics.KindCounter, Name: name + " counter", Tags: tags}
}
