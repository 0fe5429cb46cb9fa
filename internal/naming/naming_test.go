package naming_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resourcemetrics/internal/metrics"
	"resourcemetrics/internal/naming"
	"resourcemetrics/internal/resource"
)

func TestStripSlashes(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "", expected: ""},
		{in: "/foo", expected: "foo"},
		{in: "foo/", expected: "foo"},
		{in: "/foo/", expected: "foo"},
		{in: "//foo/bar//", expected: "foo/bar"},
		{in: "/", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, naming.StripSlashes(tt.in))
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name         string
		resourcePath string
		methodPath   string
		verb         string
		expected     string
	}{
		{name: "resource with path, method without", resourcePath: "/res", verb: http.MethodGet, expected: "/res GET"},
		{name: "resource and method paths", resourcePath: "/res", methodPath: "/meth", verb: http.MethodGet, expected: "/res/meth GET"},
		{name: "resource without path, method with", methodPath: "/meth", verb: http.MethodGet, expected: "/meth GET"},
		{name: "root route", verb: http.MethodGet, expected: "_no path_ GET"},
		{name: "root slashes only", resourcePath: "/", methodPath: "/", verb: http.MethodPost, expected: "_no path_ POST"},
		{name: "braced placeholder kept", resourcePath: "orders", methodPath: "{id}", verb: http.MethodGet, expected: "/orders/{id} GET"},
		{name: "colon placeholder kept", resourcePath: "/widgets/", methodPath: "/:code", verb: http.MethodDelete, expected: "/widgets/:code DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, naming.BaseName(tt.resourcePath, tt.methodPath, tt.verb))
		})
	}
}

func TestURI_Idempotent(t *testing.T) {
	first := naming.URI("/orders", "{id}")
	for range 10 {
		assert.Equal(t, first, naming.URI("/orders", "{id}"))
	}
	assert.Equal(t, "/orders/{id}", first)
}

func TestParsePlacement(t *testing.T) {
	p, err := naming.ParsePlacement("")
	require.NoError(t, err)
	assert.Equal(t, naming.InName, p)

	p, err = naming.ParsePlacement(" TAG ")
	require.NoError(t, err)
	assert.Equal(t, naming.AsTag, p)
	assert.Equal(t, "tag", p.String())

	p, err = naming.ParsePlacement("name")
	require.NoError(t, err)
	assert.Equal(t, "name", p.String())

	_, err = naming.ParsePlacement("header")
	require.Error(t, err)
}

func widgetsRoute() resource.RouteMethod {
	res := &resource.Resource{
		Name:    "widgets",
		Path:    "/widgets",
		Methods: []resource.Method{{Verb: http.MethodGet}},
	}
	return res.Routes()[0]
}

func TestNamer_Route(t *testing.T) {
	r := naming.DefaultNamer().Route(widgetsRoute())
	assert.Equal(t, naming.Route{
		Resource: "widgets",
		URI:      "/widgets",
		Verb:     http.MethodGet,
		BaseName: "/widgets GET",
	}, r)
}

func TestNamer_TimerIdentity(t *testing.T) {
	n := naming.DefaultNamer()
	r := n.Route(widgetsRoute())

	id := n.TimerIdentity(r, naming.Status(http.StatusOK))
	assert.Equal(t, metrics.KindTimer, id.Kind)
	assert.Equal(t, "http.server.requests", id.Name)
	assert.Equal(t, "method=GET,status=200,uri=/widgets", id.Tags.String())

	n.TimerStatusTag = false
	n.TimerName = ""
	id = n.TimerIdentity(r, naming.UnknownStatus)
	assert.Equal(t, naming.DefaultTimerName, id.Name)
	assert.Equal(t, "method=GET,uri=/widgets", id.Tags.String())
}

func TestNamer_CounterIdentity(t *testing.T) {
	r := naming.DefaultNamer().Route(widgetsRoute())

	tests := []struct {
		name         string
		status       naming.Placement
		verb         naming.Placement
		expectedName string
		expectedTags string
	}{
		{name: "status and verb in name", status: naming.InName, verb: naming.InName, expectedName: "widgets./widgets GET 200 counter"},
		{name: "status as tag", status: naming.AsTag, verb: naming.InName, expectedName: "widgets./widgets GET counter", expectedTags: "status=200"},
		{name: "verb as tag", status: naming.InName, verb: naming.AsTag, expectedName: "widgets./widgets 200 counter", expectedTags: "method=GET"},
		{name: "both as tags", status: naming.AsTag, verb: naming.AsTag, expectedName: "widgets./widgets counter", expectedTags: "method=GET,status=200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := naming.Namer{StatusPlacement: tt.status, VerbPlacement: tt.verb}
			id := n.CounterIdentity(r, "200")
			assert.Equal(t, metrics.KindCounter, id.Kind)
			assert.Equal(t, tt.expectedName, id.Name)
			assert.Equal(t, tt.expectedTags, id.Tags.String())
		})
	}
}

func TestNamer_CounterIdentity_NoResourceName(t *testing.T) {
	n := naming.DefaultNamer()
	r := n.Route(resource.RouteMethod{Method: &resource.Method{Verb: http.MethodGet, Path: "/health"}})

	assert.Equal(t, "/health GET 204 counter", n.CounterIdentity(r, "204").Name)
}

func TestNamer_DistinctVerbsDistinctIdentities(t *testing.T) {
	n := naming.DefaultNamer()
	get := n.Route(resource.RouteMethod{Resource: &resource.Resource{Path: "/x"}, Method: &resource.Method{Verb: http.MethodGet}})
	post := n.Route(resource.RouteMethod{Resource: &resource.Resource{Path: "/x"}, Method: &resource.Method{Verb: http.MethodPost}})

	assert.NotEqual(t, n.CounterIdentity(get, "200").Key(), n.CounterIdentity(post, "200").Key())
	assert.NotEqual(t, n.TimerIdentity(get, "200").Key(), n.TimerIdentity(post, "200").Key())

	n.VerbPlacement = naming.AsTag
	assert.NotEqual(t, n.CounterIdentity(get, "200").Key(), n.CounterIdentity(post, "200").Key())
}
