package enablement_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resourcemetrics/internal/enablement"
	"resourcemetrics/internal/resource"
)

func route(classAnn, methodAnn *resource.Annotation) resource.RouteMethod {
	return resource.RouteMethod{
		Resource: &resource.Resource{Path: "/foo", Metrics: classAnn},
		Method:   &resource.Method{Verb: http.MethodGet, Metrics: methodAnn},
	}
}

var allOn = enablement.Defaults{enablement.Timing: true, enablement.StatusCounting: true}

func TestState(t *testing.T) {
	tests := []struct {
		name      string
		classAnn  *resource.Annotation
		methodAnn *resource.Annotation
		expected  enablement.State
	}{
		{name: "no annotations", expected: enablement.Unspecified},
		{name: "method enabled", methodAnn: resource.Enabled(true), expected: enablement.On},
		{name: "method disabled", methodAnn: resource.Enabled(false), expected: enablement.Off},
		{name: "method enabled class disabled", classAnn: resource.Enabled(false), methodAnn: resource.Enabled(true), expected: enablement.On},
		{name: "method disabled class enabled", classAnn: resource.Enabled(true), methodAnn: resource.Enabled(false), expected: enablement.Off},
		{name: "class enabled", classAnn: resource.Enabled(true), expected: enablement.On},
		{name: "class disabled", classAnn: resource.Enabled(false), expected: enablement.Off},
	}

	r := enablement.NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range enablement.Capabilities() {
				assert.Equal(t, tt.expected, r.State(route(tt.classAnn, tt.methodAnn), c), c.String())
			}
		})
	}
}

func TestState_PerCapability(t *testing.T) {
	r := enablement.NewResolver()
	rm := route(nil, resource.Metrics(resource.WithTimer(false)))

	assert.Equal(t, enablement.Off, r.State(rm, enablement.Timing))
	assert.Equal(t, enablement.On, r.State(rm, enablement.StatusCounting))
}

func TestState_MethodAnnotationAnswersForAllCapabilities(t *testing.T) {
	r := enablement.NewResolver()
	// The class would enable status counting, but a present method
	// annotation decides every capability on its own.
	rm := route(resource.Metrics(), resource.Metrics(resource.WithStatusCodeCounter(false)))

	assert.Equal(t, enablement.On, r.State(rm, enablement.Timing))
	assert.Equal(t, enablement.Off, r.State(rm, enablement.StatusCounting))
}

func TestResolve_MethodOverridesClass(t *testing.T) {
	r := enablement.NewResolver()
	for _, classAnn := range []*resource.Annotation{nil, resource.Enabled(true), resource.Enabled(false)} {
		for _, methodOn := range []bool{true, false} {
			for _, c := range enablement.Capabilities() {
				got, err := r.Resolve(route(classAnn, resource.Enabled(methodOn)), c, enablement.Defaults{c: !methodOn})
				require.NoError(t, err)
				assert.Equal(t, methodOn, got)
			}
		}
	}
}

func TestResolve_ClassWhenMethodSilent(t *testing.T) {
	r := enablement.NewResolver()
	for _, classOn := range []bool{true, false} {
		for _, c := range enablement.Capabilities() {
			got, err := r.Resolve(route(resource.Enabled(classOn), nil), c, enablement.Defaults{c: !classOn})
			require.NoError(t, err)
			assert.Equal(t, classOn, got)
		}
	}
}

func TestResolve_DefaultPolicy(t *testing.T) {
	r := enablement.NewResolver()
	policy := enablement.Defaults{enablement.Timing: false, enablement.StatusCounting: true}

	timing, err := r.Resolve(route(nil, nil), enablement.Timing, policy)
	require.NoError(t, err)
	assert.False(t, timing)

	counting, err := r.Resolve(route(nil, nil), enablement.StatusCounting, policy)
	require.NoError(t, err)
	assert.True(t, counting)
}

func TestResolve_MissingDefaultIsFatal(t *testing.T) {
	r := enablement.NewResolver()

	_, err := r.Resolve(route(nil, nil), enablement.StatusCounting, enablement.Defaults{enablement.Timing: true})
	require.ErrorIs(t, err, enablement.ErrUnresolved)
	assert.Contains(t, err.Error(), "GET /foo")
	assert.Contains(t, err.Error(), "status_counting")

	_, err = r.Resolve(route(nil, nil), enablement.Timing, nil)
	require.ErrorIs(t, err, enablement.ErrUnresolved)
}

func TestResolve_AnnotationNeedsNoDefault(t *testing.T) {
	r := enablement.NewResolver()
	got, err := r.Resolve(route(resource.Enabled(true), nil), enablement.Timing, nil)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestResolve_Deterministic(t *testing.T) {
	r := enablement.NewResolver()
	rm := route(resource.Enabled(false), resource.Metrics(resource.WithTimer(false)))
	first, err := r.Resolve(rm, enablement.StatusCounting, allOn)
	require.NoError(t, err)
	for range 100 {
		got, err := r.Resolve(rm, enablement.StatusCounting, allOn)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestNewResolver_CustomProviders(t *testing.T) {
	calls := 0
	override := enablement.ProviderFunc(func(rm resource.RouteMethod, c enablement.Capability) enablement.State {
		calls++
		if rm.Verb() == http.MethodGet && c == enablement.Timing {
			return enablement.Off
		}
		return enablement.Unspecified
	})

	r := enablement.NewResolver(override, enablement.MethodAnnotation, enablement.ResourceAnnotation)
	rm := route(nil, resource.Enabled(true))

	assert.Equal(t, enablement.Off, r.State(rm, enablement.Timing))
	assert.Equal(t, enablement.On, r.State(rm, enablement.StatusCounting))
	assert.Equal(t, 2, calls)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "timing", enablement.Timing.String())
	assert.Equal(t, "status_counting", enablement.StatusCounting.String())
	assert.Equal(t, "capability(9)", enablement.Capability(9).String())
	assert.Equal(t, "on", enablement.On.String())
	assert.Equal(t, "off", enablement.Off.String())
	assert.Equal(t, "unspecified", enablement.Unspecified.String())
}
