package resource

// Annotation declares which instrumentation a method, or every method of a
// resource, receives. A present annotation always answers for every
// capability; a nil *Annotation means the site expresses no opinion.
type Annotation struct {
	Timer             bool
	StatusCodeCounter bool
}

type Option func(*Annotation)

// Metrics returns an annotation with every capability enabled unless an
// option turns it off.
func Metrics(opts ...Option) *Annotation {
	a := &Annotation{Timer: true, StatusCodeCounter: true}
	for _, o := range opts {
		if o != nil {
			o(a)
		}
	}
	return a
}

// Enabled sets every capability at once.
func Enabled(on bool) *Annotation {
	return &Annotation{Timer: on, StatusCodeCounter: on}
}

func WithTimer(on bool) Option {
	return func(a *Annotation) { a.Timer = on }
}

func WithStatusCodeCounter(on bool) Option {
	return func(a *Annotation) { a.StatusCodeCounter = on }
}
