package metrics

//go:generate go tool mockery

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var ErrInvalidName = errors.New("invalid metric name")

// Counter is a monotonic counter handle owned by a Backend.
type Counter interface {
	Inc()
}

// Timer is a duration-recording handle owned by a Backend.
type Timer interface {
	Record(d time.Duration)
}

// Backend creates or returns the metric registered under name and tags.
// Calling it twice with the same name and tags must alias the same metric.
type Backend interface {
	Counter(name string, tags Tags) (Counter, error)
	Timer(name string, tags Tags) (Timer, error)
}

type Tag struct {
	Key   string
	Value string
}

// Tags is a key-sorted tag set. Use TagsOf and And to build one.
type Tags []Tag

// TagsOf builds Tags from alternating keys and values. A trailing key
// without a value is dropped.
func TagsOf(keyValues ...string) Tags {
	tags := make(Tags, 0, len(keyValues)/2)
	for i := 0; i+1 < len(keyValues); i += 2 {
		tags = tags.And(keyValues[i], keyValues[i+1])
	}
	return tags
}

// And returns a copy of t with key set to value.
func (t Tags) And(key, value string) Tags {
	out := make(Tags, 0, len(t)+1)
	for _, tag := range t {
		if tag.Key != key {
			out = append(out, tag)
		}
	}
	out = append(out, Tag{Key: key, Value: value})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (t Tags) Get(key string) (string, bool) {
	for _, tag := range t {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

func (t Tags) Map() map[string]string {
	if len(t) == 0 {
		return nil
	}
	m := make(map[string]string, len(t))
	for _, tag := range t {
		m[tag.Key] = tag.Value
	}
	return m
}

func (t Tags) String() string {
	var b strings.Builder
	for i, tag := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(tag.Key)
		b.WriteByte('=')
		b.WriteString(tag.Value)
	}
	return b.String()
}

type Kind string

const (
	KindCounter Kind = "counter"
	KindTimer   Kind = "timer"
)

// Identity names one metric series.
type Identity struct {
	Kind Kind
	Name string
	Tags Tags
}

// Key is stable byte for byte for equal identities.
func (id Identity) Key() string {
	return string(id.Kind) + "\x00" + id.Name + "\x00" + id.Tags.String()
}

func (id Identity) String() string {
	if len(id.Tags) == 0 {
		return id.Name
	}
	return id.Name + "{" + id.Tags.String() + "}"
}
