package attack

import (
	"crypto/tls"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	bypassHeader = "X-Rate-Limit-Bypass"
	widgetsPath  = "/api/v1/widgets"
)

var (
	widgetCounter atomic.Uint64
	colors        = [...]string{"red", "green", "blue", "yellow", "black", "white"}
)

func insecureTLS() *tls.Config {
	return &tls.Config{InsecureSkipVerify: true} //nolint:gosec // benchmark against self-signed hosts
}

func CreateTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/json"}}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	url := baseURL + widgetsPath

	return func(t *vegeta.Target) error {
		n := widgetCounter.Add(1)
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header
		t.Body = fmt.Appendf(make([]byte, 0, 64), `{"name":"widget-%d","color":"%s"}`, n, colors[n%uint64(len(colors))])
		return nil
	}
}

// GetTargeter reads random seeded widgets, so every request resolves to the
// same "/api/v1/widgets/:code" route pattern.
func GetTargeter(baseURL string, codes []string, bypassSecret string) vegeta.Targeter {
	var header http.Header
	if bypassSecret != "" {
		header = http.Header{bypassHeader: []string{bypassSecret}}
	}
	prefix := baseURL + widgetsPath + "/"

	return func(t *vegeta.Target) error {
		code := codes[rand.IntN(len(codes))]
		t.Method = http.MethodGet
		t.URL = prefix + code
		t.Header = header
		return nil
	}
}

func MixedTargeter(baseURL string, codes []string, createRatio float64, bypassSecret string) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL, bypassSecret)
	getTarget := GetTargeter(baseURL, codes, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return getTarget(t)
	}
}
