package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var urlCounter atomic.Uint64

// CreateTargeter posts a distinct URL per request so every call inserts a
// new link.
func CreateTargeter(baseURL string) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/json"}}
	target := baseURL + "/api/shorten"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = target
		t.Header = header
		t.Body = fmt.Appendf(make([]byte, 0, 48), `{"url":"https://example.com/%d"}`, urlCounter.Add(1))
		return nil
	}
}

func RedirectTargeter(baseURL string, codes []string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + codes[rand.IntN(len(codes))]
		t.Header = nil
		t.Body = nil
		return nil
	}
}

func MixedTargeter(baseURL string, codes []string, createRatio float64) vegeta.Targeter {
	create := CreateTargeter(baseURL)
	redirect := RedirectTargeter(baseURL, codes)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return create(t)
		}
		return redirect(t)
	}
}
