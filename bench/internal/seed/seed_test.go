package seed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var created atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shorten", r.URL.Path)

		var req shortenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		n := created.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":     fmt.Sprintf("c%05d", n),
			"shortUrl": "http://x/c",
			"url":      req.URL,
		})
	}))
	defer srv.Close()

	codes, err := Run(t.Context(), &Options{BaseURL: srv.URL, Count: 25, Workers: 4, Timeout: time.Second})
	require.NoError(t, err)
	assert.Len(t, codes, 25)
	assert.Equal(t, int64(25), created.Load())
	for _, c := range codes {
		assert.NotEmpty(t, c)
	}
}

func TestRun_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := Run(t.Context(), &Options{BaseURL: srv.URL, Count: 3, Workers: 1, Timeout: time.Second})
	assert.ErrorContains(t, err, "unexpected status: 500")
}
