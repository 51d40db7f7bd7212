package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type Options struct {
	BaseURL            string
	Count              int
	Workers            int
	Timeout            time.Duration
	InsecureSkipVerify bool
}

type shortenRequest struct {
	URL string `json:"url"`
}

type shortenResponse struct {
	Code string `json:"code"`
}

// Run creates opts.Count links through the public API and returns their codes
// in creation order.
func Run(ctx context.Context, opts *Options) ([]string, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 4
	}
	fmt.Printf("Seeding %d links (workers: %d)...\n", opts.Count, workers)

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify}, //nolint:gosec // local benchmarks use self-signed certs
			MaxIdleConns:        workers * 2,
			MaxIdleConnsPerHost: workers * 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	defer client.CloseIdleConnections()

	codes := make([]string, opts.Count)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range opts.Count {
		g.Go(func() error {
			code, err := shorten(gctx, client, opts.BaseURL, fmt.Sprintf("https://example.com/seed/%d", i))
			if err != nil {
				return fmt.Errorf("failed to seed link %d: %w", i, err)
			}
			codes[i] = code

			if done := progress.Add(1); done%1000 == 0 || int(done) == opts.Count {
				fmt.Printf("\rProgress: %d/%d", done, opts.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d codes\n", len(codes))
	return codes, nil
}

func shorten(ctx context.Context, client *http.Client, baseURL, target string) (string, error) {
	body, err := json.Marshal(shortenRequest{URL: target})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/shorten", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result shortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Code == "" {
		return "", fmt.Errorf("response has no code")
	}
	return result.Code, nil
}
