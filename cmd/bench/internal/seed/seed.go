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

	"resourcemetrics/internal/domain"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type Options struct {
	BaseURL            string
	Count              int
	BatchSize          int
	BypassSecret       string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Run creates Count widgets through the batch endpoint and returns their
// public codes in creation order.
func Run(ctx context.Context, opts Options) ([]string, error) {
	numWorkers := runtime.NumCPU() * 2
	fmt.Printf("Seeding %d widgets (batch size: %d, workers: %d)...\n", opts.Count, opts.BatchSize, numWorkers)

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify}, //nolint:gosec // opt-in for self-signed hosts
			MaxIdleConns:        numWorkers * 2,
			MaxIdleConnsPerHost: numWorkers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	numBatches := (opts.Count + opts.BatchSize - 1) / opts.BatchSize
	results := make([][]string, numBatches)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for i := range numBatches {
		startIndex := i * opts.BatchSize
		size := min(opts.BatchSize, opts.Count-startIndex)

		g.Go(func() error {
			codes, err := createBatch(gctx, client, opts, startIndex, size)
			if err != nil {
				return fmt.Errorf("failed to create batch at %d: %w", startIndex, err)
			}
			results[i] = codes
			done := progress.Add(int64(len(codes)))
			fmt.Printf("\rProgress: %d/%d", done, opts.Count)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	codes := make([]string, 0, opts.Count)
	for _, batch := range results {
		codes = append(codes, batch...)
	}

	fmt.Printf("\nSeeding complete: %d codes\n", len(codes))
	return codes, nil
}

func createBatch(ctx context.Context, client *http.Client, opts Options, startIndex, count int) ([]string, error) {
	req := domain.CreateWidgetBatchRequest{Widgets: make([]domain.CreateWidgetRequest, count)}
	for i := range count {
		req.Widgets[i] = domain.CreateWidgetRequest{Name: fmt.Sprintf("seed-%d", startIndex+i)}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.BaseURL+"/api/v1/widgets/batch", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if opts.BypassSecret != "" {
		httpReq.Header.Set(bypassHeader, opts.BypassSecret)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result domain.WidgetListResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	codes := make([]string, len(result.Widgets))
	for i, w := range result.Widgets {
		codes[i] = w.Code
	}
	return codes, nil
}
