package partner

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"marketflow-be/internal/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const maxPriceListBytes = 10 << 20

// Fetcher retrieves a partner's price list from a remote URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*PriceList, error)
}

type httpFetcher struct {
	client *http.Client
}

func NewFetcher() Fetcher {
	return &httpFetcher{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, rawURL string) (*PriceList, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("component", "PriceListFetcher"),
		zap.String("url", rawURL),
	)

	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, ErrBadURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		log.Error("fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("unexpected status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPriceListBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	var pl PriceList
	if err := yaml.Unmarshal(body, &pl); err != nil {
		log.Error("yaml decode failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrBadPriceList, err)
	}

	log.Info("price list fetched",
		zap.Int("categories", len(pl.Categories)),
		zap.Int("goods", len(pl.Goods)),
		zap.Duration("duration", time.Since(start)),
	)

	return &pl, nil
}
