package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/elegance/internal/domain"
	"github.com/sony/gobreaker/v2"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Elegance/1.0"

	// Consecutive failures before the breaker opens
	breakerThreshold = 3
	breakerCooldown  = 30 * time.Second
)

// Client implements domain.CatalogRepository over an HTTP JSON endpoint
type Client struct {
	url        string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	logger     *slog.Logger
}

// NewClient creates a catalog client for url
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "catalog",
		Timeout: breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("catalog breaker state changed", "from", from.String(), "to", to.String())
		},
	})
	return c
}

// Products fetches the full product list
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		return nil, err
	}

	dtos, err := decodeProducts(body)
	if err != nil {
		c.logger.Error("catalog parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	products := MapProducts(dtos)
	c.logger.Info("catalog fetched", "products", len(products), "skipped", len(dtos)-len(products))
	return products, nil
}

// fetch performs the GET and returns the body of a 2xx response
func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "url", c.url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: unexpected status code %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	return body, nil
}
