package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ptorres/flight-tracker/internal/pkg/exception"
)

const (
	flightOffersPath = "/v2/shopping/flight-offers"
	airlinesPath     = "/v1/reference-data/airlines"

	// all offer prices are requested in a single currency, conversion is
	// out of scope
	currencyCode = "USD"
)

type Config struct {
	BaseURL      string
	TokenURL     string
	APIKey       string
	APISecret    string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      *redis_rate.Limiter

	// HTTPClient overrides the OAuth2 client credentials transport,
	// used by tests.
	HTTPClient *http.Client
}

// Client talks to the flight-offers provider. It is stateless apart from
// the underlying OAuth2 token source and safe for concurrent use.
type Client struct {
	baseURL      string
	timeout      time.Duration
	maxRetries   int
	rateLimitRPS int
	limiter      *redis_rate.Limiter
	httpClient   *http.Client
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		creds := clientcredentials.Config{
			ClientID:     cfg.APIKey,
			ClientSecret: cfg.APISecret,
			TokenURL:     cfg.TokenURL,
		}
		httpClient = creds.Client(context.Background())
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		timeout:      cfg.Timeout,
		maxRetries:   cfg.MaxRetries,
		rateLimitRPS: cfg.RateLimitRPS,
		limiter:      cfg.Limiter,
		httpClient:   httpClient,
	}
}

// SearchQuery is a validated offer-search request. AirlineCodes, when set,
// constrains results to the given validating carriers.
type SearchQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	Adults        int
	MaxResults    int
	AirlineCodes  []string
}

// SearchOffers fetches flight offers for the query. Transient provider
// failures are retried with exponential backoff up to MaxRetries.
func (c *Client) SearchOffers(ctx context.Context, query SearchQuery) ([]Offer, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.allow(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("max", strconv.Itoa(query.MaxResults))
	params.Set("currencyCode", currencyCode)
	if len(query.AirlineCodes) > 0 {
		params.Set("includedAirlineCodes", strings.Join(query.AirlineCodes, ","))
	}

	endpoint := c.baseURL + flightOffersPath + "?" + params.Encode()

	var response searchOffersResponse
	if err := c.getWithRetry(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("search flight offers: %w", err)
	}

	return response.Data, nil
}

// AirlineName looks up the common name for a 2-letter carrier code.
// A single code is accepted here; callers holding legacy list-shaped input
// unwrap it before calling.
func (c *Client) AirlineName(ctx context.Context, code string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.allow(ctx); err != nil {
		return "", err
	}

	endpoint := c.baseURL + airlinesPath + "?airlineCodes=" + url.QueryEscape(code)

	var response airlinesResponse
	if err := c.get(ctx, endpoint, &response); err != nil {
		return "", fmt.Errorf("lookup airline %s: %w", code, err)
	}

	if len(response.Data) == 0 {
		return "", ErrAirlineNotFound
	}

	return response.Data[0].CommonName, nil
}

func (c *Client) getWithRetry(ctx context.Context, endpoint string, out interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		lastErr = c.get(ctx, endpoint, out)
		if lastErr == nil {
			return nil
		}

		if !isRetryable(lastErr) {
			return lastErr
		}

		slog.WarnContext(ctx, "provider call failed",
			slog.Int("attempt", attempt+1),
			slog.String("error", lastErr.Error()))

		if attempt < c.maxRetries {
			// exponential backoff: 200ms * 2^attempt
			backoff := time.Duration(200*(1<<attempt)) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("retries exhausted after %d attempts: %w", c.maxRetries+1, lastErr)
}

// isRetryable reports whether the error is a transient provider failure.
// Client errors (4xx) fail fast.
func isRetryable(err error) bool {
	var appErr exception.ApplicationError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.StatusCode >= http.StatusInternalServerError
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exception.ApplicationError{
			StatusCode: ErrProviderUnavailable.StatusCode,
			Message:    ErrProviderUnavailable.Message,
			Cause:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return ErrProviderUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return exception.ApplicationError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}

	return nil
}

func (c *Client) allow(ctx context.Context) error {
	if c.limiter == nil || c.rateLimitRPS <= 0 {
		return nil
	}

	res, err := c.limiter.Allow(ctx, "limit:amadeus", redis_rate.PerSecond(c.rateLimitRPS))
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}
