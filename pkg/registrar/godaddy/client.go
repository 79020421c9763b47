// Package godaddy provides a registrar.Client implementation backed by the
// GoDaddy domains API.
package godaddy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"smartdomain/pkg/registrar"
	"smartdomain/pkg/serrors"
)

const (
	// ProductionURL is the base URL of the production API.
	ProductionURL = "https://api.godaddy.com"
	// OTEURL is the base URL of the test environment. It answers availability
	// requests but usually quotes no prices.
	OTEURL = "https://api.ote-godaddy.com"

	tldCacheTTL = time.Hour
	// tldRetryDelay is how long a failed TLD listing is reported before it is
	// fetched again.
	tldRetryDelay = time.Minute
)

// Options configure a Client.
type Options struct {
	APIKey    string
	APISecret string
	// BaseURL defaults to ProductionURL.
	BaseURL string
	// RequestsPerMinute paces outbound calls. Zero disables pacing.
	RequestsPerMinute int
	// Burst is the number of calls allowed back to back.
	Burst int
}

// Client talks to the GoDaddy REST API and fulfills the registrar.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
	limiter    *rate.Limiter

	mu        sync.Mutex
	tldPrices map[string]float64
	tldsAt    time.Time
	tldsErr   error
	tldsErrAt time.Time
}

// Name implements registrar.Client.
func (c *Client) Name() string { return "GoDaddy" }

// PurchaseURL implements registrar.Client.
func (c *Client) PurchaseURL(domain string) string {
	return "https://www.godaddy.com/domainsearch/find?domainToCheck=" + url.QueryEscape(domain)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("could not wait for rate limiter: %w", err)
	}

	u := strings.TrimRight(c.options.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "sso-key "+c.options.APIKey+":"+c.options.APISecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, serrors.With(serrors.ErrUnauthorized, "registrar rejected credentials: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("registrar error %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, nil
}

// Available checks a single domain.
func (c *Client) Available(ctx context.Context, domain string) (registrar.Availability, error) {
	// https://developer.godaddy.com/doc/endpoint/domains#/v1/available
	b, err := c.get(ctx, "/v1/domains/available", url.Values{"domain": {domain}})
	if err != nil {
		return registrar.Availability{}, fmt.Errorf("could not check %s: %w", domain, err)
	}

	var res struct {
		Available  bool   `json:"available"`
		Domain     string `json:"domain"`
		Definitive bool   `json:"definitive"`
		Price      int64  `json:"price"`
		Currency   string `json:"currency"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return registrar.Availability{}, fmt.Errorf("could not decode response: %w", err)
	}
	if res.Domain == "" {
		res.Domain = domain
	}

	return registrar.Availability{
		Domain:     res.Domain,
		Available:  res.Available,
		Price:      res.Price,
		Currency:   res.Currency,
		Definitive: res.Definitive,
	}, nil
}

// TLDPrice returns the price published for tld in the TLD listing. The
// listing is fetched at most once an hour and concurrent callers share one
// fetch. A failed fetch is reported to every caller for tldRetryDelay.
func (c *Client) TLDPrice(ctx context.Context, tld string) (float64, error) {
	tld = strings.TrimPrefix(strings.ToLower(tld), ".")

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tldPrices == nil || time.Since(c.tldsAt) > tldCacheTTL {
		if c.tldsErr != nil && time.Since(c.tldsErrAt) < tldRetryDelay {
			return 0, c.tldsErr
		}

		prices, err := c.listTLDs(ctx)
		if err != nil {
			if ctx.Err() == nil {
				c.tldsErr, c.tldsErrAt = err, time.Now()
			}

			return 0, err
		}

		c.tldPrices, c.tldsAt, c.tldsErr = prices, time.Now(), nil
	}

	return max(c.tldPrices[tld], 0), nil
}

func (c *Client) listTLDs(ctx context.Context) (map[string]float64, error) {
	b, err := c.get(ctx, "/v1/domains/tlds", nil)
	if err != nil {
		return nil, fmt.Errorf("could not list tlds: %w", err)
	}

	var tlds []struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := json.Unmarshal(b, &tlds); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	prices := make(map[string]float64, len(tlds))
	for _, t := range tlds {
		prices[strings.ToLower(t.Name)] = t.Price
	}

	return prices, nil
}

// Ensure Client conforms to the registrar.Client interface at compile time.
var _ registrar.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and options.
func New(httpClient *http.Client, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = ProductionURL
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if options.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(options.RequestsPerMinute)/60), max(options.Burst, 1))
	}

	return &Client{
		httpClient: httpClient,
		options:    options,
		limiter:    limiter,
	}
}
