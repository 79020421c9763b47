package godaddy_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"smartdomain/pkg/registrar/godaddy"
	"smartdomain/pkg/serrors"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func newTestClient(fn rtFunc) *godaddy.Client {
	return godaddy.New(&http.Client{Transport: fn}, godaddy.Options{APIKey: "key", APISecret: "secret"})
}

func TestClient_Available_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "api.godaddy.com", r.URL.Host)
		require.Equal(t, "/v1/domains/available", r.URL.Path)
		require.Equal(t, "snapify.com", r.URL.Query().Get("domain"))
		require.Equal(t, "sso-key key:secret", r.Header.Get("Authorization"))

		return respond(http.StatusOK,
			`{"available":true,"currency":"USD","definitive":true,"domain":"snapify.com","period":1,"price":12990000}`), nil
	})

	res, err := c.Available(context.Background(), "snapify.com")
	require.NoError(t, err)
	require.True(t, res.Available)
	require.True(t, res.Definitive)
	require.Equal(t, int64(12990000), res.Price)
	require.Equal(t, "USD", res.Currency)
	require.Equal(t, "snapify.com", res.Domain)
}

func TestClient_Available_customBaseURL(t *testing.T) {
	c := godaddy.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "api.ote-godaddy.com", r.URL.Host)

		return respond(http.StatusOK, `{"available":false}`), nil
	})}, godaddy.Options{APIKey: "key", APISecret: "secret", BaseURL: godaddy.OTEURL + "/"})

	res, err := c.Available(context.Background(), "taken.io")
	require.NoError(t, err)
	require.False(t, res.Available)
	require.Equal(t, "taken.io", res.Domain)
}

func TestClient_Available_errors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		kind   error
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, kind: serrors.ErrRateLimited},
		{name: "unauthorized", status: http.StatusUnauthorized, kind: serrors.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, kind: serrors.ErrUnauthorized},
		{name: "bad gateway", status: http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(func(*http.Request) (*http.Response, error) {
				return respond(tc.status, "upstream says no"), nil
			})

			_, err := c.Available(context.Background(), "snapify.com")
			require.Error(t, err)
			require.Contains(t, err.Error(), "upstream says no")
			if tc.kind != nil {
				require.ErrorIs(t, err, tc.kind)
			}
		})
	}
}

func TestClient_Available_badJSON(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, "<html>"), nil
	})

	_, err := c.Available(context.Background(), "snapify.com")
	require.Error(t, err)
}

func TestClient_TLDPrice(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		require.Equal(t, "/v1/domains/tlds", r.URL.Path)

		return respond(http.StatusOK, `[{"name":"com","type":"GENERIC","price":11.5},{"name":"io","type":"COUNTRY_CODE"}]`), nil
	})

	p, err := c.TLDPrice(context.Background(), ".com")
	require.NoError(t, err)
	require.InDelta(t, 11.5, p, 1e-9)

	p, err = c.TLDPrice(context.Background(), "IO")
	require.NoError(t, err)
	require.Zero(t, p)

	p, err = c.TLDPrice(context.Background(), ".xyz")
	require.NoError(t, err)
	require.Zero(t, p)

	require.Equal(t, int32(1), calls.Load())
}

func TestClient_TLDPrice_error(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		calls.Add(1)

		return respond(http.StatusInternalServerError, "oops"), nil
	})

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = c.TLDPrice(context.Background(), ".com")
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.Error(t, err)
	}
	require.Equal(t, int32(1), calls.Load())
}

func TestClient_PurchaseURL(t *testing.T) {
	c := newTestClient(nil)
	require.Equal(t, "GoDaddy", c.Name())
	require.Equal(t, "https://www.godaddy.com/domainsearch/find?domainToCheck=snapify.com", c.PurchaseURL("snapify.com"))
}

func TestClient_RateLimiterHonorsContext(t *testing.T) {
	c := godaddy.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"available":true}`), nil
	})}, godaddy.Options{APIKey: "key", APISecret: "secret", RequestsPerMinute: 1, Burst: 1})

	_, err := c.Available(context.Background(), "a.com")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Available(ctx, "b.com")
	require.Error(t, err)
}
