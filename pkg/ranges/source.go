package ranges

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/projectdiscovery/gcache"
	"github.com/projectdiscovery/gologger"
	"github.com/tidwall/gjson"
)

// DefaultEndpoint is the directory service publishing the provider's
// current IPv4 ranges.
const DefaultEndpoint = "https://api.cloudflare.com/client/v4/ips"

// defaultCacheTTL bounds how long a fetched range list is reused within
// the process. Nothing is ever persisted across runs.
const defaultCacheTTL = 15 * time.Minute

// Client fetches published address blocks from a directory service.
//
// The service answers with a JSON envelope:
//
//	{ "success": bool, "result": { "ipv4_cidrs": [...] }, "errors": [...] }
//
// A single request is issued per fetch, there is no retry: any failure
// aborts the whole pipeline before probing begins.
type Client struct {
	endpoint   string
	httpClient *http.Client
	cache      gcache.Cache[string, []string]
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client used for directory requests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCacheTTL overrides how long fetched range lists are memoized.
func WithCacheTTL(ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.cache = newRangeCache(ttl)
	}
}

// NewClient creates a directory client for the given endpoint. An empty
// endpoint falls back to DefaultEndpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		cache:      newRangeCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func newRangeCache(ttl time.Duration) gcache.Cache[string, []string] {
	return gcache.New[string, []string](16).
		LRU().
		Expiration(ttl).
		Build()
}

// IPv4Ranges returns the current list of published IPv4 CIDR blocks.
// Results are memoized per endpoint for the cache TTL so repeated calls
// within one process do not re-hit the directory.
func (c *Client) IPv4Ranges(ctx context.Context) ([]string, error) {
	if cached, err := c.cache.Get(c.endpoint); err == nil {
		gologger.Verbose().Msgf("using cached range list for %s (%d blocks)", c.endpoint, len(cached))
		out := make([]string, len(cached))
		copy(out, cached)
		return out, nil
	}

	cidrs, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(c.endpoint, cidrs); err != nil {
		gologger.Verbose().Msgf("failed to cache range list: %s", err)
	}

	out := make([]string, len(cidrs))
	copy(out, cidrs)
	return out, nil
}

func (c *Client) fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	return parseEnvelope(body)
}

func parseEnvelope(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, &FetchError{Err: fmt.Errorf("response is not valid JSON")}
	}

	envelope := gjson.ParseBytes(body)

	success := envelope.Get("success")
	if !success.Exists() {
		return nil, &FetchError{Err: fmt.Errorf("response envelope is missing the success flag")}
	}
	if !success.Bool() {
		var messages []string
		envelope.Get("errors").ForEach(func(_, value gjson.Result) bool {
			messages = append(messages, value.String())
			return true
		})
		return nil, &DirectoryError{Messages: messages}
	}

	list := envelope.Get("result.ipv4_cidrs")
	if !list.Exists() || !list.IsArray() {
		return nil, &FetchError{Err: fmt.Errorf("response envelope is missing result.ipv4_cidrs")}
	}

	var cidrs []string
	list.ForEach(func(_, value gjson.Result) bool {
		cidrs = append(cidrs, value.String())
		return true
	})
	return cidrs, nil
}
