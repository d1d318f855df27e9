package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/google/uuid"

	"github.com/andrewatan/httpcall/packages/format"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the client when no agent is configured
	DefaultUserAgent = "httpcall/0.1.0"
	// DefaultMaxRedirects is the maximum number of redirects to follow
	DefaultMaxRedirects = 10
	// DefaultMaxIdleConns is the maximum number of idle connections in the pool
	DefaultMaxIdleConns = 100
	// DefaultMaxIdleConnsPerHost is the maximum number of idle connections per host
	DefaultMaxIdleConnsPerHost = 10
	// DefaultIdleConnTimeout is how long idle connections stay in the pool
	DefaultIdleConnTimeout = 90 * time.Second
)

type Client struct {
	httpClient     *http.Client
	timeout        time.Duration
	userAgent      string
	followRedirect bool
	maxRedirects   int
	validateTLS    bool
	proxyURL       string
	defaultHeaders map[string]string
	requestIDs     bool
}

type ClientOption func(*Client)

// redirectKey carries a per-request override of the client's redirect
// policy through the request context.
type redirectKey struct{}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:        DefaultTimeout,
		userAgent:      DefaultUserAgent,
		followRedirect: true,
		maxRedirects:   DefaultMaxRedirects,
		validateTLS:    true,
		defaultHeaders: make(map[string]string),
	}

	for _, opt := range opts {
		opt(c)
	}

	transport := &http.Transport{
		MaxIdleConns:        DefaultMaxIdleConns,
		MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,
		IdleConnTimeout:     DefaultIdleConnTimeout,
	}

	if !c.validateTLS {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	if c.proxyURL != "" {
		proxyURL, err := neturl.Parse(c.proxyURL)
		if err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	redirectPolicy := func(req *http.Request, via []*http.Request) error {
		follow := c.followRedirect
		if v, ok := req.Context().Value(redirectKey{}).(bool); ok {
			follow = v
		}
		if !follow {
			return http.ErrUseLastResponse
		}
		if len(via) >= c.maxRedirects {
			return http.ErrUseLastResponse
		}
		return nil
	}

	c.httpClient = &http.Client{
		Transport:     transport,
		Timeout:       c.timeout,
		CheckRedirect: redirectPolicy,
	}

	return c
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithUserAgent(agent string) ClientOption {
	return func(c *Client) {
		c.userAgent = agent
	}
}

func WithFollowRedirects(follow bool) ClientOption {
	return func(c *Client) {
		c.followRedirect = follow
	}
}

func WithMaxRedirects(max int) ClientOption {
	return func(c *Client) {
		c.maxRedirects = max
	}
}

// WithTLSVerification enables or disables TLS certificate validation
func WithTLSVerification(validate bool) ClientOption {
	return func(c *Client) {
		c.validateTLS = validate
	}
}

// WithProxy sets the proxy URL for all requests
func WithProxy(proxyURL string) ClientOption {
	return func(c *Client) {
		c.proxyURL = proxyURL
	}
}

func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.defaultHeaders[key] = value
	}
}

// WithDefaultHeaders sets multiple default headers for all requests
func WithDefaultHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for k, v := range headers {
			c.defaultHeaders[k] = v
		}
	}
}

// WithRequestIDs attaches a fresh X-Request-ID header to every
// outgoing request for correlation on the server side.
func WithRequestIDs() ClientOption {
	return func(c *Client) {
		c.requestIDs = true
	}
}

func (c *Client) Get(url string, cfg Config) (*Response, error) {
	return c.do(http.MethodGet, url, "", cfg)
}

func (c *Client) Delete(url string, cfg Config) (*Response, error) {
	return c.do(http.MethodDelete, url, "", cfg)
}

// Post sends body as a JSON payload. The body must parse as valid JSON;
// malformed input fails before any network I/O happens.
func (c *Client) Post(url, body string, cfg Config) (*Response, error) {
	if !format.IsValidJSON(body) {
		return nil, &PayloadError{Body: body}
	}
	return c.do(http.MethodPost, url, body, cfg)
}

// Put sends body as a JSON payload, with the same pre-send validation
// as Post.
func (c *Client) Put(url, body string, cfg Config) (*Response, error) {
	if !format.IsValidJSON(body) {
		return nil, &PayloadError{Body: body}
	}
	return c.do(http.MethodPut, url, body, cfg)
}

func (c *Client) do(method, url, body string, cfg Config) (*Response, error) {
	if err := ValidateURL(url); err != nil {
		return nil, err
	}

	ctx := context.WithValue(context.Background(), redirectKey{}, cfg.FollowRedirects)

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &TransportError{URL: url, Method: method, Err: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range c.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range cfg.Headers {
		req.Header.Set(k, v)
	}
	if body != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.requestIDs {
		req.Header.Set("X-Request-ID", uuid.New().String())
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Method: method, Err: err}
	}
	defer httpResp.Body.Close()

	return normalize(url, httpResp, start)
}

// ValidateURL checks that a URL is well-formed and uses an allowed scheme
func ValidateURL(rawURL string) error {
	u, err := neturl.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL format %q: %w", rawURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %s (only http and https are allowed)", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}

	return nil
}
