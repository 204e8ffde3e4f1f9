// Package marsapi is the client for the Mars real-estate web service.
package marsapi

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
)

const (
	DefaultBaseURL      = "https://android-kotlin-fun-mars-server.appspot.com/"
	DefaultTimeout      = 10 * time.Second
	DefaultMaxBodyBytes = 4 << 20
	DefaultUserAgent    = "mars_realestate/dev"

	propertiesPath = "realestate"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrBodyTooLarge     = errors.New("response body too large")
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
}

type Client struct {
	doer          Doer
	propertiesURL string
	maxBodyBytes  int64
	userAgent     string
}

// New builds a client backed by its own *http.Client. It is meant to be
// created once and shared.
func New(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return NewWithDoer(cfg, &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     30 * time.Second,
			// Content-Encoding is handled by the client so br bodies work too.
			DisableCompression: true,
		},
	})
}

func NewWithDoer(cfg Config, doer Doer) (*Client, error) {
	propertiesURL, err := resolvePropertiesURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		doer:          doer,
		propertiesURL: propertiesURL,
		maxBodyBytes:  maxBodyBytes,
		userAgent:     userAgent,
	}, nil
}

func (c *Client) PropertiesURL() string {
	return c.propertiesURL
}

// Properties performs GET <base>/realestate and returns the body unparsed.
func (c *Client) Properties(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.propertiesURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br")

	resp, err := c.doer.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Join(fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status), resp.Body.Close())
	}

	return c.readBody(resp)
}

func (c *Client) readBody(resp *http.Response) (_ string, err error) {
	defer func() { err = errors.Join(err, resp.Body.Close()) }()

	r, err := decodedBody(resp)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(r, c.maxBodyBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if int64(len(data)) > c.maxBodyBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, c.maxBodyBytes)
	}

	return string(data), nil
}

func decodedBody(resp *http.Response) (io.Reader, error) {
	switch encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))); encoding {
	case "", "identity":
		return resp.Body, nil

	case "gzip":
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gr, nil

	case "br":
		return brotli.NewReader(resp.Body), nil

	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

func resolvePropertiesURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base url %q: %w", baseURL, err)
	}

	if base.Scheme != "http" && base.Scheme != "https" {
		return "", fmt.Errorf("base url %q must use http or https", baseURL)
	}

	if base.Host == "" {
		return "", fmt.Errorf("base url %q has no host", baseURL)
	}

	return base.JoinPath(propertiesPath).String(), nil
}
