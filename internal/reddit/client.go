package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	DefaultTokenURL = "https://www.reddit.com/api/v1/access_token"
	DefaultBaseURL  = "https://oauth.reddit.com"
)

var ErrMissingCredentials = errors.New("reddit client id, client secret and user agent are required")

type Options struct {
	ClientID     string
	ClientSecret string
	UserAgent    string
	Timeout      time.Duration

	TokenURL string
	BaseURL  string
}

// Client talks to the Reddit API with an application-only OAuth token.
type Client struct {
	httpClient *http.Client
	tokens     oauth2.TokenSource
	baseURL    string
}

func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.ClientID) == "" || strings.TrimSpace(opts.ClientSecret) == "" || strings.TrimSpace(opts.UserAgent) == "" {
		return nil, ErrMissingCredentials
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.TokenURL == "" {
		opts.TokenURL = DefaultTokenURL
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	base := &http.Client{
		Timeout:   opts.Timeout,
		Transport: &userAgentTransport{userAgent: opts.UserAgent, base: http.DefaultTransport},
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	cc := &clientcredentials.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		TokenURL:     opts.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	tokens := cc.TokenSource(ctx)

	hc := oauth2.NewClient(ctx, tokens)
	hc.Timeout = opts.Timeout

	return &Client{
		httpClient: hc,
		tokens:     tokens,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
	}, nil
}

// Login fetches the first access token so bad credentials surface before
// any listing is requested.
func (c *Client) Login(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.tokens.Token(); err != nil {
		return fmt.Errorf("reddit authentication failed: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reddit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("reddit returned %s for %s", resp.Status, path)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unexpected reddit response for %s: %w", path, err)
	}
	return nil
}

type userAgentTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
