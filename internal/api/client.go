package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	ghAPI "github.com/cli/go-gh/v2/pkg/api"
	"github.com/cli/go-gh/v2/pkg/auth"

	"github.com/altinukshini/gh-forks/internal/metrics"
)

const (
	DefaultHost    = "github.com"
	DefaultRetries = 3

	// forksPerPage is the single page size requested from the forks
	// endpoint.
	forksPerPage = 100
)

// Options configures a Client. Retries is the number of extra attempts after
// the first one; a negative value selects DefaultRetries.
type Options struct {
	Host      string
	Token     string
	BaseURL   string
	Retries   int
	Timeout   time.Duration
	Transport http.RoundTripper
	Recorder  metrics.Recorder
	Logger    *log.Logger
}

type Client struct {
	http     *http.Client
	baseURL  string
	retries  int
	authed   bool
	recorder metrics.Recorder
	logger   *log.Logger

	mu        sync.Mutex
	rateLimit RateLimit
}

type RateLimit struct {
	Remaining int
	Limit     int
	Reset     int64
}

// NewClient builds a REST client for the forks endpoint. The token comes
// from opts, then from the gh CLI's environment and stored credentials; with
// no token the client sends unauthenticated requests.
func NewClient(opts Options) (*Client, error) {
	host := opts.Host
	if host == "" {
		host = DefaultHost
	}
	host = auth.NormalizeHostname(host)

	token := opts.Token
	if token == "" {
		token, _ = auth.TokenForHost(host)
	}

	var httpClient *http.Client
	if token != "" {
		var err error
		httpClient, err = ghAPI.NewHTTPClient(ghAPI.ClientOptions{
			Host:      host,
			AuthToken: token,
			Transport: opts.Transport,
			Timeout:   opts.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("create GitHub client for %s: %w", host, err)
		}
	} else {
		transport := opts.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		httpClient = &http.Client{Transport: transport, Timeout: opts.Timeout}
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = restBaseURL(host)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	retries := opts.Retries
	if retries < 0 {
		retries = DefaultRetries
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{
		http:     httpClient,
		baseURL:  baseURL,
		retries:  retries,
		authed:   token != "",
		recorder: recorder,
		logger:   logger,
	}, nil
}

func restBaseURL(host string) string {
	switch {
	case auth.IsTenancy(host):
		return fmt.Sprintf("https://api.%s/", host)
	case auth.IsEnterprise(host):
		return fmt.Sprintf("https://%s/api/v3/", host)
	default:
		return "https://api.github.com/"
	}
}

func (c *Client) repoPath(repo, path string) string {
	return fmt.Sprintf("%srepos/%s/%s", c.baseURL, repo, path)
}

// Authenticated reports whether requests carry a token.
func (c *Client) Authenticated() bool {
	return c.authed
}

// RateLimit returns the limits reported by the most recent response.
func (c *Client) RateLimit() RateLimit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rateLimit
}

func (c *Client) observeRateLimit(resp *http.Response) {
	rl := ParseRateLimit(resp)
	if rl.Limit == 0 {
		return
	}
	c.mu.Lock()
	c.rateLimit = rl
	c.mu.Unlock()
	c.recorder.SetRateLimitRemaining(rl.Remaining)
}

func ParseRateLimit(resp *http.Response) RateLimit {
	rl := RateLimit{}
	if resp == nil {
		return rl
	}
	rl.Remaining, _ = strconv.Atoi(resp.Header.Get("X-RateLimit-Remaining"))
	rl.Limit, _ = strconv.Atoi(resp.Header.Get("X-RateLimit-Limit"))
	rl.Reset, _ = strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64)
	return rl
}
