package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	ghAPI "github.com/cli/go-gh/v2/pkg/api"

	apperrors "github.com/altinukshini/gh-forks/internal/errors"
)

// Fetch issues a GET for url and retries any failure, whether a transport
// error or a non-2xx status, until it succeeds or retries+1 attempts have
// been made. There is no delay between attempts. Only context cancellation
// stops the loop early. The caller closes the returned body.
func (c *Client) Fetch(ctx context.Context, url string, retries int) (*http.Response, error) {
	if retries < 0 {
		retries = 0
	}
	attempts := retries + 1
	start := time.Now()

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			c.recorder.ObserveFetchDuration(time.Since(start), false)
			return nil, fmt.Errorf("fetch %s: %w", url, err)
		}
		if attempt > 1 {
			c.recorder.IncFetchRetry()
			c.logger.Debug("retrying request", "url", url, "attempt", attempt, "of", attempts, "err", lastErr)
		}

		resp, err := c.get(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				c.recorder.ObserveFetchDuration(time.Since(start), false)
				return nil, fmt.Errorf("fetch %s: %w", url, ctx.Err())
			}
			c.recorder.IncFetchAttempt(0)
			lastErr = err
			continue
		}

		c.recorder.IncFetchAttempt(resp.StatusCode)
		c.observeRateLimit(resp)
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			c.recorder.ObserveFetchDuration(time.Since(start), true)
			return resp, nil
		}

		lastErr = ghAPI.HandleHTTPError(resp)
		resp.Body.Close()
	}

	c.recorder.IncFetchExhausted()
	c.recorder.ObserveFetchDuration(time.Since(start), false)
	return nil, exhaustedError(lastErr, attempts)
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.Request == nil {
		resp.Request = req
	}
	return resp, nil
}

// exhaustedError classifies the last failure. Forbidden and rate limit
// responses become RATE_LIMITED, everything else REQUEST_FAILED.
func exhaustedError(err error, attempts int) error {
	if isRateLimited(err) {
		return apperrors.Wrap(apperrors.ErrCodeRateLimited, err, "API rate limit exceeded")
	}
	return apperrors.Wrap(apperrors.ErrCodeRequestFailed, err, "request failed after %d attempts", attempts)
}

func isRateLimited(err error) bool {
	var httpErr *ghAPI.HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	if httpErr.StatusCode == http.StatusForbidden || httpErr.StatusCode == http.StatusTooManyRequests {
		return true
	}
	msg := strings.ToLower(httpErr.Message)
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "forbidden")
}
