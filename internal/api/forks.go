package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	apperrors "github.com/altinukshini/gh-forks/internal/errors"
	"github.com/altinukshini/gh-forks/internal/model"
)

// ForksQuery holds the query parameters of the forks listing.
type ForksQuery struct {
	Sort    string
	PerPage int
}

func (q ForksQuery) QueryString() string {
	v := url.Values{}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if qs := v.Encode(); qs != "" {
		return "?" + qs
	}
	return ""
}

// ForksURL returns the listing URL for repo ("owner/name").
func (c *Client) ForksURL(repo string) string {
	return c.repoPath(repo, "forks") + ForksQuery{Sort: "stargazers", PerPage: forksPerPage}.QueryString()
}

// ListForks returns the first page of repo's forks, most starred first.
func (c *Client) ListForks(ctx context.Context, repo string) ([]model.Fork, error) {
	resp, err := c.Fetch(ctx, c.ForksURL(repo), c.retries)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var forks []model.Fork
	if err := json.NewDecoder(resp.Body).Decode(&forks); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeRequestFailed, err, "decode forks of %s", repo)
	}
	c.logger.Debug("listed forks", "repo", repo, "count", len(forks))
	return forks, nil
}
