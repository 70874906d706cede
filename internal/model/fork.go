package model

import "time"

// DefaultAvatarURL stands in for a missing owner avatar.
const DefaultAvatarURL = "https://avatars.githubusercontent.com/u/0?v=4"

type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// Fork is one entry of the repository forks listing. Owner is nil when the
// account behind the fork no longer exists.
type Fork struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Owner           *Owner    `json:"owner"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description"`
	DefaultBranch   string    `json:"default_branch"`
	StargazersCount int       `json:"stargazers_count"`
	Forks           int       `json:"forks"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Size            int       `json:"size"`
	PushedAt        time.Time `json:"pushed_at"`
	Archived        bool      `json:"archived"`
}

func (f Fork) OwnerLogin() string {
	if f.Owner == nil {
		return ""
	}
	return f.Owner.Login
}

func (f Fork) AvatarURL() string {
	if f.Owner == nil || f.Owner.AvatarURL == "" {
		return DefaultAvatarURL
	}
	return f.Owner.AvatarURL
}

// URL returns the fork's web page, derived from FullName when the API did
// not send one.
func (f Fork) URL() string {
	if f.HTMLURL != "" {
		return f.HTMLURL
	}
	return "https://github.com/" + f.FullName
}
