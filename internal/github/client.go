// Package github diagnoses push failures against the GitHub API.
//
// When a push fails with an authentication or repository-not-found error,
// smartpush can ask GitHub who the configured token belongs to and whether
// the remote repository is visible to it. The answers are advisory only.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// ErrNoToken indicates that no GitHub token is available
var ErrNoToken = errors.New("no GitHub token found")

// Report is what GitHub says about the token and the remote repository
type Report struct {
	Remote Remote
	// Login is the user the token authenticates as; empty if the token was rejected
	Login        string
	TokenValid   bool
	RepoVisible  bool
	CanPush      bool
	PrivateRepo  bool
	RepoFullName string
}

// Lines renders the report as human-readable hints.
func (r *Report) Lines() []string {
	if r == nil {
		return nil
	}
	var lines []string
	if !r.TokenValid {
		lines = append(lines, "GitHub rejected the token in GITHUB_TOKEN/GH_TOKEN; it may be expired or revoked.")
		return lines
	}
	lines = append(lines, fmt.Sprintf("GitHub token authenticates as %s.", r.Login))
	switch {
	case !r.RepoVisible:
		lines = append(lines, fmt.Sprintf("Repository %s is not visible to %s; check the remote URL or request access.", r.Remote.FullName(), r.Login))
	case !r.CanPush:
		lines = append(lines, fmt.Sprintf("%s can see %s but has no push permission.", r.Login, r.RepoFullName))
	default:
		lines = append(lines, fmt.Sprintf("%s has push access to %s; the credentials git uses differ from this token.", r.Login, r.RepoFullName))
	}
	return lines
}

// Diagnoser inspects a remote URL
type Diagnoser interface {
	Diagnose(ctx context.Context, remoteURL string) (*Report, error)
}

// TokenFromEnv returns GITHUB_TOKEN, then GH_TOKEN.
func TokenFromEnv() (string, error) {
	for _, key := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := strings.TrimSpace(os.Getenv(key)); token != "" {
			return token, nil
		}
	}
	return "", ErrNoToken
}

// Client implements Diagnoser using the real GitHub API
type Client struct {
	token   string
	baseURL *url.URL
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL points the client at a different API root, used by tests.
func WithBaseURL(u *url.URL) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a Client authenticating with token
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{token: token}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) apiClient(ctx context.Context, host string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: c.token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	switch {
	case c.baseURL != nil:
		client.BaseURL = c.baseURL
	case host != "" && !strings.EqualFold(host, DefaultHost):
		enterpriseURL := fmt.Sprintf("https://%s/", host)
		var err error
		client, err = client.WithEnterpriseURLs(enterpriseURL, enterpriseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to configure GitHub Enterprise client: %w", err)
		}
	}
	return client, nil
}

// Diagnose reports on the token and the repository behind remoteURL.
func (c *Client) Diagnose(ctx context.Context, remoteURL string) (*Report, error) {
	remote, err := ParseRemote(remoteURL)
	if err != nil {
		return nil, err
	}

	client, err := c.apiClient(ctx, remote.Host)
	if err != nil {
		return nil, err
	}

	report := &Report{Remote: remote}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		if isStatus(err, http.StatusUnauthorized) {
			return report, nil
		}
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}
	report.TokenValid = true
	report.Login = user.GetLogin()

	repo, _, err := client.Repositories.Get(ctx, remote.Owner, remote.Repo)
	if err != nil {
		if isStatus(err, http.StatusNotFound) || isStatus(err, http.StatusForbidden) {
			return report, nil
		}
		return nil, fmt.Errorf("failed to get repository %s: %w", remote.FullName(), err)
	}
	report.RepoVisible = true
	report.RepoFullName = repo.GetFullName()
	report.PrivateRepo = repo.GetPrivate()
	report.CanPush = repo.GetPermissions()["push"]

	return report, nil
}

func isStatus(err error, code int) bool {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode == code
	}
	return false
}
