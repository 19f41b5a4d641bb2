package github

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultHost is the public GitHub host
const DefaultHost = "github.com"

// Remote identifies a repository on a git hosting service
type Remote struct {
	Host  string
	Owner string
	Repo  string
}

// FullName returns "owner/repo".
func (r Remote) FullName() string {
	return r.Owner + "/" + r.Repo
}

// IsGitHub reports whether the remote is hosted on github.com.
func (r Remote) IsGitHub() bool {
	return strings.EqualFold(r.Host, DefaultHost) || strings.EqualFold(r.Host, "www."+DefaultHost)
}

// ParseRemote parses a git remote URL. It handles both https and ssh formats:
//
//	https://github.com/owner/repo.git
//	ssh://git@github.com/owner/repo.git
//	git@github.com:owner/repo.git
func ParseRemote(remoteURL string) (Remote, error) {
	raw := strings.TrimSuffix(strings.TrimSpace(remoteURL), "/")
	raw = strings.TrimSuffix(raw, ".git")
	if raw == "" {
		return Remote{}, fmt.Errorf("empty remote URL")
	}

	var host, path string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return Remote{}, fmt.Errorf("invalid remote URL: %w", err)
		}
		host = u.Hostname()
		path = strings.TrimPrefix(u.Path, "/")
	} else {
		// scp-like syntax: [user@]host:owner/repo
		at := strings.LastIndex(raw, "@")
		rest := raw[at+1:]
		hostPart, pathPart, ok := strings.Cut(rest, ":")
		if !ok {
			return Remote{}, fmt.Errorf("invalid SSH remote URL %q", remoteURL)
		}
		host = hostPart
		path = pathPart
	}

	parts := strings.Split(path, "/")
	if host == "" || len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return Remote{}, fmt.Errorf("invalid remote URL %q", remoteURL)
	}

	return Remote{
		Host:  host,
		Owner: parts[len(parts)-2],
		Repo:  parts[len(parts)-1],
	}, nil
}
