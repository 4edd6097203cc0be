package credentials

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FromURL returns credentials embedded in the URL userinfo.
func FromURL(u *url.URL) (username, password string, err error) {
	if u.User == nil || u.User.Username() == "" {
		return "", "", fmt.Errorf("%w: %s", ErrMissingCredentials, u.Redacted())
	}
	password, _ = u.User.Password()
	return u.User.Username(), password, nil
}

// ResolveURL prefers credentials embedded in u and otherwise looks up u's host
// in the credential file at path.
func ResolveURL(u *url.URL, path string) (username, password string, err error) {
	if username, password, err := FromURL(u); err == nil {
		return username, password, nil
	}
	s, err := Load(path)
	if err != nil {
		return "", "", err
	}
	return s.Resolve(u.Hostname())
}

// GitHubHost is the gh CLI hosts.yml key holding github.com logins.
const GitHubHost = "github.com"

type ghHost struct {
	User       string `yaml:"user"`
	OAuthToken string `yaml:"oauth_token"`
}

// DefaultGitHubCLIPath returns the location of the gh CLI hosts file.
func DefaultGitHubCLIPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gh", "hosts.yml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "gh", "hosts.yml")
	}
	return filepath.Join(home, ".config", "gh", "hosts.yml")
}

// FromGitHubCLI reads the github.com user and OAuth token saved by the gh CLI.
func FromGitHubCLI(path string) (username, token string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", fmt.Errorf("%w: gh config %s", ErrNotFound, path)
		}
		return "", "", fmt.Errorf("read gh config: %w", err)
	}
	var hosts map[string]ghHost
	if err := yaml.Unmarshal(data, &hosts); err != nil {
		return "", "", fmt.Errorf("%w: gh config: %w", ErrDecode, err)
	}
	h, ok := hosts[GitHubHost]
	if !ok || h.User == "" || h.OAuthToken == "" {
		return "", "", fmt.Errorf("%w: %s login in gh config", ErrNotFound, GitHubHost)
	}
	return h.User, h.OAuthToken, nil
}
