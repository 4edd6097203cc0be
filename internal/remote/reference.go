package remote

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"
)

// DefaultPort returns the standard port for an http or https scheme.
func DefaultPort(scheme string) (int, error) {
	switch scheme {
	case "http":
		return 80, nil
	case "https":
		return 443, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnsupportedScheme, scheme)
}

func nameOptions(scheme string) []name.Option {
	opts := []name.Option{name.WithDefaultTag(DefaultTag)}
	if scheme == "http" {
		opts = append(opts, name.Insecure)
	}
	return opts
}

// ParseURL parses raw and requires a host.
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}
	return u, nil
}

// hostPort returns u's host with its explicit port, or the scheme's default.
func hostPort(u *url.URL) (string, error) {
	port, err := DefaultPort(u.Scheme)
	if err != nil {
		return "", err
	}
	if u.Port() != "" {
		return u.Host, nil
	}
	return net.JoinHostPort(u.Hostname(), strconv.Itoa(port)), nil
}

// ParseReference derives the canonical "host:port/path" repository string of u
// and parses it. Userinfo in u is ignored.
func ParseReference(u *url.URL) (name.Reference, string, error) {
	host, err := hostPort(u)
	if err != nil {
		return nil, "", err
	}
	repo := host + u.Path
	if strings.Trim(u.Path, "/") == "" {
		return nil, "", fmt.Errorf("%w %q: missing repository path", ErrInvalidReference, repo)
	}

	ref, err := name.ParseReference(repo, nameOptions(u.Scheme)...)
	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %w", ErrInvalidReference, repo, err)
	}
	return ref, repo, nil
}

// RootRepository addresses the registry itself. Authenticating against it
// requests no repository scope.
func RootRepository(u *url.URL) (name.Repository, error) {
	host, err := hostPort(u)
	if err != nil {
		return name.Repository{}, err
	}
	reg, err := name.NewRegistry(host, nameOptions(u.Scheme)...)
	if err != nil {
		return name.Repository{}, fmt.Errorf("%w %q: %w", ErrInvalidReference, host, err)
	}
	return name.Repository{Registry: reg}, nil
}

// Describe renders ref as registry/repository:tag.
func Describe(ref name.Reference) string {
	repo := ref.Context()
	if d, ok := ref.(name.Digest); ok {
		return fmt.Sprintf("%s/%s@%s", repo.RegistryStr(), repo.RepositoryStr(), d.DigestStr())
	}
	return fmt.Sprintf("%s/%s:%s", repo.RegistryStr(), repo.RepositoryStr(), ref.Identifier())
}

// ManifestURL is the registry API URL of ref's manifest.
func ManifestURL(ref name.Reference) string {
	repo := ref.Context()
	return fmt.Sprintf("%s://%s/v2/%s/manifests/%s",
		repo.Scheme(), repo.RegistryStr(), repo.RepositoryStr(), ref.Identifier())
}
