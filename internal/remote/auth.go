package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote/transport"
)

func basicAuth(username, password string) authn.Authenticator {
	if username == "" && password == "" {
		return authn.Anonymous
	}
	return authn.FromConfig(authn.AuthConfig{
		Username: username,
		Password: password,
	})
}

// Authenticate runs the registry auth handshake for op on repo with the given
// Basic credentials, then probes the API base to confirm they are accepted.
// On success the credentials are kept for later Push and Pull calls.
//
// An empty repository (see RootRepository) requests no scope, which is how a
// login is verified.
func (c *Client) Authenticate(ctx context.Context, repo name.Repository, username, password string, op Operation) error {
	auth := basicAuth(username, password)

	var scopes []string
	if repo.RepositoryStr() != "" {
		scopes = []string{repo.Scope(op.action())}
	}

	rt, err := transport.NewWithContext(ctx, repo.Registry, auth, c.transport, scopes)
	if err != nil {
		return fmt.Errorf("%w for %s (%s): %w", ErrAuthentication, repo.RegistryStr(), op, err)
	}

	if err := c.probe(ctx, repo.Registry, rt); err != nil {
		return fmt.Errorf("%w for %s (%s): %w", ErrAuthentication, repo.RegistryStr(), op, err)
	}

	c.auth = auth
	return nil
}

func (c *Client) probe(ctx context.Context, reg name.Registry, rt http.RoundTripper) error {
	u := fmt.Sprintf("%s://%s/v2/", reg.Scheme(), reg.RegistryStr())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := (&http.Client{Transport: rt}).Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return transport.CheckError(resp, http.StatusOK)
}
