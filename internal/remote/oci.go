package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/google/go-containerregistry/pkg/v1/types"
)

// Client talks to a single registry. Authenticate must succeed before Push or
// Pull; until then requests are anonymous.
type Client struct {
	scheme    string
	transport http.RoundTripper
	userAgent string
	auth      authn.Authenticator
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the base HTTP transport.
func WithTransport(t http.RoundTripper) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithUserAgent sets the User-Agent sent to the registry.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a client for u's scheme: http talks plain HTTP, https
// uses TLS. An https client never falls back to plain HTTP, not even for
// loopback or private registries.
func NewClient(u *url.URL, opts ...Option) (*Client, error) {
	if _, err := DefaultPort(u.Scheme); err != nil {
		return nil, err
	}
	c := &Client{
		scheme:    u.Scheme,
		transport: remote.DefaultTransport,
		auth:      authn.Anonymous,
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.Insecure() {
		c.transport = &tlsOnly{inner: c.transport}
	}
	return c, nil
}

// Insecure reports whether the client talks plain HTTP.
func (c *Client) Insecure() bool { return c.scheme == "http" }

// tlsOnly refuses every request that is not sent over https. The ping of
// go-containerregistry retries loopback and private hosts over http when the
// TLS handshake fails; this keeps credentials off the wire in that case.
type tlsOnly struct {
	inner http.RoundTripper
}

func (t *tlsOnly) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		if req.Body != nil {
			req.Body.Close()
		}
		return nil, fmt.Errorf("%w: %s", ErrPlaintext, req.URL.Redacted())
	}
	return t.inner.RoundTrip(req)
}

// Push uploads module as a single-layer wasm artifact at ref and returns the
// manifest URL.
func (c *Client) Push(ctx context.Context, ref name.Reference, module []byte, annotations map[string]string) (string, error) {
	img, err := NewArtifact(module, annotations)
	if err != nil {
		return "", fmt.Errorf("build artifact: %w", err)
	}
	if err := remote.Write(ref, img, c.remoteOptions(ctx)...); err != nil {
		return "", fmt.Errorf("push %s: %w", ref, err)
	}
	return ManifestURL(ref), nil
}

// Pull fetches the manifest at ref and returns the content of every layer with
// the given media type, in manifest order.
func (c *Client) Pull(ctx context.Context, ref name.Reference, mediaType string) ([][]byte, error) {
	img, err := remote.Image(ref, c.remoteOptions(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest %s: %w", ref, err)
	}
	manifest, err := img.Manifest()
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", ref, err)
	}

	var layers [][]byte
	for _, desc := range manifest.Layers {
		if desc.MediaType != types.MediaType(mediaType) {
			continue
		}
		layer, err := img.LayerByDigest(desc.Digest)
		if err != nil {
			return nil, fmt.Errorf("get layer %s: %w", desc.Digest, err)
		}
		rc, err := layer.Compressed()
		if err != nil {
			return nil, fmt.Errorf("read layer %s: %w", desc.Digest, err)
		}
		data, err := io.ReadAll(rc)
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("read layer %s: %w", desc.Digest, err)
		}
		layers = append(layers, data)
	}
	return layers, nil
}

func (c *Client) remoteOptions(ctx context.Context) []remote.Option {
	opts := []remote.Option{
		remote.WithContext(ctx),
		remote.WithAuth(c.auth),
		remote.WithTransport(c.transport),
		// Network failures are reported, not retried.
		remote.WithRetryBackoff(remote.Backoff{Steps: 1}),
	}
	if c.userAgent != "" {
		opts = append(opts, remote.WithUserAgent(c.userAgent))
	}
	return opts
}
