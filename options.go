package wasmoci

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/google/go-containerregistry/pkg/name"

	"github.com/aweris/wasmoci/internal/remote"
	"github.com/aweris/wasmoci/internal/wasm"
)

// Operation is the intent declared to the registry when authenticating.
type Operation = remote.Operation

const (
	OperationPull = remote.OperationPull
	OperationPush = remote.OperationPush
)

// Media types of the artifact's config and layer.
const (
	ConfigMediaType = remote.WasmConfigMediaType
	LayerMediaType  = remote.WasmLayerMediaType
)

// Registry is the registry protocol capability used by Push, Pull and Login.
type Registry interface {
	// Authenticate verifies username/password for op on repo and keeps them
	// for later calls.
	Authenticate(ctx context.Context, repo name.Repository, username, password string, op Operation) error

	// Push uploads module as a single-layer artifact and returns the manifest URL.
	Push(ctx context.Context, ref name.Reference, module []byte, annotations map[string]string) (string, error)

	// Pull returns the content of every layer of ref with the given media type.
	Pull(ctx context.Context, ref name.Reference, mediaType string) ([][]byte, error)
}

// Validator checks a WebAssembly binary.
type Validator interface {
	Validate(ctx context.Context, data []byte) error
}

// Connector builds the Registry used for a registry URL.
type Connector func(u *url.URL) (Registry, error)

// Options configures Push, Pull and Login.
type Options struct {
	Validator   Validator
	Connector   Connector
	Annotations map[string]string
	Transport   http.RoundTripper
	UserAgent   string
	LogOutput   io.Writer
}

// Option is a functional option for Push, Pull and Login.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Validator: wasm.NewValidator(),
		LogOutput: os.Stderr,
	}
}

func newOptions(opts []Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithValidator replaces the wasm binary validator.
func WithValidator(v Validator) Option {
	return func(o *Options) { o.Validator = v }
}

// WithConnector replaces the registry client factory.
func WithConnector(c Connector) Option {
	return func(o *Options) { o.Connector = c }
}

// WithAnnotations sets manifest annotations on pushed artifacts.
func WithAnnotations(a map[string]string) Option {
	return func(o *Options) { o.Annotations = a }
}

// WithTransport sets the HTTP transport of the default registry client.
func WithTransport(t http.RoundTripper) Option {
	return func(o *Options) { o.Transport = t }
}

// WithUserAgent sets the User-Agent of the default registry client.
func WithUserAgent(ua string) Option {
	return func(o *Options) { o.UserAgent = ua }
}

// WithLogOutput sets where progress lines are written. Nil discards them.
func WithLogOutput(w io.Writer) Option {
	return func(o *Options) {
		if w == nil {
			w = io.Discard
		}
		o.LogOutput = w
	}
}

func (o *Options) connect(u *url.URL) (Registry, error) {
	if o.Connector != nil {
		return o.Connector(u)
	}
	c, err := remote.NewClient(u, remote.WithTransport(o.Transport), remote.WithUserAgent(o.UserAgent))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// open derives the registry client, reference and canonical repository string
// for an image URL.
func (o *Options) open(imageURL string) (Registry, name.Reference, string, error) {
	u, err := remote.ParseURL(imageURL)
	if err != nil {
		return nil, nil, "", err
	}
	reg, err := o.connect(u)
	if err != nil {
		return nil, nil, "", err
	}
	ref, repo, err := remote.ParseReference(u)
	if err != nil {
		return nil, nil, "", err
	}
	return reg, ref, repo, nil
}
