// Package remote implements the OCI registry side of wasm artifact transfer.
//
// Based on go-containerregistry patterns:
// - Scheme decides plain HTTP or TLS, ports default to 80 / 443
// - Basic credentials exchanged through the registry auth challenge
// - Upload ordering: layer → config → manifest, in one remote.Write
package remote

import (
	"errors"

	"github.com/google/go-containerregistry/pkg/v1/remote/transport"
)

// Media types of a wasm artifact.
const (
	WasmConfigMediaType = "application/vnd.wasm.config.v1+json"
	WasmLayerMediaType  = "application/vnd.wasm.content.layer.v1+wasm"
)

const DefaultTag = "latest"

var (
	ErrInvalidURL        = errors.New("remote: invalid url")
	ErrUnsupportedScheme = errors.New("remote: unsupported scheme")
	ErrInvalidReference  = errors.New("remote: invalid reference")
	ErrAuthentication    = errors.New("remote: authentication failed")
	ErrPlaintext         = errors.New("remote: plain http request to an https registry")
)

// Operation is the intent declared when authenticating.
type Operation int

const (
	OperationPull Operation = iota
	OperationPush
)

func (o Operation) String() string {
	if o == OperationPush {
		return "push"
	}
	return "pull"
}

func (o Operation) action() string {
	if o == OperationPush {
		return transport.PushScope
	}
	return transport.PullScope
}
