package wasmoci

import (
	"errors"

	"github.com/aweris/wasmoci/internal/credentials"
	"github.com/aweris/wasmoci/internal/remote"
)

var (
	ErrInvalidInput    = errors.New("wasmoci: invalid input")
	ErrInvalidArtifact = errors.New("wasmoci: invalid wasm artifact")
	ErrEmptyArtifact   = errors.New("wasmoci: no wasm layer found")
)

// Registry errors.
var (
	ErrInvalidURL        = remote.ErrInvalidURL
	ErrUnsupportedScheme = remote.ErrUnsupportedScheme
	ErrInvalidReference  = remote.ErrInvalidReference
	ErrAuthentication    = remote.ErrAuthentication
	ErrPlaintext         = remote.ErrPlaintext
)

// Credential file errors.
var (
	ErrNotFound           = credentials.ErrNotFound
	ErrMissingCredentials = credentials.ErrMissingCredentials
	ErrCorruptCredential  = credentials.ErrCorruptCredential
	ErrDeserialize        = credentials.ErrDecode
	ErrSerialize          = credentials.ErrEncode
)
