// Package wasm validates WebAssembly binaries before they are published or
// handed back to callers.
package wasm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

var ErrInvalidModule = errors.New("wasm: invalid module")

// Validator checks a binary by compiling it with the wazero interpreter.
// Nothing is instantiated, so validation has no side effects.
type Validator struct {
	features api.CoreFeatures
}

// NewValidator returns a Validator accepting WebAssembly 2.0 core features.
func NewValidator() *Validator {
	return &Validator{features: api.CoreFeaturesV2}
}

// Validate returns ErrInvalidModule when data is not a well-formed module.
func (v *Validator) Validate(ctx context.Context, data []byte) error {
	cfg := wazero.NewRuntimeConfigInterpreter().WithCoreFeatures(v.features)
	r := wazero.NewRuntimeWithConfig(ctx, cfg)
	defer r.Close(ctx)

	m, err := r.CompileModule(ctx, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidModule, err)
	}
	return m.Close(ctx)
}
