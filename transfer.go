package wasmoci

import (
	"context"
	"fmt"
	"os"

	"github.com/aweris/wasmoci/internal/remote"
)

// Push validates the wasm module in file and uploads it to imageURL as a
// single-layer artifact, returning the manifest URL. Invalid input is rejected
// before any registry call. The credentials are not saved.
func Push(ctx context.Context, file, imageURL, username, password string, opts ...Option) (string, error) {
	o := newOptions(opts)

	info, err := os.Stat(file)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrInvalidInput, file)
	}
	module, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrInvalidInput, file, err)
	}
	if err := o.Validator.Validate(ctx, module); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidArtifact, file, err)
	}

	reg, ref, repo, err := o.open(imageURL)
	if err != nil {
		return "", err
	}
	if err := reg.Authenticate(ctx, ref.Context(), username, password, OperationPush); err != nil {
		return "", err
	}

	fmt.Fprintf(o.LogOutput, "[push] uploading %d bytes to %s\n", len(module), repo)
	manifestURL, err := reg.Push(ctx, ref, module, o.Annotations)
	if err != nil {
		return "", fmt.Errorf("push %s: %w", repo, err)
	}

	fmt.Fprintf(o.LogOutput, "[push] done, manifest %s\n", manifestURL)
	return manifestURL, nil
}

// Pull downloads the wasm module at imageURL and returns it once validated.
func Pull(ctx context.Context, imageURL, username, password string, opts ...Option) ([]byte, error) {
	o := newOptions(opts)

	reg, ref, repo, err := o.open(imageURL)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(o.LogOutput, "[pull] pulling from %s\n", repo)

	if err := reg.Authenticate(ctx, ref.Context(), username, password, OperationPull); err != nil {
		return nil, err
	}
	layers, err := reg.Pull(ctx, ref, LayerMediaType)
	if err != nil {
		return nil, fmt.Errorf("pull %s: %w", repo, err)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: no data found in %s", ErrEmptyArtifact, remote.Describe(ref))
	}
	if len(layers) > 1 {
		fmt.Fprintf(o.LogOutput, "[pull] %d wasm layers in %s, using the first\n", len(layers), remote.Describe(ref))
	}
	module := layers[0]
	fmt.Fprintf(o.LogOutput, "[pull] received %d bytes from %s\n", len(module), repo)

	if err := o.Validator.Validate(ctx, module); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArtifact, remote.Describe(ref), err)
	}
	return module, nil
}

// PushArgs describes a push of a local file.
type PushArgs struct {
	// File is the local wasm module.
	File string
	// ImageURL is the target, e.g. https://ghcr.io/org/module:v1.
	ImageURL string
	Username string
	Password string
}

// Run pushes the file and returns the manifest URL.
func (a PushArgs) Run(ctx context.Context, opts ...Option) (string, error) {
	return Push(ctx, a.File, a.ImageURL, a.Username, a.Password, opts...)
}

// PullArgs describes a pull into a local file.
type PullArgs struct {
	// WriteFile receives the module; it is created or truncated.
	WriteFile string
	ImageURL  string
	Username  string
	Password  string
}

// Run pulls the module and writes it to WriteFile. Nothing is written when the
// pull or validation fails.
func (a PullArgs) Run(ctx context.Context, opts ...Option) error {
	module, err := Pull(ctx, a.ImageURL, a.Username, a.Password, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(a.WriteFile, module, 0644); err != nil {
		return fmt.Errorf("write %s: %w", a.WriteFile, err)
	}
	return nil
}
