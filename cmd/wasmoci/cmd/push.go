package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/aweris/wasmoci"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push <file> <image-url>",
	Short: "Push a wasm module to a registry",
	Long:  "Validate a local WebAssembly module and push it to an OCI registry as a single-layer artifact.",
	Example: `  wasmoci push hello.wasm https://ghcr.io/octocat/hello:v1
  wasmoci push hello.wasm http://localhost:5000/hello --annotation org.opencontainers.image.title=hello`,
	Args: cobra.ExactArgs(2),
	RunE: runPush,
}

func init() {
	addCredentialFlags(pushCmd)
	pushCmd.Flags().StringArray("annotation", nil, "manifest annotation as key=value (repeatable)")

	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	file, imageURL := args[0], args[1]

	raw, _ := cmd.Flags().GetStringArray("annotation")
	annotations, err := parseAnnotations(raw)
	if err != nil {
		return err
	}

	username, password, err := credentialsFor(cmd, imageURL)
	if err != nil {
		return err
	}

	Info("Pushing %s to %s", file, imageURL)
	manifestURL, err := wasmoci.PushArgs{
		File:     file,
		ImageURL: imageURL,
		Username: username,
		Password: password,
	}.Run(context.Background(),
		wasmoci.WithAnnotations(annotations),
		wasmoci.WithLogOutput(progress()))
	if err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	Success("Pushed %s", manifestURL)
	return nil
}

func parseAnnotations(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	annotations := make(map[string]string, len(raw))
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid annotation %q, want key=value", kv)
		}
		annotations[k] = v
	}
	return annotations, nil
}
