package cmd

import (
	"context"
	"fmt"

	"github.com/aweris/wasmoci"
	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:     "pull <image-url>",
	Short:   "Pull a wasm module from a registry",
	Long:    "Pull a WebAssembly module from an OCI registry, validate it and write it to a file.",
	Example: `  wasmoci pull https://ghcr.io/octocat/hello:v1 -o hello.wasm`,
	Args:    cobra.ExactArgs(1),
	RunE:    runPull,
}

func init() {
	addCredentialFlags(pullCmd)
	pullCmd.Flags().StringP("output", "o", "module.wasm", "file to write the module to")

	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	imageURL := args[0]
	output, _ := cmd.Flags().GetString("output")

	username, password, err := credentialsFor(cmd, imageURL)
	if err != nil {
		return err
	}

	Info("Pulling %s", imageURL)
	err = wasmoci.PullArgs{
		WriteFile: output,
		ImageURL:  imageURL,
		Username:  username,
		Password:  password,
	}.Run(context.Background(), wasmoci.WithLogOutput(progress()))
	if err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	Success("Wrote %s", output)
	return nil
}
