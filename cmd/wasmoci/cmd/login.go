package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aweris/wasmoci"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <registry-url>",
	Short: "Log in to a registry",
	Long: `Verify a username and password against an OCI registry and save them.

The credentials are only saved after the registry accepts them.`,
	Example: `  wasmoci login https://ghcr.io -u octocat -p "$TOKEN"
  echo "$TOKEN" | wasmoci login https://ghcr.io -u octocat --password-stdin`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var stdin io.Reader = os.Stdin

func init() {
	loginCmd.Flags().StringP("username", "u", "", "registry username")
	loginCmd.Flags().StringP("password", "p", "", "registry password or token")
	loginCmd.Flags().Bool("password-stdin", false, "read the password from stdin")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	url := args[0]
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	if fromStdin, _ := cmd.Flags().GetBool("password-stdin"); fromStdin {
		p, err := readPassword(stdin)
		if err != nil {
			return err
		}
		password = p
	}
	if password == "" {
		return errors.New("password is required: use --password or --password-stdin")
	}

	Debug("Logging in to %s as %s", url, username)
	if err := wasmoci.Login(context.Background(), url, username, password, getAuthFile(),
		wasmoci.WithLogOutput(progress())); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	Success("Login succeeded")
	return nil
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
