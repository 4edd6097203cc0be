package cmd

import (
	"fmt"

	"github.com/aweris/wasmoci"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout <registry-url>",
	Short: "Remove saved credentials for a registry",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := wasmoci.Logout(args[0], getAuthFile()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	Success("Removed credentials for %s", args[0])
	return nil
}
