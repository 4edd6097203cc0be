package cmd

import (
	"fmt"

	"github.com/aweris/wasmoci"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registries with saved credentials",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := wasmoci.LoadCredentials(getAuthFile())
	if err != nil {
		return err
	}

	for _, rec := range store.Records() {
		user, _, err := rec.Credentials()
		if err != nil {
			Warn("%s: %v", rec.URL, err)
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", rec.URL, user)
	}

	if store.Len() == 0 {
		fmt.Fprintln(stdout, "(no entries)")
	}
	return nil
}
