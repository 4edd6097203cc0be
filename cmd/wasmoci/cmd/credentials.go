package cmd

import (
	"errors"
	"net/url"

	"github.com/aweris/wasmoci"
	"github.com/spf13/cobra"
)

const ghcrHost = "ghcr.io"

func addCredentialFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("username", "u", "", "registry username (default: saved login)")
	cmd.Flags().StringP("password", "p", "", "registry password or token (requires --username)")
}

// credentialsFor picks the credentials for imageURL: flags first, then the URL
// userinfo or the credential file, then the gh CLI login for ghcr.io. With
// none of these the registry is accessed anonymously.
func credentialsFor(cmd *cobra.Command, imageURL string) (string, string, error) {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	if username == "" && password != "" {
		return "", "", errors.New("--password requires --username")
	}
	if username != "" {
		return username, password, nil
	}

	username, password, err := wasmoci.ResolveCredentials(imageURL, getAuthFile())
	if err == nil {
		return username, password, nil
	}
	if !errors.Is(err, wasmoci.ErrNotFound) {
		return "", "", err
	}

	if u, perr := url.Parse(imageURL); perr == nil && u.Hostname() == ghcrHost {
		if username, token, err := wasmoci.GitHubCLICredentials(""); err == nil {
			Debug("Using gh CLI login for %s", ghcrHost)
			return username, token, nil
		}
	}

	Debug("No saved credentials for %s, continuing anonymously", imageURL)
	return "", "", nil
}
